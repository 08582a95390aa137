// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/crypto"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/models"
)

// dummyCredential is verified against when the username is unknown so that
// both login failures cost one bcrypt comparison.
const dummyCredential crypto.Credential = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3KZ6yYkD1QYdLq8cM0u4r1e"

// userService is the concrete implementation of UserService.
type userService struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
	tokens auth.TokenCodec

	// tokenDuration is the lifetime of issued access tokens.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewUserService constructs a UserService. Callers normally wrap it with
// NewUserValidationService before exposing it to the transport.
func NewUserService(users store.UserRepository, hasher crypto.PasswordHasher, tokens auth.TokenCodec, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		users:         users,
		hasher:        hasher,
		tokens:        tokens,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates an unapproved, non-admin account.
func (s *userService) Register(ctx context.Context, input models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	credential, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user, err := s.users.Create(ctx, models.User{
		Username:     input.Username,
		PasswordHash: string(credential),
	})
	if errors.Is(err, store.ErrConflict) {
		log.Info().Str("username", input.Username).Msg("username already registered")
		return models.User{}, ErrUsernameIsTaken
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error creating user")
		return models.User{}, storeError(err, ErrUserNotFound)
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (s *userService) Login(ctx context.Context, input models.UserLogin) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByUsername(ctx, input.Username)
	if errors.Is(err, store.ErrNotFound) {
		s.hasher.Verify(input.Password, dummyCredential)
		log.Info().Str("username", input.Username).Msg("login for unknown user")
		return models.TokenResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("error looking up user")
		return models.TokenResponse{}, storeError(err, ErrInvalidCredentials)
	}

	if !s.hasher.Verify(input.Password, crypto.Credential(user.PasswordHash)) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.TokenResponse{}, ErrInvalidCredentials
	}
	if !user.IsApproved {
		log.Info().Int64("user_id", user.ID).Msg("login of unapproved user")
		return models.TokenResponse{}, ErrUserNotApproved
	}

	token, err := s.tokens.Issue(user.Principal(), s.tokenDuration)
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("error issuing token")
		return models.TokenResponse{}, fmt.Errorf("error issuing token: %w", err)
	}

	return models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   int64(s.tokenDuration / time.Second),
		User:        user,
	}, nil
}

// Me reloads the principal's account so revoked approval or admin rights
// show up even while the token is still valid.
func (s *userService) Me(ctx context.Context, principal models.Principal) (models.User, error) {
	user, err := s.users.GetByID(ctx, principal.ID)
	if err != nil {
		return models.User{}, storeError(err, ErrUserNotFound)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, filter models.UserFilter, page query.Pagination) (models.Page[models.User], error) {
	users, total, err := s.users.List(ctx, filter, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.List").Msg("error listing users")
		return models.Page[models.User]{}, storeError(err, ErrUserNotFound)
	}

	return newPage(users, total, page), nil
}

func (s *userService) Pending(ctx context.Context, page query.Pagination) (models.Page[models.User], error) {
	approved := false
	return s.List(ctx, models.UserFilter{IsApproved: &approved}, page)
}

func (s *userService) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Update").Int64("user_id", id).Msg("error updating user")
		return models.User{}, storeError(err, ErrUserNotFound)
	}

	return user, nil
}

func (s *userService) Approve(ctx context.Context, id int64) (models.User, error) {
	approved := true
	return s.Update(ctx, id, models.UserUpdate{IsApproved: &approved})
}

func (s *userService) Reject(ctx context.Context, id int64) (models.User, error) {
	approved := false
	return s.Update(ctx, id, models.UserUpdate{IsApproved: &approved})
}

func (s *userService) Delete(ctx context.Context, actor models.Principal, id int64) error {
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}

	if err := s.users.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Delete").Int64("user_id", id).Msg("error deleting user")
		return storeError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Int64("actor_id", actor.ID).Msg("user deleted")
	return nil
}

// EnsureAdmin resets the password of an existing account and grants it admin
// and approval, or creates a fresh administrator.
func (s *userService) EnsureAdmin(ctx context.Context, username, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	credential, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		user, err := s.users.Create(ctx, models.User{
			Username:     username,
			PasswordHash: string(credential),
			IsAdmin:      true,
			IsApproved:   true,
		})
		if err != nil {
			log.Err(err).Str("func", "*userService.EnsureAdmin").Msg("error creating admin")
			return models.User{}, false, storeError(err, ErrUserNotFound)
		}
		return user, true, nil
	case err != nil:
		log.Err(err).Str("func", "*userService.EnsureAdmin").Msg("error looking up admin")
		return models.User{}, false, storeError(err, ErrUserNotFound)
	}

	if err = s.users.UpdatePassword(ctx, existing.ID, string(credential)); err != nil {
		return models.User{}, false, storeError(err, ErrUserNotFound)
	}

	granted := true
	user, err := s.users.Update(ctx, existing.ID, models.UserUpdate{IsAdmin: &granted, IsApproved: &granted})
	if err != nil {
		return models.User{}, false, storeError(err, ErrUserNotFound)
	}

	return user, false, nil
}

func newPage[T any](items []T, total int64, page query.Pagination) models.Page[T] {
	if items == nil {
		items = []T{}
	}

	return models.Page[T]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: query.TotalPages(total, page.PerPage),
	}
}
