// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/models"
)

var userUpdateFields = query.Fields[models.UserUpdate]{
	query.Optional("is_approved", func(u models.UserUpdate) *bool { return u.IsApproved }),
	query.Optional("is_admin", func(u models.UserUpdate) *bool { return u.IsAdmin }),
}

var userFilterFields = query.Fields[models.UserFilter]{
	query.Optional("is_approved", func(f models.UserFilter) *bool { return f.IsApproved }),
	query.Optional("is_admin", func(f models.UserFilter) *bool { return f.IsAdmin }),
}

// userRepository implements [UserRepository] over the "users" table.
type userRepository struct {
	gateway *Gateway
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on top of gateway.
func NewUserRepository(gateway *Gateway, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		gateway: gateway,
		logger:  logger,
	}
}

// Create stores a new account and returns it with its generated id and
// creation time. A taken username yields [ErrConflict].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	row, err := r.gateway.Create(ctx, UsersTable, []query.Change{
		{Column: "username", Value: user.Username},
		{Column: "password_hash", Value: user.PasswordHash},
		{Column: "is_admin", Value: user.IsAdmin},
		{Column: "is_approved", Value: user.IsApproved},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Create").Msg("error creating user")
		return models.User{}, err
	}

	return userFromRow(row), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	row, err := r.gateway.GetByID(ctx, UsersTable, id)
	if err != nil {
		return models.User{}, err
	}
	if row == nil {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return userFromRow(row), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	row, err := r.gateway.GetOneByField(ctx, UsersTable, "username", username)
	if err != nil {
		return models.User{}, err
	}
	if row == nil {
		return models.User{}, ErrNotFound
	}

	return userFromRow(row), nil
}

// List returns one page of users, newest first.
func (r *userRepository) List(ctx context.Context, filter models.UserFilter, page query.Pagination) ([]models.User, int64, error) {
	plan := query.Plan{
		Where:   query.BuildFilterClause(userFilterFields.Filters(filter), userFilterFields.Columns()),
		OrderBy: []query.Order{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}},
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	}

	rows, total, err := r.gateway.List(ctx, UsersTable, plan)
	if err != nil {
		return nil, 0, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromRow(row))
	}

	return users, total, nil
}

// Update applies the set fields of update. An update without set fields is
// [ErrEmptyChangeSet]; a missing user is [ErrNotFound].
func (r *userRepository) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	row, err := r.gateway.Update(ctx, UsersTable, id, userUpdateFields.Changes(update))
	if err != nil {
		return models.User{}, err
	}
	if row == nil {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return userFromRow(row), nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	row, err := r.gateway.Update(ctx, UsersTable, id, []query.Change{
		{Column: "password_hash", Value: passwordHash},
	})
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	deleted, err := r.gateway.Delete(ctx, UsersTable, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return nil
}

func userFromRow(row Row) models.User {
	return models.User{
		ID:           row.Int64("id"),
		Username:     row.String("username"),
		PasswordHash: row.String("password_hash"),
		IsAdmin:      row.Bool("is_admin"),
		IsApproved:   row.Bool("is_approved"),
		CreatedAt:    row.Time("created_at"),
	}
}
