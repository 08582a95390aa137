// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
)

// ── users ───────────────────────────────────────────────────────────────────

// UserValidationService rejects malformed payloads before they reach the
// wrapped UserService. Usernames are trimmed before validation.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{validator: validators.NewUserValidator()}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) Register(ctx context.Context, input models.UserCreate) (models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error validating registration: %w", err)
	}
	return v.inner.Register(ctx, input)
}

func (v *UserValidationService) Login(ctx context.Context, input models.UserLogin) (models.TokenResponse, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.TokenResponse{}, fmt.Errorf("error validating login: %w", err)
	}
	return v.inner.Login(ctx, input)
}

func (v *UserValidationService) Me(ctx context.Context, principal models.Principal) (models.User, error) {
	return v.inner.Me(ctx, principal)
}

func (v *UserValidationService) List(ctx context.Context, filter models.UserFilter, page query.Pagination) (models.Page[models.User], error) {
	return v.inner.List(ctx, filter, page)
}

func (v *UserValidationService) Pending(ctx context.Context, page query.Pagination) (models.Page[models.User], error) {
	return v.inner.Pending(ctx, page)
}

func (v *UserValidationService) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("error validating user update: %w", err)
	}
	return v.inner.Update(ctx, id, update)
}

func (v *UserValidationService) Approve(ctx context.Context, id int64) (models.User, error) {
	return v.inner.Approve(ctx, id)
}

func (v *UserValidationService) Reject(ctx context.Context, id int64) (models.User, error) {
	return v.inner.Reject(ctx, id)
}

func (v *UserValidationService) Delete(ctx context.Context, actor models.Principal, id int64) error {
	return v.inner.Delete(ctx, actor, id)
}

func (v *UserValidationService) EnsureAdmin(ctx context.Context, username, password string) (models.User, bool, error) {
	username = strings.TrimSpace(username)
	if err := v.validator.Validate(ctx, models.UserCreate{Username: username, Password: password}); err != nil {
		return models.User{}, false, fmt.Errorf("error validating admin credentials: %w", err)
	}
	return v.inner.EnsureAdmin(ctx, username, password)
}

// ── designs ─────────────────────────────────────────────────────────────────

type DesignValidationService struct {
	inner     DesignService
	validator validators.Validator
}

func NewDesignValidationService() DesignServiceWrapper {
	return &DesignValidationService{validator: validators.NewDesignValidator()}
}

func (v *DesignValidationService) Wrap(inner DesignService) DesignService {
	v.inner = inner
	return v
}

func (v *DesignValidationService) List(ctx context.Context, filter models.DesignFilter, page query.Pagination) (models.Page[models.Design], error) {
	return v.inner.List(ctx, filter, page)
}

func (v *DesignValidationService) Featured(ctx context.Context, limit int) ([]models.Design, error) {
	return v.inner.Featured(ctx, limit)
}

func (v *DesignValidationService) Get(ctx context.Context, id int64) (models.Design, error) {
	return v.inner.Get(ctx, id)
}

func (v *DesignValidationService) Create(ctx context.Context, input models.DesignCreate) (models.Design, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Design{}, fmt.Errorf("error validating design: %w", err)
	}
	return v.inner.Create(ctx, input)
}

func (v *DesignValidationService) Update(ctx context.Context, id int64, update models.DesignUpdate) (models.Design, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Design{}, fmt.Errorf("error validating design update: %w", err)
	}
	return v.inner.Update(ctx, id, update)
}

func (v *DesignValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

// ── uploads ─────────────────────────────────────────────────────────────────

type UploadValidationService struct {
	inner     UploadService
	validator validators.Validator
}

func NewUploadValidationService(validator validators.Validator) UploadServiceWrapper {
	return &UploadValidationService{validator: validator}
}

func (v *UploadValidationService) Wrap(inner UploadService) UploadService {
	v.inner = inner
	return v
}

func (v *UploadValidationService) UploadImage(ctx context.Context, principal models.Principal, upload models.ImageUpload) (models.UploadResult, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.UploadResult{}, fmt.Errorf("error validating upload: %w", err)
	}
	return v.inner.UploadImage(ctx, principal, upload)
}

func (v *UploadValidationService) PresignUpload(ctx context.Context, filename, category string) (models.PresignedUpload, error) {
	return v.inner.PresignUpload(ctx, filename, category)
}

func (v *UploadValidationService) DeleteImage(ctx context.Context, key string) error {
	return v.inner.DeleteImage(ctx, key)
}

func (v *UploadValidationService) ListImages(ctx context.Context, prefix string, limit int) ([]models.ObjectInfo, error) {
	return v.inner.ListImages(ctx, prefix, limit)
}
