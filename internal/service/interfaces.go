// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/models"
)

// UserService covers registration, login and account administration.
type UserService interface {
	Register(ctx context.Context, input models.UserCreate) (models.User, error)
	// Login fails with ErrInvalidCredentials for an unknown user or a wrong
	// password and with ErrUserNotApproved for accounts awaiting approval.
	Login(ctx context.Context, input models.UserLogin) (models.TokenResponse, error)
	Me(ctx context.Context, principal models.Principal) (models.User, error)

	List(ctx context.Context, filter models.UserFilter, page query.Pagination) (models.Page[models.User], error)
	Pending(ctx context.Context, page query.Pagination) (models.Page[models.User], error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	Approve(ctx context.Context, id int64) (models.User, error)
	Reject(ctx context.Context, id int64) (models.User, error)
	// Delete refuses to remove the acting administrator.
	Delete(ctx context.Context, actor models.Principal, id int64) error

	// EnsureAdmin creates an approved administrator or resets the password
	// of an existing account with that name. created reports which happened.
	EnsureAdmin(ctx context.Context, username, password string) (user models.User, created bool, err error)
}

type DesignService interface {
	List(ctx context.Context, filter models.DesignFilter, page query.Pagination) (models.Page[models.Design], error)
	Featured(ctx context.Context, limit int) ([]models.Design, error)
	// Get counts a view before returning the design.
	Get(ctx context.Context, id int64) (models.Design, error)
	Create(ctx context.Context, input models.DesignCreate) (models.Design, error)
	Update(ctx context.Context, id int64, update models.DesignUpdate) (models.Design, error)
	// Delete removes the image object first and then the row.
	Delete(ctx context.Context, id int64) error
}

type FavoriteService interface {
	Add(ctx context.Context, principal models.Principal, designID int64) error
	Remove(ctx context.Context, principal models.Principal, designID int64) error
	List(ctx context.Context, principal models.Principal) ([]models.Design, error)
}

type UploadService interface {
	UploadImage(ctx context.Context, principal models.Principal, upload models.ImageUpload) (models.UploadResult, error)
	PresignUpload(ctx context.Context, filename, category string) (models.PresignedUpload, error)
	DeleteImage(ctx context.Context, key string) error
	ListImages(ctx context.Context, prefix string, limit int) ([]models.ObjectInfo, error)
}

type AnalyticsService interface {
	Summary(ctx context.Context) (models.Analytics, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Info(ctx context.Context) models.AppInfo
	Health(ctx context.Context, now time.Time) models.HealthResponse
}

// UserServiceWrapper decorates a UserService, e.g. with input validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// DesignServiceWrapper decorates a DesignService.
type DesignServiceWrapper interface {
	Wrap(DesignService) DesignService
}

// UploadServiceWrapper decorates an UploadService.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService
}
