// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Executor runs one parameterized statement. Implementations must be safe
// for concurrent use and honour ctx cancellation.
type Executor interface {
	Query(ctx context.Context, statement string, args ...any) (Result, error)
}

// ErrorClassificator maps executor failures to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context, filter models.UserFilter, page query.Pagination) ([]models.User, int64, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type DesignRepository interface {
	Create(ctx context.Context, design models.DesignCreate) (models.Design, error)
	GetByID(ctx context.Context, id int64) (models.Design, error)
	List(ctx context.Context, filter models.DesignFilter, page query.Pagination) ([]models.Design, int64, error)
	Featured(ctx context.Context, limit int) ([]models.Design, error)
	Update(ctx context.Context, id int64, update models.DesignUpdate) (models.Design, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}

type FavoriteRepository interface {
	// Add reports whether a new favorite was stored; an existing pair is
	// left as is.
	Add(ctx context.Context, userID, designID int64) (bool, error)
	Remove(ctx context.Context, userID, designID int64) error
	ListDesigns(ctx context.Context, userID int64) ([]models.Design, error)
}

type AnalyticsRepository interface {
	Summary(ctx context.Context) (models.Analytics, error)
}
