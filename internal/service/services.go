// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the gallery's business logic: accounts and login,
// the design catalog, favorites, image uploads, analytics and app info.
//
// Services talk to persistence through store repositories and to the image
// bucket through objectstore.ObjectStore. Input validation is layered on top
// with the *ValidationService wrappers.
package service

import (
	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/crypto"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
)

type Services struct {
	UserService      UserService
	DesignService    DesignService
	FavoriteService  FavoriteService
	UploadService    UploadService
	AnalyticsService AnalyticsService
	AppInfoService   AppInfoService
}

// Dependencies are the collaborators NewServices wires together.
type Dependencies struct {
	Repositories *store.Repositories
	Objects      objectstore.ObjectStore
	Keys         KeyGenerator
	Hasher       crypto.PasswordHasher
	Tokens       auth.TokenCodec
	Build        models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	repos := deps.Repositories

	users := NewUserValidationService().Wrap(
		NewUserService(repos.Users, deps.Hasher, deps.Tokens, cfg.App, logger),
	)
	designs := NewDesignValidationService().Wrap(
		NewDesignService(repos.Designs, deps.Objects, logger),
	)
	uploads := NewUploadValidationService(validators.NewUploadValidator(cfg.Upload)).Wrap(
		NewUploadService(deps.Objects, deps.Keys, cfg.Upload, logger),
	)

	return &Services{
		UserService:      users,
		DesignService:    designs,
		FavoriteService:  NewFavoriteService(repos.Favorites, repos.Designs, deps.Objects, logger),
		UploadService:    uploads,
		AnalyticsService: NewAnalyticsService(repos.Analytics, logger),
		AppInfoService:   appInfo,
	}, nil
}
