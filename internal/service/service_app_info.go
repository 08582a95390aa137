// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/models"
)

const healthStatusHealthy = "healthy"

type appInfoService struct {
	name        string
	appVersion  string
	environment string
	build       models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		name:        cfg.Name,
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		build:       build,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Info(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Name:        s.name,
		Version:     s.appVersion,
		Environment: s.environment,
		BuildDate:   s.build.BuildDate(),
		BuildCommit: s.build.BuildCommit(),
	}
}

func (s *appInfoService) Health(ctx context.Context, now time.Time) models.HealthResponse {
	return models.HealthResponse{
		Status:    healthStatusHealthy,
		Timestamp: now.UTC(),
		Version:   s.appVersion,
	}
}
