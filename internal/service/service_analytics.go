// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/models"
)

type analyticsService struct {
	analytics store.AnalyticsRepository
	logger    *logger.Logger
}

func NewAnalyticsService(analytics store.AnalyticsRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{analytics: analytics, logger: logger}
}

func (s *analyticsService) Summary(ctx context.Context) (models.Analytics, error) {
	summary, err := s.analytics.Summary(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*analyticsService.Summary").Msg("error collecting analytics")
		return models.Analytics{}, storeError(err, ErrNotFound)
	}

	if summary.PopularCategories == nil {
		summary.PopularCategories = []models.CategoryCount{}
	}
	if summary.RecentActivity == nil {
		summary.RecentActivity = []models.Activity{}
	}

	return summary, nil
}
