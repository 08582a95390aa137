// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/models"
)

const (
	popularCategoriesLimit = 5
	recentActivityLimit    = 5
)

// analyticsRepository implements [AnalyticsRepository] with aggregate
// queries over users and designs.
type analyticsRepository struct {
	gateway *Gateway
	logger  *logger.Logger
}

// NewAnalyticsRepository constructs an [AnalyticsRepository].
func NewAnalyticsRepository(gateway *Gateway, logger *logger.Logger) AnalyticsRepository {
	return &analyticsRepository{
		gateway: gateway,
		logger:  logger,
	}
}

// Summary collects the dashboard figures. Statements run one after another
// and the first failure aborts.
func (r *analyticsRepository) Summary(ctx context.Context) (models.Analytics, error) {
	var (
		a   models.Analytics
		err error
	)

	if a.TotalUsers, err = r.gateway.Count(ctx, UsersTable, query.Clause{}); err != nil {
		return models.Analytics{}, err
	}
	if a.TotalDesigns, err = r.gateway.Count(ctx, DesignsTable, query.Clause{}); err != nil {
		return models.Analytics{}, err
	}
	if a.PendingUsers, err = r.gateway.Count(ctx, UsersTable, query.Eq("is_approved", false)); err != nil {
		return models.Analytics{}, err
	}
	if a.FeaturedDesigns, err = r.gateway.Count(ctx, DesignsTable, query.Eq("featured", true)); err != nil {
		return models.Analytics{}, err
	}
	a.ActiveUsers = a.TotalUsers - a.PendingUsers

	totals, err := r.gateway.Query(ctx, sq.Select(
		"COALESCE(SUM(view_count), 0) AS total_views",
		"COALESCE(SUM(like_count), 0) AS total_likes",
	).From(DesignsTable.Name))
	if err != nil {
		return models.Analytics{}, err
	}
	if len(totals) > 0 {
		a.TotalViews = totals[0].Int64("total_views")
		a.TotalLikes = totals[0].Int64("total_likes")
	}

	categories, err := r.gateway.Query(ctx, sq.Select("category", "COUNT(*) AS count").
		From(DesignsTable.Name).
		Where(query.Eq("status", models.DesignStatusActive)).
		GroupBy("category").
		OrderBy("count DESC", "category ASC").
		Suffix("LIMIT ?", popularCategoriesLimit))
	if err != nil {
		return models.Analytics{}, err
	}
	a.PopularCategories = make([]models.CategoryCount, 0, len(categories))
	for _, row := range categories {
		a.PopularCategories = append(a.PopularCategories, models.CategoryCount{
			Category: row.String("category"),
			Count:    row.Int64("count"),
		})
	}

	recent, err := r.gateway.Query(ctx, sq.Select("title", "created_at").
		From(DesignsTable.Name).
		OrderBy("created_at DESC", "id DESC").
		Suffix("LIMIT ?", recentActivityLimit))
	if err != nil {
		return models.Analytics{}, err
	}
	a.RecentActivity = make([]models.Activity, 0, len(recent))
	for _, row := range recent {
		a.RecentActivity = append(a.RecentActivity, models.Activity{
			Title:        row.String("title"),
			CreatedAt:    row.Time("created_at"),
			ActivityType: "design_created",
		})
	}

	return a, nil
}
