// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/models"
)

// favoriteRepository implements [FavoriteRepository] over "user_favorites".
type favoriteRepository struct {
	gateway *Gateway
	logger  *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] on top of gateway.
func NewFavoriteRepository(gateway *Gateway, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		gateway: gateway,
		logger:  logger,
	}
}

// Add relies on UNIQUE (user_id, design_id): one statement, no read before
// the write.
func (r *favoriteRepository) Add(ctx context.Context, userID, designID int64) (bool, error) {
	return r.gateway.InsertIgnore(ctx, FavoritesTable, []query.Change{
		{Column: "user_id", Value: userID},
		{Column: "design_id", Value: designID},
	}, "user_id", "design_id")
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, designID int64) error {
	removed, err := r.gateway.DeleteWhere(ctx, FavoritesTable, query.Combine(query.And,
		query.Eq("user_id", userID),
		query.Eq("design_id", designID),
	))
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("favorite %d/%d: %w", userID, designID, ErrNotFound)
	}

	return nil
}

// ListDesigns returns the active designs userID favorited, most recently
// favorited first.
func (r *favoriteRepository) ListDesigns(ctx context.Context, userID int64) ([]models.Design, error) {
	stmt := sq.Select("d.*").
		From(DesignsTable.Name + " d").
		Join(FavoritesTable.Name + " f ON f.design_id = d.id").
		Where(query.Combine(query.And,
			query.Eq("f.user_id", userID),
			query.Eq("d.status", models.DesignStatusActive),
		)).
		OrderBy("f.created_at DESC", "f.id DESC")

	rows, err := r.gateway.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}

	return designsFromRows(rows), nil
}
