// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/models"
)

type favoriteService struct {
	favorites store.FavoriteRepository
	designs   store.DesignRepository
	objects   objectstore.ObjectStore

	logger *logger.Logger
}

func NewFavoriteService(favorites store.FavoriteRepository, designs store.DesignRepository, objects objectstore.ObjectStore, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favorites: favorites,
		designs:   designs,
		objects:   objects,
		logger:    logger,
	}
}

// Add is idempotent: favoriting the same design twice succeeds.
func (s *favoriteService) Add(ctx context.Context, principal models.Principal, designID int64) error {
	if _, err := s.designs.GetByID(ctx, designID); err != nil {
		return storeError(err, ErrDesignNotFound)
	}

	added, err := s.favorites.Add(ctx, principal.ID, designID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.Add").Int64("design_id", designID).Msg("error adding favorite")
		return storeError(err, ErrDesignNotFound)
	}

	logger.FromContext(ctx).Debug().Int64("design_id", designID).Bool("added", added).Msg("favorite stored")
	return nil
}

func (s *favoriteService) Remove(ctx context.Context, principal models.Principal, designID int64) error {
	if err := s.favorites.Remove(ctx, principal.ID, designID); err != nil {
		return storeError(err, ErrDesignNotFound)
	}

	return nil
}

func (s *favoriteService) List(ctx context.Context, principal models.Principal) ([]models.Design, error) {
	designs, err := s.favorites.ListDesigns(ctx, principal.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.List").Msg("error listing favorites")
		return nil, storeError(err, ErrDesignNotFound)
	}

	if designs == nil {
		designs = []models.Design{}
	}
	for i := range designs {
		designs[i].ImageURL = s.objects.PublicURL(designs[i].ObjectKey)
	}

	return designs, nil
}
