// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/query"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/models"
)

// Featured listing bounds.
const (
	DefaultFeaturedLimit = 10
	MaxFeaturedLimit     = 50
)

type designService struct {
	designs store.DesignRepository
	objects objectstore.ObjectStore

	logger *logger.Logger
}

func NewDesignService(designs store.DesignRepository, objects objectstore.ObjectStore, logger *logger.Logger) DesignService {
	return &designService{
		designs: designs,
		objects: objects,
		logger:  logger,
	}
}

func (s *designService) List(ctx context.Context, filter models.DesignFilter, page query.Pagination) (models.Page[models.Design], error) {
	designs, total, err := s.designs.List(ctx, filter, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*designService.List").Msg("error listing designs")
		return models.Page[models.Design]{}, storeError(err, ErrDesignNotFound)
	}

	return newPage(s.withImageURLs(designs), total, page), nil
}

// Featured returns up to limit featured designs. Zero means the default.
func (s *designService) Featured(ctx context.Context, limit int) ([]models.Design, error) {
	if limit == 0 {
		limit = DefaultFeaturedLimit
	}
	if limit < 1 || limit > MaxFeaturedLimit {
		return nil, ErrInvalidLimit
	}

	designs, err := s.designs.Featured(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*designService.Featured").Msg("error listing featured designs")
		return nil, storeError(err, ErrDesignNotFound)
	}

	return s.withImageURLs(designs), nil
}

func (s *designService) Get(ctx context.Context, id int64) (models.Design, error) {
	if err := s.designs.IncrementViews(ctx, id); err != nil {
		return models.Design{}, storeError(err, ErrDesignNotFound)
	}

	design, err := s.designs.GetByID(ctx, id)
	if err != nil {
		return models.Design{}, storeError(err, ErrDesignNotFound)
	}

	return s.withImageURL(design), nil
}

// Create requires the image object to be uploaded beforehand.
func (s *designService) Create(ctx context.Context, input models.DesignCreate) (models.Design, error) {
	log := logger.FromContext(ctx)

	exists, err := s.objects.Exists(ctx, input.ObjectKey)
	if err != nil {
		log.Err(err).Str("func", "*designService.Create").Str("key", input.ObjectKey).Msg("error checking image object")
		return models.Design{}, err
	}
	if !exists {
		return models.Design{}, ErrImageNotUploaded
	}

	design, err := s.designs.Create(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "*designService.Create").Msg("error creating design")
		return models.Design{}, storeError(err, ErrDesignNotFound)
	}

	log.Info().Int64("design_id", design.ID).Msg("design created")
	return s.withImageURL(design), nil
}

func (s *designService) Update(ctx context.Context, id int64, update models.DesignUpdate) (models.Design, error) {
	design, err := s.designs.Update(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*designService.Update").Int64("design_id", id).Msg("error updating design")
		return models.Design{}, storeError(err, ErrDesignNotFound)
	}

	return s.withImageURL(design), nil
}

// Delete is not atomic: when removing the row fails after the object is gone,
// the design stays listed without an image.
func (s *designService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	design, err := s.designs.GetByID(ctx, id)
	if err != nil {
		return storeError(err, ErrDesignNotFound)
	}

	if err = s.objects.Delete(ctx, design.ObjectKey); err != nil && !errors.Is(err, objectstore.ErrEmptyKey) {
		log.Err(err).Str("func", "*designService.Delete").Str("key", design.ObjectKey).Msg("error deleting image object")
		return err
	}

	if err = s.designs.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*designService.Delete").Int64("design_id", id).Msg("error deleting design row after its image")
		return storeError(err, ErrDesignNotFound)
	}

	log.Info().Int64("design_id", id).Msg("design deleted")
	return nil
}

func (s *designService) withImageURL(design models.Design) models.Design {
	if design.ObjectKey != "" {
		design.ImageURL = s.objects.PublicURL(design.ObjectKey)
	}
	return design
}

func (s *designService) withImageURLs(designs []models.Design) []models.Design {
	for i := range designs {
		designs[i] = s.withImageURL(designs[i])
	}
	return designs
}
