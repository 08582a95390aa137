// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
)

// Image listing bounds.
const (
	DefaultImagesLimit = 50
	MaxImagesLimit     = 100
)

// Metadata keys stored with every uploaded image.
const (
	MetadataOriginalFilename = "original-filename"
	MetadataUploadedBy       = "uploaded-by"
	MetadataCategory         = "category"
)

// KeyGenerator names new image objects.
type KeyGenerator interface {
	Generate(category, filename string) string
}

type uploadService struct {
	objects objectstore.ObjectStore
	keys    KeyGenerator

	maxFileSize int64

	logger *logger.Logger
}

func NewUploadService(objects objectstore.ObjectStore, keys KeyGenerator, cfg config.Upload, logger *logger.Logger) UploadService {
	return &uploadService{
		objects:     objects,
		keys:        keys,
		maxFileSize: cfg.MaxFileSize,
		logger:      logger,
	}
}

// UploadImage buffers the body, enforcing the size limit on the bytes
// actually read rather than the declared size.
func (s *uploadService) UploadImage(ctx context.Context, principal models.Principal, upload models.ImageUpload) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	reader := upload.Body
	if s.maxFileSize > 0 {
		reader = io.LimitReader(upload.Body, s.maxFileSize+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		log.Err(err).Str("func", "*uploadService.UploadImage").Msg("error reading upload body")
		return models.UploadResult{}, fmt.Errorf("%w: error reading file: %w", ErrInvalidInput, err)
	}
	if len(body) == 0 {
		return models.UploadResult{}, validators.ErrEmptyFile
	}
	if s.maxFileSize > 0 && int64(len(body)) > s.maxFileSize {
		return models.UploadResult{}, validators.ErrFileTooLarge
	}

	category := strings.TrimSpace(upload.Category)
	key := s.keys.Generate(category, upload.Filename)
	err = s.objects.Put(ctx, objectstore.Object{
		Key:         key,
		ContentType: upload.ContentType,
		Body:        body,
		Metadata: map[string]string{
			MetadataOriginalFilename: upload.Filename,
			MetadataUploadedBy:       strconv.FormatInt(principal.ID, 10),
			MetadataCategory:         category,
		},
	})
	if err != nil {
		return models.UploadResult{}, err
	}

	log.Info().Str("key", key).Int("size", len(body)).Msg("image uploaded")
	return models.UploadResult{
		ObjectKey:   key,
		ImageURL:    s.objects.PublicURL(key),
		ContentType: upload.ContentType,
		Size:        int64(len(body)),
	}, nil
}

// PresignUpload reserves a key for filename and returns a URL the client
// PUTs the image to directly.
func (s *uploadService) PresignUpload(ctx context.Context, filename, category string) (models.PresignedUpload, error) {
	if strings.TrimSpace(filename) == "" {
		return models.PresignedUpload{}, validators.ErrEmptyFilename
	}

	key := s.keys.Generate(category, filename)
	url, expiresAt, err := s.objects.PresignPut(ctx, key, mime.TypeByExtension(path.Ext(filename)))
	if err != nil {
		return models.PresignedUpload{}, err
	}

	return models.PresignedUpload{
		UploadURL: url,
		ObjectKey: key,
		ImageURL:  s.objects.PublicURL(key),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *uploadService) DeleteImage(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, objectstore.ErrEmptyKey)
	}

	exists, err := s.objects.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ErrImageNotFound
	}

	if err = s.objects.Delete(ctx, key); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("key", key).Msg("image deleted")
	return nil
}

// ListImages lists up to limit objects under prefix. Zero means the default.
func (s *uploadService) ListImages(ctx context.Context, prefix string, limit int) ([]models.ObjectInfo, error) {
	if limit == 0 {
		limit = DefaultImagesLimit
	}
	if limit < 1 || limit > MaxImagesLimit {
		return nil, ErrInvalidLimit
	}

	return s.objects.List(ctx, prefix, int32(limit))
}
