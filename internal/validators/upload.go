// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"mime"
	"slices"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/models"
)

// UploadValidator checks image uploads against the configured size limit
// and content type allow-list.
type UploadValidator struct {
	maxSize      int64
	allowedTypes []string
}

func NewUploadValidator(cfg config.Upload) Validator {
	return &UploadValidator{
		maxSize:      cfg.MaxFileSize,
		allowedTypes: cfg.AllowedTypes,
	}
}

func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ImageUpload:
		return v.validateImageUpload(value)
	case *models.ImageUpload:
		return v.validateImageUpload(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateImageUpload(upload models.ImageUpload) error {
	if strings.TrimSpace(upload.Filename) == "" {
		return ErrEmptyFilename
	}
	if !v.allowed(upload.ContentType) {
		return ErrUnsupportedContentType
	}
	if upload.Size <= 0 {
		return ErrEmptyFile
	}
	if v.maxSize > 0 && upload.Size > v.maxSize {
		return ErrFileTooLarge
	}
	return nil
}

// allowed compares the media type without parameters, case-insensitively.
func (v *UploadValidator) allowed(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(v.allowedTypes, func(t string) bool {
		return strings.EqualFold(t, mediaType)
	})
}
