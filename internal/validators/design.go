// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-design-gallery/models"
)

// Field names accepted by [DesignValidator].
const (
	FieldTitle     = "title"
	FieldCategory  = "category"
	FieldObjectKey = "r2_object_key"
	FieldStatus    = "status"
)

const titleMaxLen = 200

// DesignStatuses are the statuses an admin may set.
var DesignStatuses = []string{models.DesignStatusActive, "inactive", "archived"}

// DesignValidator validates design create and update payloads.
type DesignValidator struct {
}

func NewDesignValidator() Validator {
	return &DesignValidator{}
}

func (v *DesignValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DesignCreate:
		return v.validateDesignCreate(value, fields...)
	case *models.DesignCreate:
		return v.validateDesignCreate(*value, fields...)
	case models.DesignUpdate:
		return v.validateDesignUpdate(value)
	case *models.DesignUpdate:
		return v.validateDesignUpdate(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *DesignValidator) validateDesignCreate(design models.DesignCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCategory, FieldObjectKey}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !validTitle(design.Title) {
				return ErrInvalidTitle
			}
		case FieldCategory:
			if strings.TrimSpace(design.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldObjectKey:
			if strings.TrimSpace(design.ObjectKey) == "" {
				return ErrEmptyObjectKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DesignValidator) validateDesignUpdate(update models.DesignUpdate) error {
	if update == (models.DesignUpdate{}) {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil && !validTitle(*update.Title) {
		return ErrInvalidTitle
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		return ErrEmptyCategory
	}
	if update.Status != nil && !slices.Contains(DesignStatuses, *update.Status) {
		return ErrInvalidStatus
	}

	return nil
}

func validTitle(title string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	return n >= 1 && n <= titleMaxLen
}
