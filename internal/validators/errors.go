// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure below.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrInvalidUsername  = invalid("username must be between 3 and 50 characters")
	ErrInvalidPassword  = invalid("password must be between 6 and 72 bytes")
	ErrEmptyCredentials = invalid("username and password are required")
	ErrNoFieldsToUpdate = invalid("at least one field must be provided for update")

	ErrInvalidTitle     = invalid("title must be between 1 and 200 characters")
	ErrEmptyCategory    = invalid("category is required")
	ErrEmptyObjectKey   = invalid("r2_object_key is required")
	ErrInvalidStatus    = invalid("status must be one of active, inactive, archived")

	ErrEmptyFile              = invalid("file is empty")
	ErrFileTooLarge           = invalid("file is too large")
	ErrUnsupportedContentType = invalid("unsupported content type")
	ErrEmptyFilename          = invalid("filename is required")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
