// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
	ErrDesignNotFound = fmt.Errorf("design %w", ErrNotFound)
	ErrImageNotFound  = fmt.Errorf("image %w", ErrNotFound)

	ErrConflict        = errors.New("conflict")
	ErrUsernameIsTaken = fmt.Errorf("%w: username already registered", ErrConflict)

	// ErrInvalidInput shares its identity with the validators package so one
	// errors.Is check covers validation and service level rejections.
	ErrInvalidInput     = validators.ErrInvalidInput
	ErrCannotDeleteSelf = fmt.Errorf("%w: cannot delete your own account", ErrInvalidInput)
	ErrImageNotUploaded = fmt.Errorf("%w: image object does not exist", ErrInvalidInput)
	ErrInvalidLimit     = fmt.Errorf("%w: limit out of range", ErrInvalidInput)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", auth.ErrUnauthenticated)
	ErrUserNotApproved    = fmt.Errorf("%w: account is pending admin approval", auth.ErrForbidden)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// storeError rewrites repository failures into service error kinds.
// notFound replaces store.ErrNotFound; storage outages keep their sentinel in
// the chain so the transport can report them as such.
func storeError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, store.ErrEmptyChangeSet), errors.Is(err, store.ErrUnknownColumn):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
