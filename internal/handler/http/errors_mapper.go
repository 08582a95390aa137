// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/service"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
)

// errorKind is the status and public message for one error family.
type errorKind struct {
	status  int
	message string
}

// errorKinds is checked in order; the first match wins.
var errorKinds = []struct {
	target error
	kind   errorKind
}{
	{auth.ErrUnauthenticated, errorKind{http.StatusUnauthorized, "authentication required"}},
	{auth.ErrForbidden, errorKind{http.StatusForbidden, "insufficient permissions"}},
	{service.ErrNotFound, errorKind{http.StatusNotFound, "resource not found"}},
	{service.ErrConflict, errorKind{http.StatusConflict, "resource already exists"}},
	{service.ErrInvalidInput, errorKind{http.StatusBadRequest, "invalid input"}},
	{store.ErrStorageUnavailable, errorKind{http.StatusServiceUnavailable, "storage unavailable"}},
	{objectstore.ErrObjectStoreUnavailable, errorKind{http.StatusServiceUnavailable, "image storage unavailable"}},
}

var internalError = errorKind{http.StatusInternalServerError, "internal server error"}

func kindFromError(err error) errorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return kindFromError(err).status
}

// writeError logs err and answers with a stable body. Client errors show a
// known sentinel's text; the wrapped chain only goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := kindFromError(err)
	log := logger.FromRequest(r)

	message := kind.message
	if kind.status < http.StatusInternalServerError {
		message = publicMessage(err, kind)
		log.Info().Err(err).Int("status", kind.status).Msg("request rejected")
	} else {
		log.Err(err).Int("status", kind.status).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Error:   http.StatusText(kind.status),
		Message: message,
		Success: false,
	}, kind.status)
}

// publicInputErrors are the invalid input sentinels whose text is safe to
// show. Anything else wrapped under them stays in the log.
var publicInputErrors = []error{
	validators.ErrInvalidUsername,
	validators.ErrInvalidPassword,
	validators.ErrEmptyCredentials,
	validators.ErrNoFieldsToUpdate,
	validators.ErrInvalidTitle,
	validators.ErrEmptyCategory,
	validators.ErrEmptyObjectKey,
	validators.ErrInvalidStatus,
	validators.ErrEmptyFile,
	validators.ErrFileTooLarge,
	validators.ErrUnsupportedContentType,
	validators.ErrEmptyFilename,
	service.ErrImageNotUploaded,
	service.ErrInvalidLimit,
	ErrInvalidJSON,
	ErrInvalidID,
	ErrInvalidQueryParam,
	ErrMissingFile,
	ErrInvalidGzip,
}

// publicMessage picks the body message of a client error.
func publicMessage(err error, kind errorKind) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, service.ErrUserNotApproved):
		return "Account pending approval. Please wait for admin approval."
	case errors.Is(err, service.ErrCannotDeleteSelf):
		return "Cannot delete your own account"
	case errors.Is(err, service.ErrUsernameIsTaken):
		return "Username already registered"
	case errors.Is(err, store.ErrConflict):
		return "resource already exists"
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, service.ErrDesignNotFound):
		return "Design not found"
	case errors.Is(err, service.ErrImageNotFound):
		return "Image not found"
	case errors.Is(err, auth.ErrForbidden):
		return "Admin access required"
	case errors.Is(err, auth.ErrUnauthenticated):
		return "Could not validate credentials"
	}

	for _, target := range publicInputErrors {
		if errors.Is(err, target) {
			return strings.TrimPrefix(target.Error(), service.ErrInvalidInput.Error()+": ")
		}
	}
	return kind.message
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message, Success: true}, status)
}
