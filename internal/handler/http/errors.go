// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-design-gallery/internal/service"
)

// Request decoding errors. All of them are invalid input.
var (
	ErrInvalidJSON       = fmt.Errorf("%w: invalid JSON was passed", service.ErrInvalidInput)
	ErrInvalidID         = fmt.Errorf("%w: id must be a positive integer", service.ErrInvalidInput)
	ErrInvalidQueryParam = fmt.Errorf("%w: invalid query parameter", service.ErrInvalidInput)
	ErrMissingFile       = fmt.Errorf("%w: multipart field \"file\" is required", service.ErrInvalidInput)
)

// ErrNoPrincipal means an authenticated route ran without the auth middleware.
var ErrNoPrincipal = errors.New("no principal in request context")

// ErrInvalidGzip is a request body that claims gzip encoding but is not.
var ErrInvalidGzip = fmt.Errorf("%w: invalid gzip data", service.ErrInvalidInput)
