// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"time"

	"github.com/MKhiriev/go-design-gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

// TokenCodec creates and verifies signed, expiring identity tokens.
type TokenCodec interface {
	// Issue signs a token for principal valid for ttl. A negative ttl yields
	// an already expired token.
	Issue(principal models.Principal, ttl time.Duration) (string, error)

	// Verify checks signature, issuer and expiry and returns the embedded
	// principal. Every failure is reported as ErrInvalidToken.
	Verify(ctx context.Context, token string) (models.Principal, error)
}

// Guard derives the request principal from the Authorization header and
// gates admin-only operations.
type Guard interface {
	// Authenticate expects "Bearer <token>". Any failure is ErrUnauthenticated.
	Authenticate(ctx context.Context, rawHeader string) (models.Principal, error)

	// RequireAdmin passes admins through and fails others with ErrForbidden.
	RequireAdmin(principal models.Principal) (models.Principal, error)
}
