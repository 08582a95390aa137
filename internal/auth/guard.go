// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/models"
)

const bearerScheme = "bearer"

type guard struct {
	codec TokenCodec
}

// NewGuard returns a [Guard] verifying bearer tokens with codec.
func NewGuard(codec TokenCodec) Guard {
	return &guard{codec: codec}
}

func (g *guard) Authenticate(ctx context.Context, rawHeader string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, ok := bearerToken(rawHeader)
	if !ok {
		log.Debug().Str("func", "guard.Authenticate").Msg("missing or malformed authorization header")
		return models.Principal{}, ErrUnauthenticated
	}

	principal, err := g.codec.Verify(ctx, token)
	if err != nil {
		return models.Principal{}, ErrUnauthenticated
	}

	return principal, nil
}

func (g *guard) RequireAdmin(principal models.Principal) (models.Principal, error) {
	if !principal.IsAdmin {
		return models.Principal{}, ErrForbidden
	}

	return principal, nil
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}

	return parts[1], true
}
