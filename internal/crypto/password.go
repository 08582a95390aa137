// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// maxSecretLength is the bcrypt input limit.
const maxSecretLength = 72

type bcryptHasher struct {
	cost   int
	logger *logger.Logger
}

// NewPasswordHasher returns a bcrypt backed [PasswordHasher]. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int, logger *logger.Logger) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		cost:   cost,
		logger: logger,
	}
}

func (h *bcryptHasher) Hash(secret string) (Credential, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if len(secret) > maxSecretLength {
		return "", ErrSecretTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return Credential(hash), nil
}

func (h *bcryptHasher) Verify(secret string, credential Credential) bool {
	if len(secret) > maxSecretLength {
		// bcrypt only reads the first 72 bytes, so a longer secret can never
		// be the one that was hashed; compare anyway to keep timing flat
		_ = bcrypt.CompareHashAndPassword([]byte(credential), []byte(secret[:maxSecretLength]))
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(credential), []byte(secret))
	switch {
	case err == nil:
		return true
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false
	default:
		// the credential itself is unusable: log the anomaly, never the secret
		h.logger.Warn().Err(err).Str("func", "bcryptHasher.Verify").Msg("malformed stored credential")
		return false
	}
}
