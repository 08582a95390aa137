// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/golang-jwt/jwt/v5"
)

// identityClaims is the token payload. Expiry, issue time and issuer travel
// in the registered claims.
type identityClaims struct {
	SubjectID   int64  `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	IsAdmin     bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type jwtCodec struct {
	signKey []byte
	issuer  string
	now     func() time.Time

	logger *logger.Logger
}

// NewTokenCodec builds an HS256 [TokenCodec] from the immutable app settings.
func NewTokenCodec(cfg config.App, logger *logger.Logger) (TokenCodec, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrEmptySignKey
	}

	return &jwtCodec{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		now:     time.Now,
		logger:  logger,
	}, nil
}

func (c *jwtCodec) Issue(principal models.Principal, ttl time.Duration) (string, error) {
	if ttl == 0 {
		return "", ErrInvalidTTL
	}

	now := c.now()
	claims := identityClaims{
		SubjectID:   principal.ID,
		SubjectName: principal.Name,
		IsAdmin:     principal.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

func (c *jwtCodec) Verify(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	claims := &identityClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.signKey, nil
	}, opts...)
	if err != nil {
		// the reason is for operators only; callers always see ErrInvalidToken
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Info().Str("func", "jwtCodec.Verify").Msg("token expired")
		} else {
			log.Warn().Err(err).Str("func", "jwtCodec.Verify").Msg("malformed or forged token")
		}
		return models.Principal{}, ErrInvalidToken
	}

	if claims.SubjectID <= 0 || claims.SubjectName == "" {
		log.Warn().Str("func", "jwtCodec.Verify").Msg("token without subject")
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{
		ID:      claims.SubjectID,
		Name:    claims.SubjectName,
		IsAdmin: claims.IsAdmin,
	}, nil
}
