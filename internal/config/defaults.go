// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultD1BaseURL    = "https://api.cloudflare.com/client/v4"
	DefaultTokenIssuer  = "design-gallery"
	DefaultObjectRegion = "auto"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:             "Design Gallery API",
			Version:          "1.0.0",
			Environment:      "development",
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    7 * 24 * time.Hour,
			PasswordHashCost: bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				Driver:         DriverD1,
				BaseURL:        DefaultD1BaseURL,
				RequestTimeout: 30 * time.Second,
			},
			Objects: Objects{
				Region:        DefaultObjectRegion,
				PresignExpiry: time.Hour,
			},
		},
		Upload: Upload{
			MaxFileSize:  10 << 20,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		},
		Pagination: Pagination{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}
