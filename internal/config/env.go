// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a T from the environment through its `env`, `envPrefix`
// and `envDefault` tags. Used for [StructuredConfig] and [Admin].
func parseEnv[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
