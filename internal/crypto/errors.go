// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptySecret is returned when hashing an empty secret.
	ErrEmptySecret = errors.New("secret is empty")
	// ErrSecretTooLong is returned for secrets bcrypt cannot digest in full.
	ErrSecretTooLong = errors.New("secret is longer than 72 bytes")
)
