// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrUnauthenticated means no valid proof of identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the identity is valid but lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidToken is the only error Verify reports to callers.
	ErrInvalidToken = errors.New("invalid token")

	ErrEmptySignKey = errors.New("token sign key is empty")
	ErrInvalidTTL   = errors.New("token ttl must not be zero")
)
