// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objectstore

import "errors"

var (
	ErrObjectStoreUnavailable = errors.New("object store unavailable")
	ErrInvalidObjectConfig    = errors.New("invalid object store config")
	ErrEmptyKey               = errors.New("empty object key")
)
