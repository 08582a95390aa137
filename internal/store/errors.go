// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Gateway errors. Callers match them with [errors.Is]; the underlying
// executor error stays in the chain for logging.
var (
	// ErrStorageUnavailable covers every transport or remote-engine failure
	// that is not a uniqueness violation.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConflict is a uniqueness constraint violation.
	ErrConflict = errors.New("unique constraint violated")

	// ErrUnknownColumn is returned when a statement references a column
	// outside the table allow-list.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrEmptyChangeSet is returned by updates and inserts without columns.
	ErrEmptyChangeSet = errors.New("no changes provided")

	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)

// Repository errors.
var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
)
