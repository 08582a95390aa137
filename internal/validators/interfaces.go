// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services' business logic.
//
// Every validator implements [Validator]: Validate dispatches on the dynamic
// type of the value and optionally restricts the check to the named fields.
// Without field names a sensible default set is validated. All failures wrap
// [ErrInvalidInput] so callers can map them to a single error kind.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
