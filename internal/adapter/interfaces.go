// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote SQL-over-HTTP store.
//
// [D1Executor] implements store.Executor: every statement is one POST of
// {"sql", "params"} to the account's database query endpoint, authenticated
// with a bearer API token. The response envelope is decoded with json.Number
// preserved so integer columns survive the round trip.
//
// Transport failures and non-2xx statuses are mapped by mapHTTPError to the
// sentinel values in errors.go; an envelope with success=false is turned into
// [ErrQueryRejected] carrying the remote messages, which the store's error
// classifier inspects for uniqueness violations.
package adapter

import (
	"github.com/MKhiriev/go-design-gallery/internal/store"
)

var _ store.Executor = (*D1Executor)(nil)
