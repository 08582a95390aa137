// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the design gallery.
//
// [Gateway] offers generic CRUD, lookup, listing, counting and increment
// primitives over allow-listed tables. It runs every statement through an
// [Executor]: the remote SQL-over-HTTP client in package adapter or the
// local sqlite executor in this package. The gateway is the single place
// where executor failures become [ErrConflict] or [ErrStorageUnavailable].
// It never retries: writes to the remote store are not idempotent.
//
// Typed repositories for users, designs, favorites and analytics sit on top
// of the gateway and translate rows into models.
package store
