// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the verified identity derived from a request's bearer token.
// It lives for a single request and is never persisted.
type Principal struct {
	ID      int64  `json:"id"`
	Name    string `json:"username"`
	IsAdmin bool   `json:"is_admin"`
}
