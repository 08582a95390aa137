// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the gallery's REST API on chi.
//
// Middlewares attach a trace id and request-scoped logger, write access
// logs, decompress gzip bodies, authenticate bearer tokens and gate admin
// routes. Handlers decode input, call the service layer and map service
// errors to status codes in one place (errors_mapper.go).
package http
