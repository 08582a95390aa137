// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("remote store unauthorized")
	ErrForbidden           = errors.New("remote store forbidden")
	ErrNotFound            = errors.New("remote database not found")
	ErrTooManyRequests     = errors.New("remote store rate limited")
	ErrInternalServerError = errors.New("remote store internal error")
	ErrBadGateway          = errors.New("remote store bad gateway")

	// ErrQueryRejected is returned when the store answered with success=false.
	ErrQueryRejected = errors.New("query rejected by remote store")

	// ErrBadResponse is returned when the response body is not a valid envelope.
	ErrBadResponse = errors.New("malformed remote store response")

	ErrRequestFailed = errors.New("remote store request failed")
)
