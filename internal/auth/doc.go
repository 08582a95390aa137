// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth issues and verifies identity tokens and enforces the
// authenticated and admin gates every protected operation goes through.
//
// A request moves through NoCredential → Authenticated → {Authorized,
// Forbidden}. Each state is request scoped and no transition is retried.
// Every authentication failure surfaces as [ErrUnauthenticated] so callers
// cannot tell a missing header from an expired or forged token.
package auth
