// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// Credential is the self-describing hashed form of a secret
// (algorithm, cost, salt and digest in one string). It is safe to persist
// and opaque to callers.
type Credential string

// PasswordHasher turns plaintext secrets into credentials and checks
// secrets against them. It performs no I/O.
type PasswordHasher interface {
	// Hash derives a credential with a fresh random salt, so two calls with
	// the same secret return different credentials.
	Hash(secret string) (Credential, error)

	// Verify reports whether secret matches credential. The comparison is
	// constant time. A malformed credential yields false.
	Verify(secret string, credential Credential) bool
}
