// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a gallery account. New accounts start unapproved and cannot log in
// until an administrator approves them.
type User struct {
	ID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// PasswordHash is the bcrypt credential. Never serialized.
	PasswordHash string `json:"-"`

	IsAdmin    bool      `json:"is_admin"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// Principal returns the identity the user is issued tokens for.
func (u User) Principal() Principal {
	return Principal{ID: u.ID, Name: u.Username, IsAdmin: u.IsAdmin}
}

// UserCreate is the registration payload.
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdate is a partial admin update. Nil fields stay untouched.
type UserUpdate struct {
	IsApproved *bool `json:"is_approved,omitempty"`
	IsAdmin    *bool `json:"is_admin,omitempty"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	IsApproved *bool
	IsAdmin    *bool
}
