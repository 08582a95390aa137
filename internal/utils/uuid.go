// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered ids for trace ids and object keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to v4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ShortHex returns the first n hex digits of a random UUID, n ≤ 32.
func (g *UUIDGenerator) ShortHex(n int) string {
	id := uuid.New()
	s := hex.EncodeToString(id[:])
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
