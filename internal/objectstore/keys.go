// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objectstore

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	defaultCategory  = "general"
	defaultExtension = "jpg"
)

// KeyGenerator names uploaded images
// "category/YYYY/MM/YYYYMMDD_HHMMSS_<8 hex>.ext" in UTC.
type KeyGenerator struct {
	now    func() time.Time
	suffix func() string
}

// NewKeyGenerator takes the clock and the random suffix source.
func NewKeyGenerator(now func() time.Time, suffix func() string) *KeyGenerator {
	return &KeyGenerator{now: now, suffix: suffix}
}

// Generate keeps the extension of filename, "jpg" when there is none. The
// category becomes one [a-z0-9_-] path segment.
func (g *KeyGenerator) Generate(category, filename string) string {
	category = slug(category)
	if category == "" {
		category = defaultCategory
	}

	ext := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.ToLower(path.Ext(filename)))
	if ext == "" {
		ext = defaultExtension
	}

	now := g.now().UTC()
	return fmt.Sprintf("%s/%s/%s_%s.%s",
		category, now.Format("2006/01"), now.Format("20060102_150405"), g.suffix(), ext)
}

// slug lowercases s and collapses every run of characters outside
// [a-z0-9_-] into a single "-".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
