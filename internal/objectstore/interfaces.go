// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package objectstore keeps design images in an S3-compatible bucket
// (Cloudflare R2 in production, MinIO or any S3 endpoint elsewhere).
package objectstore

import (
	"context"
	"time"

	"github.com/MKhiriev/go-design-gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/objectstore_mock.go -package=mock

// Object is one image to store.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
	Metadata    map[string]string
}

// ObjectStore is the image bucket.
type ObjectStore interface {
	Put(ctx context.Context, object Object) error
	Delete(ctx context.Context, key string) error
	// Exists reports whether key is present. Only a definite "not found"
	// yields false without error.
	Exists(ctx context.Context, key string) (bool, error)
	// PresignPut returns a URL accepting one PUT of key until the returned time.
	PresignPut(ctx context.Context, key, contentType string) (string, time.Time, error)
	List(ctx context.Context, prefix string, limit int32) ([]models.ObjectInfo, error)
	// PublicURL is where key is served from.
	PublicURL(key string) string
}
