// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// ImageUpload is an image received from an admin.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Category    string
	Body        io.Reader
}

// UploadResult describes a stored image.
type UploadResult struct {
	ObjectKey   string `json:"object_key"`
	ImageURL    string `json:"image_url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"file_size"`
}

// PresignedUpload is a short lived URL the client PUTs the image to.
type PresignedUpload struct {
	UploadURL string    `json:"upload_url"`
	ObjectKey string    `json:"object_key"`
	ImageURL  string    `json:"image_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ObjectInfo is one entry of a bucket listing.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}
