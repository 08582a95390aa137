// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DesignStatusActive marks designs visible in public listings.
const DesignStatusActive = "active"

// Design is a catalog entry backed by one image object.
type Design struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	Category         string  `json:"category"`
	Style            *string `json:"style"`
	Colour           *string `json:"colour"`
	Fabric           *string `json:"fabric"`
	Occasion         *string `json:"occasion"`
	SizeAvailable    *string `json:"size_available"`
	PriceRange       *string `json:"price_range"`
	Tags             *string `json:"tags"`
	DesignerName     *string `json:"designer_name"`
	CollectionName   *string `json:"collection_name"`
	Season           *string `json:"season"`

	// ObjectKey is the image key inside the bucket.
	ObjectKey string `json:"r2_object_key"`
	// ImageURL is derived from ObjectKey and the bucket public URL.
	ImageURL string `json:"image_url"`

	Featured  bool      `json:"featured"`
	Status    string    `json:"status"`
	ViewCount int64     `json:"view_count"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DesignAttributes are the descriptive fields shared by create and update.
type DesignAttributes struct {
	Description      *string `json:"description,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`
	LongDescription  *string `json:"long_description,omitempty"`
	Style            *string `json:"style,omitempty"`
	Colour           *string `json:"colour,omitempty"`
	Fabric           *string `json:"fabric,omitempty"`
	Occasion         *string `json:"occasion,omitempty"`
	SizeAvailable    *string `json:"size_available,omitempty"`
	PriceRange       *string `json:"price_range,omitempty"`
	Tags             *string `json:"tags,omitempty"`
	DesignerName     *string `json:"designer_name,omitempty"`
	CollectionName   *string `json:"collection_name,omitempty"`
	Season           *string `json:"season,omitempty"`
}

// DesignCreate is the admin payload for a new design.
type DesignCreate struct {
	DesignAttributes
	Title     string `json:"title"`
	Category  string `json:"category"`
	ObjectKey string `json:"r2_object_key"`
	Featured  bool   `json:"featured"`
}

// DesignUpdate is a partial admin update. Nil fields stay untouched.
type DesignUpdate struct {
	DesignAttributes
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// DesignFilter holds the optional listing filters plus a free-text term.
type DesignFilter struct {
	Search         string
	Category       *string
	Style          *string
	Colour         *string
	Fabric         *string
	Occasion       *string
	Featured       *bool
	DesignerName   *string
	CollectionName *string
	Season         *string
}
