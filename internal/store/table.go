// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-design-gallery/internal/query"

// Table names a table and its column allow-list. Every identifier the
// gateway renders is checked against Columns.
type Table struct {
	Name    string
	Columns query.Columns
}

// Validate returns ErrUnknownColumn for the first column not allow-listed.
func (t Table) Validate(columns ...string) error {
	for _, c := range columns {
		if !t.Columns.Contains(c) {
			return &ColumnError{Table: t.Name, Column: c}
		}
	}
	return nil
}

// ColumnError names the offending column. It matches ErrUnknownColumn.
type ColumnError struct {
	Table  string
	Column string
}

func (e *ColumnError) Error() string {
	return "unknown column " + e.Table + "." + e.Column
}

func (e *ColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}

var (
	UsersTable = Table{
		Name: "users",
		Columns: query.Columns{
			"id", "username", "password_hash", "is_admin", "is_approved", "created_at",
		},
	}

	DesignsTable = Table{
		Name: "designs",
		Columns: query.Columns{
			"id", "title", "description", "short_description", "long_description",
			"r2_object_key", "category", "style", "colour", "fabric", "occasion",
			"size_available", "price_range", "tags", "featured", "status",
			"view_count", "like_count", "designer_name", "collection_name", "season",
			"created_at", "updated_at",
		},
	}

	FavoritesTable = Table{
		Name: "user_favorites",
		Columns: query.Columns{
			"id", "user_id", "design_id", "created_at",
		},
	}
)
