// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Favorite links a user to a design they bookmarked. A pair is unique.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	DesignID  int64     `json:"design_id"`
	CreatedAt time.Time `json:"created_at"`
}
