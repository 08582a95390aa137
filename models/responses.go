// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageResponse is a generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// AppInfo describes the running server.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// CategoryCount is one row of the popular categories breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Activity is one recent catalog event.
type Activity struct {
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	ActivityType string    `json:"activity_type"`
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	TotalUsers        int64           `json:"total_users"`
	TotalDesigns      int64           `json:"total_designs"`
	TotalViews        int64           `json:"total_views"`
	TotalLikes        int64           `json:"total_likes"`
	ActiveUsers       int64           `json:"active_users"`
	FeaturedDesigns   int64           `json:"featured_designs"`
	PendingUsers      int64           `json:"pending_users"`
	PopularCategories []CategoryCount `json:"popular_categories"`
	RecentActivity    []Activity      `json:"recent_activity"`
}
