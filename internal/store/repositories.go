// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-design-gallery/internal/logger"

// Repositories groups the entity repositories sharing one [Gateway].
type Repositories struct {
	Users     UserRepository
	Designs   DesignRepository
	Favorites FavoriteRepository
	Analytics AnalyticsRepository
}

// NewRepositories builds every repository on top of executor. The
// classificator decides which executor failures count as unique-key
// conflicts.
func NewRepositories(executor Executor, classificator ErrorClassificator, logger *logger.Logger) *Repositories {
	gateway := NewGateway(executor, classificator, logger)

	return &Repositories{
		Users:     NewUserRepository(gateway, logger),
		Designs:   NewDesignRepository(gateway, logger),
		Favorites: NewFavoriteRepository(gateway, logger),
		Analytics: NewAnalyticsRepository(gateway, logger),
	}
}
