// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/store"
)

// NewExecutor opens the store selected by cfg.Driver and returns it with a
// release func. The local sqlite store is migrated on open; the remote store
// is migrated out of band.
func NewExecutor(ctx context.Context, cfg config.DB, log *logger.Logger) (store.Executor, func(), error) {
	switch cfg.Driver {
	case config.DriverD1:
		executor, err := NewD1Executor(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return executor, func() {}, nil
	case config.DriverSQLite:
		db, err := store.NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
