// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/adapter"
	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/crypto"
	"github.com/MKhiriev/go-design-gallery/internal/handler"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/objectstore"
	"github.com/MKhiriev/go-design-gallery/internal/server"
	"github.com/MKhiriev/go-design-gallery/internal/service"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/internal/utils"
	"github.com/MKhiriev/go-design-gallery/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const keySuffixLength = 8

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("design-gallery-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.Debug)

	ctx := context.Background()

	executor, closeExecutor, err := adapter.NewExecutor(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store executor")
	}
	defer closeExecutor()

	objects, err := objectstore.NewS3Store(ctx, cfg.Storage.Objects, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object store")
	}

	tokens, err := auth.NewTokenCodec(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}

	ids := utils.NewUUIDGenerator()
	services, err := service.NewServices(service.Dependencies{
		Repositories: store.NewRepositories(executor, store.NewSQLiteErrorClassifier(), log),
		Objects:      objects,
		Keys: objectstore.NewKeyGenerator(time.Now, func() string {
			return ids.ShortHex(keySuffixLength)
		}),
		Hasher: crypto.NewPasswordHasher(cfg.App.PasswordHashCost, log),
		Tokens: tokens,
		Build:  build,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, auth.NewGuard(tokens), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
