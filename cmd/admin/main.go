// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command admin creates the gallery administrator or resets its password.
//
// The username comes from ADMIN_USERNAME (default "admin") and the password
// from ADMIN_PASSWORD. Without ADMIN_PASSWORD the credentials are asked for
// on the terminal. Store settings are read the same way the server reads them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-design-gallery/internal/adapter"
	"github.com/MKhiriev/go-design-gallery/internal/auth"
	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/crypto"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/service"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/internal/tui"
	"github.com/MKhiriev/go-design-gallery/models"
)

func main() {
	log := logger.NewLogger("design-gallery-admin")

	adminCfg, err := config.GetAdminConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting admin configs")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.Debug)

	credentials := models.UserCreate{Username: adminCfg.Username, Password: adminCfg.Password}
	if credentials.Password == "" {
		credentials, err = tui.PromptCredentials(adminCfg.Username)
		if errors.Is(err, tui.ErrUserQuit) {
			fmt.Println("Cancelled.")
			os.Exit(1)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("error reading credentials")
		}
	}

	ctx := context.Background()

	executor, closeExecutor, err := adapter.NewExecutor(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store executor")
	}
	defer closeExecutor()

	tokens, err := auth.NewTokenCodec(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}

	repos := store.NewRepositories(executor, store.NewSQLiteErrorClassifier(), log)
	users := service.NewUserValidationService().Wrap(
		service.NewUserService(repos.Users, crypto.NewPasswordHasher(cfg.App.PasswordHashCost, log), tokens, cfg.App, log),
	)

	user, created, err := users.EnsureAdmin(ctx, credentials.Username, credentials.Password)
	if err != nil {
		log.Err(err).Msg("error ensuring admin account")
		closeExecutor()
		os.Exit(1)
	}

	if created {
		fmt.Printf("Admin user %q created (id %d).\n", user.Username, user.ID)
	} else {
		fmt.Printf("Admin user %q updated: password reset, admin and approved flags set.\n", user.Username)
	}
}
