// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Admin holds the credentials the admin bootstrap tool applies. An empty
// Password makes the tool prompt for one.
type Admin struct {
	// Env: ADMIN_USERNAME
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`

	// Env: ADMIN_PASSWORD
	Password string `env:"ADMIN_PASSWORD"`
}

// GetAdminConfig reads [Admin] from the environment.
func GetAdminConfig() (Admin, error) {
	return parseEnv[Admin]()
}
