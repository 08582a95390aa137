// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// design gallery server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token parameters, password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the relational store and the image
	// object store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Upload limits accepted image uploads.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Pagination bounds list endpoints.
	Pagination Pagination `envPrefix:"PAGINATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control identity
// tokens, password hashing and versioning.
type App struct {
	// Name is the human readable application name shown by the info endpoints.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment is a free-form deployment label ("development", "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Debug switches the global log level to debug.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// TokenSignKey is the HMAC key used to sign and verify identity tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every verification.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an identity token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor used for new credentials.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational store settings.
	DB DB `envPrefix:"DB_"`

	// Objects holds the S3-compatible object store settings.
	Objects Objects `envPrefix:"OBJECTS_"`
}

// Supported values of DB.Driver.
const (
	DriverD1     = "d1"
	DriverSQLite = "sqlite"
)

// DB holds connection settings for the relational store.
type DB struct {
	// Driver selects the executor: "d1" for the remote SQL-over-HTTP store
	// or "sqlite" for a local database file.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// AccountID is the account owning the remote database.
	// Env: STORAGE_DB_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// DatabaseID identifies the remote database.
	// Env: STORAGE_DB_DATABASE_ID
	DatabaseID string `env:"DATABASE_ID"`

	// APIToken is the bearer token for the remote query endpoint.
	// Env: STORAGE_DB_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// BaseURL is the remote API root.
	// Env: STORAGE_DB_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// DSN is the sqlite data source name used with the "sqlite" driver.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// RequestTimeout bounds a single remote query.
	// Env: STORAGE_DB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Objects holds settings for the S3-compatible image bucket.
type Objects struct {
	// Endpoint overrides the S3 endpoint. When empty and AccountID is set,
	// the R2 endpoint for that account is used.
	// Env: STORAGE_OBJECTS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccountID is the R2 account identifier.
	// Env: STORAGE_OBJECTS_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// Region is the signing region ("auto" for R2).
	// Env: STORAGE_OBJECTS_REGION
	Region string `env:"REGION"`

	// AccessKeyID and SecretAccessKey are static bucket credentials.
	// Env: STORAGE_OBJECTS_ACCESS_KEY_ID, STORAGE_OBJECTS_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// Bucket is the bucket holding design images.
	// Env: STORAGE_OBJECTS_BUCKET
	Bucket string `env:"BUCKET"`

	// PublicURL is the public base URL images are served from.
	// Env: STORAGE_OBJECTS_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// PresignExpiry is the lifetime of presigned upload URLs.
	// Env: STORAGE_OBJECTS_PRESIGN_EXPIRY
	PresignExpiry time.Duration `env:"PRESIGN_EXPIRY"`
}

// Upload limits image uploads.
type Upload struct {
	// MaxFileSize is the largest accepted upload in bytes.
	// Env: UPLOAD_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// AllowedTypes lists accepted MIME types.
	// Env: UPLOAD_ALLOWED_TYPES (comma separated)
	AllowedTypes []string `env:"ALLOWED_TYPES" envSeparator:","`
}

// Pagination bounds list endpoints.
type Pagination struct {
	// DefaultPageSize is used when a request omits per_page.
	// Env: PAGINATION_DEFAULT_PAGE_SIZE
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE"`

	// MaxPageSize caps per_page.
	// Env: PAGINATION_MAX_PAGE_SIZE
	MaxPageSize int `env:"MAX_PAGE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
