// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// buy-from-me server. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables (optionally
// seeded from a .env file), an optional JSON file and built-in defaults.
//
// The resulting value is treated as immutable: constructors copy the groups
// they need and nothing reads configuration from global state afterwards.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and public URL settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and the image directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the SMTP settings of the verification mail dispatcher.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file whose variables are
	// loaded into the process environment before env parsing.
	// Populated via the DOTENV environment variable or the -env-file flag.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values that control security,
// token lifecycle and the public URLs handed out to clients.
type App struct {
	// TokenSignKey is the HS256 secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of access tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// VerificationTokenDuration is the lifetime of email verification tokens.
	// Env: APP_VERIFICATION_TOKEN_DURATION
	VerificationTokenDuration time.Duration `env:"VERIFICATION_TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor for new password digests.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// BaseURL is the public URL prefix used to build verification links and
	// image URLs (e.g. "http://localhost:8000").
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Version is the semantic version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the image directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme: "postgres://" or "postgresql://"
	// open PostgreSQL via pgx, "sqlite://" or "file:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for uploaded images.
type Files struct {
	// ImagesDir is the directory uploaded images are written to and served
	// from under /static/images/.
	// Env: STORAGE_FILES_IMAGES_DIR
	ImagesDir string `env:"IMAGES_DIR"`

	// MaxUploadSize caps the size in bytes of a multipart upload body.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// MaxImagePixels caps width*height declared by an uploaded image. It is
	// checked before decoding, since a small compressed file can declare a
	// canvas that needs gigabytes of memory.
	// Env: STORAGE_FILES_MAX_IMAGE_PIXELS
	MaxImagePixels int64 `env:"MAX_IMAGE_PIXELS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds SMTP settings for the verification mail dispatcher.
type Mail struct {
	// Host is the SMTP server host name (e.g. "smtp.gmail.com").
	// Env: MAIL_HOST
	Host string `env:"HOST"`

	// Port is the SMTP submission port (e.g. 587).
	// Env: MAIL_PORT
	Port int `env:"PORT"`

	// Username and Password authenticate against the SMTP server.
	// Env: MAIL_USERNAME, MAIL_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// From is the sender address. Defaults to Username when empty.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// Timeout bounds a single dispatch so a slow mail server cannot hold a
	// registration response indefinitely.
	// Env: MAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// InsecureSkipTLS disables STARTTLS. Only meant for local mail catchers.
	// Env: MAIL_INSECURE_SKIP_TLS
	InsecureSkipTLS bool `env:"INSECURE_SKIP_TLS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source with a non-zero field wins):
//  1. Command-line flags
//  2. Environment variables (a .env file, when present, only fills variables
//     that are not already set in the process environment)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
