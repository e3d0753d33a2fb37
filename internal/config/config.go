// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-todo-server application.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listening and HTTP transport settings. Its variables are
	// not prefixed so that the conventional PORT variable is honoured.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and logging.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor used when hashing user passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ConnectAttempts bounds how many times a transient connection failure
	// is retried at startup.
	// Env: STORAGE_DB_CONNECT_ATTEMPTS
	ConnectAttempts uint `env:"CONNECT_ATTEMPTS"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// Host is the interface to bind to. Empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"SERVER_HOST"`

	// PublicDir is the directory static assets and index.html are served from.
	// Env: SERVER_PUBLIC_DIR
	PublicDir string `env:"SERVER_PUBLIC_DIR"`

	// RequestTimeout bounds reading a request, writing a response and the
	// graceful shutdown window.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of JSON request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES"`

	// CORSOrigins lists origins allowed to call the API from a browser.
	// CORS handling is disabled when empty.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"SERVER_CORS_ORIGINS"`
}

// Address returns the host:port pair the server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GetStructuredConfig loads, merges, and validates the configuration from
// environment variables, command-line flags, the optional JSON file, and
// built-in defaults, in that order of precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
