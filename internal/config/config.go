// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// trackspense client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client-level settings: the session sealing key, the name of
	// the login view and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API base endpoint and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-level settings.
type App struct {
	// SecretKey seals values written to the session store. Leave empty to
	// store the session in plain text.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// LoginView is the view the client navigates to when the session
	// expires.
	// Env: APP_LOGIN_VIEW
	LoginView string `env:"LOGIN_VIEW"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (":memory:" keeps the session in memory).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the remote API transport.
type Adapter struct {
	// HTTPAddress is the base endpoint every relative API path is resolved
	// against (e.g. "http://localhost:8080/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero means no timeout: a hung
	// request blocks only its own caller.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SessionCheckInterval is how often the session watcher inspects the
	// stored token for expiry.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// Defaults returns the values used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LoginView: "login",
		},
		Storage: Storage{
			DB: DB{DSN: "trackspense.db"},
		},
		Adapter: Adapter{
			HTTPAddress: "http://localhost:8080/api",
		},
		Workers: Workers{
			SessionCheckInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
