// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// vault client and the development storage node. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional config file and built-in
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client application settings: share host, wallet identity,
	// name cache lifetime and gallery layout.
	App App `envPrefix:"APP_"`

	// Storage holds the local record database and the node's content
	// directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the node's listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound endpoints used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a config file. Files ending in .toml
	// are parsed as TOML, anything else as JSON.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local record database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings of the node's content store.
	Files Files `envPrefix:"FILES_"`
}

// App holds client application settings.
type App struct {
	// ShareHost is the host shareable vault links are built under
	// (e.g. "https://vaults.art").
	// Env: APP_SHARE_HOST
	ShareHost string `env:"SHARE_HOST"`

	// WalletAddress is the account address the wallet connects as. Empty
	// means no wallet.
	// Env: APP_WALLET_ADDRESS
	WalletAddress string `env:"WALLET_ADDRESS"`

	// NameCacheTTL is how long a verified name resolution is served from
	// cache (e.g. "6m").
	// Env: APP_NAME_CACHE_TTL
	NameCacheTTL time.Duration `env:"NAME_CACHE_TTL"`

	// Columns is the number of gallery columns.
	// Env: APP_COLUMNS
	Columns int `env:"COLUMNS"`

	// OpenVault is a vault root or share link to open at start.
	// Env: APP_OPEN_VAULT
	OpenVault string `env:"OPEN_VAULT"`
}

// Server holds network and timeout settings of the storage node.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local record database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "vault.db" or
	// "file:vault.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the node's content store.
type Files struct {
	// BinaryDataDir is the directory where uploaded vault content is kept.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`
}

// Adapter holds the endpoints of the external services the client talks to.
type Adapter struct {
	// StorageAddress is the base URL of the storage service serving the
	// upload, listing and item endpoints.
	// Env: ADAPTER_STORAGE_ADDRESS
	StorageAddress string `env:"STORAGE_ADDRESS"`

	// NameServiceAddress is the base URL of the name-resolution service.
	// Empty disables name resolution.
	// Env: ADAPTER_NAME_SERVICE_ADDRESS
	NameServiceAddress string `env:"NAME_SERVICE_ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CacheSweepInterval is the period of the expired name-cache sweeper.
	// Env: WORKERS_CACHE_SWEEP_INTERVAL
	CacheSweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first source that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
