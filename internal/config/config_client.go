// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ShareHost is the host share links are built under.
	ShareHost string
	// WalletAddress is the address the wallet connects as; empty means no
	// wallet.
	WalletAddress string
	// NameCacheTTL is the lifetime of a cached name resolution.
	NameCacheTTL time.Duration
	// Columns is the gallery column count.
	Columns int
	// OpenVault is a vault root or share link to open at start.
	OpenVault string
}

// ClientAdapter holds the outbound endpoints used by the client.
type ClientAdapter struct {
	// StorageAddress is the storage service base URL.
	StorageAddress string
	// NameServiceAddress is the name service base URL, empty when disabled.
	NameServiceAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the record database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CacheSweepInterval defines how often expired name cache entries are
	// purged.
	CacheSweepInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains outbound endpoints and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ShareHost:     cfg.App.ShareHost,
			WalletAddress: cfg.App.WalletAddress,
			NameCacheTTL:  cfg.App.NameCacheTTL,
			Columns:       cfg.App.Columns,
			OpenVault:     cfg.App.OpenVault,
		},
		Adapter: ClientAdapter{
			StorageAddress:     cfg.Adapter.StorageAddress,
			NameServiceAddress: cfg.Adapter.NameServiceAddress,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{CacheSweepInterval: cfg.Workers.CacheSweepInterval},
	}
}
