// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the on-disk layout of a config file. The same struct is
// decoded from JSON and from TOML.
type fileConfig struct {
	App struct {
		ShareHost     string   `json:"share_host" toml:"share_host"`
		WalletAddress string   `json:"wallet_address" toml:"wallet_address"`
		NameCacheTTL  Duration `json:"name_cache_ttl" toml:"name_cache_ttl"`
		Columns       int      `json:"columns" toml:"columns"`
		OpenVault     string   `json:"open_vault" toml:"open_vault"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`

		Files struct {
			BinaryDataDir string `json:"binary_data_dir" toml:"binary_data_dir"`
		} `json:"files,omitempty" toml:"files"`
	} `json:"storage,omitempty" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server,omitempty" toml:"server"`

	Adapter struct {
		StorageAddress     string   `json:"storage_address" toml:"storage_address"`
		NameServiceAddress string   `json:"name_service_address" toml:"name_service_address"`
		RequestTimeout     Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Workers struct {
		CacheSweepInterval Duration `json:"cache_sweep_interval" toml:"cache_sweep_interval"`
	} `json:"workers,omitempty" toml:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.structured(), nil
}

func (f *fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ShareHost:     f.App.ShareHost,
			WalletAddress: f.App.WalletAddress,
			NameCacheTTL:  time.Duration(f.App.NameCacheTTL),
			Columns:       f.App.Columns,
			OpenVault:     f.App.OpenVault,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
			Files: Files{
				BinaryDataDir: f.Storage.Files.BinaryDataDir,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			StorageAddress:     f.Adapter.StorageAddress,
			NameServiceAddress: f.Adapter.NameServiceAddress,
			RequestTimeout:     time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CacheSweepInterval: time.Duration(f.Workers.CacheSweepInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML, and from integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, which go-toml uses for
// string values.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
