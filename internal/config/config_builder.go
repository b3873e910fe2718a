// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
)

// Defaults applied when no source sets a value.
const (
	DefaultStorageAddress     = "http://localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultShareHost          = "https://vaults.art"
	DefaultNameCacheTTL       = 6 * time.Minute
	DefaultColumns            = 3
	DefaultDSN                = "vault.db"
	DefaultCacheSweepInterval = 10 * time.Minute
	DefaultHTTPAddress        = "localhost:8080"
	DefaultBinaryDataDir      = "data"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withFile parses the config file named by an earlier source. The first
// source naming a file wins, matching the merge order.
func (b *configBuilder) withFile() *configBuilder {
	if b.err != nil {
		return b
	}

	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}
	if path == "" {
		return b
	}

	parse := parseJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = parseTOML
	}

	fileCfg, err := parse(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ShareHost:    DefaultShareHost,
			NameCacheTTL: DefaultNameCacheTTL,
			Columns:      DefaultColumns,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{BinaryDataDir: DefaultBinaryDataDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			StorageAddress: DefaultStorageAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			CacheSweepInterval: DefaultCacheSweepInterval,
		},
	}
}
