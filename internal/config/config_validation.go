// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/ethereum/go-ethereum/common"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !isBaseURL(cfg.Adapter.StorageAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.NameServiceAddress != "" && !isBaseURL(cfg.Adapter.NameServiceAddress) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.CacheSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.ShareHost == "" || cfg.App.NameCacheTTL <= 0 || cfg.App.Columns < 1 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.WalletAddress != "" && !common.IsHexAddress(cfg.App.WalletAddress) {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *NodeConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Files.BinaryDataDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func isBaseURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
