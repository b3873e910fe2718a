// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// NodeServer holds the listen settings of the storage node.
type NodeServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// NodeFiles holds the content directory of the storage node.
type NodeFiles struct {
	BinaryDataDir string
}

// NodeConfig is the storage node view of [StructuredConfig].
type NodeConfig struct {
	Server NodeServer
	Files  NodeFiles
}

// GetNodeConfig builds and validates the node config view.
func GetNodeConfig() (*NodeConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	nodeCfg := newNodeConfig(cfg)
	return nodeCfg, nodeCfg.validate()
}

func newNodeConfig(cfg *StructuredConfig) *NodeConfig {
	return &NodeConfig{
		Server: NodeServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Files: NodeFiles{
			BinaryDataDir: cfg.Storage.Files.BinaryDataDir,
		},
	}
}
