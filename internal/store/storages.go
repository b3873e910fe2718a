// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
)

// NodeStorages groups the stores of the storage node.
type NodeStorages struct {
	Content ContentStore
}

// NewNodeStorages opens the content directory named by cfg.
func NewNodeStorages(cfg config.NodeFiles, logger *logger.Logger) (*NodeStorages, error) {
	content, err := NewFileContentStore(cfg.BinaryDataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("content store: %w", err)
	}

	return &NodeStorages{Content: content}, nil
}
