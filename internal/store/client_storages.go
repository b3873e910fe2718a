// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
)

// ClientStorages groups the client-side stores. The persisted vault
// records and the name cache share the single [KVStore]; services separate
// them by key prefix through [Typed].
type ClientStorages struct {
	// KV is the SQLite-backed key-value store of the record database.
	KV KVStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the [KVStore] over the connection.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KV: NewSQLiteKV(db, logger),
		db: db,
	}, nil
}

// Close releases the database connection.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
