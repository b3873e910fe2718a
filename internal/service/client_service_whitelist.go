// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/models"
)

type clientWhitelistService struct {
	records *store.Typed[models.UserVaultRecord]

	logger *logger.Logger
}

// NewClientWhitelistService returns the per-address vault record store.
// Records never expire; the last write wins.
func NewClientWhitelistService(kv store.KVStore, logger *logger.Logger) ClientWhitelistService {
	return &clientWhitelistService{
		records: store.NewTyped[models.UserVaultRecord](kv, store.VaultRecordPrefix),
		logger:  logger,
	}
}

// Load implements [vault.RecordStore].
func (w *clientWhitelistService) Load(ctx context.Context, address string) (models.UserVaultRecord, bool, error) {
	id := utils.NormalizeAddress(address)
	if id == "" {
		return models.UserVaultRecord{}, false, nil
	}

	record, _, err := w.records.Get(ctx, id)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.UserVaultRecord{}, false, nil
	}
	if err != nil {
		return models.UserVaultRecord{}, false, fmt.Errorf("load vault record of %s: %w", id, err)
	}

	record.Address = id
	return record, true, nil
}

// Save implements [vault.RecordStore].
func (w *clientWhitelistService) Save(ctx context.Context, record models.UserVaultRecord) error {
	id := utils.NormalizeAddress(record.Address)
	if id == "" {
		return fmt.Errorf("save vault record: %w", ErrNoOwnerProvided)
	}

	whitelist := make([]string, 0, len(record.Whitelist))
	for _, a := range record.Whitelist {
		if a = strings.TrimSpace(a); a != "" {
			whitelist = append(whitelist, a)
		}
	}
	record.Whitelist = whitelist

	if err := w.records.Put(ctx, id, record, time.Time{}); err != nil {
		return fmt.Errorf("save vault record of %s: %w", id, err)
	}

	w.logger.Debug().
		Str("func", "clientWhitelistService.Save").
		Str("address", id).
		Str("root", record.Root.String()).
		Int("whitelist", len(record.Whitelist)).
		Msg("vault record saved")

	return nil
}
