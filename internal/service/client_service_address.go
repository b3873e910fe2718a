// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/models"
)

// DefaultNameCacheTTL is used when no TTL is configured.
const DefaultNameCacheTTL = 6 * time.Minute

type clientAddressService struct {
	names adapter.NameServiceAdapter
	kv    store.KVStore
	cache *store.Typed[models.AddressCacheEntry]
	ttl   time.Duration
	now   func() time.Time

	group singleflight.Group

	logger *logger.Logger
}

// NewClientAddressService returns the address cache. Verified names are kept
// in kv under the [store.AddressCachePrefix] for appCfg.NameCacheTTL.
func NewClientAddressService(names adapter.NameServiceAdapter, kv store.KVStore, appCfg config.ClientApp, logger *logger.Logger) ClientAddressService {
	return newClientAddressService(names, kv, appCfg.NameCacheTTL, time.Now, logger)
}

func newClientAddressService(names adapter.NameServiceAdapter, kv store.KVStore, ttl time.Duration, now func() time.Time, logger *logger.Logger) *clientAddressService {
	if ttl <= 0 {
		ttl = DefaultNameCacheTTL
	}
	return &clientAddressService{
		names:  names,
		kv:     kv,
		cache:  store.NewTyped[models.AddressCacheEntry](kv, store.AddressCachePrefix),
		ttl:    ttl,
		now:    now,
		logger: logger,
	}
}

// Resolve implements [ClientAddressService]. Concurrent calls for one
// address share a single lookup.
func (a *clientAddressService) Resolve(ctx context.Context, address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	id := utils.NormalizeAddress(address)

	if name, ok := a.cached(ctx, id); ok {
		return name
	}

	v, _, _ := a.group.Do(id, func() (any, error) {
		if name, ok := a.cached(ctx, id); ok {
			return name, nil
		}

		name, err := a.lookup(ctx, address)
		if err != nil {
			a.logger.Warn().Err(err).
				Str("func", "clientAddressService.Resolve").
				Str("address", address).
				Msg("falling back to raw address")
			return address, nil
		}

		entry := models.AddressCacheEntry{
			Address:      id,
			ResolvedName: name,
			ExpiresAt:    a.now().Add(a.ttl),
		}
		if err = a.cache.Put(ctx, id, entry, entry.ExpiresAt); err != nil {
			a.logger.Warn().Err(err).
				Str("func", "clientAddressService.Resolve").
				Str("address", address).
				Msg("failed to cache resolved name")
		}
		return name, nil
	})

	return v.(string)
}

// PurgeExpired implements [ClientAddressService].
func (a *clientAddressService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := a.kv.PurgeExpired(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("purge name cache: %w", err)
	}
	return n, nil
}

func (a *clientAddressService) cached(ctx context.Context, id string) (string, bool) {
	entry, _, err := a.cache.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			a.logger.Warn().Err(err).
				Str("func", "clientAddressService.cached").
				Str("address", id).
				Msg("failed to read name cache")
		}
		return "", false
	}
	if !entry.Fresh(a.now()) || entry.ResolvedName == "" {
		return "", false
	}
	return entry.ResolvedName, true
}

// lookup performs the reverse-then-forward round trip and accepts the name
// only when it points back to address.
func (a *clientAddressService) lookup(ctx context.Context, address string) (string, error) {
	name, err := a.names.Reverse(ctx, address)
	if err != nil {
		return "", fmt.Errorf("%w: reverse: %w", ErrNameNotResolved, err)
	}

	forward, err := a.names.Resolve(ctx, name)
	if err != nil {
		return "", fmt.Errorf("%w: forward %s: %w", ErrNameNotResolved, name, err)
	}

	if !utils.SameAddress(forward, address) {
		return "", fmt.Errorf("%w: %s -> %s", ErrNameMismatch, name, forward)
	}

	return name, nil
}
