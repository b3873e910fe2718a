// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Record key prefixes. The full key is the prefix followed by the address.
const (
	VaultRecordPrefix  = "vaultRoot_"
	AddressCachePrefix = "ensCache_"
)

// Typed is a JSON-encoded view of a [KVStore] restricted to keys starting
// with a fixed prefix.
type Typed[V any] struct {
	kv     KVStore
	prefix string
}

// NewTyped returns a typed view of kv for keys starting with prefix.
func NewTyped[V any](kv KVStore, prefix string) *Typed[V] {
	return &Typed[V]{kv: kv, prefix: prefix}
}

// Key returns the full store key of id.
func (t *Typed[V]) Key(id string) string {
	return t.prefix + id
}

// Get decodes the value stored for id. Missing ids return [ErrKeyNotFound].
// The returned expiry is zero for values stored without one.
func (t *Typed[V]) Get(ctx context.Context, id string) (V, time.Time, error) {
	var v V

	e, err := t.kv.Get(ctx, t.Key(id))
	if err != nil {
		return v, time.Time{}, err
	}

	if err = json.Unmarshal(e.Value, &v); err != nil {
		return v, time.Time{}, fmt.Errorf("%w: %s: %w", ErrDecodingValue, t.Key(id), err)
	}

	return v, e.ExpiresAt, nil
}

// Put encodes v and stores it for id. A zero expiresAt keeps the value
// until it is overwritten or deleted.
func (t *Typed[V]) Put(ctx context.Context, id string, v V, expiresAt time.Time) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding value for %s: %w", t.Key(id), err)
	}

	return t.kv.Put(ctx, t.Key(id), Entry{Value: b, ExpiresAt: expiresAt})
}

// Delete removes the value stored for id.
func (t *Typed[V]) Delete(ctx context.Context, id string) error {
	return t.kv.Delete(ctx, t.Key(id))
}
