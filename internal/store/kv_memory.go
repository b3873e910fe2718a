// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"
)

// memoryKV is an in-process [KVStore]. It is safe for concurrent use.
type memoryKV struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryKV returns an empty in-memory [KVStore].
func NewMemoryKV() KVStore {
	return &memoryKV{entries: make(map[string]Entry)}
}

func (m *memoryKV) Get(ctx context.Context, key string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	e.Value = bytes.Clone(e.Value)
	return e, nil
}

func (m *memoryKV) Put(ctx context.Context, key string, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e.Value = bytes.Clone(e.Value)
	m.entries[key] = e
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *memoryKV) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for k, e := range m.entries {
		if e.Expired(now) {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}
