// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Entry is a raw value held by a [KVStore].
type Entry struct {
	Value []byte

	// ExpiresAt is the moment the entry becomes eligible for purging. The
	// zero value means the entry never expires.
	ExpiresAt time.Time
}

// Expired reports whether the entry has an expiry that is not after now.
func (e Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// KVStore is a key-value store with explicit expiry. Get does not hide
// expired entries; they stay readable until PurgeExpired removes them.
type KVStore interface {
	// Get returns the entry stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (Entry, error)

	// Put stores e under key, replacing any previous entry.
	Put(ctx context.Context, key string, e Entry) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// PurgeExpired removes every entry whose expiry is not after now and
	// returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// File is a single named blob of an upload received by the node.
type File struct {
	Name string
	Data []byte
}

// ContentStore keeps the uploaded vaults of the storage node.
type ContentStore interface {
	// Put stores files together with the reserved owner and preview records
	// and returns the content-derived root. Storing identical content twice
	// yields the same root.
	Put(ctx context.Context, owner, preview string, files []File) (string, error)

	// List returns the keys stored under root: file keys in upload order,
	// followed by the reserved keys.
	List(ctx context.Context, root string) ([]string, error)

	// Get returns the bytes stored at root/key.
	Get(ctx context.Context, root, key string) ([]byte, error)
}
