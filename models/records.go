// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// UserVaultRecord is the persisted pointer from an owning address to the last
// vault it secured, together with that vault's whitelist.
type UserVaultRecord struct {
	// Address is the owning address. It is the record key and is not part of
	// the stored value.
	Address string `json:"-"`

	Root      ContentID `json:"root"`
	Whitelist []string  `json:"whitelist"`
}

// AddressCacheEntry is a verified name resolution for an address.
type AddressCacheEntry struct {
	Address      string
	ResolvedName string

	// ExpiresAt is the moment after which the entry must be re-resolved.
	ExpiresAt time.Time
}

type addressCacheEntryJSON struct {
	Timestamp int64  `json:"timestamp"`
	Name      string `json:"name"`
}

// MarshalJSON stores the entry as {timestamp, name} where timestamp is the
// expiry in unix milliseconds.
func (e AddressCacheEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressCacheEntryJSON{Timestamp: e.ExpiresAt.UnixMilli(), Name: e.ResolvedName})
}

// UnmarshalJSON is the inverse of [AddressCacheEntry.MarshalJSON]. Address is
// not part of the stored value and is left untouched.
func (e *AddressCacheEntry) UnmarshalJSON(b []byte) error {
	var v addressCacheEntryJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	e.ResolvedName = v.Name
	e.ExpiresAt = time.UnixMilli(v.Timestamp)
	return nil
}

// Fresh reports whether the entry may still be served at now.
func (e AddressCacheEntry) Fresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// VaultListing is the decoded remote content of a secured root.
type VaultListing struct {
	Root ContentID

	// Keys are the file keys in listing order, reserved keys removed.
	Keys []string

	// Owner is the content of the reserved owner record.
	Owner string

	// PreviewKey is the content of the reserved preview record, or
	// [PlaceholderKey] when the owner chose no cover.
	PreviewKey string
}

// Items converts the listing keys into remote vault items.
func (l VaultListing) Items() []VaultItem {
	items := make([]VaultItem, 0, len(l.Keys))
	for _, k := range l.Keys {
		items = append(items, RemoteItem{Root: l.Root, ItemKey: k})
	}
	return items
}

// UploadRequest is the multipart payload sent to the storage upload endpoint.
type UploadRequest struct {
	// Owner is sent as the "username" field.
	Owner string

	// PreviewKey is sent as the "preview" field; [PlaceholderKey] means no
	// preview.
	PreviewKey string

	// Files are sent as repeated "file" parts.
	Files []LocalItem
}
