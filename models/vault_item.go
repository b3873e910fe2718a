// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Reserved keys written next to the files of every secured vault. They are
// part of the remote listing but never represent an artwork file.
const (
	// ReservedOwnerKey holds the address of the account that secured the vault.
	ReservedOwnerKey = "username"

	// ReservedPreviewKey holds the key of the item chosen as the vault cover.
	ReservedPreviewKey = "preview"

	// PlaceholderKey identifies the synthetic "no cover" tile and doubles as
	// the upload sentinel meaning that no preview was selected.
	PlaceholderKey = "*"
)

// IsReservedKey reports whether key is one of the non-file listing keys.
func IsReservedKey(key string) bool {
	return key == ReservedOwnerKey || key == ReservedPreviewKey
}

// VaultItem is a single tile of a vault. It is a closed union: an item is
// either a [LocalItem] staged on this device or a [RemoteItem] resolved by
// key against a secured root. The two modes cannot be mixed on one value.
type VaultItem interface {
	// Key is the stable identity of the item inside its vault. Local items
	// use their file name, remote items use the listing key.
	Key() string

	isVaultItem()
}

// LocalItem is an unsecured item backed by a live binary handle.
type LocalItem struct {
	// Name is the file name the item is uploaded under.
	Name string

	// Blob gives access to the file content. It is read by the upload
	// pipeline and never mutated.
	Blob Blob
}

// Key implements [VaultItem].
func (l LocalItem) Key() string { return l.Name }

func (LocalItem) isVaultItem() {}

// RemoteItem is a secured item addressed by key under a known root.
type RemoteItem struct {
	Root    ContentID
	ItemKey string
}

// Key implements [VaultItem].
func (r RemoteItem) Key() string { return r.ItemKey }

// Path returns the item path relative to the storage base URL.
func (r RemoteItem) Path() string { return r.Root.String() + "/" + r.ItemKey }

func (RemoteItem) isVaultItem() {}

// PlaceholderItem is the synthetic trailing tile offered in selectable
// galleries so that the user can pick "no cover".
type PlaceholderItem struct{}

// Key implements [VaultItem].
func (PlaceholderItem) Key() string { return PlaceholderKey }

func (PlaceholderItem) isVaultItem() {}

// IsPlaceholder reports whether item is the synthetic "no cover" tile.
func IsPlaceholder(item VaultItem) bool {
	return item != nil && item.Key() == PlaceholderKey
}

// Blob is an opaque handle to the content of a staged file.
type Blob interface {
	Open() (io.ReadCloser, error)
}

// FileBlob reads content lazily from a path on the local file system.
type FileBlob struct {
	Path string
}

// Open implements [Blob].
func (f FileBlob) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// NewLocalFileItem stages the file at path under its base name.
func NewLocalFileItem(path string) LocalItem {
	return LocalItem{Name: filepath.Base(path), Blob: FileBlob{Path: path}}
}

// BytesBlob is an in-memory blob.
type BytesBlob []byte

// Open implements [Blob].
func (b BytesBlob) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}
