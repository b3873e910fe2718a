// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// keysFile holds the ordered key list of a stored root.
const keysFile = ".keys"

// manifest is the canonical description a root is derived from.
type manifest struct {
	Owner   string          `json:"username"`
	Preview string          `json:"preview"`
	Files   []manifestEntry `json:"files"`
}

type manifestEntry struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}

// fileContentStore is the file-system [ContentStore] of the storage node.
// Every root is a directory under dir holding one file per key.
type fileContentStore struct {
	dir string

	logger *logger.Logger
}

// NewFileContentStore returns a [ContentStore] rooted at dir, creating the
// directory when needed.
func NewFileContentStore(dir string, logger *logger.Logger) (ContentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}

	return &fileContentStore{dir: dir, logger: logger}, nil
}

// Put implements [ContentStore]. The root is a CIDv1 (raw, sha2-256) over
// the JSON manifest of owner, preview and the per-file content hashes.
func (f *fileContentStore) Put(ctx context.Context, owner, preview string, files []File) (string, error) {
	if len(files) == 0 {
		return "", ErrEmptyUpload
	}

	m := manifest{Owner: owner, Preview: preview, Files: make([]manifestEntry, 0, len(files))}
	seen := make(map[string]struct{}, len(files))
	for _, file := range files {
		if err := validateFileName(file.Name); err != nil {
			return "", err
		}
		if _, dup := seen[file.Name]; dup {
			return "", fmt.Errorf("%w: duplicate %q", ErrInvalidKey, file.Name)
		}
		seen[file.Name] = struct{}{}

		sum := sha256.Sum256(file.Data)
		m.Files = append(m.Files, manifestEntry{Name: file.Name, SHA256: hex.EncodeToString(sum[:])})
	}

	root, err := deriveRoot(m)
	if err != nil {
		return "", err
	}

	rootDir := filepath.Join(f.dir, root)
	if _, err = os.Stat(rootDir); err == nil {
		f.logger.Debug().
			Str("func", "fileContentStore.Put").
			Str("root", root).
			Msg("root already stored")
		return root, nil
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.MkdirTemp(f.dir, ".upload-")
	if err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	keys := make([]string, 0, len(files)+2)
	for _, file := range files {
		if err = os.WriteFile(filepath.Join(tmp, file.Name), file.Data, 0o644); err != nil {
			return "", fmt.Errorf("write %q: %w", file.Name, err)
		}
		keys = append(keys, file.Name)
	}

	reserved := []File{
		{Name: models.ReservedOwnerKey, Data: []byte(owner)},
		{Name: models.ReservedPreviewKey, Data: []byte(preview)},
	}
	for _, r := range reserved {
		if err = os.WriteFile(filepath.Join(tmp, r.Name), r.Data, 0o644); err != nil {
			return "", fmt.Errorf("write %q: %w", r.Name, err)
		}
		keys = append(keys, r.Name)
	}

	keysJSON, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("encode keys: %w", err)
	}
	if err = os.WriteFile(filepath.Join(tmp, keysFile), keysJSON, 0o644); err != nil {
		return "", fmt.Errorf("write keys: %w", err)
	}

	if err = os.Rename(tmp, rootDir); err != nil {
		// a concurrent upload of the same content won the rename
		if _, statErr := os.Stat(rootDir); statErr == nil {
			return root, nil
		}
		return "", fmt.Errorf("commit upload: %w", err)
	}

	f.logger.Info().
		Str("func", "fileContentStore.Put").
		Str("root", root).
		Int("files", len(files)).
		Msg("vault stored")

	return root, nil
}

// List implements [ContentStore].
func (f *fileContentStore) List(ctx context.Context, root string) ([]string, error) {
	rootDir, err := f.rootDir(root)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(filepath.Join(rootDir, keysFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, root)
	}
	if err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}

	var keys []string
	if err = json.Unmarshal(b, &keys); err != nil {
		return nil, fmt.Errorf("decode keys: %w", err)
	}

	return keys, nil
}

// Get implements [ContentStore].
func (f *fileContentStore) Get(ctx context.Context, root, key string) ([]byte, error) {
	rootDir, err := f.rootDir(root)
	if err != nil {
		return nil, err
	}
	if !models.IsReservedKey(key) {
		if err = validateFileName(key); err != nil {
			return nil, err
		}
	}

	b, err := os.ReadFile(filepath.Join(rootDir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrContentNotFound, root, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", root, key, err)
	}

	return b, nil
}

func (f *fileContentStore) rootDir(root string) (string, error) {
	c, err := cid.Decode(root)
	if err != nil || c.String() != root {
		return "", fmt.Errorf("%w: %s", ErrContentNotFound, root)
	}
	return filepath.Join(f.dir, root), nil
}

func deriveRoot(m manifest) (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}

	sum, err := multihash.Sum(b, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("hash manifest: %w", err)
	}

	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

func validateFileName(name string) error {
	switch {
	case name == "", name == models.PlaceholderKey, models.IsReservedKey(name):
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	case strings.HasPrefix(name, "."), strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	return nil
}
