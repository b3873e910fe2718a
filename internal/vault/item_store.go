// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-art-vault/models"
)

// ItemStore is the ordered collection of staged local items. Keys are unique.
type ItemStore struct {
	items []models.LocalItem
}

// NewItemStore returns a store holding items, validated and de-duplicated the
// same way [ItemStore.Add] does.
func NewItemStore(items ...models.LocalItem) (*ItemStore, error) {
	s := &ItemStore{}
	for _, it := range items {
		if err := s.Add(it); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends item. An item with the same name is replaced in place, keeping
// its position.
func (s *ItemStore) Add(item models.LocalItem) error {
	if err := validateName(item.Name); err != nil {
		return err
	}
	if i := s.index(item.Name); i >= 0 {
		s.items[i] = item
		return nil
	}
	s.items = append(s.items, item)
	return nil
}

// Remove deletes the item with key.
func (s *ItemStore) Remove(key string) error {
	i := s.index(key)
	if i < 0 {
		return ErrItemNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// Replace swaps the item stored under key for item. The new item may carry a
// different name as long as it does not collide with another item.
func (s *ItemStore) Replace(key string, item models.LocalItem) error {
	if err := validateName(item.Name); err != nil {
		return err
	}
	i := s.index(key)
	if i < 0 {
		return ErrItemNotFound
	}
	if j := s.index(item.Name); j >= 0 && j != i {
		s.items = slices.Delete(s.items, j, j+1)
		if j < i {
			i--
		}
	}
	s.items[i] = item
	return nil
}

// Items returns a snapshot in insertion order.
func (s *ItemStore) Items() []models.LocalItem {
	return slices.Clone(s.items)
}

// VaultItems returns the snapshot as vault items.
func (s *ItemStore) VaultItems() []models.VaultItem {
	out := make([]models.VaultItem, len(s.items))
	for i, it := range s.items {
		out[i] = it
	}
	return out
}

// Len returns the number of staged items.
func (s *ItemStore) Len() int {
	return len(s.items)
}

// Contains reports whether key is staged.
func (s *ItemStore) Contains(key string) bool {
	return s.index(key) >= 0
}

func (s *ItemStore) index(key string) int {
	return slices.IndexFunc(s.items, func(it models.LocalItem) bool { return it.Name == key })
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if models.IsReservedKey(name) || name == models.PlaceholderKey {
		return ErrReservedName
	}
	return nil
}
