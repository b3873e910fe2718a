// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"testing"

	"github.com/MKhiriev/go-art-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func local(name string) models.LocalItem {
	return models.LocalItem{Name: name, Blob: models.BytesBlob(name)}
}

func keys(items []models.LocalItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestItemStore_AddKeepsOrder(t *testing.T) {
	s, err := NewItemStore(local("a.png"), local("b.png"))
	require.NoError(t, err)

	require.NoError(t, s.Add(local("c.png")))

	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, keys(s.Items()))
	assert.Equal(t, 3, s.Len())
}

func TestItemStore_AddSameNameReplacesInPlace(t *testing.T) {
	s, _ := NewItemStore(local("a.png"), local("b.png"))

	replacement := models.LocalItem{Name: "a.png", Blob: models.BytesBlob("new")}
	require.NoError(t, s.Add(replacement))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a.png", items[0].Name)
	assert.Equal(t, models.BytesBlob("new"), items[0].Blob)
}

func TestItemStore_RejectsInvalidNames(t *testing.T) {
	s, _ := NewItemStore()

	assert.ErrorIs(t, s.Add(local("")), ErrEmptyName)
	assert.ErrorIs(t, s.Add(local("   ")), ErrEmptyName)
	assert.ErrorIs(t, s.Add(local(models.ReservedOwnerKey)), ErrReservedName)
	assert.ErrorIs(t, s.Add(local(models.ReservedPreviewKey)), ErrReservedName)
	assert.ErrorIs(t, s.Add(local(models.PlaceholderKey)), ErrReservedName)
	assert.Zero(t, s.Len())

	_, err := NewItemStore(local("username"))
	assert.ErrorIs(t, err, ErrReservedName)
}

func TestItemStore_Remove(t *testing.T) {
	s, _ := NewItemStore(local("a.png"), local("b.png"), local("c.png"))

	require.NoError(t, s.Remove("b.png"))
	assert.Equal(t, []string{"a.png", "c.png"}, keys(s.Items()))
	assert.False(t, s.Contains("b.png"))

	assert.ErrorIs(t, s.Remove("missing"), ErrItemNotFound)
}

func TestItemStore_Replace(t *testing.T) {
	s, _ := NewItemStore(local("a.png"), local("b.png"), local("c.png"))

	require.NoError(t, s.Replace("b.png", local("d.png")))
	assert.Equal(t, []string{"a.png", "d.png", "c.png"}, keys(s.Items()))

	// переименование в существующее имя схлопывает дубликат
	require.NoError(t, s.Replace("c.png", local("a.png")))
	assert.Equal(t, []string{"d.png", "a.png"}, keys(s.Items()))

	assert.ErrorIs(t, s.Replace("zzz", local("x.png")), ErrItemNotFound)
	assert.ErrorIs(t, s.Replace("a.png", local("preview")), ErrReservedName)
}

func TestItemStore_ItemsIsSnapshot(t *testing.T) {
	s, _ := NewItemStore(local("a.png"))

	snap := s.Items()
	snap[0].Name = "mutated"

	assert.Equal(t, "a.png", s.Items()[0].Name)
}

func TestItemStore_VaultItems(t *testing.T) {
	s, _ := NewItemStore(local("a.png"), local("b.png"))

	items := s.VaultItems()
	require.Len(t, items, 2)
	assert.Equal(t, "a.png", items[0].Key())
	_, ok := items[1].(models.LocalItem)
	assert.True(t, ok)
}
