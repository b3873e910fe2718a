// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layout

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-art-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%02d", i)
	}
	return out
}

func identity(s string) string { return s }

// ── Masonry ──────────────────────────────────────────────────────────────────

func TestMasonry_Empty(t *testing.T) {
	g := Masonry(nil, identity, 900, Options{Columns: 3, RowHeight: 300})

	assert.Empty(t, g.Placements)
	assert.Equal(t, []float64{0, 0, 0}, g.ColumnHeights)
	assert.Zero(t, g.Height)
}

func TestMasonry_FirstRowFillsColumnsLeftToRight(t *testing.T) {
	g := Masonry(names(3), identity, 900, Options{Columns: 3, RowHeight: 300})
	require.Len(t, g.Placements, 3)

	for i, p := range g.Placements {
		assert.Equal(t, i, p.Column)
		assert.Equal(t, float64(i)*300, p.X)
		assert.Zero(t, p.Y)
		assert.Equal(t, 300.0, p.Width)
		assert.Equal(t, 300.0, p.Height)
		assert.Equal(t, i, p.Index)
	}
}

func TestMasonry_SecondRowStacks(t *testing.T) {
	g := Masonry(names(5), identity, 600, Options{Columns: 3, RowHeight: 100})

	assert.Equal(t, 0, g.Placements[3].Column)
	assert.Equal(t, 100.0, g.Placements[3].Y)
	assert.Equal(t, 1, g.Placements[4].Column)
	assert.Equal(t, 100.0, g.Placements[4].Y)
	assert.Equal(t, 200.0, g.Height)
	assert.Equal(t, []float64{200, 200, 100}, g.ColumnHeights)
}

func TestMasonry_SquareTiles(t *testing.T) {
	g := Masonry(names(4), identity, 300, Options{Columns: 3, RowHeight: 999, Square: true})

	for _, p := range g.Placements {
		assert.Equal(t, 100.0, p.Width)
		assert.Equal(t, 100.0, p.Height)
	}
	assert.Equal(t, 100.0, g.Placements[3].Y)
}

func TestMasonry_DefaultsForInvalidOptions(t *testing.T) {
	g := Masonry(names(4), identity, 900, Options{})

	assert.Len(t, g.ColumnHeights, DefaultColumns)
	assert.Equal(t, float64(DefaultRowHeight), g.Placements[0].Height)
}

func TestMasonry_NegativeWidthClamped(t *testing.T) {
	g := Masonry(names(2), identity, -50, Options{Columns: 2, RowHeight: 10})

	for _, p := range g.Placements {
		assert.Zero(t, p.Width)
		assert.Zero(t, p.X)
	}
}

func TestMasonry_BalanceProperty(t *testing.T) {
	for c := 1; c <= 5; c++ {
		for n := 0; n <= 40; n++ {
			g := Masonry(names(n), identity, 1000, Options{Columns: c, RowHeight: 50})

			counts := make([]int, c)
			for _, p := range g.Placements {
				counts[p.Column]++
			}
			maxCount := 0
			for _, k := range counts {
				maxCount = max(maxCount, k)
			}
			limit := (n + c - 1) / c
			assert.LessOrEqual(t, maxCount, limit, "n=%d c=%d", n, c)

			lo, hi := g.ColumnHeights[0], g.ColumnHeights[0]
			for _, h := range g.ColumnHeights {
				lo = min(lo, h)
				hi = max(hi, h)
			}
			assert.LessOrEqual(t, hi-lo, 50.0, "n=%d c=%d", n, c)
		}
	}
}

func TestMasonry_Idempotent(t *testing.T) {
	items := names(17)
	opts := Options{Columns: 3, RowHeight: 120}

	first := Masonry(items, identity, 777, opts)
	second := Masonry(items, identity, 777, opts)

	assert.Equal(t, first, second)
}

func TestGrid_Columns(t *testing.T) {
	g := Masonry(names(7), identity, 300, Options{Columns: 3, RowHeight: 10})
	cols := g.Columns()

	require.Len(t, cols, 3)
	assert.Len(t, cols[0], 3)
	assert.Len(t, cols[1], 2)
	assert.Len(t, cols[2], 2)
	for _, col := range cols {
		for i := 1; i < len(col); i++ {
			assert.Less(t, col[i-1].Y, col[i].Y)
		}
	}
}

// ── Placeholder ──────────────────────────────────────────────────────────────

func TestWithPlaceholder_AppendsLast(t *testing.T) {
	items := []models.VaultItem{
		models.LocalItem{Name: "a.png"},
		models.LocalItem{Name: "b.png"},
	}

	out := WithPlaceholder(items)

	require.Len(t, out, 3)
	assert.Equal(t, models.PlaceholderKey, out[2].Key())
	assert.Len(t, items, 2, "input must not be modified")
}

func TestWithPlaceholder_MovesExistingPlaceholderToEnd(t *testing.T) {
	items := []models.VaultItem{
		models.PlaceholderItem{},
		models.LocalItem{Name: "a.png"},
	}

	out := WithPlaceholder(items)

	require.Len(t, out, 2)
	assert.Equal(t, "a.png", out[0].Key())
	assert.True(t, models.IsPlaceholder(out[1]))
}

func TestWithPlaceholder_LaysOutLast(t *testing.T) {
	items := WithPlaceholder([]models.VaultItem{models.LocalItem{Name: "a.png"}})
	g := Masonry(items, ItemKey, 300, Options{Columns: 3, Square: true})

	last := g.Placements[len(g.Placements)-1]
	assert.Equal(t, models.PlaceholderKey, last.Key)
	assert.Equal(t, 1, last.Column)
}

func TestCountItems(t *testing.T) {
	items := WithPlaceholder([]models.VaultItem{
		models.LocalItem{Name: "a.png"},
		models.RemoteItem{Root: "bafk", ItemKey: "b.png"},
	})

	assert.Equal(t, 2, CountItems(items))
	assert.Zero(t, CountItems(nil))
}
