// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package layout implements the masonry gallery layout engine.
//
// [Masonry] is a pure function from an ordered item list, a container width
// and a column count to per-item placements. [Diff] compares two layouts of
// the same collection and produces the enter/update/leave transitions the
// presentation layer animates.
package layout

import "github.com/MKhiriev/go-art-vault/models"

// DefaultColumns is the column count used by the vault gallery.
const DefaultColumns = 3

// DefaultRowHeight is the fixed tile height of the main gallery.
const DefaultRowHeight = 300

// Options controls how a grid is computed.
type Options struct {
	// Columns is the number of columns. Values below 1 fall back to
	// [DefaultColumns].
	Columns int

	// RowHeight is the fixed height of every tile. Ignored when Square is set.
	RowHeight float64

	// Square makes every tile as tall as it is wide (containerWidth/Columns),
	// which is what the selectable preview picker uses.
	Square bool
}

func (o Options) columns() int {
	if o.Columns < 1 {
		return DefaultColumns
	}
	return o.Columns
}

func (o Options) rowHeight(columnWidth float64) float64 {
	if o.Square {
		return columnWidth
	}
	if o.RowHeight <= 0 {
		return DefaultRowHeight
	}
	return o.RowHeight
}

// Frame is the geometry of a tile.
type Frame struct {
	X, Y          float64
	Width, Height float64
	Opacity       float64
}

// Placement is the computed position of one item.
type Placement[T any] struct {
	Item   T
	Key    string
	Index  int
	Column int
	X, Y   float64
	Width  float64
	Height float64
}

// Frame returns the fully visible frame of the placement.
func (p Placement[T]) Frame() Frame {
	return Frame{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Opacity: 1}
}

// Grid is the result of a layout pass.
type Grid[T any] struct {
	Placements []Placement[T]

	// ColumnHeights are the accumulated heights per column.
	ColumnHeights []float64

	// Height is the height of the tallest column, i.e. the container height.
	Height float64
}

// Masonry places items greedily into the column with the least accumulated
// height, ties going to the lowest column index. Placements keep the input
// order. key must return a stable identity per item.
func Masonry[T any](items []T, key func(T) string, containerWidth float64, opts Options) Grid[T] {
	columns := opts.columns()
	if containerWidth < 0 {
		containerWidth = 0
	}
	columnWidth := containerWidth / float64(columns)
	rowHeight := opts.rowHeight(columnWidth)

	heights := make([]float64, columns)
	placements := make([]Placement[T], 0, len(items))

	for i, item := range items {
		column := shortestColumn(heights)
		placements = append(placements, Placement[T]{
			Item:   item,
			Key:    key(item),
			Index:  i,
			Column: column,
			X:      float64(column) * columnWidth,
			Y:      heights[column],
			Width:  columnWidth,
			Height: rowHeight,
		})
		heights[column] += rowHeight
	}

	var tallest float64
	for _, h := range heights {
		if h > tallest {
			tallest = h
		}
	}

	return Grid[T]{Placements: placements, ColumnHeights: heights, Height: tallest}
}

func shortestColumn(heights []float64) int {
	best := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[best] {
			best = i
		}
	}
	return best
}

// Columns groups placements by column, each column ordered top to bottom.
func (g Grid[T]) Columns() [][]Placement[T] {
	out := make([][]Placement[T], len(g.ColumnHeights))
	for _, p := range g.Placements {
		out[p.Column] = append(out[p.Column], p)
	}
	return out
}

// ItemKey is the identity function for vault items.
func ItemKey(item models.VaultItem) string {
	return item.Key()
}

// WithPlaceholder returns a copy of items with the synthetic "no cover" tile
// appended last. Any placeholder already present is moved to the end so the
// empty slot always sorts last.
func WithPlaceholder(items []models.VaultItem) []models.VaultItem {
	out := make([]models.VaultItem, 0, len(items)+1)
	for _, it := range items {
		if models.IsPlaceholder(it) {
			continue
		}
		out = append(out, it)
	}
	return append(out, models.PlaceholderItem{})
}

// CountItems counts real items, ignoring the placeholder tile.
func CountItems(items []models.VaultItem) int {
	n := 0
	for _, it := range items {
		if !models.IsPlaceholder(it) {
			n++
		}
	}
	return n
}
