// Package voxel holds the world's height map: a square grid of stacked unit
// cubes whose heights are clamped to [0, MaxHeight].
package voxel

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Reference scene dimensions
const (
	DefaultSize      = 32
	DefaultMaxHeight = 4
	MaxSize          = 1024 // cells per side
)

var ErrInvalidDimensions = errors.New("voxel: invalid grid dimensions")

// Grid is an N×N height map. Cells are addressed (col, row); col runs along
// world X and row along world Z.
type Grid struct {
	size      int
	maxHeight int
	heights   []uint8 // col*size + row
}

// New creates an empty grid
func New(size, maxHeight int) (*Grid, error) {
	if size <= 0 || size%2 != 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: size %d must be even and in [2, %d]", ErrInvalidDimensions, size, MaxSize)
	}
	if maxHeight <= 0 || maxHeight > 255 {
		return nil, fmt.Errorf("%w: max height %d must be in [1, 255]", ErrInvalidDimensions, maxHeight)
	}
	return &Grid{
		size:      size,
		maxHeight: maxHeight,
		heights:   make([]uint8, size*size),
	}, nil
}

func (g *Grid) Size() int      { return g.size }
func (g *Grid) MaxHeight() int { return g.maxHeight }

// Half is the offset between cell indices and world coordinates
func (g *Grid) Half() int { return g.size / 2 }

// InBounds reports whether (col, row) names a cell
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// HeightAt returns the stack height; ok is false outside the grid
func (g *Grid) HeightAt(col, row int) (h int, ok bool) {
	if !g.InBounds(col, row) {
		return 0, false
	}
	return int(g.heights[col*g.size+row]), true
}

// Increment raises a stack by one, stopping at MaxHeight. Out-of-bounds
// cells are ignored. Reports whether the height changed.
func (g *Grid) Increment(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	i := col*g.size + row
	if int(g.heights[i]) >= g.maxHeight {
		return false
	}
	g.heights[i]++
	return true
}

// Decrement lowers a stack by one, stopping at zero
func (g *Grid) Decrement(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	i := col*g.size + row
	if g.heights[i] == 0 {
		return false
	}
	g.heights[i]--
	return true
}

// Set stores h clamped to [0, MaxHeight]
func (g *Grid) Set(col, row, h int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	g.heights[col*g.size+row] = uint8(g.clamp(h))
	return true
}

// Fill sets every cell to h (clamped)
func (g *Grid) Fill(h int) {
	v := uint8(g.clamp(h))
	for i := range g.heights {
		g.heights[i] = v
	}
}

func (g *Grid) clamp(h int) int {
	return max(0, min(h, g.maxHeight))
}

// Each calls fn for every cell in column-major order
func (g *Grid) Each(fn func(col, row, h int)) {
	for col := 0; col < g.size; col++ {
		for row := 0; row < g.size; row++ {
			fn(col, row, int(g.heights[col*g.size+row]))
		}
	}
}

// TotalHeight is the number of cubes the grid holds
func (g *Grid) TotalHeight() int {
	total := 0
	for _, h := range g.heights {
		total += int(h)
	}
	return total
}

// WorldOrigin returns the world X/Z of a cell's footprint corner
func (g *Grid) WorldOrigin(col, row int) (x, z float32) {
	return float32(col - g.Half()), float32(row - g.Half())
}

// Digest fingerprints the height map
func (g *Grid) Digest() uint64 {
	return xxhash.Sum64(g.heights)
}
