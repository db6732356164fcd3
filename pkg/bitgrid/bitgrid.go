// Package bitgrid provides a fixed-size boolean matrix packed one cell per bit.
//
// Cell (row, col) lives at flattened index row*width+col. Index i is stored in
// byte i/8 at bit position i%8, least significant bit first. Bits past the
// last cell in the final byte are padding: writers keep them zero and readers
// ignore them.
package bitgrid

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidDimensions reports a grid constructed with a zero dimension.
	ErrInvalidDimensions = errors.New("bitgrid: width and height must be at least 1")

	// ErrOutOfRange reports a coordinate outside the grid. The grid never wraps
	// coordinates itself so this is always a caller bug.
	ErrOutOfRange = errors.New("bitgrid: coordinate out of range")
)

// Grid stores width*height booleans in row-major order.
type Grid struct {
	width, height int
	bits          []byte
}

// ByteLength returns the number of bytes needed to pack w*h cells.
func ByteLength(w, h int) int { return (w*h + 7) / 8 }

// New allocates an all-dead grid with the given dimensions.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{width: width, height: height, bits: make([]byte, ByteLength(width, height))}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells, not bytes.
func (g *Grid) Size() int { return g.width * g.height }

// ByteLength returns ceil(width*height/8). It never changes.
func (g *Grid) ByteLength() int { return len(g.bits) }

// Bytes exposes the packed backing slice. Callers outside the owner must
// treat it as read-only.
func (g *Grid) Bytes() []byte { return g.bits }

// Index returns the flattened index of (row, col) without range checks.
func (g *Grid) Index(row, col int) int { return row*g.width + col }

func (g *Grid) check(row, col int) error {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.width, g.height)
	}
	return nil
}

// Get reports whether (row, col) is set.
func (g *Grid) Get(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.At(g.Index(row, col)), nil
}

// Set assigns the cell at (row, col). Only the targeted bit changes.
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.SetAt(g.Index(row, col), alive)
	return nil
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	idx := g.Index(row, col)
	g.bits[idx>>3] ^= 1 << (idx & 7)
	return nil
}

// At reads a flattened index. It panics if idx is outside the backing slice.
func (g *Grid) At(idx int) bool {
	return g.bits[idx>>3]&(1<<(idx&7)) != 0
}

// SetAt writes a flattened index. It panics if idx is outside the backing
// slice.
func (g *Grid) SetAt(idx int, alive bool) {
	if alive {
		g.bits[idx>>3] |= 1 << (idx & 7)
		return
	}
	g.bits[idx>>3] &^= 1 << (idx & 7)
}

// Clear sets every cell dead.
func (g *Grid) Clear() {
	clear(g.bits)
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Fill assigns every cell from fn, visited in flattened order. Padding bits
// are left zero.
func (g *Grid) Fill(fn func(idx int) bool) {
	g.Clear()
	total := g.Size()
	for i := 0; i < total; i++ {
		if fn(i) {
			g.bits[i>>3] |= 1 << (i & 7)
		}
	}
}
