package life

import "bitlife/pkg/bitgrid"

// View is a read-only window onto the engine's live cell bytes. It shares
// storage with the engine: it is never a copy.
//
// A View is valid until the next mutating call on the engine that produced
// it. Update swaps the engine's two buffers, so a View taken before Update
// points at the scratch buffer afterwards. Fetch a fresh View for every
// frame and never write through Bytes.
type View struct {
	bits          []byte
	width, height int
}

// View returns the current generation without copying it.
func (e *Engine) View() View {
	return View{bits: e.cur.Bytes(), width: e.w, height: e.h}
}

// Bytes returns the packed cells. Index i is at byte i/8, bit i%8 (LSB
// first); padding bits in the last byte are zero.
func (v View) Bytes() []byte { return v.bits }

// Width returns the number of columns.
func (v View) Width() int { return v.width }

// Height returns the number of rows.
func (v View) Height() int { return v.height }

// Size returns the number of cells.
func (v View) Size() int { return v.width * v.height }

// ByteLength returns ceil(Size/8).
func (v View) ByteLength() int { return len(v.bits) }

// AliveAt decodes a flattened index.
func (v View) AliveAt(idx int) bool {
	return v.bits[idx>>3]&(1<<(idx&7)) != 0
}

// Alive decodes (row, col). The coordinates are not wrapped.
func (v View) Alive(row, col int) bool {
	return v.AliveAt(row*v.width + col)
}

// Snapshot returns a View over a private copy of the bytes. It stays valid
// regardless of later engine mutations.
func (v View) Snapshot() View {
	return View{bits: append([]byte(nil), v.bits...), width: v.width, height: v.height}
}

// NewView wraps externally owned packed bytes, for example a recorded
// snapshot. The slice length must be bitgrid.ByteLength(width, height).
func NewView(bits []byte, width, height int) (View, error) {
	if width <= 0 || height <= 0 || len(bits) != bitgrid.ByteLength(width, height) {
		return View{}, ErrInvalidDimensions
	}
	return View{bits: bits, width: width, height: height}, nil
}
