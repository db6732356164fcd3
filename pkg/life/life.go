// Package life implements Conway's Game of Life on a fixed-size torus backed
// by a bit-packed grid.
package life

import (
	"bitlife/pkg/bitgrid"
	"bitlife/pkg/core"
)

// ErrInvalidDimensions is returned by New when width or height is zero.
var ErrInvalidDimensions = bitgrid.ErrInvalidDimensions

// ResetDensity is the probability that Reset marks a cell live.
const ResetDensity = 0.5

// SeedPolicy selects the initial state of a new Engine.
type SeedPolicy struct {
	random bool
	seed   int64
}

// AllDead starts the universe empty. Later calls to Reset draw from a
// clock-seeded RNG.
func AllDead() SeedPolicy { return SeedPolicy{} }

// Random fills the universe using a deterministic RNG seeded with seed. The
// same RNG stream feeds later calls to Reset.
func Random(seed int64) SeedPolicy { return SeedPolicy{random: true, seed: seed} }

// IsRandom reports whether the policy randomizes the initial grid.
func (p SeedPolicy) IsRandom() bool { return p.random }

// Seed returns the RNG seed for Random policies.
func (p SeedPolicy) Seed() int64 { return p.seed }

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// Engine owns a double-buffered bit grid and advances it generation by
// generation.
type Engine struct {
	w, h  int
	cur   *bitgrid.Grid
	nxt   *bitgrid.Grid
	ticks uint32
	gen   uint64
	rng   *core.RNG
}

// New returns an engine for a width x height torus.
func New(width, height int, seed SeedPolicy) (*Engine, error) {
	cur, err := bitgrid.New(width, height)
	if err != nil {
		return nil, err
	}
	nxt, err := bitgrid.New(width, height)
	if err != nil {
		return nil, err
	}
	e := &Engine{w: width, h: height, cur: cur, nxt: nxt, ticks: 1}
	if seed.random {
		e.rng = core.NewRNG(seed.seed)
		e.Reset()
	} else {
		e.rng = core.NewTimeRNG()
	}
	return e, nil
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.w }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.h }

// Size returns the total number of cells.
func (e *Engine) Size() int { return e.w * e.h }

// Ticks returns the number of generations applied per Update.
func (e *Engine) Ticks() uint32 { return e.ticks }

// SetTicks sets the generations applied per Update. Zero is clamped to one.
func (e *Engine) SetTicks(n uint32) {
	if n == 0 {
		n = 1
	}
	e.ticks = n
}

// Generation returns the number of generations computed since construction.
func (e *Engine) Generation() uint64 { return e.gen }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.cur.Count() }

// Alive reports the state of (row, col) after wrapping the coordinates.
func (e *Engine) Alive(row, col int) bool {
	row, col = e.wrap(row, col)
	return e.cur.At(e.cur.Index(row, col))
}

// Update advances the universe by Ticks generations.
func (e *Engine) Update() {
	for i := uint32(0); i < e.ticks; i++ {
		e.Tick()
	}
}

// Tick computes exactly one generation into the scratch buffer and swaps it
// in.
func (e *Engine) Tick() {
	w, h := e.w, e.h
	cur, nxt := e.cur, e.nxt
	for r := 0; r < h; r++ {
		north := r - 1
		if north < 0 {
			north = h - 1
		}
		south := r + 1
		if south == h {
			south = 0
		}
		rowN, rowC, rowS := north*w, r*w, south*w
		for c := 0; c < w; c++ {
			west := c - 1
			if west < 0 {
				west = w - 1
			}
			east := c + 1
			if east == w {
				east = 0
			}
			n := 0
			for _, idx := range [8]int{
				rowN + west, rowN + c, rowN + east,
				rowC + west, rowC + east,
				rowS + west, rowS + c, rowS + east,
			} {
				if cur.At(idx) {
					n++
				}
			}
			alive := cur.At(rowC + c)
			nxt.SetAt(rowC+c, n == 3 || (alive && n == 2))
		}
	}
	e.cur, e.nxt = nxt, cur
	e.gen++
}

// ToggleCell flips the cell at (row, col). Coordinates wrap, so out-of-range
// and negative values are valid.
func (e *Engine) ToggleCell(row, col int) {
	row, col = e.wrap(row, col)
	// wrapped coordinates are always in range
	_ = e.cur.Toggle(row, col)
}

// StampPattern marks every cell of kind live, anchored at (row, col). The
// anchor and each offset wrap independently.
func (e *Engine) StampPattern(kind Pattern, row, col int) {
	for _, off := range kind.offsets() {
		r, c := e.wrap(row+off.Row, col+off.Col)
		e.cur.SetAt(e.cur.Index(r, c), true)
	}
}

// SetCells marks each listed cell live after wrapping it.
func (e *Engine) SetCells(cells []Cell) {
	for _, cell := range cells {
		r, c := e.wrap(cell.Row, cell.Col)
		e.cur.SetAt(e.cur.Index(r, c), true)
	}
}

// Reset assigns every cell live with probability ResetDensity. Each call
// draws fresh values from the engine RNG.
func (e *Engine) Reset() {
	e.cur.Fill(func(int) bool { return e.rng.Chance(ResetDensity) })
}

// Clear kills every cell.
func (e *Engine) Clear() {
	e.cur.Clear()
}

func (e *Engine) wrap(row, col int) (int, int) {
	row %= e.h
	if row < 0 {
		row += e.h
	}
	col %= e.w
	if col < 0 {
		col += e.w
	}
	return row, col
}
