// Package render turns a life.View into pixels or geometry. Both adapters
// decode cells through the functions in this file so they always agree on
// which cells are alive.
package render

import (
	"math/bits"

	"bitlife/pkg/life"
)

// EachCell visits every cell in row-major order with its decoded state.
func EachCell(v life.View, fn func(row, col int, alive bool)) {
	w, total := v.Width(), v.Size()
	buf := v.Bytes()
	row, col := 0, 0
	for idx := 0; idx < total; idx++ {
		fn(row, col, buf[idx>>3]&(1<<(idx&7)) != 0)
		col++
		if col == w {
			col = 0
			row++
		}
	}
}

// EachAlive visits only live cells in row-major order. Zero bytes are skipped
// whole and padding bits past the last cell are ignored.
func EachAlive(v life.View, fn func(row, col int)) {
	w, total := v.Width(), v.Size()
	for i, b := range v.Bytes() {
		for b != 0 {
			bit := bits.TrailingZeros8(b)
			b &= b - 1
			idx := i<<3 + bit
			if idx >= total {
				return
			}
			fn(idx/w, idx%w)
		}
	}
}

// CountAlive returns the number of live cells in v.
func CountAlive(v life.View) int {
	n := 0
	EachAlive(v, func(int, int) { n++ })
	return n
}
