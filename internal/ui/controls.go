// Package ui draws the on-screen panel and cursor overlay for the ebiten
// frontend. Widgets need the ebiten build tag; the layout helpers here do
// not.
package ui

import (
	"image"

	"bitlife/internal/core"
	"bitlife/pkg/life"
)

// adjusted returns the value one step away from v, or false when the bounds
// leave no room to move.
func adjusted(ctrl core.ParameterControl, v, direction int) (int, bool) {
	if direction == 0 {
		return v, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(v + direction*step)
	return target, target != v
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// footprint lists the cells an overlay marks for a cursor at (row, col),
// wrapped onto the grid.
func footprint(row, col int, offsets []life.Cell, size core.Size) []life.Cell {
	out := make([]life.Cell, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, life.Cell{Row: wrap(row+o.Row, size.H), Col: wrap(col+o.Col, size.W)})
	}
	return out
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
