//go:build ebiten

package ui

import (
	"image/color"

	"bitlife/internal/core"
	"bitlife/internal/frame"
	"bitlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay highlights the cell under the cursor and previews the footprint of
// the pattern a modified click would stamp.
type Overlay struct {
	size     core.Size
	cellSize int

	visible  bool
	row, col int
	mod      frame.Modifier
}

// NewOverlay constructs an overlay for a grid drawn with cellSize interiors.
func NewOverlay(size core.Size, cellSize int) *Overlay {
	return &Overlay{size: size, cellSize: cellSize}
}

// Update records the cursor position and held modifier.
func (o *Overlay) Update(mx, my int, mod frame.Modifier) {
	w, h := (o.cellSize+1)*o.size.W+1, (o.cellSize+1)*o.size.H+1
	o.visible = mx >= 0 && my >= 0 && mx < w && my < h
	if !o.visible {
		return
	}
	o.row, o.col = frame.CellAt(mx, my, o.cellSize, o.size)
	o.mod = mod
}

// Draw renders the highlight onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	offsets, c := []life.Cell{{}}, color.RGBA{R: 220, G: 80, B: 40, A: 120}
	if kind, ok := frame.StampFor(o.mod); ok {
		offsets, c = kind.Offsets(), color.RGBA{R: 40, G: 140, B: 220, A: 120}
	}
	step := o.cellSize + 1
	for _, cell := range footprint(o.row, o.col, offsets, o.size) {
		vector.DrawFilledRect(screen, float32(cell.Col*step+1), float32(cell.Row*step+1), float32(o.cellSize), float32(o.cellSize), c, false)
	}
}
