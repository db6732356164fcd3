package render

import (
	"bitlife/internal/core"
	"bitlife/pkg/life"
)

// CanvasSize returns the pixel size needed for a grid: one pixel of line
// before every cell plus a closing line, (cellSize+1)*dim+1 per axis.
func CanvasSize(s core.Size, cellSize int) (w, h int) {
	return (cellSize+1)*s.W + 1, (cellSize+1)*s.H + 1
}

// Immediate redraws the whole grid and every cell on each frame.
type Immediate struct {
	canvas   Canvas
	cellSize int
	pal      Palette
}

// NewImmediate returns an adapter that paints onto canvas. cellSize is the
// interior size of a cell in pixels and is raised to 1 if smaller.
func NewImmediate(canvas Canvas, cellSize int, pal Palette) *Immediate {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Immediate{canvas: canvas, cellSize: cellSize, pal: pal}
}

// CellSize returns the interior cell size in pixels.
func (im *Immediate) CellSize() int { return im.cellSize }

// DrawGrid draws width+1 vertical and height+1 horizontal separator lines.
func (im *Immediate) DrawGrid(s core.Size) {
	step := im.cellSize + 1
	w, h := CanvasSize(s, im.cellSize)
	for i := 0; i <= s.W; i++ {
		x := i * step
		im.canvas.StrokeLine(x, 0, x, h-1, im.pal.Grid)
	}
	for j := 0; j <= s.H; j++ {
		y := j * step
		im.canvas.StrokeLine(0, y, w-1, y, im.pal.Grid)
	}
}

// DrawCells paints every cell in the alive or dead colour. The cost is
// proportional to the number of cells, not the number of live cells.
func (im *Immediate) DrawCells(v life.View) {
	step := im.cellSize + 1
	EachCell(v, func(row, col int, alive bool) {
		c := im.pal.Dead
		if alive {
			c = im.pal.Alive
		}
		im.canvas.FillRect(col*step+1, row*step+1, im.cellSize, im.cellSize, c)
	})
}

// CellOrigin returns the top-left interior pixel of (row, col).
func (im *Immediate) CellOrigin(row, col int) (x, y int) {
	step := im.cellSize + 1
	return col*step + 1, row*step + 1
}
