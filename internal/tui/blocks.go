package tui

import (
	"strings"

	"bitlife/internal/render"
	"bitlife/pkg/life"
)

// blockRenderer draws two grid rows per terminal line with half blocks.
type blockRenderer struct {
	cells []bool
	sb    strings.Builder
}

// Render decodes v and returns one line per pair of rows.
func (b *blockRenderer) Render(v life.View) string {
	w, h := v.Width(), v.Height()
	if cap(b.cells) < w*h {
		b.cells = make([]bool, w*h)
	}
	b.cells = b.cells[:w*h]
	clear(b.cells)
	render.EachAlive(v, func(row, col int) { b.cells[row*w+col] = true })

	b.sb.Reset()
	for row := 0; row < h; row += 2 {
		if row > 0 {
			b.sb.WriteByte('\n')
		}
		for col := 0; col < w; col++ {
			top := b.cells[row*w+col]
			bottom := row+1 < h && b.cells[(row+1)*w+col]
			b.sb.WriteRune(halfBlock(top, bottom))
		}
	}
	return b.sb.String()
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

// cellAt maps a terminal position inside the grid area to a grid cell. The
// upper half of each character cell is the even row.
func cellAt(x, y int) (row, col int) {
	return y * 2, x
}
