//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas implements render.Canvas on the ebiten screen with the vector
// package. dst is replaced at the start of every Draw.
type screenCanvas struct {
	dst *ebiten.Image
}

func (s *screenCanvas) Clear(c color.RGBA) { s.dst.Fill(c) }

func (s *screenCanvas) StrokeLine(x0, y0, x1, y1 int, c color.RGBA) {
	// Fill a one pixel wide rectangle so lines land on whole pixels.
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)
	vector.DrawFilledRect(s.dst, float32(minX), float32(minY), float32(maxX-minX+1), float32(maxY-minY+1), c, false)
}

func (s *screenCanvas) FillRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
