package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// GGCanvas draws through a gg software context. It backs headless snapshots.
type GGCanvas struct {
	dc *gg.Context
}

// NewGGCanvas allocates a w x h gg context.
func NewGGCanvas(w, h int) *GGCanvas {
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(1)
	return &GGCanvas{dc: dc}
}

// Clear fills the whole context.
func (g *GGCanvas) Clear(c color.RGBA) {
	g.dc.ClearWithColor(gg.FromColor(c))
}

// StrokeLine draws a one pixel line. Coordinates are shifted to pixel centres
// so axis-aligned lines cover exactly one row or column.
func (g *GGCanvas) StrokeLine(x0, y0, x1, y1 int, c color.RGBA) {
	g.dc.SetColor(c)
	g.dc.DrawLine(float64(x0)+0.5, float64(y0)+0.5, float64(x1)+0.5, float64(y1)+0.5)
	if err := g.dc.Stroke(); err != nil {
		Logger().Warn("gg stroke failed", "err", err)
	}
}

// FillRect fills an axis-aligned rectangle.
func (g *GGCanvas) FillRect(x, y, w, h int, c color.RGBA) {
	g.dc.SetColor(c)
	g.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	if err := g.dc.Fill(); err != nil {
		Logger().Warn("gg fill failed", "err", err)
	}
}

// Image returns the rendered image.
func (g *GGCanvas) Image() image.Image { return g.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (g *GGCanvas) EncodePNG(w io.Writer) error { return g.dc.EncodePNG(w) }

// Close releases the context.
func (g *GGCanvas) Close() error { return g.dc.Close() }
