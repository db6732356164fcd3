package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Canvas is the drawing surface used by the immediate-mode adapter. Lines
// passed to StrokeLine are always axis-aligned and one pixel wide.
type Canvas interface {
	Clear(c color.RGBA)
	StrokeLine(x0, y0, x1, y1 int, c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
}

// Palette holds the fixed colours used by both adapters.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// DefaultPalette returns black cells on white with a light grey grid.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:  color.RGBA{R: 204, G: 204, B: 204, A: 255},
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("render: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: invalid colour %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
