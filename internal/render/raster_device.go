package render

import (
	"fmt"
	"image/color"
	"math"
)

// RasterDevice is a Device that draws through a gg software context. It lets
// the instanced adapter run headless.
type RasterDevice struct {
	canvas *GGCanvas
	w, h   int
	next   BufferID
	lines  map[BufferID]LineSet
	Draws  int
}

// NewRasterDevice returns a device drawing onto a fresh w x h canvas.
func NewRasterDevice(w, h int) *RasterDevice {
	return &RasterDevice{canvas: NewGGCanvas(w, h), w: w, h: h, lines: map[BufferID]LineSet{}}
}

// Canvas exposes the target canvas.
func (d *RasterDevice) Canvas() *GGCanvas { return d.canvas }

// Close releases the gg context.
func (d *RasterDevice) Close() error { return d.canvas.Close() }

// CreateLineBuffer stores the unit line and offsets.
func (d *RasterDevice) CreateLineBuffer(unit [2]Vertex, offsets []Vertex) (BufferID, error) {
	d.next++
	d.lines[d.next] = LineSet{Unit: unit, Offsets: append([]Vertex(nil), offsets...)}
	return d.next, nil
}

// CreateDynamicBuffer returns a fresh id; vertices are consumed directly.
func (d *RasterDevice) CreateDynamicBuffer() (BufferID, error) {
	d.next++
	return d.next, nil
}

// Release forgets a buffer.
func (d *RasterDevice) Release(id BufferID) { delete(d.lines, id) }

// DrawLinesInstanced strokes every instance of the stored line.
func (d *RasterDevice) DrawLinesInstanced(id BufferID, instances int, c color.RGBA) {
	ls, ok := d.lines[id]
	if !ok {
		Logger().Warn("draw of unknown line buffer", "id", id)
		return
	}
	d.Draws++
	ends := LineSet{Unit: ls.Unit, Offsets: ls.Offsets[:min(instances, len(ls.Offsets))]}.Expand()
	for i := 0; i+1 < len(ends); i += 2 {
		x0, y0 := d.toPixel(ends[i])
		x1, y1 := d.toPixel(ends[i+1])
		d.canvas.StrokeLine(x0, y0, x1, y1, c)
	}
}

// DrawTriangles adds every triangle to one gg path and fills it once.
// Trailing vertices that do not form a triangle are dropped.
func (d *RasterDevice) DrawTriangles(id BufferID, verts []Vertex, c color.RGBA) {
	if len(verts)%3 != 0 {
		Logger().Warn("triangle list length not a multiple of 3", "len", len(verts), "id", id)
	}
	d.Draws++
	dc := d.canvas.dc
	dc.SetColor(c)
	for i := 0; i+2 < len(verts); i += 3 {
		dc.MoveTo(d.screen(verts[i]))
		dc.LineTo(d.screen(verts[i+1]))
		dc.LineTo(d.screen(verts[i+2]))
		dc.ClosePath()
	}
	if err := dc.Fill(); err != nil {
		Logger().Warn("gg fill failed", "err", err, "id", id)
	}
}

// toPixel maps NDC to the pixel row or column a line occupies. +1 lands on
// the last pixel, not one past the canvas.
func (d *RasterDevice) toPixel(v Vertex) (int, int) {
	x := int(math.Floor(float64((v.X + 1) / 2 * float32(d.w))))
	y := int(math.Floor(float64((1 - v.Y) / 2 * float32(d.h))))
	return clampInt(x, 0, d.w-1), clampInt(y, 0, d.h-1)
}

func (d *RasterDevice) screen(v Vertex) (float64, float64) {
	return float64(v.X+1) / 2 * float64(d.w), float64(1-v.Y) / 2 * float64(d.h)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// String describes the device for logs.
func (d *RasterDevice) String() string {
	return fmt.Sprintf("raster(%dx%d)", d.w, d.h)
}
