//go:build ebiten

package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"bitlife/internal/render"
)

// maxBatchVertices keeps every DrawTriangles call within uint16 indices and
// on a whole-quad boundary.
const maxBatchVertices = 65532

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenDevice implements render.Device with ebiten.DrawTriangles. ebiten
// has no instanced draws, so line instances are expanded into thin quads
// inside a single call per buffer.
type ebitenDevice struct {
	dst *ebiten.Image
	vp  viewport

	next  render.BufferID
	lines map[render.BufferID]render.LineSet

	verts   []ebiten.Vertex
	indices []uint16
	draws   int
}

func newEbitenDevice() *ebitenDevice {
	return &ebitenDevice{lines: map[render.BufferID]render.LineSet{}}
}

// begin targets the device at dst with a w x h pixel viewport anchored at
// the origin.
func (d *ebitenDevice) begin(dst *ebiten.Image, w, h int) {
	d.dst = dst
	d.vp = viewport{w: float32(w), h: float32(h)}
	d.draws = 0
}

func (d *ebitenDevice) CreateLineBuffer(unit [2]render.Vertex, offsets []render.Vertex) (render.BufferID, error) {
	d.next++
	d.lines[d.next] = render.LineSet{Unit: unit, Offsets: append([]render.Vertex(nil), offsets...)}
	return d.next, nil
}

func (d *ebitenDevice) CreateDynamicBuffer() (render.BufferID, error) {
	d.next++
	return d.next, nil
}

func (d *ebitenDevice) Release(id render.BufferID) { delete(d.lines, id) }

func (d *ebitenDevice) DrawLinesInstanced(id render.BufferID, instances int, c color.RGBA) {
	ls, ok := d.lines[id]
	if !ok {
		render.Logger().Warn("ebiten: unknown line buffer", "id", id)
		return
	}
	ls.Offsets = ls.Offsets[:min(instances, len(ls.Offsets))]
	ends := ls.Expand()
	d.reset()
	for i := 0; i+1 < len(ends); i += 2 {
		x0, y0, x1, y1 := d.vp.lineRect(ends[i], ends[i+1])
		d.appendQuad(x0, y0, x1, y1, c)
	}
	d.flush()
}

func (d *ebitenDevice) DrawTriangles(id render.BufferID, verts []render.Vertex, c color.RGBA) {
	d.reset()
	for _, v := range verts {
		x, y := d.vp.point(v)
		d.appendVertex(x, y, c)
	}
	d.flush()
}

func (d *ebitenDevice) appendQuad(x0, y0, x1, y1 float32, c color.RGBA) {
	d.appendVertex(x0, y0, c)
	d.appendVertex(x1, y0, c)
	d.appendVertex(x0, y1, c)
	d.appendVertex(x0, y1, c)
	d.appendVertex(x1, y0, c)
	d.appendVertex(x1, y1, c)
}

func (d *ebitenDevice) appendVertex(x, y float32, c color.RGBA) {
	if len(d.verts) == maxBatchVertices {
		d.flush()
		d.reset()
	}
	d.indices = append(d.indices, uint16(len(d.verts)))
	d.verts = append(d.verts, ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	})
}

func (d *ebitenDevice) reset() {
	d.verts = d.verts[:0]
	d.indices = d.indices[:0]
}

func (d *ebitenDevice) flush() {
	if len(d.verts) == 0 || d.dst == nil {
		return
	}
	d.dst.DrawTriangles(d.verts, d.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	d.draws++
}
