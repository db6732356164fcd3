package render

import (
	"fmt"
	"image/color"

	"bitlife/internal/core"
	"bitlife/pkg/life"
)

// Vertex is a position in normalized device coordinates: x and y in [-1, 1]
// with y pointing up.
type Vertex struct {
	X, Y float32
}

// BufferID names a vertex buffer owned by a Device.
type BufferID uint32

// Device is the GPU-facing side of the instanced adapter.
type Device interface {
	// CreateLineBuffer uploads one unit line and its per-instance offsets.
	CreateLineBuffer(unit [2]Vertex, offsets []Vertex) (BufferID, error)
	// CreateDynamicBuffer allocates a buffer that is refilled every frame.
	CreateDynamicBuffer() (BufferID, error)
	// DrawLinesInstanced draws the unit line of id once per offset.
	DrawLinesInstanced(id BufferID, instances int, c color.RGBA)
	// DrawTriangles uploads verts into the dynamic buffer id and draws them
	// as a triangle list in one call.
	DrawTriangles(id BufferID, verts []Vertex, c color.RGBA)
	// Release frees a buffer.
	Release(id BufferID)
}

// LineSet is one axis of the static grid: a unit line replicated at each
// offset.
type LineSet struct {
	Unit    [2]Vertex
	Offsets []Vertex
}

// Expand returns the two endpoints of every instance.
func (ls LineSet) Expand() []Vertex {
	out := make([]Vertex, 0, 2*len(ls.Offsets))
	for _, off := range ls.Offsets {
		out = append(out,
			Vertex{ls.Unit[0].X + off.X, ls.Unit[0].Y + off.Y},
			Vertex{ls.Unit[1].X + off.X, ls.Unit[1].Y + off.Y})
	}
	return out
}

// GridGeometry is the static line geometry for a fixed-size universe.
type GridGeometry struct {
	Size       core.Size
	Vertical   LineSet
	Horizontal LineSet
}

// VertexCount returns the number of line endpoints in the expanded grid,
// 2*(W+1+H+1).
func (g *GridGeometry) VertexCount() int {
	return 2 * (len(g.Vertical.Offsets) + len(g.Horizontal.Offsets))
}

// NewGridGeometry builds the grid lines for s in NDC.
func NewGridGeometry(s core.Size) *GridGeometry {
	g := &GridGeometry{
		Size: s,
		Vertical: LineSet{
			Unit:    [2]Vertex{{0, -1}, {0, 1}},
			Offsets: make([]Vertex, 0, s.W+1),
		},
		Horizontal: LineSet{
			Unit:    [2]Vertex{{-1, 0}, {1, 0}},
			Offsets: make([]Vertex, 0, s.H+1),
		},
	}
	for i := 0; i <= s.W; i++ {
		g.Vertical.Offsets = append(g.Vertical.Offsets, Vertex{X: ndcX(i, s.W)})
	}
	for j := 0; j <= s.H; j++ {
		g.Horizontal.Offsets = append(g.Horizontal.Offsets, Vertex{Y: ndcY(j, s.H)})
	}
	return g
}

func ndcX(col, w int) float32 { return -1 + 2*float32(col)/float32(w) }
func ndcY(row, h int) float32 { return 1 - 2*float32(row)/float32(h) }

// Resources holds everything InitGrid created on a device. It is owned by
// the caller and passed back into every draw.
type Resources struct {
	Geometry   *GridGeometry
	vertical   BufferID
	horizontal BufferID
	cells      BufferID
}

// Instanced draws the static grid with one instanced call per axis and the
// live cells with a single triangle-list call.
type Instanced struct {
	pal   Palette
	cells []Vertex
}

// NewInstanced returns an instanced adapter with the given colours.
func NewInstanced(pal Palette) *Instanced {
	return &Instanced{pal: pal}
}

// InitGrid builds the static grid geometry once and uploads it to dev.
func (in *Instanced) InitGrid(dev Device, s core.Size) (*Resources, error) {
	geom := NewGridGeometry(s)
	res := &Resources{Geometry: geom}
	var err error
	if res.vertical, err = dev.CreateLineBuffer(geom.Vertical.Unit, geom.Vertical.Offsets); err != nil {
		return nil, fmt.Errorf("render: vertical grid buffer: %w", err)
	}
	if res.horizontal, err = dev.CreateLineBuffer(geom.Horizontal.Unit, geom.Horizontal.Offsets); err != nil {
		dev.Release(res.vertical)
		return nil, fmt.Errorf("render: horizontal grid buffer: %w", err)
	}
	if res.cells, err = dev.CreateDynamicBuffer(); err != nil {
		dev.Release(res.vertical)
		dev.Release(res.horizontal)
		return nil, fmt.Errorf("render: cell buffer: %w", err)
	}
	Logger().Debug("grid geometry uploaded", "width", s.W, "height", s.H, "vertices", geom.VertexCount())
	return res, nil
}

// Release frees the device buffers held by res.
func (in *Instanced) Release(dev Device, res *Resources) {
	if res == nil {
		return
	}
	dev.Release(res.vertical)
	dev.Release(res.horizontal)
	dev.Release(res.cells)
}

// DrawGrid issues one instanced draw per axis. No geometry is rebuilt.
func (in *Instanced) DrawGrid(dev Device, res *Resources) {
	dev.DrawLinesInstanced(res.vertical, len(res.Geometry.Vertical.Offsets), in.pal.Grid)
	dev.DrawLinesInstanced(res.horizontal, len(res.Geometry.Horizontal.Offsets), in.pal.Grid)
}

// DrawCells rebuilds the live-cell triangles and draws them in one call. It
// returns the number of live cells drawn; a frame with none issues no draw.
func (in *Instanced) DrawCells(dev Device, res *Resources, v life.View) int {
	verts := in.BuildCells(v)
	if len(verts) == 0 {
		return 0
	}
	dev.DrawTriangles(res.cells, verts, in.pal.Alive)
	return len(verts) / 6
}

// BuildCells clears the adapter's vertex buffer and appends two triangles per
// live cell. The returned slice is reused by the next call.
func (in *Instanced) BuildCells(v life.View) []Vertex {
	w, h := v.Width(), v.Height()
	before := cap(in.cells)
	in.cells = in.cells[:0]
	EachAlive(v, func(row, col int) {
		x0, x1 := ndcX(col, w), ndcX(col+1, w)
		y0, y1 := ndcY(row, h), ndcY(row+1, h)
		in.cells = append(in.cells,
			Vertex{x0, y0}, Vertex{x1, y0}, Vertex{x0, y1},
			Vertex{x0, y1}, Vertex{x1, y0}, Vertex{x1, y1},
		)
	})
	if cap(in.cells) != before {
		Logger().Debug("cell vertex buffer grew", "capacity", cap(in.cells))
	}
	return in.cells
}

// CellFromQuad recovers the (row, col) whose quad starts at the first vertex
// of a six-vertex group produced by BuildCells.
func CellFromQuad(quad []Vertex, s core.Size) (row, col int) {
	x := (quad[0].X + 1) * float32(s.W) / 2
	y := (1 - quad[0].Y) * float32(s.H) / 2
	return int(y + 0.5), int(x + 0.5)
}
