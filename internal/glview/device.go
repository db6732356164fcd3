//go:build gl

package glview

import (
	"fmt"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"

	"bitlife/internal/render"
)

const vertexSize = int32(unsafe.Sizeof(render.Vertex{}))

type buffer struct {
	unit    uint32
	offsets uint32
	count   int
	// capacity in bytes of a dynamic buffer's storage
	capacity int
}

// device implements render.Device with real instanced draws: the unit line
// is advanced per vertex and the offset per instance.
type device struct {
	sh      *shader
	vao     uint32
	next    render.BufferID
	buffers map[render.BufferID]*buffer
}

func newDevice() (*device, error) {
	sh, err := createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	d := &device{sh: sh, buffers: map[render.BufferID]*buffer{}}
	gl.GenVertexArrays(1, &d.vao)
	return d, nil
}

func (d *device) destroy() {
	for id := range d.buffers {
		d.Release(id)
	}
	gl.DeleteVertexArrays(1, &d.vao)
	d.sh.destroy()
}

func (d *device) CreateLineBuffer(unit [2]render.Vertex, offsets []render.Vertex) (render.BufferID, error) {
	if len(offsets) == 0 {
		return 0, fmt.Errorf("glview: line buffer without instances")
	}
	b := &buffer{count: len(offsets)}
	gl.GenBuffers(1, &b.unit)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.unit)
	gl.BufferData(gl.ARRAY_BUFFER, 2*int(vertexSize), gl.Ptr(&unit[0]), gl.STATIC_DRAW)
	gl.GenBuffers(1, &b.offsets)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.offsets)
	gl.BufferData(gl.ARRAY_BUFFER, len(offsets)*int(vertexSize), gl.Ptr(offsets), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return d.store(b), nil
}

func (d *device) CreateDynamicBuffer() (render.BufferID, error) {
	b := &buffer{}
	gl.GenBuffers(1, &b.unit)
	return d.store(b), nil
}

func (d *device) store(b *buffer) render.BufferID {
	d.next++
	d.buffers[d.next] = b
	return d.next
}

func (d *device) Release(id render.BufferID) {
	b, ok := d.buffers[id]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &b.unit)
	if b.offsets != 0 {
		gl.DeleteBuffers(1, &b.offsets)
	}
	delete(d.buffers, id)
}

func (d *device) bind(c color.RGBA) {
	gl.UseProgram(d.sh.handle)
	gl.BindVertexArray(d.vao)
	gl.Uniform4f(d.sh.color, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func (d *device) DrawLinesInstanced(id render.BufferID, instances int, c color.RGBA) {
	b, ok := d.buffers[id]
	if !ok || b.offsets == 0 {
		render.Logger().Warn("glview: unknown line buffer", "id", id)
		return
	}
	d.bind(c)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.unit)
	gl.EnableVertexAttribArray(d.sh.position)
	gl.VertexAttribPointerWithOffset(d.sh.position, 2, gl.FLOAT, false, vertexSize, 0)
	gl.VertexAttribDivisor(d.sh.position, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.offsets)
	gl.EnableVertexAttribArray(d.sh.offset)
	gl.VertexAttribPointerWithOffset(d.sh.offset, 2, gl.FLOAT, false, vertexSize, 0)
	gl.VertexAttribDivisor(d.sh.offset, 1)

	gl.DrawArraysInstanced(gl.LINES, 0, 2, int32(min(instances, b.count)))

	gl.VertexAttribDivisor(d.sh.offset, 0)
	gl.DisableVertexAttribArray(d.sh.offset)
}

func (d *device) DrawTriangles(id render.BufferID, verts []render.Vertex, c color.RGBA) {
	b, ok := d.buffers[id]
	if !ok || len(verts) == 0 {
		return
	}
	d.bind(c)
	size := len(verts) * int(vertexSize)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.unit)
	if size > b.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		b.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	}
	gl.EnableVertexAttribArray(d.sh.position)
	gl.VertexAttribPointerWithOffset(d.sh.position, 2, gl.FLOAT, false, vertexSize, 0)
	gl.DisableVertexAttribArray(d.sh.offset)
	gl.VertexAttrib2f(d.sh.offset, 0, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))
}
