package render

import (
	"bitlife/internal/core"
	"bitlife/pkg/life"
)

// Target is a renderer bound to its surface, ready for the frame loop.
type Target interface {
	DrawGrid()
	DrawCells(v life.View)
}

type immediateTarget struct {
	im   *Immediate
	size core.Size
}

// BindImmediate binds an immediate adapter to fixed grid dimensions.
func BindImmediate(im *Immediate, s core.Size) Target {
	return immediateTarget{im: im, size: s}
}

func (t immediateTarget) DrawGrid()             { t.im.DrawGrid(t.size) }
func (t immediateTarget) DrawCells(v life.View) { t.im.DrawCells(v) }

type instancedTarget struct {
	in  *Instanced
	dev Device
	res *Resources
}

// BindInstanced binds an instanced adapter to the device and resources that
// InitGrid returned.
func BindInstanced(in *Instanced, dev Device, res *Resources) Target {
	return instancedTarget{in: in, dev: dev, res: res}
}

func (t instancedTarget) DrawGrid()             { t.in.DrawGrid(t.dev, t.res) }
func (t instancedTarget) DrawCells(v life.View) { t.in.DrawCells(t.dev, t.res, v) }
