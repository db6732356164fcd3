package app

import "bitlife/internal/render"

// viewport maps NDC onto a w x h pixel area anchored at the origin.
type viewport struct {
	w, h float32
}

// point maps a vertex to pixel coordinates. +1 maps to w and -1 to h, which
// is right for triangle edges.
func (vp viewport) point(v render.Vertex) (float32, float32) {
	return (v.X + 1) / 2 * vp.w, (1 - v.Y) / 2 * vp.h
}

// lineRect returns the one pixel wide rectangle covering an axis-aligned
// line from a to b. Endpoints on the far border are pulled in to the last
// pixel row or column so the border stays on screen.
func (vp viewport) lineRect(a, b render.Vertex) (x0, y0, x1, y1 float32) {
	ax, ay := vp.point(a)
	bx, by := vp.point(b)
	ax, bx = min(ax, vp.w-1), min(bx, vp.w-1)
	ay, by = min(ay, vp.h-1), min(by, vp.h-1)
	x0, x1 = min(ax, bx), max(ax, bx)
	y0, y1 = min(ay, by), max(ay, by)
	if x1-x0 < 1 {
		x1 = x0 + 1
	}
	if y1-y0 < 1 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}
