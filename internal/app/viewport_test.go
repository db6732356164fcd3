package app

import (
	"testing"

	"bitlife/internal/render"
)

func TestLineRectKeepsBordersOnScreen(t *testing.T) {
	vp := viewport{w: 40, h: 20}

	// Right border: vertical line at NDC x = +1.
	x0, y0, x1, y1 := vp.lineRect(render.Vertex{X: 1, Y: 1}, render.Vertex{X: 1, Y: -1})
	if x0 != 39 || x1 != 40 {
		t.Fatalf("right border spans x %v..%v, expected 39..40", x0, x1)
	}
	if y0 != 0 || y1 != 19 {
		t.Fatalf("right border spans y %v..%v, expected 0..19", y0, y1)
	}

	// Bottom border: horizontal line at NDC y = -1.
	x0, y0, x1, y1 = vp.lineRect(render.Vertex{X: -1, Y: -1}, render.Vertex{X: 1, Y: -1})
	if y0 != 19 || y1 != 20 {
		t.Fatalf("bottom border spans y %v..%v, expected 19..20", y0, y1)
	}
	if x0 != 0 || x1 != 39 {
		t.Fatalf("bottom border spans x %v..%v, expected 0..39", x0, x1)
	}

	// Interior lines are untouched.
	x0, _, x1, _ = vp.lineRect(render.Vertex{X: 0, Y: 1}, render.Vertex{X: 0, Y: -1})
	if x0 != 20 || x1 != 21 {
		t.Fatalf("centre line spans x %v..%v, expected 20..21", x0, x1)
	}
}

func TestViewportPointCoversCorners(t *testing.T) {
	vp := viewport{w: 40, h: 20}
	if x, y := vp.point(render.Vertex{X: -1, Y: 1}); x != 0 || y != 0 {
		t.Fatalf("top-left maps to (%v,%v)", x, y)
	}
	if x, y := vp.point(render.Vertex{X: 1, Y: -1}); x != 40 || y != 20 {
		t.Fatalf("bottom-right maps to (%v,%v)", x, y)
	}
}
