package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Cells returns W*H.
func (s Size) Cells() int { return s.W * s.H }

// Valid reports whether both dimensions are at least one.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }
