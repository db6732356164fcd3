package life

import (
	"fmt"
	"strings"
)

// Pattern names a fixed shape that can be stamped onto the grid.
type Pattern int

const (
	// Glider is the classic 5-cell spaceship. It moves (+1,+1) every four
	// generations.
	Glider Pattern = iota
	// Pulsar is the 48-cell period-3 oscillator, centred on its anchor.
	Pulsar
)

var glider = []Cell{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

var pulsar = pulsarCells()

// pulsarCells builds the pulsar from its two arm families: rows ±1 and ±6
// carry cells at columns ±2..±4, and the transposed arms fill the rest.
func pulsarCells() []Cell {
	cells := make([]Cell, 0, 48)
	for _, a := range []int{-6, -1, 1, 6} {
		for _, b := range []int{-4, -3, -2, 2, 3, 4} {
			cells = append(cells, Cell{Row: a, Col: b})
		}
	}
	for _, a := range []int{-4, -3, -2, 2, 3, 4} {
		for _, b := range []int{-6, -1, 1, 6} {
			cells = append(cells, Cell{Row: a, Col: b})
		}
	}
	return cells
}

// String returns the lowercase pattern name.
func (p Pattern) String() string {
	switch p {
	case Glider:
		return "glider"
	case Pulsar:
		return "pulsar"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

func (p Pattern) offsets() []Cell {
	switch p {
	case Glider:
		return glider
	case Pulsar:
		return pulsar
	default:
		return nil
	}
}

// Offsets returns a copy of the pattern's cells relative to its anchor.
func (p Pattern) Offsets() []Cell {
	return append([]Cell(nil), p.offsets()...)
}

// Patterns lists every known pattern.
func Patterns() []Pattern { return []Pattern{Glider, Pulsar} }

// ParsePattern resolves a pattern by name, ignoring case.
func ParsePattern(name string) (Pattern, error) {
	for _, p := range Patterns() {
		if strings.EqualFold(strings.TrimSpace(name), p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("life: unknown pattern %q", name)
}
