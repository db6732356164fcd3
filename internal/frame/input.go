package frame

import (
	"bitlife/internal/core"
	"bitlife/pkg/life"
)

// Modifier is the keyboard modifier held during a click.
type Modifier int

const (
	ModNone Modifier = iota
	ModShift
	ModCtrl
)

// Action is a backend-neutral key command.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStep
	ActionReset
	ActionClear
	ActionTicksUp
	ActionTicksDown
	ActionSwitchRenderer
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionTogglePause:    "pause",
	ActionStep:           "step",
	ActionReset:          "reset",
	ActionClear:          "clear",
	ActionTicksUp:        "ticks+",
	ActionTicksDown:      "ticks-",
	ActionSwitchRenderer: "switch-renderer",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// ActionForRune maps the printable key bindings shared by every frontend.
// Backends handle tab and escape themselves.
func ActionForRune(r rune) Action {
	switch r {
	case ' ':
		return ActionTogglePause
	case 'n', 'N':
		return ActionStep
	case 'r', 'R':
		return ActionReset
	case 'c', 'C':
		return ActionClear
	case '+', '=':
		return ActionTicksUp
	case '-', '_':
		return ActionTicksDown
	case '\t':
		return ActionSwitchRenderer
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// CellAt maps a pixel position on an immediate-mode canvas to the cell under
// it. Positions outside the grid clamp to the nearest edge cell.
func CellAt(px, py, cellSize int, s core.Size) (row, col int) {
	step := cellSize + 1
	if step < 2 {
		step = 2
	}
	return clamp(floorDiv(py, step), 0, s.H-1), clamp(floorDiv(px, step), 0, s.W-1)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StampFor returns the pattern a modified click places. ok is false for an
// unmodified click, which toggles instead.
func StampFor(mod Modifier) (kind life.Pattern, ok bool) {
	switch mod {
	case ModShift:
		return life.Glider, true
	case ModCtrl:
		return life.Pulsar, true
	}
	return 0, false
}

// Click applies a mouse click at cell (row, col).
func (c *Controller) Click(row, col int, mod Modifier) {
	if kind, ok := StampFor(mod); ok {
		c.Stamp(kind, row, col)
		return
	}
	c.Toggle(row, col)
}

// ClickPixel maps a pixel position with CellAt and applies the click.
func (c *Controller) ClickPixel(px, py, cellSize int, mod Modifier) (row, col int) {
	row, col = CellAt(px, py, cellSize, c.Size())
	c.Click(row, col, mod)
	return row, col
}

// Apply runs a key command. It returns false for ActionQuit and for
// ActionSwitchRenderer, which the frontend owns.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionTogglePause:
		c.TogglePause()
	case ActionStep:
		c.StepOnce()
	case ActionReset:
		c.Reset()
	case ActionClear:
		c.Clear()
	case ActionTicksUp:
		c.SetIntParameter("ticks", int(c.Ticks())+1)
	case ActionTicksDown:
		c.SetIntParameter("ticks", int(c.Ticks())-1)
	case ActionNone:
	default:
		return false
	}
	return true
}
