// Package frame drives the update-then-render cycle. The Controller is the
// only caller of life.Engine.Update, and every input mutation is routed
// through it so mutations are serialized with frames.
package frame

import (
	"log/slog"
	"strconv"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/pkg/life"
)

// MaxTicks bounds the HUD ticks control.
const MaxTicks = 64

// Stats summarizes the controller state for HUDs and logs.
type Stats struct {
	Frames     uint64
	Generation uint64
	Population int
	Ticks      uint32
	Paused     bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithPacing limits updates to gps per second. Frames in between only render.
// Zero or negative values update on every frame.
func WithPacing(gps int) Option {
	return func(c *Controller) {
		if gps > 0 {
			c.pacer = core.NewFixedStep(gps)
		}
	}
}

// WithPacer installs an existing pacer, letting callers control its clock.
func WithPacer(fs *core.FixedStep) Option {
	return func(c *Controller) { c.pacer = fs }
}

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPaused starts the controller paused.
func WithPaused(paused bool) Option {
	return func(c *Controller) { c.paused = paused }
}

// Controller owns the frame sequence for one engine.
type Controller struct {
	engine   *life.Engine
	target   render.Target
	pacer    *core.FixedStep
	log      *slog.Logger
	paused   bool
	stepOnce bool
	frames   uint64
}

// New returns a controller for engine drawing to target. target may be nil
// for headless use and set later with SetTarget.
func New(engine *life.Engine, target render.Target, opts ...Option) *Controller {
	c := &Controller{engine: engine, target: target, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTarget switches the renderer used by the next frame.
func (c *Controller) SetTarget(t render.Target) { c.target = t }

// Size returns the engine dimensions.
func (c *Controller) Size() core.Size {
	return core.Size{W: c.engine.Width(), H: c.engine.Height()}
}

// Frame advances the simulation if due and then renders.
func (c *Controller) Frame() {
	c.Advance()
	c.Render()
}

// Advance runs one Update when the controller is running and the pacer
// allows it, or when a single step was requested while paused. It reports
// whether the engine advanced.
func (c *Controller) Advance() bool {
	switch {
	case c.stepOnce:
		c.stepOnce = false
	case c.paused:
		return false
	case c.pacer != nil && !c.pacer.ShouldStep():
		return false
	}
	c.engine.Update()
	return true
}

// Render draws the grid and then the cells from a freshly fetched view.
func (c *Controller) Render() {
	c.frames++
	if c.target == nil {
		return
	}
	c.target.DrawGrid()
	c.target.DrawCells(c.engine.View())
}

// View returns the engine view for collaborators that draw on their own
// schedule, such as the terminal renderer.
func (c *Controller) View() life.View { return c.engine.View() }

// Pause stops advancing the simulation. Rendering continues.
func (c *Controller) Pause() { c.setPaused(true) }

// Resume restarts the simulation.
func (c *Controller) Resume() { c.setPaused(false) }

// TogglePause flips the paused state.
func (c *Controller) TogglePause() { c.setPaused(!c.paused) }

func (c *Controller) setPaused(p bool) {
	if c.paused != p {
		c.log.Debug("pause state changed", "paused", p, "generation", c.engine.Generation())
	}
	c.paused = p
}

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.paused }

// StepOnce requests exactly one Update on the next frame, even while paused.
func (c *Controller) StepOnce() { c.stepOnce = true }

// Toggle flips one cell. Coordinates wrap.
func (c *Controller) Toggle(row, col int) { c.engine.ToggleCell(row, col) }

// Stamp places a pattern anchored at (row, col).
func (c *Controller) Stamp(kind life.Pattern, row, col int) {
	c.log.Debug("stamp", "pattern", kind.String(), "row", row, "col", col)
	c.engine.StampPattern(kind, row, col)
}

// Reset randomizes the grid.
func (c *Controller) Reset() {
	c.engine.Reset()
	c.log.Info("universe reset", "population", c.engine.Population())
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.engine.Clear()
	c.log.Info("universe cleared")
}

// SetTicks sets the generations per update. Zero is clamped to one by the
// engine.
func (c *Controller) SetTicks(n uint32) { c.engine.SetTicks(n) }

// Ticks returns the generations per update.
func (c *Controller) Ticks() uint32 { return c.engine.Ticks() }

// Stats returns a snapshot of the counters.
func (c *Controller) Stats() Stats {
	return Stats{
		Frames:     c.frames,
		Generation: c.engine.Generation(),
		Population: c.engine.Population(),
		Ticks:      c.engine.Ticks(),
		Paused:     c.paused,
	}
}

// Parameters lists the values shown on the HUD.
func (c *Controller) Parameters() []core.Parameter {
	st := c.Stats()
	return []core.Parameter{
		{Key: "ticks", Label: "Ticks/update", Type: core.ParamTypeInt, Value: strconv.FormatUint(uint64(st.Ticks), 10)},
		{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(st.Generation, 10)},
		{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Population)},
		{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(st.Paused)},
	}
}

// ParameterControls exposes the ticks control.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "ticks",
		Label:  "Ticks/update",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    1,
		Max:    MaxTicks,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter applies a HUD adjustment.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != "ticks" {
		return false
	}
	value = c.ParameterControls()[0].Clamp(value)
	c.SetTicks(uint32(value))
	return true
}
