package frame

import (
	"testing"
	"time"

	"bitlife/internal/core"
	"bitlife/pkg/life"
)

type event struct {
	kind string
	gen  uint64
	pop  int
}

type recordingTarget struct {
	engine *life.Engine
	events []event
}

func (r *recordingTarget) DrawGrid() {
	r.events = append(r.events, event{kind: "grid", gen: r.engine.Generation()})
}

func (r *recordingTarget) DrawCells(v life.View) {
	pop := 0
	for row := 0; row < v.Height(); row++ {
		for col := 0; col < v.Width(); col++ {
			if v.Alive(row, col) {
				pop++
			}
		}
	}
	r.events = append(r.events, event{kind: "cells", gen: r.engine.Generation(), pop: pop})
}

func newController(t *testing.T, opts ...Option) (*Controller, *life.Engine, *recordingTarget) {
	t.Helper()
	e, err := life.New(8, 8, life.AllDead())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	rt := &recordingTarget{engine: e}
	return New(e, rt, opts...), e, rt
}

func TestFrameUpdatesThenRenders(t *testing.T) {
	c, e, rt := newController(t)
	e.SetCells([]life.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}})

	c.Frame()
	if len(rt.events) != 2 || rt.events[0].kind != "grid" || rt.events[1].kind != "cells" {
		t.Fatalf("unexpected draw sequence %+v", rt.events)
	}
	if rt.events[0].gen != 1 {
		t.Fatalf("grid drawn at generation %d, want 1", rt.events[0].gen)
	}
	if rt.events[1].pop != 3 {
		t.Fatalf("cells drawn with population %d, want 3", rt.events[1].pop)
	}
	if !e.Alive(0, 1) || !e.Alive(2, 1) {
		t.Fatal("view was not re-fetched after the update")
	}
}

func TestPauseStopsUpdatesButKeepsRendering(t *testing.T) {
	c, e, rt := newController(t)
	c.Pause()
	for i := 0; i < 3; i++ {
		c.Frame()
	}
	if e.Generation() != 0 {
		t.Fatalf("paused controller advanced to generation %d", e.Generation())
	}
	if len(rt.events) != 6 {
		t.Fatalf("expected 3 rendered frames, got %d events", len(rt.events))
	}
	if got := c.Stats().Frames; got != 3 {
		t.Fatalf("frames=%d want 3", got)
	}

	c.StepOnce()
	c.Frame()
	c.Frame()
	if e.Generation() != 1 {
		t.Fatalf("step once advanced to generation %d, want 1", e.Generation())
	}

	c.TogglePause()
	if c.Paused() {
		t.Fatal("toggle did not resume")
	}
	c.Frame()
	if e.Generation() != 2 {
		t.Fatalf("resumed controller at generation %d, want 2", e.Generation())
	}
}

func TestPacingSkipsUpdates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := core.NewFixedStep(10)
	fs.SetClock(func() time.Time { return clock })
	c, e, _ := newController(t, WithPacer(fs))

	c.Frame()
	for i := 0; i < 5; i++ {
		clock = clock.Add(10 * time.Millisecond)
		c.Frame()
	}
	if e.Generation() != 1 {
		t.Fatalf("generation=%d want 1 inside one interval", e.Generation())
	}
	clock = clock.Add(60 * time.Millisecond)
	c.Frame()
	if e.Generation() != 2 {
		t.Fatalf("generation=%d want 2 after the interval", e.Generation())
	}
	if c.Stats().Frames != 7 {
		t.Fatalf("frames=%d want 7", c.Stats().Frames)
	}
}

func TestWithPausedOption(t *testing.T) {
	c, e, _ := newController(t, WithPaused(true))
	c.Frame()
	if !c.Paused() || e.Generation() != 0 {
		t.Fatal("controller did not start paused")
	}
}

func TestNilTargetCountsFrames(t *testing.T) {
	e, err := life.New(4, 4, life.AllDead())
	if err != nil {
		t.Fatal(err)
	}
	c := New(e, nil)
	c.Frame()
	if c.Stats().Frames != 1 || e.Generation() != 1 {
		t.Fatalf("stats %+v", c.Stats())
	}
}

func TestMutationsRouteToEngine(t *testing.T) {
	c, e, _ := newController(t)
	c.Toggle(8, 0)
	if !e.Alive(0, 0) {
		t.Fatal("toggle did not wrap to (0,0)")
	}
	c.Clear()
	if e.Population() != 0 {
		t.Fatal("clear left live cells")
	}
	c.Stamp(life.Glider, 0, 0)
	if e.Population() != 5 {
		t.Fatalf("glider stamp population=%d", e.Population())
	}
	c.Reset()
	if e.Population() == 0 {
		t.Fatal("reset produced an empty universe")
	}
	c.SetTicks(0)
	if c.Ticks() != 1 {
		t.Fatalf("ticks=%d want clamp to 1", c.Ticks())
	}
}

func TestTicksParameter(t *testing.T) {
	c, _, _ := newController(t)
	if !c.SetIntParameter("ticks", 5) || c.Ticks() != 5 {
		t.Fatalf("ticks=%d want 5", c.Ticks())
	}
	c.SetIntParameter("ticks", 1000)
	if c.Ticks() != MaxTicks {
		t.Fatalf("ticks=%d want %d", c.Ticks(), MaxTicks)
	}
	c.SetIntParameter("ticks", -3)
	if c.Ticks() != 1 {
		t.Fatalf("ticks=%d want 1", c.Ticks())
	}
	if c.SetIntParameter("density", 3) {
		t.Fatal("unknown parameter accepted")
	}
	params := c.Parameters()
	if params[0].Key != "ticks" || params[0].Value != "1" {
		t.Fatalf("unexpected params %+v", params)
	}
}
