package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bitlife/internal/frame"
	"bitlife/pkg/life"
)

func newTestModel(t *testing.T, w, h int) (Model, *life.Engine) {
	t.Helper()
	e, err := life.New(w, h, life.AllDead())
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(frame.New(e, nil), nil), e
}

func TestBlockRendererHalfBlocks(t *testing.T) {
	e, err := life.New(4, 3, life.AllDead())
	if err != nil {
		t.Fatal(err)
	}
	e.StampPattern(life.Glider, 0, 0)
	got := (&blockRenderer{}).Render(e.View())
	want := " ▀▄ \n▀▀▀ "
	if got != want {
		t.Fatalf("render = %q want %q", got, want)
	}
}

func TestBlockRendererReusesBuffer(t *testing.T) {
	e, err := life.New(8, 8, life.Random(3))
	if err != nil {
		t.Fatal(err)
	}
	b := &blockRenderer{}
	first := b.Render(e.View())
	second := b.Render(e.View())
	if first != second {
		t.Fatal("rendering the same view twice differed")
	}
	if lines := strings.Split(first, "\n"); len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeys(t *testing.T) {
	m, e := newTestModel(t, 8, 8)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if !m.ctrl.Paused() {
		t.Fatal("space should pause")
	}
	next, _ = m.Update(runes("n"))
	m = next.(Model)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if e.Generation() != 1 {
		t.Fatalf("generation=%d want 1", e.Generation())
	}
	if cmd == nil {
		t.Fatal("tick must schedule the next tick")
	}
	next, _ = m.Update(runes("+"))
	m = next.(Model)
	if e.Ticks() != 2 {
		t.Fatalf("ticks=%d want 2", e.Ticks())
	}

	_, cmd = m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not return tea.Quit")
	}
}

func TestModelMouseToggleAndStamp(t *testing.T) {
	m, e := newTestModel(t, 20, 20)
	click := tea.MouseMsg{X: gridLeft + 3, Y: gridTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	next, _ := m.Update(click)
	m = next.(Model)
	if !e.Alive(4, 3) {
		t.Fatal("click did not toggle the upper-half cell")
	}

	e.Clear()
	click.Ctrl = true
	click.X, click.Y = gridLeft+10, gridTop+5
	next, _ = m.Update(click)
	m = next.(Model)
	if e.Population() != 48 {
		t.Fatalf("ctrl click population=%d want 48", e.Population())
	}

	outside := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	before := e.Population()
	m.Update(outside)
	if e.Population() != before {
		t.Fatal("click outside the grid changed the universe")
	}
}

func TestModelHistoryAndView(t *testing.T) {
	m, e := newTestModel(t, 8, 8)
	e.SetCells([]life.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}})
	for i := 0; i < historyCapacity+5; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	if len(m.history) != historyCapacity {
		t.Fatalf("history length %d want %d", len(m.history), historyCapacity)
	}
	view := m.View()
	for _, want := range []string{"bitlife", "Generation", "Population", "RUNNING"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
