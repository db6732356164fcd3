package life

import (
	"errors"
	"slices"
	"testing"
)

func newDead(t *testing.T, w, h int) *Engine {
	t.Helper()
	e, err := New(w, h, AllDead())
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return e
}

func aliveSet(e *Engine) map[Cell]bool {
	out := map[Cell]bool{}
	v := e.View()
	for r := 0; r < v.Height(); r++ {
		for c := 0; c < v.Width(); c++ {
			if v.Alive(r, c) {
				out[Cell{r, c}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, e *Engine, want map[Cell]bool, step string) {
	t.Helper()
	for r := 0; r < e.Height(); r++ {
		for c := 0; c < e.Width(); c++ {
			alive := e.Alive(r, c)
			if want[Cell{r, c}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, r, c, alive, want[Cell{r, c}])
			}
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {0, 0}} {
		if _, err := New(dims[0], dims[1], AllDead()); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d,%d) err=%v, expected ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestSizeAndViewLength(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {8, 1}, {13, 7}, {64, 64}} {
		e := newDead(t, dims[0], dims[1])
		if e.Size() != dims[0]*dims[1] {
			t.Fatalf("%v size=%d", dims, e.Size())
		}
		if got, want := e.View().ByteLength(), (dims[0]*dims[1]+7)/8; got != want {
			t.Fatalf("%v byte length=%d, expected %d", dims, got, want)
		}
	}
}

func TestAllDeadStartsEmpty(t *testing.T) {
	e := newDead(t, 10, 6)
	if e.Population() != 0 {
		t.Fatalf("AllDead engine has %d live cells", e.Population())
	}
}

func TestRandomSeedDeterministic(t *testing.T) {
	a, _ := New(32, 32, Random(99))
	b, _ := New(32, 32, Random(99))
	if !slices.Equal(a.View().Bytes(), b.View().Bytes()) {
		t.Fatal("equal seeds produced different initial grids")
	}
	if a.Population() == 0 || a.Population() == a.Size() {
		t.Fatalf("random fill produced degenerate population %d", a.Population())
	}
}

func TestResetDiffersWithinRun(t *testing.T) {
	e, _ := New(32, 32, Random(5))
	first := e.View().Snapshot()
	e.Reset()
	if slices.Equal(first.Bytes(), e.View().Bytes()) {
		t.Fatal("Reset repeated the previous state")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := newDead(t, 5, 5)
	e.SetCells([]Cell{{1, 2}, {2, 2}, {3, 2}})

	e.Update()
	expectAlive(t, e, map[Cell]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "first step")

	e.Update()
	expectAlive(t, e, map[Cell]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "second step")
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	e, _ := New(12, 9, Random(3))
	e.Clear()
	for i := 0; i < 10; i++ {
		e.Update()
		if e.Population() != 0 {
			t.Fatalf("update %d revived cells on a cleared grid", i)
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	for _, dims := range [][2]int{{5, 5}, {5, 7}, {16, 16}} {
		e := newDead(t, dims[0], dims[1])
		e.StampPattern(Glider, 0, 0)
		for i := 0; i < 4; i++ {
			e.Update()
		}
		want := map[Cell]bool{}
		for _, off := range Glider.Offsets() {
			want[Cell{(off.Row + 1) % e.Height(), (off.Col + 1) % e.Width()}] = true
		}
		expectAlive(t, e, want, "after four generations")
	}
}

func TestGliderWrapsAroundEdge(t *testing.T) {
	e := newDead(t, 6, 6)
	e.StampPattern(Glider, 5, 5)
	if e.Population() != 5 {
		t.Fatalf("stamp near the corner kept %d of 5 cells", e.Population())
	}
	for _, off := range Glider.Offsets() {
		if !e.Alive((5+off.Row)%6, (5+off.Col)%6) {
			t.Fatalf("offset %v not wrapped into the grid", off)
		}
	}
	for i := 0; i < 24; i++ {
		e.Update()
	}
	// 24 generations move the glider (6,6): one full lap.
	for _, off := range Glider.Offsets() {
		if !e.Alive(5+off.Row, 5+off.Col) {
			t.Fatalf("glider did not complete a lap, missing %v", off)
		}
	}
	if e.Population() != 5 {
		t.Fatalf("population after lap = %d", e.Population())
	}
}

func TestPulsarPeriodThree(t *testing.T) {
	e := newDead(t, 17, 17)
	e.StampPattern(Pulsar, 8, 8)
	if e.Population() != 48 {
		t.Fatalf("pulsar has %d cells, expected 48", e.Population())
	}
	start := e.View().Snapshot()
	e.Update()
	if slices.Equal(start.Bytes(), e.View().Bytes()) {
		t.Fatal("pulsar did not change after one generation")
	}
	e.Update()
	e.Update()
	if !slices.Equal(start.Bytes(), e.View().Bytes()) {
		t.Fatal("pulsar did not return after three generations")
	}
}

func TestToggleWraps(t *testing.T) {
	e := newDead(t, 7, 5)
	e.ToggleCell(e.Height(), 0)
	if !e.Alive(0, 0) || e.Population() != 1 {
		t.Fatal("ToggleCell(height, 0) did not toggle (0,0)")
	}
	e.ToggleCell(0, 0)
	if e.Population() != 0 {
		t.Fatal("ToggleCell(0, 0) did not flip the same bit back")
	}
	e.ToggleCell(-1, -1)
	if !e.Alive(e.Height()-1, e.Width()-1) {
		t.Fatal("negative coordinates must wrap to the far corner")
	}
}

func TestSetTicksMatchesRepeatedUpdates(t *testing.T) {
	a, _ := New(20, 14, Random(11))
	b, _ := New(20, 14, Random(11))

	a.SetTicks(3)
	a.Update()
	for i := 0; i < 3; i++ {
		b.Update()
	}
	if !slices.Equal(a.View().Bytes(), b.View().Bytes()) {
		t.Fatal("SetTicks(3) diverged from three single updates")
	}
	if a.Generation() != 3 || b.Generation() != 3 {
		t.Fatalf("generations = %d, %d; expected 3", a.Generation(), b.Generation())
	}
}

func TestSetTicksZeroClamps(t *testing.T) {
	e := newDead(t, 4, 4)
	e.SetTicks(0)
	if e.Ticks() != 1 {
		t.Fatalf("SetTicks(0) gave %d ticks, expected 1", e.Ticks())
	}
	e.Update()
	if e.Generation() != 1 {
		t.Fatal("update after SetTicks(0) must still advance one generation")
	}
}

func TestParsePattern(t *testing.T) {
	for _, p := range Patterns() {
		got, err := ParsePattern(" " + p.String() + " ")
		if err != nil || got != p {
			t.Fatalf("ParsePattern(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePattern("spaceship"); err == nil {
		t.Fatal("unknown pattern must fail")
	}
}

func TestViewSharesStorage(t *testing.T) {
	e := newDead(t, 9, 3)
	v := e.View()
	e.ToggleCell(1, 1)
	if !v.Alive(1, 1) {
		t.Fatal("view taken before a toggle must observe it")
	}
	snap := v.Snapshot()
	e.ToggleCell(1, 1)
	if !snap.Alive(1, 1) {
		t.Fatal("snapshot must not observe later mutations")
	}
	if len(aliveSet(e)) != 0 {
		t.Fatal("toggle back did not clear the cell")
	}
}
