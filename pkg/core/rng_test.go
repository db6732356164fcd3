package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d diverged for equal seeds", i)
		}
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	a, b := NewRNG(1), NewRNG(2)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			return
		}
	}
	t.Fatal("different seeds produced identical sequences")
}

func TestChanceSaturates(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		if r.Chance(0) || r.Chance(-1) {
			t.Fatal("Chance(<=0) returned true")
		}
		if !r.Chance(1) || !r.Chance(2) {
			t.Fatal("Chance(>=1) returned false")
		}
	}
}
