package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	if !g.Contains(2, 1) || g.Contains(3, 0) || g.Contains(0, -1) {
		t.Fatal("Contains does not match the grid bounds")
	}
	g.Set(2, 1, 7)
	if g.Cells()[g.Index(2, 1)] != 7 || g.Get(2, 1) != 7 {
		t.Fatal("Set did not write the row-major cell")
	}
	if d := NewByteGrid(0, -1); d.W != 1 || d.H != 1 {
		t.Fatalf("degenerate grid = %dx%d, want 1x1", d.W, d.H)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
