package percolation

import (
	"context"
	"slices"
	"testing"
)

func TestEventsRebuildDisplay(t *testing.T) {
	g, seeds := generate(16, 0.62, 31)
	snap := Snapshot{Size: g.Size(), Cells: g.Snapshot(), Seeds: seeds}
	buf := snap.Display(nil)
	if !slices.Equal(buf, g.Display(nil)) {
		t.Fatal("snapshot display differs from grid display")
	}

	r := NewRunner(g, seeds, 0)
	r.Run(context.Background())
	for _, ev := range r.Events().Drain() {
		ev.Apply(buf, snap.Size)
	}
	if !slices.Equal(buf, g.Display(nil)) {
		t.Fatal("replaying events did not reproduce the settled grid")
	}
}
