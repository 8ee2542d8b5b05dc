package ui

import (
	"testing"

	"percolate/internal/percolation"
)

func TestLegendRowsFollowPalette(t *testing.T) {
	palette := percolation.Palette()
	rows := legendRows(palette)
	if len(rows) != len(palette) {
		t.Fatalf("got %d legend rows for %d colors", len(rows), len(palette))
	}
	if rows[percolation.DisplayWetBottom].label != "water at bottom" {
		t.Fatalf("bottom row label = %q", rows[percolation.DisplayWetBottom].label)
	}
	if rows[percolation.DisplaySolid].color != palette[percolation.DisplaySolid] {
		t.Fatal("legend colors out of sync with the palette")
	}
}
