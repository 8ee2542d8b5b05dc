package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
	cells := []uint8{0, 2, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{0, 0, 0, 255, 0, 0, 255, 255, 0, 0, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, cells, nil)
	if !slices.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("empty palette should clear the buffer, got %v", buf)
	}
}

func TestCellScale(t *testing.T) {
	if got := cellScale(600, 100); got != 6 {
		t.Fatalf("cellScale(600, 100) = %v", got)
	}
	if got := cellScale(600, 0); got != 1 {
		t.Fatalf("cellScale(600, 0) = %v", got)
	}
}
