package percolation

import "image/color"

// Display values written by Grid.Display and indexed into Palette.
const (
	DisplaySolid uint8 = iota
	DisplayEroded
	DisplayWet
	DisplayWetBottom
)

var percolationPalette = []color.RGBA{
	DisplaySolid:     {R: 0, G: 0, B: 0, A: 255},
	DisplayEroded:    {R: 255, G: 255, B: 255, A: 255},
	DisplayWet:       {R: 0, G: 0, B: 255, A: 255},
	DisplayWetBottom: {R: 255, G: 0, B: 0, A: 255},
}

// Palette returns the colors used to paint display values.
func Palette() []color.RGBA {
	return percolationPalette
}

// Display encodes every cell into buf as a palette index. Wet cells in the
// last row are marked separately so a renderer can show where water came
// through. buf is reallocated when its length does not match the grid.
func (g *Grid) Display(buf []uint8) []uint8 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.cells.Cells()
	if len(buf) != len(src) {
		buf = make([]uint8, len(src))
	}
	n := g.cells.W
	bottom := (n - 1) * n
	for i, v := range src {
		buf[i] = DisplayValue(Cell(v), i >= bottom)
	}
	return buf
}

// Display encodes the snapshot cells the same way as Grid.Display.
func (s Snapshot) Display(buf []uint8) []uint8 {
	if len(buf) != len(s.Cells) {
		buf = make([]uint8, len(s.Cells))
	}
	bottom := (s.Size - 1) * s.Size
	for i, c := range s.Cells {
		buf[i] = DisplayValue(c, i >= bottom)
	}
	return buf
}

// Apply paints a progress event into a display buffer of an n×n grid.
func (e Event) Apply(buf []uint8, n int) {
	if e.Kind != EventWet {
		return
	}
	idx := e.Point.Y*n + e.Point.X
	if idx < 0 || idx >= len(buf) {
		return
	}
	if e.ReachedBottom {
		buf[idx] = DisplayWetBottom
		return
	}
	buf[idx] = DisplayWet
}

// DisplayValue maps a cell to its palette index.
func DisplayValue(c Cell, lastRow bool) uint8 {
	switch c {
	case Eroded:
		return DisplayEroded
	case Wet:
		if lastRow {
			return DisplayWetBottom
		}
		return DisplayWet
	default:
		return DisplaySolid
	}
}
