package percolation

import (
	"math/rand/v2"
	"sync"

	"percolate/internal/core"
)

// Cell enumerates the state of one block of concrete.
type Cell uint8

const (
	Solid Cell = iota
	Eroded
	Wet
)

func (c Cell) String() string {
	switch c {
	case Solid:
		return "solid"
	case Eroded:
		return "eroded"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// Point addresses a cell. X is the column, Y the row; row 0 is the top.
type Point struct {
	X, Y int
}

// Grid is the n×n slab. Cells only ever move from Eroded to Wet.
//
// All accessors are safe for concurrent use: the runner mutates the grid
// under the write lock while renderers read it under the read lock.
type Grid struct {
	mu    sync.RWMutex
	cells *core.ByteGrid
}

// Stats summarises the cell states of a grid.
type Stats struct {
	Solid  int
	Eroded int
	Wet    int
	// BottomWet counts wet cells in the last row.
	BottomWet int
}

// Percolated reports whether water reached the bottom row.
func (s Stats) Percolated() bool { return s.BottomWet > 0 }

// Generate builds a grid by eroding each cell with probability cfg.Erosion
// and wets every eroded cell of the top row. The returned seeds are in
// column order and form the initial frontier.
func Generate(cfg Config, rng *rand.Rand) (*Grid, []Point) {
	n := cfg.Size
	if n < 1 {
		n = 1
	}
	g := &Grid{cells: core.NewByteGrid(n, n)}
	p := cfg.Erosion
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := rng.Float64()
			if p > 0 && v <= p {
				g.cells.Set(x, y, uint8(Eroded))
			}
		}
	}

	var seeds []Point
	for x := 0; x < n; x++ {
		if Cell(g.cells.Get(x, 0)) == Eroded {
			g.cells.Set(x, 0, uint8(Wet))
			seeds = append(seeds, Point{X: x, Y: 0})
		}
	}
	return g, seeds
}

// Neighbors4 returns the in-bounds edge neighbours of p in the order
// up, down, left, right.
func Neighbors4(p Point, n int) []Point {
	out := make([]Point, 0, 4)
	candidates := [4]Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
	}
	for _, c := range candidates {
		if c.X < 0 || c.X >= n || c.Y < 0 || c.Y >= n {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Size returns the side length n.
func (g *Grid) Size() int { return g.cells.W }

// At returns the state of the cell at p, or Solid when p is out of bounds.
func (g *Grid) At(p Point) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.cells.Contains(p.X, p.Y) {
		return Solid
	}
	return Cell(g.cells.Get(p.X, p.Y))
}

// TryWet flips an eroded cell to wet and reports whether it did so.
// Solid, wet and out-of-bounds cells are left untouched.
func (g *Grid) TryWet(p Point) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tryWetLocked(p)
}

func (g *Grid) tryWetLocked(p Point) bool {
	if !g.cells.Contains(p.X, p.Y) {
		return false
	}
	if Cell(g.cells.Get(p.X, p.Y)) != Eroded {
		return false
	}
	g.cells.Set(p.X, p.Y, uint8(Wet))
	return true
}

// spread wets the eroded neighbours of p under a single write lock and
// returns the newly wet cells in neighbour order.
func (g *Grid) spread(p Point) []Point {
	n := g.Size()
	g.mu.Lock()
	defer g.mu.Unlock()
	var wetted []Point
	for _, nb := range Neighbors4(p, n) {
		if g.tryWetLocked(nb) {
			wetted = append(wetted, nb)
		}
	}
	return wetted
}

// Snapshot returns a copy of the cells in row-major order.
func (g *Grid) Snapshot() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.cells.Cells()
	out := make([]Cell, len(src))
	for i, v := range src {
		out[i] = Cell(v)
	}
	return out
}

// Count returns the number of cells in state c.
func (g *Grid) Count(c Cell) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, v := range g.cells.Cells() {
		if Cell(v) == c {
			total++
		}
	}
	return total
}

// Stats tallies the grid in one pass.
func (g *Grid) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var s Stats
	n := g.cells.W
	for i, v := range g.cells.Cells() {
		switch Cell(v) {
		case Solid:
			s.Solid++
		case Eroded:
			s.Eroded++
		case Wet:
			s.Wet++
			if i/n == n-1 {
				s.BottomWet++
			}
		}
	}
	return s
}
