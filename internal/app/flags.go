package app

import (
	"flag"
	"time"

	"percolate/internal/percolation"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Size    int
	Erosion float64
	Speed   time.Duration
	Seed    int64

	Extent  int
	Panel   int
	TPS     int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := percolation.DefaultConfig()
	return &Config{
		Size:    def.Size,
		Erosion: def.Erosion,
		Speed:   def.Speed,
		Seed:    def.Seed,
		Extent:  600,
		Panel:   240,
		TPS:     60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "n", c.Size, "side length of the concrete slab in cells")
	fs.Float64Var(&c.Erosion, "p", c.Erosion, "erosion probability of each cell")
	fs.DurationVar(&c.Speed, "speed", c.Speed, "delay between propagation steps")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first grid and fixed-seed resets")
	fs.IntVar(&c.Extent, "extent", c.Extent, "pixel size of the slab view")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the HUD panel in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log engine resets and runs to stderr")
}

// Simulation returns the engine configuration described by the flags.
func (c *Config) Simulation() percolation.Config {
	return percolation.Config{
		Size:    c.Size,
		Erosion: c.Erosion,
		Speed:   c.Speed,
		Seed:    c.Seed,
	}
}
