package percolation

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Config controls the slab dimensions, erosion model and animation pace.
type Config struct {
	// Size is the side length n of the square grid.
	Size int
	// Erosion is the probability p that a cell is eroded.
	Erosion float64
	// Speed is the delay between two propagation steps.
	Speed time.Duration

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    100,
		Erosion: 0.58,
		Speed:   time.Millisecond,
		Seed:    1337,
	}
}

// Validate checks that n >= 1, 0 <= p <= 1 and speed >= 0.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size %d must be at least 1", ErrInvalidConfig, c.Size)
	}
	if math.IsNaN(c.Erosion) || c.Erosion < 0 || c.Erosion > 1 {
		return fmt.Errorf("%w: erosion %v must be within [0,1]", ErrInvalidConfig, c.Erosion)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: speed %v must not be negative", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Erosion = parsed
		}
	}
	if v, ok := cfg["speed_ms"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Speed = time.Duration(parsed * float64(time.Millisecond))
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
