package percolation

import "errors"

var (
	// ErrInvalidConfig reports a size, erosion probability or speed out of range.
	ErrInvalidConfig = errors.New("percolation: invalid config")
	// ErrAlreadyRunning reports a Start while another run is still active.
	ErrAlreadyRunning = errors.New("percolation: run already active")
)
