package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the view of a simulation needed by the HUD and renderer.
type Sim interface {
	Name() string
	Size() Size
}
