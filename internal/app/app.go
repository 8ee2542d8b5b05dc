//go:build ebiten

package app

import (
	"errors"
	"log"

	"percolate/internal/percolation"
	"percolate/internal/render"
	"percolate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a percolation engine to the ebiten.Game interface. The slab is
// painted from the current snapshot plus the progress events of the active run.
type Game struct {
	engine  *percolation.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *log.Logger

	run   *percolation.Runner
	cells []uint8
	size  int

	extent int
	panel  int
}

// New constructs a Game for the provided engine.
func New(engine *percolation.Engine, cfg *Config, logger *log.Logger) *Game {
	g := &Game{
		engine:  engine,
		hud:     ui.NewHUD(engine, cfg.Panel),
		overlay: ui.NewOverlay(percolation.Palette()),
		logger:  logger,
		extent:  cfg.Extent,
		panel:   cfg.Panel,
	}
	g.load(engine.Snapshot())
	return g
}

func (g *Game) load(snap percolation.Snapshot) {
	if g.painter == nil || g.size != snap.Size {
		g.painter = render.NewGridPainter(snap.Size, snap.Size)
		g.size = snap.Size
	}
	g.cells = snap.Display(g.cells)
}

// Start launches a run unless one is already active.
func (g *Game) Start() {
	run, err := g.engine.Start()
	if errors.Is(err, percolation.ErrAlreadyRunning) {
		g.logger.Printf("start ignored: %v", err)
		return
	}
	if err != nil {
		g.logger.Printf("start failed: %v", err)
		return
	}
	g.run = run
	g.load(g.engine.Snapshot())
}

// Reset discards the current run and draws a fresh grid.
func (g *Game) Reset(fixedSeed bool) {
	var snap percolation.Snapshot
	if fixedSeed {
		snap = g.engine.ResetWithSeed(g.engine.Config().Seed)
	} else {
		snap = g.engine.Reset()
	}
	g.run = nil
	g.load(snap)
}

// Update handles per-frame input and applies pending progress events.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Cancel(g.run)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(true)
	}

	if g.run != nil {
		for _, ev := range g.run.Events().Drain() {
			ev.Apply(g.cells, g.size)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.extent)
	return nil
}

// Draw renders the slab, legend and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells, percolation.Palette(), g.extent)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.extent, g.extent)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.extent + g.panel, g.extent
}
