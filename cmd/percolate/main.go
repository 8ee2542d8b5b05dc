//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"percolate/internal/app"
	"percolate/internal/percolation"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "percolate: ", log.LstdFlags)
	engineLog := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		engineLog = logger
	}

	engine, err := percolation.NewEngine(cfg.Simulation(), percolation.WithLogger(engineLog))
	if err != nil {
		log.Fatalf("percolate: %v", err)
	}
	defer engine.Close()

	game := app.New(engine, cfg, logger)

	ebiten.SetWindowTitle("Simulation of water flowing in concrete")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Extent+cfg.Panel, cfg.Extent)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
