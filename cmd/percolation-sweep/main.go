package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"percolate/internal/sweep"
)

func main() {
	size := flag.Int("n", 100, "side length of each simulated slab")
	from := flag.Float64("from", 0.50, "lowest erosion probability")
	to := flag.Float64("to", 0.70, "highest erosion probability")
	step := flag.Float64("step", 0.02, "probability increment")
	trials := flag.Int("trials", 50, "simulations per probability")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	seed := flag.Int64("seed", 1337, "base seed for deterministic sweeps")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	probs := sweep.Range(*from, *to, *step)
	fmt.Printf("Sweeping %d probabilities on %dx%d slabs (%d trials each, %d workers)\n",
		len(probs), *size, *size, *trials, *workers)

	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Size:          *size,
		Probabilities: probs,
		Trials:        *trials,
		Workers:       *workers,
		Seed:          *seed,
	})
	if err != nil {
		log.Fatalf("percolation-sweep: %v", err)
	}

	fmt.Printf("\n%6s  %10s  %8s  %s\n", "p", "percolated", "wet", "")
	for _, r := range results {
		bar := strings.Repeat("#", int(r.Fraction()*40+0.5))
		fmt.Printf("%6.3f  %9.1f%%  %7.1f%%  %s\n", r.Erosion, r.Fraction()*100, r.MeanWet*100, bar)
	}
	fmt.Printf("\nFinished in %s\n", time.Since(start).Round(time.Millisecond))
}
