// Package sweep estimates how often a slab percolates for a range of erosion
// probabilities by running many independent seeded simulations in parallel.
package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"percolate/internal/percolation"
)

// Options controls a sweep.
type Options struct {
	Size          int
	Probabilities []float64
	Trials        int
	Workers       int
	// Seed is the base seed; trial t of probability i uses Seed+i*Trials+t.
	Seed int64
}

// Result aggregates the trials run at one erosion probability.
type Result struct {
	Erosion    float64
	Trials     int
	Percolated int
	// MeanWet is the average fraction of the slab reached by water.
	MeanWet float64
}

// Fraction returns the share of trials in which water reached the bottom row.
func (r Result) Fraction() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Percolated) / float64(r.Trials)
}

type outcome struct {
	percolated bool
	wet        float64
}

// Run executes every trial and returns one Result per probability, in the
// order given. It stops early when ctx is cancelled.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Trials < 1 {
		return nil, fmt.Errorf("sweep: trials %d must be at least 1", opts.Trials)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([][]outcome, len(opts.Probabilities))
	for i := range outcomes {
		outcomes[i] = make([]outcome, opts.Trials)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range opts.Probabilities {
		for t := 0; t < opts.Trials; t++ {
			g.Go(func() error {
				seed := opts.Seed + int64(i*opts.Trials+t)
				o, err := trial(gctx, opts.Size, p, seed)
				if err != nil {
					return err
				}
				outcomes[i][t] = o
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(opts.Probabilities))
	for i, p := range opts.Probabilities {
		r := Result{Erosion: p, Trials: opts.Trials}
		var wet float64
		for _, o := range outcomes[i] {
			if o.percolated {
				r.Percolated++
			}
			wet += o.wet
		}
		r.MeanWet = wet / float64(opts.Trials)
		results[i] = r
	}
	return results, nil
}

func trial(ctx context.Context, n int, p float64, seed int64) (outcome, error) {
	cfg := percolation.Config{Size: n, Erosion: p, Seed: seed}
	engine, err := percolation.NewEngine(cfg, percolation.WithContext(ctx))
	if err != nil {
		return outcome{}, err
	}
	run, err := engine.Start()
	if err != nil {
		return outcome{}, err
	}
	if run.Wait() == percolation.Cancelled {
		return outcome{}, ctx.Err()
	}
	stats := run.Grid().Stats()
	return outcome{
		percolated: stats.Percolated(),
		wet:        float64(stats.Wet) / float64(n*n),
	}, nil
}

// Range returns from, from+step, ... up to and including to.
func Range(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return []float64{from}
	}
	count := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Round((from+float64(i)*step)*1e6) / 1e6
	}
	return out
}
