package sweep

import (
	"context"
	"errors"
	"slices"
	"testing"

	"percolate/internal/percolation"
)

func TestRunExtremes(t *testing.T) {
	results, err := Run(context.Background(), Options{
		Size:          12,
		Probabilities: []float64{0, 1},
		Trials:        5,
		Workers:       3,
		Seed:          1,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Percolated != 0 || results[0].MeanWet != 0 {
		t.Fatalf("p=0 result = %+v", results[0])
	}
	if results[1].Fraction() != 1 || results[1].MeanWet != 1 {
		t.Fatalf("p=1 result = %+v", results[1])
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Size: 20, Probabilities: []float64{0.55, 0.6, 0.65}, Trials: 8, Workers: 4, Seed: 42}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("worker count changed results: %+v vs %+v", a, b)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if _, err := Run(context.Background(), Options{Size: 5, Probabilities: []float64{0.5}}); err == nil {
		t.Fatal("zero trials must be rejected")
	}
	_, err := Run(context.Background(), Options{Size: 0, Probabilities: []float64{0.5}, Trials: 1})
	if !errors.Is(err, percolation.ErrInvalidConfig) {
		t.Fatalf("Run = %v, want ErrInvalidConfig", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Size: 30, Probabilities: []float64{0.6}, Trials: 4, Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

func TestRange(t *testing.T) {
	got := Range(0.5, 0.7, 0.05)
	want := []float64{0.5, 0.55, 0.6, 0.65, 0.7}
	if !slices.Equal(got, want) {
		t.Fatalf("Range = %v, want %v", got, want)
	}
	if got := Range(0.3, 0.1, 0.1); !slices.Equal(got, []float64{0.3}) {
		t.Fatalf("inverted Range = %v", got)
	}
}
