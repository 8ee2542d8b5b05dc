package percolation

import (
	"context"
	"slices"
	"testing"
	"time"
)

func runToEnd(t *testing.T, g *Grid, seeds []Point) (*Runner, []Event) {
	t.Helper()
	r := NewRunner(g, seeds, 0)
	if r.State() != Idle {
		t.Fatalf("new runner state = %v, want idle", r.State())
	}
	if got := r.Run(context.Background()); got != Completed {
		t.Fatalf("run ended %v, want completed", got)
	}
	return r, r.Events().Drain()
}

func TestRunnerThreeByThreeFullErosion(t *testing.T) {
	g, seeds := generate(3, 1, 5)
	if !slices.Equal(seeds, []Point{{0, 0}, {1, 0}, {2, 0}}) {
		t.Fatalf("unexpected seeds %v", seeds)
	}
	r, events := runToEnd(t, g, seeds)

	wantOrder := []Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	if len(events) != len(wantOrder)+1 {
		t.Fatalf("got %d events, want %d", len(events), len(wantOrder)+1)
	}
	for i, p := range wantOrder {
		ev := events[i]
		if ev.Kind != EventWet || ev.Point != p {
			t.Fatalf("event %d = %+v, want wet %v", i, ev, p)
		}
		if ev.ReachedBottom != (p.Y == 2) {
			t.Fatalf("event %d reachedBottom = %v", i, ev.ReachedBottom)
		}
		if ev.Step != i+1 {
			t.Fatalf("event %d step = %d", i, ev.Step)
		}
	}
	last := events[len(events)-1]
	if last.Kind != EventCompleted || last.Step != 9 {
		t.Fatalf("terminal event = %+v", last)
	}
	if g.Count(Wet) != 9 {
		t.Fatalf("expected all cells wet, got %d", g.Count(Wet))
	}
	if r.Pending() != 0 || !r.ReachedBottom() {
		t.Fatalf("pending=%d bottom=%v after completion", r.Pending(), r.ReachedBottom())
	}
}

func TestRunnerZeroErosionCompletesImmediately(t *testing.T) {
	g, seeds := generate(10, 0, 5)
	r, events := runToEnd(t, g, seeds)
	if len(events) != 1 || events[0].Kind != EventCompleted {
		t.Fatalf("events = %+v, want a single completed marker", events)
	}
	if r.Processed() != 0 {
		t.Fatalf("processed %d cells on an all-solid grid", r.Processed())
	}
}

func TestRunnerFullErosionWetsEverything(t *testing.T) {
	const n = 12
	g, seeds := generate(n, 1, 8)
	_, events := runToEnd(t, g, seeds)
	if g.Count(Wet) != n*n {
		t.Fatalf("wet cells = %d, want %d", g.Count(Wet), n*n)
	}
	bottom := 0
	for _, ev := range events {
		if ev.Kind == EventWet && ev.Point.Y == n-1 {
			if !ev.ReachedBottom {
				t.Fatalf("bottom-row event %+v not flagged", ev)
			}
			bottom++
		}
	}
	if bottom != n {
		t.Fatalf("bottom-row events = %d, want %d", bottom, n)
	}
}

func TestRunnerDeterministic(t *testing.T) {
	g1, s1 := generate(40, 0.6, 7)
	g2, s2 := generate(40, 0.6, 7)
	_, a := runToEnd(t, g1, s1)
	_, b := runToEnd(t, g2, s2)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different event sequences")
	}
	if !slices.Equal(g1.Snapshot(), g2.Snapshot()) {
		t.Fatal("same seed produced different settled grids")
	}
}

func TestRunnerSettlesMonotonically(t *testing.T) {
	const n = 50
	g, seeds := generate(n, 0.6, 42)
	before := g.Snapshot()
	r, events := runToEnd(t, g, seeds)
	after := g.Snapshot()

	if r.Processed() > n*n {
		t.Fatalf("processed %d cells, more than the grid holds", r.Processed())
	}
	seen := map[Point]bool{}
	for _, ev := range events {
		if ev.Kind != EventWet {
			continue
		}
		if seen[ev.Point] {
			t.Fatalf("cell %v processed twice", ev.Point)
		}
		seen[ev.Point] = true
	}

	wet := 0
	for i := range before {
		switch before[i] {
		case Solid:
			if after[i] != Solid {
				t.Fatalf("solid cell %d changed to %v", i, after[i])
			}
		case Wet:
			if after[i] != Wet {
				t.Fatalf("wet cell %d changed to %v", i, after[i])
			}
		}
		if after[i] == Wet {
			wet++
		}
	}
	if wet != r.Processed() {
		t.Fatalf("wet cells = %d but processed = %d", wet, r.Processed())
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if after[y*n+x] != Wet {
				continue
			}
			for _, nb := range Neighbors4(Point{x, y}, n) {
				if after[nb.Y*n+nb.X] == Eroded {
					t.Fatalf("eroded cell %v left next to wet cell (%d,%d)", nb, x, y)
				}
			}
		}
	}
}

func TestRunnerCancel(t *testing.T) {
	g, seeds := generate(20, 1, 1)
	r := NewRunner(g, seeds, 5*time.Millisecond)
	r.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	first, ok := r.Events().Next(ctx)
	if !ok || first.Kind != EventWet {
		t.Fatalf("first event = %+v ok=%v", first, ok)
	}

	r.Cancel()
	r.Cancel()
	if got := r.Wait(); got != Cancelled {
		t.Fatalf("state after cancel = %v", got)
	}
	if r.Processed() >= 20*20 {
		t.Fatal("cancelled run processed the whole grid")
	}

	rest := r.Events().Collect(ctx)
	if len(rest) == 0 || rest[len(rest)-1].Kind != EventCancelled {
		t.Fatalf("stream did not end with a cancelled marker: %+v", rest)
	}
	if _, ok := r.Events().Next(ctx); ok {
		t.Fatal("stream delivered events after its terminal marker")
	}
	if got := r.Run(context.Background()); got != Cancelled {
		t.Fatalf("rerun of cancelled runner = %v", got)
	}
}

func TestRunnerContextCancel(t *testing.T) {
	g, seeds := generate(20, 1, 1)
	r := NewRunner(g, seeds, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	wait, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	if _, ok := r.Events().Next(wait); !ok {
		t.Fatal("expected a first event before the long pause")
	}
	cancel()
	select {
	case <-r.Done():
	case <-wait.Done():
		t.Fatal("runner did not stop while sleeping")
	}
	if r.State() != Cancelled {
		t.Fatalf("state = %v", r.State())
	}
}

func TestStreamDrainAndNext(t *testing.T) {
	s := newStream()
	s.push(Event{Kind: EventWet, Step: 1})
	s.push(Event{Kind: EventWet, Step: 2})
	if got := s.Drain(); len(got) != 2 || got[1].Step != 2 {
		t.Fatalf("Drain = %+v", got)
	}
	if got := s.Drain(); got != nil {
		t.Fatalf("second Drain = %+v, want nil", got)
	}
	s.push(Event{Kind: EventCompleted, Step: 2})
	s.push(Event{Kind: EventWet, Step: 3})

	ctx := context.Background()
	ev, ok := s.Next(ctx)
	if !ok || ev.Kind != EventCompleted {
		t.Fatalf("Next = %+v ok=%v", ev, ok)
	}
	if _, ok := s.Next(ctx); ok {
		t.Fatal("closed stream returned another event")
	}
}
