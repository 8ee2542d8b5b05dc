package percolation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// State is the lifecycle position of a Runner.
type State int32

const (
	Idle State = iota
	Running
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool { return s == Completed || s == Cancelled }

// Runner drives one propagation from the seeded top row until the grid is
// settled or the run is cancelled. A Runner is single use.
type Runner struct {
	grid  *Grid
	speed time.Duration

	// frontier is only touched by the goroutine executing Run.
	frontier []Point
	head     int

	state     atomic.Int32
	processed atomic.Int64
	pending   atomic.Int64
	bottom    atomic.Bool

	events *Stream

	once     sync.Once
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewRunner returns an idle runner over grid. seeds must already be wet,
// as returned by Generate.
func NewRunner(grid *Grid, seeds []Point, speed time.Duration) *Runner {
	if speed < 0 {
		speed = 0
	}
	frontier := make([]Point, len(seeds), len(seeds)+grid.Size())
	copy(frontier, seeds)
	r := &Runner{
		grid:     grid,
		speed:    speed,
		frontier: frontier,
		events:   newStream(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	r.pending.Store(int64(len(frontier)))
	return r
}

// Grid returns the grid this runner mutates.
func (r *Runner) Grid() *Grid { return r.grid }

// Events exposes the progress stream.
func (r *Runner) Events() *Stream { return r.events }

// State reports the current lifecycle state.
func (r *Runner) State() State { return State(r.state.Load()) }

// Processed returns the number of frontier entries handled so far.
func (r *Runner) Processed() int { return int(r.processed.Load()) }

// Pending returns the number of queued frontier entries.
func (r *Runner) Pending() int { return int(r.pending.Load()) }

// ReachedBottom reports whether a bottom-row cell has been processed.
func (r *Runner) ReachedBottom() bool { return r.bottom.Load() }

// Done is closed when the runner reaches a terminal state.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Wait blocks until the run is terminal and returns the final state.
func (r *Runner) Wait() State {
	<-r.done
	return r.State()
}

// Cancel requests a cooperative stop at the next step boundary. It is safe
// to call more than once and after the run has ended.
func (r *Runner) Cancel() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Start launches Run on a new goroutine.
func (r *Runner) Start(ctx context.Context) {
	go r.Run(ctx)
}

// Run executes the propagation loop on the calling goroutine and returns the
// terminal state. Only the first call runs; later calls wait for it.
func (r *Runner) Run(ctx context.Context) State {
	started := false
	r.once.Do(func() {
		started = true
		r.loop(ctx)
	})
	if !started {
		return r.Wait()
	}
	return r.State()
}

func (r *Runner) loop(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	defer close(r.done)

	r.state.Store(int32(Running))
	n := r.grid.Size()

	var timer *time.Timer
	if r.speed > 0 {
		timer = time.NewTimer(r.speed)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()
	}

	for {
		if r.stopped(ctx) {
			r.finish(Cancelled)
			return
		}
		if r.head >= len(r.frontier) {
			r.finish(Completed)
			return
		}

		p := r.frontier[r.head]
		r.head++
		bottom := p.Y == n-1
		r.frontier = append(r.frontier, r.grid.spread(p)...)
		r.compact()
		r.pending.Store(int64(len(r.frontier) - r.head))

		step := int(r.processed.Add(1))
		if bottom {
			r.bottom.Store(true)
		}
		r.events.push(Event{Kind: EventWet, Point: p, ReachedBottom: bottom, Step: step})

		if timer == nil {
			continue
		}
		timer.Reset(r.speed)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
		case <-r.stop:
			if !timer.Stop() {
				<-timer.C
			}
		}
	}
}

func (r *Runner) stopped(ctx context.Context) bool {
	select {
	case <-r.stop:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// compact drops consumed frontier entries once they dominate the slice.
func (r *Runner) compact() {
	if r.head < 1024 || r.head*2 < len(r.frontier) {
		return
	}
	n := copy(r.frontier, r.frontier[r.head:])
	r.frontier = r.frontier[:n]
	r.head = 0
}

func (r *Runner) finish(s State) {
	r.state.Store(int32(s))
	kind := EventCompleted
	if s == Cancelled {
		kind = EventCancelled
	}
	r.events.push(Event{Kind: kind, Step: r.Processed()})
}
