package percolation

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	icore "percolate/internal/core"
	"percolate/pkg/core"
)

// Snapshot describes a freshly generated grid for an observer's first draw.
type Snapshot struct {
	Generation uint64
	Seed       int64
	Size       int
	Cells      []Cell
	// Seeds are the wet top-row cells forming the initial frontier.
	Seeds []Point
}

// Engine owns the current grid and at most one active run over it.
//
// Configure changes the parameters used by the next reset. Reset cancels the
// active run, waits for it to stop and only then replaces the grid. Start
// refuses to launch a second run while one is active.
type Engine struct {
	mu sync.Mutex

	cfg    Config // applied at the next reset
	active Config // grid was generated from this

	grid       *Grid
	seeds      []Point
	generation uint64
	consumed   bool
	run        *Runner

	ctx        context.Context
	logger     *log.Logger
	seedSource func() int64
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger routes engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeedSource replaces the source of fresh seeds used by Reset.
func WithSeedSource(f func() int64) Option {
	return func(e *Engine) {
		if f != nil {
			e.seedSource = f
		}
	}
}

// WithContext sets the parent context of every run.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// NewEngine validates cfg and generates the first grid from cfg.Seed.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:        cfg,
		ctx:        context.Background(),
		logger:     log.New(io.Discard, "", 0),
		seedSource: core.Seed,
	}
	for _, o := range opts {
		o(e)
	}
	e.regenerateLocked(cfg.Seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "percolation" }

// Size reports the dimensions of the current grid.
func (e *Engine) Size() icore.Size {
	n := e.Grid().Size()
	return icore.Size{W: n, H: n}
}

// Configure validates and stores the parameters for the next reset.
func (e *Engine) Configure(n int, p float64, speed time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.cfg
	next.Size = n
	next.Erosion = p
	next.Speed = speed
	if err := next.Validate(); err != nil {
		return err
	}
	e.cfg = next
	return nil
}

// Config returns the configuration that the next reset will use.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// ActiveConfig returns the configuration the current grid was built from.
func (e *Engine) ActiveConfig() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Reset stops any active run and regenerates the grid with a fresh seed.
func (e *Engine) Reset() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.regenerateLocked(e.seedSource())
	return e.snapshotLocked()
}

// ResetWithSeed is Reset with an explicit seed, for reproducible runs.
func (e *Engine) ResetWithSeed(seed int64) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.regenerateLocked(seed)
	return e.snapshotLocked()
}

// Snapshot returns the current grid state without touching it.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Start launches a run over the current grid. A grid that already hosted a
// run is regenerated with a fresh seed first.
func (e *Engine) Start() (*Runner, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run != nil && !e.run.State().Terminal() {
		return nil, fmt.Errorf("%w: generation %d", ErrAlreadyRunning, e.generation)
	}
	if e.consumed {
		e.regenerateLocked(e.seedSource())
	}
	r := NewRunner(e.grid, e.seeds, e.active.Speed)
	e.run = r
	e.consumed = true
	e.logger.Printf("run started: generation=%d seeds=%d speed=%v", e.generation, len(e.seeds), e.active.Speed)
	r.Start(e.ctx)
	go e.report(r, e.generation)
	return r, nil
}

// Cancel asks r to stop. Nil and finished runners are ignored.
func (e *Engine) Cancel(r *Runner) {
	if r == nil {
		return
	}
	r.Cancel()
}

// Close cancels the active run and waits for it to stop.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

// Grid returns the current grid.
func (e *Engine) Grid() *Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid
}

// Runner returns the most recently started run, or nil.
func (e *Engine) Runner() *Runner {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run
}

// Running reports whether a run is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run != nil && !e.run.State().Terminal()
}

// Generation counts grids produced since the engine was created.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

func (e *Engine) stopLocked() {
	if e.run == nil {
		return
	}
	e.run.Cancel()
	e.run.Wait()
	e.run = nil
}

func (e *Engine) regenerateLocked(seed int64) {
	e.active = e.cfg
	e.active.Seed = seed
	e.grid, e.seeds = Generate(e.active, core.NewRNG(seed).Source())
	e.generation++
	e.consumed = false
	e.logger.Printf("reset: generation=%d seed=%d n=%d p=%.3f seeds=%d",
		e.generation, seed, e.active.Size, e.active.Erosion, len(e.seeds))
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Generation: e.generation,
		Seed:       e.active.Seed,
		Size:       e.grid.Size(),
		Cells:      e.grid.Snapshot(),
		Seeds:      append([]Point(nil), e.seeds...),
	}
}

func (e *Engine) report(r *Runner, generation uint64) {
	state := r.Wait()
	switch state {
	case Completed:
		e.logger.Printf("done: generation=%d processed=%d percolated=%v", generation, r.Processed(), r.ReachedBottom())
	default:
		e.logger.Printf("%s: generation=%d processed=%d", state, generation, r.Processed())
	}
}
