// Package game implements the flyer simulation: frame gating, the round
// state machine, flyer physics and the scrolling skyline. It has no
// knowledge of terminals, windows or input devices; front ends drive it
// through Frame and Impulse and observe it through Presenter and
// StatusListener.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
)

// ErrNoPresenter is returned by New when no presentation surface is given.
var ErrNoPresenter = errors.New("game: presentation surface missing")

// Option customizes a Game at construction.
type Option func(*options)

type options struct {
	seed      int64
	listeners []StatusListener
}

// WithSeed fixes the RNG seed for segment heights. Zero means time-based.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStatusListener registers a listener for phase and score changes.
func WithStatusListener(l StatusListener) Option {
	return func(o *options) { o.listeners = append(o.listeners, l) }
}

// Game owns every simulated entity and is the single entry point for
// front ends. It is not safe for concurrent use: one goroutine drives
// Frame, Impulse and Resize.
type Game struct {
	cfg       config.Config
	clock     *Clock
	state     *StateMachine
	flyer     *Flyer
	scroller  *Scroller
	presenter Presenter
	segViews  []SegmentView
}

// New validates the configuration and wires the simulation to a presenter.
// Any error here is fatal: the loop must not start.
func New(cfg config.Config, p Presenter, opts ...Option) (*Game, error) {
	if p == nil {
		return nil, ErrNoPresenter
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:       cfg,
		clock:     NewClock(cfg.Loop.TargetFPS),
		state:     NewStateMachine(o.listeners...),
		flyer:     NewFlyer(cfg.Flyer),
		scroller:  NewScroller(cfg.Scroller, o.seed),
		presenter: p,
		segViews:  make([]SegmentView, cfg.Scroller.SegmentCount),
	}, nil
}

// Status returns the current phase and score.
func (g *Game) Status() Status {
	return g.state.Status()
}

// Flyer exposes the flyer for inspection.
func (g *Game) Flyer() *Flyer {
	return g.flyer
}

// Scroller exposes the skyline for inspection.
func (g *Game) Scroller() *Scroller {
	return g.scroller
}

// Frame is the display-refresh callback. timestamp is in milliseconds and
// must not decrease. It returns whether a step (and render) happened.
func (g *Game) Frame(timestamp float64) bool {
	delta, ok := g.clock.Tick(timestamp)
	if !ok {
		return false
	}
	g.Step(delta/1000.0, timestamp/1000.0)
	return true
}

// Step runs one simulation-and-render step of dt seconds. elapsed drives
// the idle hover. dt is clamped to [0, loop.max_step].
func (g *Game) Step(dt, elapsed float64) {
	dt = core.ClampF(dt, 0, g.cfg.Loop.MaxStep)

	if g.flyer.Update(dt, elapsed, g.state.Phase()) {
		g.state.End()
	}

	if passed := g.scroller.Update(dt); passed > 0 {
		g.state.AddScore(passed * g.cfg.Scroller.PointsPerSegment)
	}

	g.presenter.Render(g.snapshot(elapsed))
}

// Impulse applies the player's single action. Its meaning depends on
// the phase: start and jump, jump, or reset to ready.
func (g *Game) Impulse() {
	switch g.state.Phase() {
	case PhaseReady:
		// Listeners see Playing with the jump already applied
		g.flyer.Jump()
		g.state.Start()
	case PhasePlaying:
		g.flyer.Jump()
	case PhaseGameOver:
		g.flyer.Reset()
		g.scroller.Reset()
		g.state.Reset()
	}
}

// Resize forwards a viewport change to the presenter. Simulation state
// is unaffected.
func (g *Game) Resize(width, height int) {
	if r, ok := g.presenter.(Resizer); ok {
		r.Resize(width, height)
	}
}

func (g *Game) snapshot(elapsed float64) Frame {
	for i, seg := range g.scroller.Segments() {
		g.segViews[i] = SegmentView{
			Index:  i,
			WorldX: g.scroller.WorldX(i),
			Height: seg.Height,
		}
	}
	return Frame{
		Flyer: FlyerPose{
			Y:     g.flyer.Y(),
			Roll:  g.flyer.Roll(),
			Pitch: g.flyer.Pitch(),
		},
		Segments: g.segViews,
		Origin:   g.scroller.Origin(),
		Status:   g.state.Status(),
		Elapsed:  elapsed,
	}
}
