package loop

import (
	"errors"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

//go:generate go tool mockgen -destination=./mocks/loop_mock.go -package=mocks . Presenter,Surface

var (
	// ErrNoSurface is returned when there is nothing to draw on. The game
	// must never start without one.
	ErrNoSurface = errors.New("loop: no drawing surface")
	// ErrNoInput is returned when Run has no input source.
	ErrNoInput = errors.New("loop: no input source")
)

// Surface is the drawing collaborator plus the hook that shows a finished frame.
type Surface interface {
	object.Renderer
	// Present shows everything drawn since the last Clear.
	Present() error
}

// InputSource provides the input state for the next tick.
type InputSource interface {
	ReadInput() Input
}

// Presenter receives the text-level events of a session: overlays, banners
// and floating labels are its business, not the simulation's.
type Presenter interface {
	Welcome()
	Started()
	ScoreChanged(score int)
	LivesChanged(lives int)
	LevelChanged(level int)
	ScoreGain(amount int)
	LifeGain(symbol string)
	FastFire(until time.Time)
	GameOver(finalScore int)
}

// LifeSymbol is the label shown when a life is gained.
const LifeSymbol = "♥"

// Game drives one session: it owns the world and advances it once per tick.
type Game struct {
	cfg       Config
	state     GameState
	world     *World
	rng       object.Rand
	spawner   *Spawner
	surface   Surface
	presenter Presenter
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRand replaces the random source.
func WithRand(rng object.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithPresenter sets the sink for UI events.
func WithPresenter(p Presenter) Option {
	return func(g *Game) {
		g.presenter = p
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// NewGame creates a session on the welcome screen.
func NewGame(cfg Config, surface Surface, opts ...Option) (*Game, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	g := &Game{
		cfg:     cfg,
		surface: surface,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if g.presenter == nil {
		g.presenter = nopPresenter{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.reset()
	return g, nil
}

// State returns the current phase.
func (g *Game) State() GameState {
	return g.state
}

// World returns the live world state.
func (g *Game) World() *World {
	return g.world
}

// Tick advances the session by one frame and draws it.
func (g *Game) Tick(now time.Time, in Input) {
	g.world.events = g.world.events[:0]

	switch {
	case in.Restart:
		g.restart()
	case g.state == GameStateWelcome && in.Start:
		g.start()
	}

	if g.state == GameStateRunning {
		g.updateRunning(now, in)
		g.dispatch()
		if g.world.Lives <= 0 {
			g.gameOver()
		}
	}

	g.draw()
}

// Frame runs one tick and presents the result.
func (g *Game) Frame(now time.Time, in Input) error {
	g.Tick(now, in)
	return g.surface.Present()
}

// dispatch forwards the tick's events to the presenter.
func (g *Game) dispatch() {
	w := g.world
	for _, e := range w.events {
		switch e.Type {
		case EventScoreGain:
			g.presenter.ScoreChanged(w.Score)
			g.presenter.ScoreGain(e.Amount)
		case EventLifeGain:
			g.presenter.LivesChanged(w.Lives)
			g.presenter.LifeGain(LifeSymbol)
		case EventLifeLost:
			g.presenter.LivesChanged(w.Lives)
		case EventLevelUp:
			g.logger.Info("level up", "level", e.Level, "score", w.Score)
			g.presenter.LevelChanged(e.Level)
		case EventFastFire:
			g.logger.Debug("rapid fire", "until", e.Until)
			g.presenter.FastFire(e.Until)
		}
	}
}

type nopPresenter struct{}

func (nopPresenter) Welcome()           {}
func (nopPresenter) Started()           {}
func (nopPresenter) ScoreChanged(int)   {}
func (nopPresenter) LivesChanged(int)   {}
func (nopPresenter) LevelChanged(int)   {}
func (nopPresenter) ScoreGain(int)      {}
func (nopPresenter) LifeGain(string)    {}
func (nopPresenter) FastFire(time.Time) {}
func (nopPresenter) GameOver(int)       {}
