package loop

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// GameState represents the current phase of a session.
type GameState int

const (
	GameStateWelcome GameState = iota // Title screen, waiting for start
	GameStateRunning                  // Active gameplay
	GameStateOver                     // Lives depleted, waiting for restart
)

func (s GameState) String() string {
	switch s {
	case GameStateWelcome:
		return "welcome"
	case GameStateRunning:
		return "running"
	case GameStateOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Input is the platform's input state sampled once per tick.
type Input struct {
	Fire    bool    // Fire held
	AimX    float64 // Pointer position in playfield units
	AimY    float64
	AimSet  bool // AimX and AimY carry a fresh pointer position
	Turn    int  // Keyboard aiming: -1 left, +1 right
	Start   bool // Start requested (welcome screen only)
	Restart bool // Full reset requested
	Quit    bool // Leave the loop
}

// EventType identifies something the presentation layer should hear about.
type EventType int

const (
	EventScoreGain EventType = iota
	EventLifeGain
	EventLifeLost
	EventLevelUp
	EventFastFire
)

// Event is emitted by the step functions during a tick.
type Event struct {
	Type   EventType
	Amount int       // Score gained (EventScoreGain)
	Level  int       // New level (EventLevelUp)
	Until  time.Time // Buff expiry (EventFastFire)
}

// World is the mutable state of one session, owned by the Game.
type World struct {
	Field object.Playfield

	Score int
	Level int
	Lives int

	FastBulletUntil time.Time // Rapid fire active while now is before this
	ShipBlinking    bool
	BlinkTicks      int // Ticks spent in the current blink window

	Ship       *object.Ship
	Bullets    []*object.Bullet
	Asteroids  []*object.Asteroid
	Explosions []*object.Explosion
	Stars      *object.StarField

	events []Event // Emitted during the current tick

	// Broad phase for bullet hits, reused every tick
	bulletGrid *physics.SpatialGrid
}

// NewWorld creates the starting world: level 1, full lives, no entities.
func NewWorld(cfg Config, rng object.Rand) *World {
	cx, cy := cfg.Playfield.Center()
	return &World{
		Field:      cfg.Playfield,
		Level:      1,
		Lives:      cfg.InitialLives,
		Ship:       object.NewShip(cx, cy, cfg.ShipRadius),
		Stars:      object.NewStarField(cfg.StarCount, cfg.Playfield, rng),
		bulletGrid: physics.NewSpatialGrid(cfg.Playfield.Width, cfg.Playfield.Height, AsteroidMaxRadius),
	}
}

// FastBulletActive reports whether the rapid-fire buff holds at now.
func (w *World) FastBulletActive(now time.Time) bool {
	return now.Before(w.FastBulletUntil)
}

// Events returns what happened during the last tick.
func (w *World) Events() []Event {
	return w.events
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// compactAsteroids drops destroyed asteroids and releases their trails.
func (w *World) compactAsteroids() {
	for _, a := range w.Asteroids {
		if a.IsDestroyed() {
			a.Release()
		}
	}
	w.Asteroids = object.Compact(w.Asteroids)
}

// shipColor is red while the blink window is open.
func (w *World) shipColor() object.Color {
	if w.ShipBlinking {
		return ShipBlinkColor
	}
	return ShipColor
}
