package object

import (
	"math"
)

// AsteroidType is the asteroid variant.
type AsteroidType int

const (
	AsteroidClassic AsteroidType = iota
	AsteroidBad
	AsteroidGood
	AsteroidRaffale // Grants temporary rapid fire
	AsteroidHeart   // Grants an extra life
	AsteroidUltime
)

var asteroidTypeNames = [...]string{
	AsteroidClassic: "classic",
	AsteroidBad:     "bad",
	AsteroidGood:    "good",
	AsteroidRaffale: "raffale",
	AsteroidHeart:   "heart",
	AsteroidUltime:  "ultime",
}

func (t AsteroidType) String() string {
	if t < 0 || int(t) >= len(asteroidTypeNames) {
		return "unknown"
	}
	return asteroidTypeNames[t]
}

// Asteroid is a rock flying across the playfield toward where the ship was.
type Asteroid struct {
	X, Y      float64 // Position (center)
	VX, VY    float64 // Velocity per tick
	Radius    float64 // Collision/draw radius
	Type      AsteroidType
	Color     Color
	Hits      int         // Remaining hit points
	Score     int         // Points awarded when shot down
	Particles []*Particle // Trail, owned by this asteroid
	destroyed bool
}

// NewAsteroid creates a stationary asteroid. Use AimAt to set it moving.
func NewAsteroid(x, y, radius float64, t AsteroidType, c Color, hits, score int) *Asteroid {
	return &Asteroid{
		X:      x,
		Y:      y,
		Radius: radius,
		Type:   t,
		Color:  c,
		Hits:   hits,
		Score:  score,
	}
}

// AimAt sets the velocity to point from the asteroid toward (tx,ty) at speed units per tick.
func (a *Asteroid) AimAt(tx, ty, speed float64) {
	angle := math.Atan2(ty-a.Y, tx-a.X)
	a.VX = speed * math.Cos(angle)
	a.VY = speed * math.Sin(angle)
}

// Hit takes one hit point. Returns true when the asteroid has none left.
func (a *Asteroid) Hit() bool {
	a.Hits--
	return a.Hits <= 0
}

// MarkDestroyed marks the asteroid for removal.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for removal.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

// Update moves the asteroid one tick, emits a trail particle (unless the
// trail already holds maxParticles), ages the trail and drops faded
// particles. Returns true if the asteroid left the playfield.
func (a *Asteroid) Update(field Playfield, rng Rand, maxParticles int) bool {
	a.X += a.VX
	a.Y += a.VY

	if len(a.Particles) < maxParticles {
		a.Particles = append(a.Particles, NewTrailParticle(a.X, a.Y, rng))
	}

	kept := a.Particles[:0]
	for _, p := range a.Particles {
		if p.Update() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(a.Particles[len(kept):])
	a.Particles = kept

	if !field.Contains(a.X, a.Y) {
		a.MarkDestroyed()
	}
	return a.destroyed
}

// Release returns the trail particles to the pool. Call once the asteroid is
// dropped from the world.
func (a *Asteroid) Release() {
	for _, p := range a.Particles {
		p.Release()
	}
	clear(a.Particles)
	a.Particles = a.Particles[:0]
}

// Draw renders the trail and then the asteroid body on top.
func (a *Asteroid) Draw(r Renderer) {
	for _, p := range a.Particles {
		p.Draw(r)
	}
	r.DrawAsteroid(a.X, a.Y, a.Radius, a.Color)
}
