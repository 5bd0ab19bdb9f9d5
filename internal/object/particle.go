package object

import (
	"sync"
)

// ParticleFade is how much alpha a particle loses every tick.
const ParticleFade = 0.04

// warmColors are the trail particle colours: red, orange, yellow.
var warmColors = [...]Color{
	RGBA(1, 0, 0, 1),
	RGBA(1, 0.5, 0, 1),
	RGBA(1, 1, 0, 1),
}

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
// Every live asteroid emits one particle per tick, so churn is constant.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a fading trail dot owned by an asteroid.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
	Radius float64
	Color  Color
	Alpha  float64 // 1 when emitted, removed at <= 0
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, radius float64, c Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Radius = radius
	p.Color = c
	p.Alpha = 1
	return p
}

// NewTrailParticle creates a warm-coloured particle at (x,y) with random
// jitter velocity in (-1,1) and radius in (1,4).
func NewTrailParticle(x, y float64, rng Rand) *Particle {
	radius := rng.Float64()*3 + 1
	c := warmColors[int(rng.Float64()*float64(len(warmColors)))%len(warmColors)]
	vx := (rng.Float64() - 0.5) * 2
	vy := (rng.Float64() - 0.5) * 2
	return NewParticle(x, y, vx, vy, radius, c)
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle and fades it. Returns true once fully faded.
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= ParticleFade
	return p.Alpha <= 0
}

// Draw renders the particle with its current alpha.
func (p *Particle) Draw(r Renderer) {
	r.DrawParticle(p.X, p.Y, p.Radius, p.Color.WithAlpha(p.Alpha))
}
