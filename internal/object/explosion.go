package object

// ExplosionStep is how far an explosion advances every tick.
const ExplosionStep = 0.05

// Explosion is the burst left behind by a destroyed asteroid.
type Explosion struct {
	X, Y     float64
	Radius   float64
	Color    Color
	Progress float64 // 0 when created, removed once past 1
}

// NewExplosion creates an explosion matching the asteroid it replaces.
func NewExplosion(a *Asteroid) *Explosion {
	return &Explosion{
		X:      a.X,
		Y:      a.Y,
		Radius: a.Radius,
		Color:  a.Color,
	}
}

// IsDestroyed returns true once the burst has run its course.
func (e *Explosion) IsDestroyed() bool {
	return e.Progress > 1
}

// MarkDestroyed ends the explosion early.
func (e *Explosion) MarkDestroyed() {
	if e.Progress <= 1 {
		e.Progress = 1 + ExplosionStep
	}
}

// Update advances the burst. Returns true once it is finished.
func (e *Explosion) Update() bool {
	e.Progress += ExplosionStep
	return e.IsDestroyed()
}

// Draw renders the burst at its current progress.
func (e *Explosion) Draw(r Renderer) {
	r.DrawExplosion(e.X, e.Y, e.Radius, e.Color, e.Progress)
}
