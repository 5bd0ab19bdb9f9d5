package loop

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

// seqRand returns the scripted values in order, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// nopSurface draws nothing and counts presented frames.
type nopSurface struct {
	presented int
}

func (*nopSurface) Clear()                                                   {}
func (*nopSurface) DrawStars([]object.Star)                                  {}
func (*nopSurface) DrawShip(x, y, radius, angle float64, c object.Color)     {}
func (*nopSurface) DrawAsteroid(x, y, radius float64, c object.Color)        {}
func (*nopSurface) DrawBullet(x, y, w, h, angle float64, c object.Color)     {}
func (*nopSurface) DrawParticle(x, y, radius float64, c object.Color)        {}
func (*nopSurface) DrawExplosion(x, y, r float64, c object.Color, p float64) {}
func (*nopSurface) DrawHeart(x, y, size float64, c object.Color)             {}
func (s *nopSurface) Present() error {
	s.presented++
	return nil
}

// testConfig is a quiet config: no stars, so the scripted draws only feed
// the spawner and trails.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.StarCount = 0
	cfg.Seed = 1
	return cfg
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// tick returns the timestamp of frame n at 60 FPS.
func tick(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Second / 60)
}

// newTestWorld builds a world around a centred ship.
func newTestWorld(cfg Config) *World {
	return NewWorld(cfg, &seqRand{})
}
