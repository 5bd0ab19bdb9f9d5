package loop

import (
	"testing"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

func newRock(x, y, radius float64, t object.AsteroidType, hits, score int) *object.Asteroid {
	return object.NewAsteroid(x, y, radius, t, object.RGBA(0.6, 0.6, 0.6, 1), hits, score)
}

func TestBulletDestroysAsteroid(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)
	w.Asteroids = []*object.Asteroid{newRock(100, 100, 30, object.AsteroidClassic, 1, 10)}
	w.Bullets = []*object.Bullet{object.NewBullet(110, 100, 0, 0)}

	resolveCollisions(w, tick(1), cfg)

	if w.Score != 10 {
		t.Errorf("score = %d, want 10", w.Score)
	}
	if len(w.Asteroids) != 0 {
		t.Errorf("asteroids = %d, want 0", len(w.Asteroids))
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(w.Bullets))
	}
	if len(w.Explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(w.Explosions))
	}
	if e := w.Explosions[0]; e.X != 100 || e.Y != 100 || e.Radius != 30 {
		t.Errorf("explosion at (%v,%v) r=%v", e.X, e.Y, e.Radius)
	}
	if ev := w.Events(); len(ev) != 1 || ev[0].Type != EventScoreGain || ev[0].Amount != 10 {
		t.Errorf("events = %+v, want one score gain of 10", ev)
	}
}

func TestBulletOnEdgeMisses(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)
	w.Asteroids = []*object.Asteroid{newRock(100, 100, 30, object.AsteroidClassic, 1, 10)}
	w.Bullets = []*object.Bullet{object.NewBullet(130, 100, 0, 0)}

	resolveCollisions(w, tick(1), cfg)

	if len(w.Asteroids) != 1 || len(w.Bullets) != 1 || w.Score != 0 {
		t.Errorf("bullet at distance == radius counted as a hit")
	}
}

func TestOnlyEarliestBulletHits(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)
	rock := newRock(110, 100, 30, object.AsteroidBad, 3, 30)
	w.Asteroids = []*object.Asteroid{rock}

	first := object.NewBullet(130, 100, 0, 0) // Fired first, in a later grid cell
	second := object.NewBullet(95, 100, 0, 0)
	w.Bullets = []*object.Bullet{first, second}

	resolveCollisions(w, tick(1), cfg)

	if rock.Hits != 2 {
		t.Errorf("hits left = %d, want 2", rock.Hits)
	}
	if len(w.Bullets) != 1 || w.Bullets[0] != second {
		t.Errorf("bullets = %v, want only the second bullet left", w.Bullets)
	}
	if w.Score != 0 || len(w.Explosions) != 0 {
		t.Errorf("damaged asteroid awarded score %d or exploded", w.Score)
	}
}

func TestBulletHitsOneAsteroid(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)
	a := newRock(100, 100, 30, object.AsteroidClassic, 1, 10)
	b := newRock(110, 100, 30, object.AsteroidClassic, 1, 10)
	w.Asteroids = []*object.Asteroid{a, b}
	w.Bullets = []*object.Bullet{object.NewBullet(105, 100, 0, 0)}

	resolveCollisions(w, tick(1), cfg)

	if len(w.Asteroids) != 1 || w.Asteroids[0] != b {
		t.Errorf("asteroids = %v, want only the second one", w.Asteroids)
	}
	if w.Score != 10 {
		t.Errorf("score = %d, want 10", w.Score)
	}
}

func TestPerkAsteroids(t *testing.T) {
	cfg := testConfig()
	now := tick(5)

	t.Run("heart", func(t *testing.T) {
		w := newTestWorld(cfg)
		w.Asteroids = []*object.Asteroid{newRock(100, 100, 30, object.AsteroidHeart, 1, 0)}
		w.Bullets = []*object.Bullet{object.NewBullet(100, 100, 0, 0)}

		resolveCollisions(w, now, cfg)

		if w.Lives != cfg.InitialLives+1 {
			t.Errorf("lives = %d, want %d", w.Lives, cfg.InitialLives+1)
		}
		if !hasEvent(w, EventLifeGain) {
			t.Error("no life gain event")
		}
	})

	t.Run("raffale", func(t *testing.T) {
		w := newTestWorld(cfg)
		w.Asteroids = []*object.Asteroid{newRock(100, 100, 30, object.AsteroidRaffale, 1, 0)}
		w.Bullets = []*object.Bullet{object.NewBullet(100, 100, 0, 0)}

		resolveCollisions(w, now, cfg)

		if want := now.Add(cfg.FastFireDuration); !w.FastBulletUntil.Equal(want) {
			t.Errorf("FastBulletUntil = %v, want %v", w.FastBulletUntil, want)
		}
		if !w.FastBulletActive(now.Add(cfg.FastFireDuration - 1)) {
			t.Error("rapid fire inactive before expiry")
		}
		if w.FastBulletActive(now.Add(cfg.FastFireDuration)) {
			t.Error("rapid fire still active at expiry")
		}
		if !hasEvent(w, EventFastFire) {
			t.Error("no fast fire event")
		}
	})
}

func TestShipCollision(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)
	// Halo 40 + radius 30: 69 away overlaps, 71 does not
	hit := newRock(w.Ship.X+69, w.Ship.Y, 30, object.AsteroidUltime, 5, 100)
	miss := newRock(w.Ship.X-71, w.Ship.Y, 30, object.AsteroidClassic, 1, 10)
	w.Asteroids = []*object.Asteroid{hit, miss}

	resolveCollisions(w, tick(1), cfg)

	if w.Lives != cfg.InitialLives-1 {
		t.Errorf("lives = %d, want %d", w.Lives, cfg.InitialLives-1)
	}
	if w.Score != 0 {
		t.Errorf("score = %d, ship contact must not score", w.Score)
	}
	if len(w.Asteroids) != 1 || w.Asteroids[0] != miss {
		t.Errorf("asteroids = %v, want only the distant one", w.Asteroids)
	}
	if len(w.Explosions) != 1 {
		t.Errorf("explosions = %d, want 1", len(w.Explosions))
	}
	if !w.ShipBlinking || w.BlinkTicks != 0 {
		t.Errorf("blinking = %v ticks = %d, want a fresh blink window", w.ShipBlinking, w.BlinkTicks)
	}
	if !hasEvent(w, EventLifeLost) {
		t.Error("no life lost event")
	}
}

func TestBlinkShield(t *testing.T) {
	tests := []struct {
		name      string
		shield    bool
		wantLives int
	}{
		{"shield ignores contacts while blinking", true, 2},
		{"no shield takes every contact", false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.BlinkShield = tt.shield
			w := newTestWorld(cfg)
			w.Asteroids = []*object.Asteroid{
				newRock(w.Ship.X+10, w.Ship.Y, 30, object.AsteroidClassic, 1, 10),
				newRock(w.Ship.X-10, w.Ship.Y, 30, object.AsteroidClassic, 1, 10),
			}

			resolveCollisions(w, tick(1), cfg)

			if w.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", w.Lives, tt.wantLives)
			}
		})
	}
}

func TestLivesNeverNegative(t *testing.T) {
	cfg := testConfig()
	cfg.BlinkShield = false
	w := newTestWorld(cfg)
	w.Lives = 1
	for i := range 3 {
		w.Asteroids = append(w.Asteroids, newRock(w.Ship.X+float64(i), w.Ship.Y, 30, object.AsteroidClassic, 1, 10))
	}

	resolveCollisions(w, tick(1), cfg)

	if w.Lives != 0 {
		t.Errorf("lives = %d, want 0", w.Lives)
	}
}

func TestCollisionsOnEmptyWorld(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)
	resolveCollisions(w, tick(1), cfg)
	if w.Score != 0 || w.Lives != cfg.InitialLives || len(w.Events()) != 0 {
		t.Errorf("empty world changed: score=%d lives=%d events=%v", w.Score, w.Lives, w.Events())
	}

	w.Bullets = []*object.Bullet{object.NewBullet(1, 1, 0, 0)}
	resolveCollisions(w, tick(2), cfg)
	if len(w.Bullets) != 1 {
		t.Error("bullet removed with no asteroids around")
	}
}

func hasEvent(w *World, typ EventType) bool {
	for _, e := range w.Events() {
		if e.Type == typ {
			return true
		}
	}
	return false
}
