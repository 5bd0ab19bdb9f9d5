package loop

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// resolveCollisions handles bullet hits on asteroids, then asteroid contact
// with the ship. Removals are marked during the pass and compacted after it,
// so anything removed this tick is skipped by later checks.
func resolveCollisions(w *World, now time.Time, cfg Config) {
	checkBulletAsteroidCollisions(w, now, cfg)
	checkShipCollisions(w, cfg)

	w.Bullets = object.Compact(w.Bullets)
	w.compactAsteroids()
}

// checkBulletAsteroidCollisions lets each asteroid take at most one bullet
// per tick: the earliest fired one within its radius.
func checkBulletAsteroidCollisions(w *World, now time.Time, cfg Config) {
	if len(w.Bullets) == 0 || len(w.Asteroids) == 0 {
		return
	}

	grid := w.bulletGrid
	grid.Clear()
	for i, b := range w.Bullets {
		if !b.IsDestroyed() {
			grid.Insert(b.X, b.Y, i)
		}
	}

	for _, a := range w.Asteroids {
		if a.IsDestroyed() {
			continue
		}

		hit := -1
		grid.QueryAround(a.X, a.Y, func(i int) bool {
			if hit >= 0 && i > hit {
				return false
			}
			b := w.Bullets[i]
			if !b.IsDestroyed() && physics.PointInCircle(b.X, b.Y, a.X, a.Y, a.Radius) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			continue
		}

		w.Bullets[hit].MarkDestroyed()
		if a.Hit() {
			destroyAsteroid(w, a, now, cfg)
		}
	}
}

// destroyAsteroid awards the asteroid's score and perks and leaves an explosion.
func destroyAsteroid(w *World, a *object.Asteroid, now time.Time, cfg Config) {
	w.Score += a.Score
	w.emit(Event{Type: EventScoreGain, Amount: a.Score})

	switch a.Type {
	case object.AsteroidHeart:
		w.Lives++
		w.emit(Event{Type: EventLifeGain})
	case object.AsteroidRaffale:
		w.FastBulletUntil = now.Add(cfg.FastFireDuration)
		w.emit(Event{Type: EventFastFire, Until: w.FastBulletUntil})
	}

	w.Explosions = append(w.Explosions, object.NewExplosion(a))
	a.MarkDestroyed()
}

// checkShipCollisions handles asteroids entering the ship's halo: the
// asteroid explodes without score and a life is lost.
func checkShipCollisions(w *World, cfg Config) {
	ship := w.Ship
	for _, a := range w.Asteroids {
		if cfg.BlinkShield && w.ShipBlinking {
			return
		}
		if a.IsDestroyed() {
			continue
		}
		if !physics.CirclesOverlap(ship.X, ship.Y, ship.HaloRadius(), a.X, a.Y, a.Radius) {
			continue
		}

		w.Explosions = append(w.Explosions, object.NewExplosion(a))
		a.MarkDestroyed()
		w.Lives = max(w.Lives-1, 0)
		w.ShipBlinking = true
		w.BlinkTicks = 0
		w.emit(Event{Type: EventLifeLost})
	}
}
