package loop

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

// updateRunning advances a running session by one tick.
func (g *Game) updateRunning(now time.Time, in Input) {
	w := g.world

	applyAim(w, in, g.cfg)
	stepPhysics(w, g.rng, g.cfg)
	shoot(w, in, now, g.cfg)
	g.spawner.Update(w)
	resolveCollisions(w, now, g.cfg)
	advanceLevel(w)
}

// applyAim turns the ship toward the pointer or by keyboard steps.
func applyAim(w *World, in Input, cfg Config) {
	if in.AimSet {
		w.Ship.AimAt(in.AimX, in.AimY)
	}
	if in.Turn != 0 {
		w.Ship.Turn(float64(in.Turn) * cfg.TurnSpeed)
	}
}

// stepPhysics moves every ship-independent entity one tick and drops the ones
// that left the playfield or ran out.
func stepPhysics(w *World, rng object.Rand, cfg Config) {
	w.Stars.Scroll(StarSpeedPerLevel*float64(w.Level), w.Field, rng)

	for _, b := range w.Bullets {
		b.Update(w.Field)
	}
	w.Bullets = object.Compact(w.Bullets)

	for _, a := range w.Asteroids {
		a.Update(w.Field, rng, cfg.MaxTrailParticles)
	}
	w.compactAsteroids()

	for _, e := range w.Explosions {
		e.Update()
	}
	w.Explosions = object.Compact(w.Explosions)

	if w.ShipBlinking {
		w.BlinkTicks++
		if w.BlinkTicks > cfg.BlinkTicks {
			w.ShipBlinking = false
		}
	}
}

// shoot fires a bullet if fire is held and the cooldown has elapsed.
func shoot(w *World, in Input, now time.Time, cfg Config) {
	if !in.Fire || !w.Ship.CanShoot(now) {
		return
	}

	d := DifficultyFor(w.Level)
	cooldown := d.shootCooldown(cfg, w.FastBulletActive(now))
	bullet := w.Ship.Fire(now, cfg.BaseBulletSpeed+d.BulletSpeedBonus, cooldown)
	w.Bullets = append(w.Bullets, bullet)
}
