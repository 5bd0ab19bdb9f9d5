package loop

import "time"

// Difficulty is what the current level does to the game.
type Difficulty struct {
	BulletSpeedBonus float64 // Added to the base bullet speed
	SpawnProbability float64 // Chance per tick of a new asteroid
}

// DifficultyFor returns the difficulty of a level. Callers evaluate it every
// tick, so a level change applies at once.
func DifficultyFor(level int) Difficulty {
	l := float64(level)
	return Difficulty{
		BulletSpeedBonus: 1.5 * l,
		SpawnProbability: 0.015 + 0.005*l,
	}
}

// shootCooldown is the delay after a shot: the base cooldown shortened by the
// speed bonus read as milliseconds, or the fast cooldown under rapid fire.
func (d Difficulty) shootCooldown(cfg Config, fast bool) time.Duration {
	if fast {
		return cfg.FastShootCooldown
	}
	cooldown := cfg.ShootCooldown - time.Duration(d.BulletSpeedBonus*float64(time.Millisecond))
	return max(cooldown, cfg.FastShootCooldown)
}
