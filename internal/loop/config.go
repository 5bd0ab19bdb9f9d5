package loop

// Game configuration.
// All tunable game parameters are centralized here for easy adjustment.

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

// LevelThresholds are the score cutoffs gating each level-up, indexed by level-1.
var LevelThresholds = [...]int{
	500, 1500, 3000, 5000, 7500, 10500, 14000, 18000,
	22500, 27500, 33000, 39000, 45500, 52500, 60000,
}

// Asteroids
const (
	AsteroidMinRadius   = 20.0
	AsteroidRadiusRange = 30.0
	AsteroidMaxRadius   = AsteroidMinRadius + AsteroidRadiusRange
)

// Stars
const (
	StarSpeedPerLevel = 2.0 // Units per tick, multiplied by level
)

// HUD hearts, one per life
const (
	HeartX       = 20.0
	HeartY       = 20.0
	HeartSpacing = 40.0
	HeartSize    = 5.0
)

// Colours
var (
	ShipColor      = object.RGBA(0, 0.6, 0.9, 1)
	ShipBlinkColor = object.RGBA(1, 0, 0, 1)
	HeartColor     = object.RGBA(1, 0, 0, 1)
)

// Config holds the tunables of a game session.
type Config struct {
	Playfield         object.Playfield
	ShipRadius        float64
	InitialLives      int
	StarCount         int
	TargetFPS         int
	BaseBulletSpeed   float64       // Units per tick before the level bonus
	ShootCooldown     time.Duration // Reduced by the level bonus in milliseconds
	FastShootCooldown time.Duration // Cooldown while rapid fire is active
	FastFireDuration  time.Duration
	BlinkTicks        int     // Length of the post-collision blink window
	BlinkShield       bool    // Ignore ship contacts while blinking
	MaxTrailParticles int     // Per-asteroid trail cap
	TurnSpeed         float64 // Radians per tick for keyboard aiming
	Seed              uint64  // RNG seed, 0 picks one from the clock
}

// DefaultConfig returns the stock game settings.
func DefaultConfig() Config {
	return Config{
		Playfield:         object.Playfield{Width: 800, Height: 600},
		ShipRadius:        20,
		InitialLives:      3,
		StarCount:         100,
		TargetFPS:         60,
		BaseBulletSpeed:   10,
		ShootCooldown:     200 * time.Millisecond,
		FastShootCooldown: 25 * time.Millisecond,
		FastFireDuration:  10 * time.Second,
		BlinkTicks:        20,
		BlinkShield:       true,
		MaxTrailParticles: 32,
		TurnSpeed:         0.08,
	}
}

// ConfigFromEnv overlays ASTEROIDS_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Playfield.Width = config.GetEnvFloat("ASTEROIDS_WIDTH", cfg.Playfield.Width)
	cfg.Playfield.Height = config.GetEnvFloat("ASTEROIDS_HEIGHT", cfg.Playfield.Height)
	cfg.InitialLives = config.GetEnvInt("ASTEROIDS_LIVES", cfg.InitialLives)
	cfg.TargetFPS = config.GetEnvInt("ASTEROIDS_FPS", cfg.TargetFPS)
	cfg.FastFireDuration = config.GetEnvDuration("ASTEROIDS_FAST_FIRE", cfg.FastFireDuration)
	cfg.BlinkShield = config.GetEnvBool("ASTEROIDS_BLINK_SHIELD", cfg.BlinkShield)
	cfg.MaxTrailParticles = config.GetEnvInt("ASTEROIDS_TRAIL_CAP", cfg.MaxTrailParticles)
	cfg.Seed = config.GetEnvUint64("ASTEROIDS_SEED", cfg.Seed)
	return cfg
}

// frameTime is the pacing interval for the configured frame rate.
func (c Config) frameTime() time.Duration {
	if c.TargetFPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TargetFPS)
}
