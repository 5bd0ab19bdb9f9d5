package loop

import "testing"

func TestConfigFromEnvSeed(t *testing.T) {
	tests := []struct {
		value string
		want  uint64
	}{
		{value: "12345", want: 12345},
		{value: "-5", want: 0},
		{value: "lucky", want: 0},
	}
	for _, tt := range tests {
		t.Setenv("ASTEROIDS_SEED", tt.value)
		if got := ConfigFromEnv().Seed; got != tt.want {
			t.Errorf("ASTEROIDS_SEED=%q: seed = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("ASTEROIDS_LIVES", "5")
	t.Setenv("ASTEROIDS_BLINK_SHIELD", "false")
	t.Setenv("ASTEROIDS_WIDTH", "1024")

	cfg := ConfigFromEnv()
	if cfg.InitialLives != 5 || cfg.BlinkShield || cfg.Playfield.Width != 1024 {
		t.Errorf("cfg = lives %d shield %v width %v", cfg.InitialLives, cfg.BlinkShield, cfg.Playfield.Width)
	}
	if cfg.Playfield.Height != DefaultConfig().Playfield.Height {
		t.Errorf("height = %v, want the default", cfg.Playfield.Height)
	}
}
