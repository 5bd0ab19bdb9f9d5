package loop

import "testing"

func TestAdvanceLevelAtThreshold(t *testing.T) {
	cfg := testConfig()
	for k, threshold := range LevelThresholds {
		w := newTestWorld(cfg)
		w.Level = k + 1
		w.Score = threshold

		if !advanceLevel(w) {
			t.Fatalf("score %d at level %d did not level up", threshold, k+1)
		}
		if w.Level != k+2 {
			t.Errorf("level = %d, want %d", w.Level, k+2)
		}
		if w.Lives != cfg.InitialLives+1 {
			t.Errorf("lives = %d, want %d", w.Lives, cfg.InitialLives+1)
		}

		// Same score on the next tick: no second award
		if k+1 < len(LevelThresholds) && threshold < LevelThresholds[k+1] {
			if advanceLevel(w) {
				t.Errorf("level %d re-triggered at the same score", w.Level)
			}
			if w.Lives != cfg.InitialLives+1 {
				t.Errorf("lives = %d after repeat tick", w.Lives)
			}
		}
	}
}

func TestAdvanceLevelBelowThreshold(t *testing.T) {
	w := newTestWorld(testConfig())
	w.Score = LevelThresholds[0] - 1
	if advanceLevel(w) || w.Level != 1 {
		t.Errorf("leveled up at score %d", w.Score)
	}
}

func TestAdvanceLevelPastTable(t *testing.T) {
	w := newTestWorld(testConfig())
	w.Level = len(LevelThresholds) + 1
	w.Score = 1 << 30
	if advanceLevel(w) {
		t.Error("leveled up past the end of the table")
	}
	if w.Level != len(LevelThresholds)+1 {
		t.Errorf("level = %d", w.Level)
	}
}

func TestAdvanceLevelEvents(t *testing.T) {
	w := newTestWorld(testConfig())
	w.Score = 500
	advanceLevel(w)

	ev := w.Events()
	if len(ev) != 2 || ev[0].Type != EventLevelUp || ev[0].Level != 2 || ev[1].Type != EventLifeGain {
		t.Errorf("events = %+v, want level up to 2 then life gain", ev)
	}
}
