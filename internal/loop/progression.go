package loop

// advanceLevel levels up once the score reaches the current threshold.
// Past the end of the table the level stays put.
func advanceLevel(w *World) bool {
	idx := w.Level - 1
	if idx < 0 || idx >= len(LevelThresholds) || w.Score < LevelThresholds[idx] {
		return false
	}

	w.Level++
	w.Lives++
	w.emit(Event{Type: EventLevelUp, Level: w.Level})
	w.emit(Event{Type: EventLifeGain})
	return true
}
