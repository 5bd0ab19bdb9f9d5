// Package frontend connects a concrete terminal to the game: it draws the
// world and the HUD, and turns keys and mouse reports into game input.
package frontend

import (
	"errors"
	"fmt"

	"github.com/tomz197/asteroid-shooter/internal/draw"
)

// Smallest terminal the game will start in.
const (
	MinCols = 40
	MinRows = 12
)

// ErrTerminalTooSmall is returned when the terminal cannot fit the game.
var ErrTerminalTooSmall = errors.New("frontend: terminal too small")

func checkSize(cols, rows int) error {
	if cols < MinCols || rows < MinRows {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTerminalTooSmall, cols, rows, MinCols, MinRows)
	}
	return nil
}

// playfieldAt maps a canvas cell to the playfield point at its centre.
func playfieldAt(c *draw.Canvas, col, row int) (x, y float64, ok bool) {
	if col < 0 || row < 0 || col >= c.TerminalWidth() || row >= c.TerminalHeight() {
		return 0, 0, false
	}
	x, y = c.TerminalToLogical(col, row)
	return x, y, true
}
