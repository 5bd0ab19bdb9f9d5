// Package input turns terminal input into per-tick game input.
package input

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/loop"
)

// keyHoldDuration is how long a key counts as held after its last press.
// Terminals only report key repeats, never releases, so this must outlast
// the gap between repeats.
const keyHoldDuration = 60 * time.Millisecond

// AimFunc converts a pointer position in terminal cells into playfield
// coordinates. It returns false when the cell is outside the playfield.
type AimFunc func(col, row int) (x, y float64, ok bool)

// keyState tracks the last time each held key was seen, plus the one-shot
// requests and pointer state gathered since the last read.
type keyState struct {
	fire  time.Time
	left  time.Time
	right time.Time

	mouseFire bool // Left button down, set by press and cleared by release

	start   bool
	restart bool
	quit    bool

	aimX, aimY float64
	aimSet     bool
}

// applyByte updates the key state for a single plain byte.
func (k *keyState) applyByte(b byte, now time.Time) {
	switch b {
	case ' ':
		k.fire = now
	case 'a', 'A', 'h', 'H':
		k.left = now
	case 'd', 'D', 'l', 'L':
		k.right = now
	case '\n', '\r':
		k.start = true
	case 'r', 'R':
		k.restart = true
	case 'q', 'Q', 0x03:
		k.quit = true
	}
}

// pointTo records a pointer position as the new aim.
func (k *keyState) pointTo(aim AimFunc, col, row int) {
	if aim == nil {
		return
	}
	if x, y, ok := aim(col, row); ok {
		k.aimX, k.aimY = x, y
		k.aimSet = true
	}
}

// snapshot builds the tick's input and clears the one-shot requests.
func (k *keyState) snapshot(now time.Time) loop.Input {
	in := loop.Input{
		Fire:    k.mouseFire || now.Sub(k.fire) < keyHoldDuration,
		AimX:    k.aimX,
		AimY:    k.aimY,
		AimSet:  k.aimSet,
		Start:   k.start,
		Restart: k.restart,
		Quit:    k.quit,
	}

	left := now.Sub(k.left) < keyHoldDuration
	right := now.Sub(k.right) < keyHoldDuration
	switch {
	case left && !right:
		in.Turn = -1
	case right && !left:
		in.Turn = 1
	}

	k.start, k.restart, k.aimSet = false, false, false
	return in
}
