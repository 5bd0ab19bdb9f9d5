package frontend

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tomz197/asteroid-shooter/internal/hud"
	"github.com/tomz197/asteroid-shooter/internal/input"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

var field = object.Playfield{Width: 800, Height: 600}

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func newTestTerminal(t *testing.T, cols, rows int) (*Terminal, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	overlay := hud.NewOverlay()
	overlay.Welcome()
	term, err := NewTerminal(strings.NewReader(""), &out, fixedSize(cols, rows), field, overlay)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	return term, &out
}

func TestNewTerminalTooSmall(t *testing.T) {
	tests := []struct{ cols, rows int }{
		{MinCols - 1, MinRows},
		{MinCols, MinRows - 1},
		{0, 0},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		_, err := NewTerminal(strings.NewReader(""), &out, fixedSize(tt.cols, tt.rows), field, nil)
		if !errors.Is(err, ErrTerminalTooSmall) {
			t.Errorf("%dx%d: err = %v, want ErrTerminalTooSmall", tt.cols, tt.rows, err)
		}
		if out.Len() != 0 {
			t.Errorf("%dx%d: wrote %q to a rejected terminal", tt.cols, tt.rows, out.String())
		}
	}
}

func TestNewTerminalSizeError(t *testing.T) {
	boom := errors.New("not a tty")
	size := func() (int, int, error) { return 0, 0, boom }
	if _, err := NewTerminal(strings.NewReader(""), &bytes.Buffer{}, size, field, nil); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestTerminalSetupAndClose(t *testing.T) {
	term, out := newTestTerminal(t, 80, 24)
	if !strings.HasPrefix(out.String(), "\033[?25l"+input.EnableMouse) {
		t.Errorf("setup wrote %q", out.String())
	}

	out.Reset()
	term.Close()
	got := out.String()
	if !strings.HasPrefix(got, input.DisableMouse) || !strings.HasSuffix(got, "\033[?25h") {
		t.Errorf("Close wrote %q", got)
	}
}

func TestTerminalPresent(t *testing.T) {
	term, out := newTestTerminal(t, 80, 24)
	out.Reset()

	term.Clear()
	term.DrawAsteroid(400, 300, 40, object.RGBA(1, 0, 0, 1))
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\033[H\033[2J") {
		t.Error("frame does not start by clearing the screen")
	}
	if !strings.Contains(got, "\033[38;2;255;0;0m") {
		t.Error("asteroid colour missing")
	}
	if !strings.Contains(got, "A S T E R O I D S") {
		t.Error("welcome text missing")
	}
	if !strings.HasSuffix(got, "\033[0m") {
		t.Error("style not reset at the end of the frame")
	}
}

func TestTerminalFollowsResize(t *testing.T) {
	var out bytes.Buffer
	cols, rows := 80, 24
	size := func() (int, int, error) { return cols, rows, nil }
	term, err := NewTerminal(strings.NewReader(""), &out, size, field, nil)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	if w, h := term.Size(); w != 64 || h != 24 {
		t.Fatalf("size = %dx%d, want 64x24", w, h)
	}

	cols, rows = 200, 30
	term.ReadInput()
	if w, h := term.Size(); w != 80 || h != 30 {
		t.Fatalf("size after resize = %dx%d, want 80x30", w, h)
	}

	// The frame drawn after the read survives to the screen
	out.Reset()
	term.Clear()
	term.DrawAsteroid(400, 300, 40, object.RGBA(1, 0, 0, 1))
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if !strings.Contains(out.String(), "\033[38;2;255;0;0m") {
		t.Error("frame after a resize rendered blank")
	}
	if !strings.Contains(out.String(), "\033[16;101H") {
		t.Errorf("frame not drawn on the new layout: %q", out.String())
	}
}

func TestTerminalKeepsLayoutOnSizeError(t *testing.T) {
	var out bytes.Buffer
	fail := false
	size := func() (int, int, error) {
		if fail {
			return 0, 0, errors.New("closed")
		}
		return 80, 24, nil
	}
	term, err := NewTerminal(strings.NewReader(""), &out, size, field, nil)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}

	fail = true
	term.ReadInput()
	if w, h := term.Size(); w != 64 || h != 24 {
		t.Errorf("size = %dx%d, want 64x24", w, h)
	}
}

func TestTerminalTextClips(t *testing.T) {
	term, out := newTestTerminal(t, 80, 24)
	out.Reset()

	term.Text(-2, 0, "abcd", object.RGBA(1, 1, 1, 1))
	term.Text(62, 1, "wxyz", object.RGBA(1, 1, 1, 1))
	term.Text(0, 24, "gone", object.RGBA(1, 1, 1, 1))
	term.Text(-10, 2, "gone", object.RGBA(1, 1, 1, 1))
	term.out.Flush()

	got := out.String()
	if !strings.Contains(got, "cd") || strings.Contains(got, "ab") {
		t.Errorf("left clip wrote %q", got)
	}
	if !strings.Contains(got, "wx") || strings.Contains(got, "y") {
		t.Errorf("right clip wrote %q", got)
	}
	if strings.Contains(got, "gone") {
		t.Errorf("off-canvas text written: %q", got)
	}
}

func TestTerminalAim(t *testing.T) {
	term, _ := newTestTerminal(t, 80, 24)

	tests := []struct {
		name     string
		col, row int
		x, y     float64
		ok       bool
	}{
		{name: "top left of the canvas", col: 8, row: 0, x: 6.25, y: 12.5, ok: true},
		{name: "right edge", col: 8 + 63, row: 12, x: 793.75, y: 312.5, ok: true},
		{name: "left margin", col: 2, row: 12},
		{name: "right margin", col: 8 + 64, row: 12},
		{name: "below", col: 20, row: 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := term.aimAt(tt.col, tt.row)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9) {
				t.Errorf("aimAt = (%v,%v), want (%v,%v)", x, y, tt.x, tt.y)
			}
		})
	}
}
