package frontend

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-shooter/internal/hud"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func TestNewTcellTooSmall(t *testing.T) {
	_, err := NewTcell(newSimScreen(t, 30, 10), field, nil)
	if !errors.Is(err, ErrTerminalTooSmall) {
		t.Errorf("err = %v, want ErrTerminalTooSmall", err)
	}
}

func TestTcellPresent(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	overlay := hud.NewOverlay()
	overlay.Welcome()
	tc, err := NewTcell(sim, field, overlay)
	if err != nil {
		t.Fatalf("NewTcell: %v", err)
	}

	tc.Clear()
	tc.DrawShip(400, 300, 20, 0, object.RGBA(0, 0.6, 0.9, 1))
	if err := tc.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	// Title row: (24/2 - 2), centred on the 64-column canvas
	offCol, offRow := tc.Offset()
	col := offCol + (64-17)/2
	if ch, _, _, _ := sim.GetContent(col, offRow+10); ch != 'A' {
		t.Errorf("title starts with %q, want A", ch)
	}

	if _, _, ok := tc.aimAt(offCol+63, offRow+12); !ok {
		t.Error("no aim inside the canvas")
	}
	if _, _, ok := tc.aimAt(offCol-1, offRow+12); ok {
		t.Error("aim from the margin")
	}
}

func TestTcellRefitsAfterResize(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	tc, err := NewTcell(sim, field, nil)
	if err != nil {
		t.Fatalf("NewTcell: %v", err)
	}

	sim.SetSize(200, 30)
	tc.src.Handle(tcell.NewEventResize(200, 30), time.Now())
	tc.ReadInput()
	if w, h := tc.Size(); w != 80 || h != 30 {
		t.Fatalf("size = %dx%d, want 80x30", w, h)
	}

	// The frame drawn after the read survives to the screen
	tc.Clear()
	tc.DrawAsteroid(400, 300, 40, object.RGBA(1, 0, 0, 1))
	if err := tc.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	col, row := tc.LogicalToTerminal(400, 300)
	offCol, offRow := tc.Offset()
	if ch, _, _, _ := sim.GetContent(col+offCol, row+offRow); ch != '█' {
		t.Errorf("centre after resize = %q, want full block", ch)
	}
}
