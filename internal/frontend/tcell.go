package frontend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/hud"
	"github.com/tomz197/asteroid-shooter/internal/input"
	"github.com/tomz197/asteroid-shooter/internal/loop"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Tcell is a front-end backed by a tcell screen. It implements
// loop.Surface and loop.InputSource.
type Tcell struct {
	*draw.Screen
	src     *input.TcellSource
	overlay *hud.Overlay
	resized bool
}

var (
	_ loop.Surface     = (*Tcell)(nil)
	_ loop.InputSource = (*Tcell)(nil)
)

// NewTcell wraps an initialised screen. The caller keeps ownership and
// calls Fini when done.
func NewTcell(screen tcell.Screen, field object.Playfield, overlay *hud.Overlay) (*Tcell, error) {
	cols, rows := screen.Size()
	if err := checkSize(cols, rows); err != nil {
		return nil, err
	}

	t := &Tcell{
		Screen:  draw.NewScreen(screen, field.Width, field.Height),
		src:     input.NewTcellSource(screen),
		overlay: overlay,
	}
	t.src.SetAimFunc(t.aimAt)
	t.src.OnResize(func(int, int) { t.resized = true })
	screen.HideCursor()
	return t, nil
}

// ReadInput implements loop.InputSource. A resize seen while reading is
// applied before the tick draws.
func (t *Tcell) ReadInput() loop.Input {
	in := t.src.ReadInput()
	if t.resized {
		t.resized = false
		t.Fit()
	}
	return in
}

// Close stops the event poller. The screen itself stays with the caller.
func (t *Tcell) Close() {
	t.src.Close()
}

// Present implements loop.Surface.
func (t *Tcell) Present() error {
	t.Blit()
	if t.overlay != nil {
		t.overlay.Render(t.Screen)
	}
	t.Show()
	return nil
}

func (t *Tcell) aimAt(col, row int) (float64, float64, bool) {
	offCol, offRow := t.Offset()
	return playfieldAt(t.Canvas, col-offCol, row-offRow)
}
