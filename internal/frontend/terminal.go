package frontend

import (
	"fmt"
	"io"

	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/hud"
	"github.com/tomz197/asteroid-shooter/internal/input"
	"github.com/tomz197/asteroid-shooter/internal/loop"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Terminal is a front-end for a raw ANSI terminal: a local tty or an SSH
// session. It implements loop.Surface and loop.InputSource.
type Terminal struct {
	*draw.Canvas
	out     *draw.ChunkWriter
	raw     io.Writer
	size    draw.TermSizeFunc
	stream  *input.Stream
	overlay *hud.Overlay
	field   object.Playfield

	cols, rows     int // Last seen terminal size
	offCol, offRow int
}

var (
	_ loop.Surface     = (*Terminal)(nil)
	_ loop.InputSource = (*Terminal)(nil)
)

// NewTerminal prepares the terminal behind r and w for play. Call Close to
// restore it.
func NewTerminal(r io.Reader, w io.Writer, size draw.TermSizeFunc, field object.Playfield, overlay *hud.Overlay) (*Terminal, error) {
	cols, rows, err := size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	if err := checkSize(cols, rows); err != nil {
		return nil, err
	}

	t := &Terminal{
		Canvas:  draw.NewCanvas(cols, rows, field.Width, field.Height),
		out:     draw.NewChunkWriter(w),
		raw:     w,
		size:    size,
		stream:  input.StartStream(r),
		overlay: overlay,
		field:   field,
	}
	t.fit(cols, rows)
	t.stream.SetAimFunc(t.aimAt)

	draw.HideCursor(w)
	io.WriteString(w, input.EnableMouse)
	draw.ClearScreen(w)
	return t, nil
}

// Close stops the input reader and restores the cursor, mouse reporting
// and colours.
func (t *Terminal) Close() {
	t.stream.Close()
	io.WriteString(t.raw, input.DisableMouse)
	io.WriteString(t.raw, "\033[0m")
	draw.ClearScreen(t.raw)
	draw.ShowCursor(t.raw)
}

// ReadInput implements loop.InputSource. It follows terminal resizes
// first, so the tick that reads this input draws on the new layout.
func (t *Terminal) ReadInput() loop.Input {
	// A failed size query keeps the last layout
	if cols, rows, err := t.size(); err == nil && (cols != t.cols || rows != t.rows) {
		t.fit(cols, rows)
	}
	return t.stream.ReadInput()
}

// Size returns the canvas size in cells.
func (t *Terminal) Size() (int, int) {
	return t.TerminalWidth(), t.TerminalHeight()
}

// Text writes HUD text at a canvas cell, clipped to the canvas.
func (t *Terminal) Text(col, row int, s string, c object.Color) {
	cols, rows := t.Size()
	if row < 0 || row >= rows {
		return
	}
	runes := []rune(s)
	if col < 0 {
		if -col >= len(runes) {
			return
		}
		runes = runes[-col:]
		col = 0
	}
	if col >= cols {
		return
	}
	if len(runes) > cols-col {
		runes = runes[:cols-col]
	}
	t.out.WriteAt(col, row, string(runes), draw.ToColorful(c))
}

// Present implements loop.Surface: it writes the canvas and the HUD in
// one flush.
func (t *Terminal) Present() error {
	t.out.WriteString("\033[H\033[2J")
	t.out.SetOffset(t.offCol, t.offRow)
	t.Render(t.out)
	if t.overlay != nil {
		t.overlay.Render(t)
	}
	t.out.ResetStyle()
	return t.out.Flush()
}

// fit resizes the canvas to the terminal, keeping the aspect ratio.
// The pixel buffer is reallocated, so it must run before a frame is drawn.
func (t *Terminal) fit(cols, rows int) {
	w, h, offCol, offRow := draw.FitCells(cols, rows, t.field.Width, t.field.Height)
	t.Resize(w, h)
	t.cols, t.rows = cols, rows
	t.offCol, t.offRow = offCol, offRow
}

// aimAt maps a terminal cell to the playfield.
func (t *Terminal) aimAt(col, row int) (float64, float64, bool) {
	return playfieldAt(t.Canvas, col-t.offCol, row-t.offRow)
}
