package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Screen renders a Canvas through tcell. Draw calls go to the embedded
// Canvas; Blit copies it to the tcell back buffer and Show flushes it.
type Screen struct {
	*Canvas
	screen tcell.Screen
	offCol int
	offRow int
}

// NewScreen creates a renderer for an initialised tcell screen.
func NewScreen(screen tcell.Screen, logicalWidth, logicalHeight float64) *Screen {
	s := &Screen{
		Canvas: NewCanvas(1, 1, logicalWidth, logicalHeight),
		screen: screen,
	}
	s.Fit()
	return s
}

// Fit resizes the canvas to the current terminal size, keeping the
// playfield's aspect ratio and centring it.
func (s *Screen) Fit() {
	cols, rows := s.screen.Size()
	w, h, offCol, offRow := FitCells(cols, rows, s.logicalWidth, s.logicalHeight)
	s.Resize(w, h)
	s.offCol, s.offRow = offCol, offRow
}

// Offset returns the terminal cell of the canvas's top-left corner.
func (s *Screen) Offset() (col, row int) {
	return s.offCol, s.offRow
}

// Size returns the canvas size in cells.
func (s *Screen) Size() (int, int) {
	return s.termWidth, s.termHeight
}

// Blit copies the canvas into the tcell back buffer.
func (s *Screen) Blit() {
	s.screen.Clear()
	for row := range s.termHeight {
		for col := range s.termWidth {
			ch, fg, bg, ok := s.Cell(col, row)
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Foreground(TcellColor(fg))
			if isLit(bg) {
				style = style.Background(TcellColor(bg))
			}
			s.screen.SetContent(col+s.offCol, row+s.offRow, ch, nil, style)
		}
	}
}

// Text writes a string starting at a 0-based canvas cell, clipped to the canvas.
func (s *Screen) Text(col, row int, text string, c object.Color) {
	if row < 0 || row >= s.termHeight {
		return
	}
	style := tcell.StyleDefault.Foreground(TcellColor(ToColorful(c)))
	for _, r := range text {
		if col >= s.termWidth {
			return
		}
		if col >= 0 {
			s.screen.SetContent(col+s.offCol, row+s.offRow, r, nil, style)
		}
		col++
	}
}

// Show flushes the back buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}
