package draw

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for half-block rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Shapes are given in logical coordinates and
// scaled to the terminal size.
type Canvas struct {
	termWidth      int              // Actual terminal columns
	termHeight     int              // Actual terminal rows
	subPixelHeight int              // termHeight * 2
	pixels         []colorful.Color // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Reusable buffers to reduce allocations
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas that scales from logical coordinates to
// termWidth x termHeight cells.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 0-based cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px, py / 2
}

// TerminalToLogical converts a 0-based cell to the logical coordinates of
// its centre.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	return (float64(col) + 0.5) / c.scaleX, (float64(row*2) + 1) / c.scaleY
}

// Cell returns the glyph and colours for a terminal cell. ok is false for
// an empty cell.
func (c *Canvas) Cell(col, row int) (ch rune, fg, bg colorful.Color, ok bool) {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return 0, Background, Background, false
	}
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]

	switch {
	case isLit(top) && isLit(bottom):
		if top == bottom {
			return BlockFull, top, Background, true
		}
		return BlockUpperHalf, top, bottom, true
	case isLit(top):
		return BlockUpperHalf, top, Background, true
	case isLit(bottom):
		return BlockLowerHalf, bottom, Background, true
	}
	return 0, Background, Background, false
}

// pixel returns the colour at pixel coordinates.
func (c *Canvas) pixel(x, y int) colorful.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return Background
	}
	return c.pixels[y*c.termWidth+x]
}

// setPixel writes a colour at pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col colorful.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// toPixel scales a logical point.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}

// borrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call.
func (c *Canvas) borrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

// FitCells picks the largest canvas inside a cols x rows terminal that
// keeps the logical aspect ratio, and the offsets that centre it.
// Half-block pixels are square, so a cell is one pixel wide and two tall.
func FitCells(cols, rows int, logicalWidth, logicalHeight float64) (w, h, offCol, offRow int) {
	aspect := logicalWidth / logicalHeight
	w = min(cols, int(math.Round(float64(rows*2)*aspect)))
	h = min(rows, int(math.Round(float64(w)/aspect/2)))
	w, h = max(w, 1), max(h, 1)
	return w, h, (cols - w) / 2, (rows - h) / 2
}
