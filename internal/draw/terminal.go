package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for smooth SSH flow.
const maxChunkSize = 1400

// ChunkWriter accumulates a frame of terminal output and writes it in
// chunks. Use MoveCursor, WriteString and friends to accumulate, then
// Flush to write to the underlying writer.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int

	fg, bg colorful.Color // Last emitted colours
	fgSet  bool
	bgSet  bool
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

// SetOffset updates the cursor offset used to centre the frame.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are
// 0-based canvas cells; the offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.writeInt(row + cw.offRow + 1)
	cw.buf.WriteByte(';')
	cw.writeInt(col + cw.offCol + 1)
	cw.buf.WriteByte('H')
}

func (cw *ChunkWriter) writeInt(n int) {
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(n), 10))
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// SetForeground switches the 24-bit foreground colour if it changed.
func (cw *ChunkWriter) SetForeground(c colorful.Color) {
	if cw.fgSet && cw.fg == c {
		return
	}
	r, g, b := c.RGB255()
	fmt.Fprintf(&cw.buf, "\033[38;2;%d;%d;%dm", r, g, b)
	cw.fg, cw.fgSet = c, true
}

// SetBackground switches the 24-bit background colour; the background
// colour itself maps to the terminal default.
func (cw *ChunkWriter) SetBackground(c colorful.Color) {
	if cw.bgSet && cw.bg == c {
		return
	}
	if c == Background {
		cw.buf.WriteString("\033[49m")
	} else {
		r, g, b := c.RGB255()
		fmt.Fprintf(&cw.buf, "\033[48;2;%d;%d;%dm", r, g, b)
	}
	cw.bg, cw.bgSet = c, true
}

// ResetStyle returns to the terminal's default colours.
func (cw *ChunkWriter) ResetStyle() {
	cw.buf.WriteString("\033[0m")
	cw.fgSet, cw.bgSet = false, false
}

// WriteAt writes coloured text at a 0-based cell.
func (cw *ChunkWriter) WriteAt(col, row int, s string, c colorful.Color) {
	cw.MoveCursor(col, row)
	cw.SetForeground(c)
	cw.SetBackground(Background)
	cw.buf.WriteString(s)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// Render appends every lit cell of c to the writer as coloured half blocks.
// Empty cells are skipped; callers clear the screen first.
func (c *Canvas) Render(cw *ChunkWriter) {
	cw.buf.Grow(c.termWidth * c.termHeight * 4)

	for row := range c.termHeight {
		for col := range c.termWidth {
			ch, fg, bg, ok := c.Cell(col, row)
			if !ok {
				continue
			}
			cw.MoveCursor(col, row)
			cw.SetForeground(fg)
			cw.SetBackground(bg)
			cw.WriteRune(ch)
		}
	}
	cw.ResetStyle()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
