package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Background is the colour of an unlit pixel.
var Background = colorful.Color{}

// ToColorful drops the alpha channel of c and clamps it into gamut.
func ToColorful(c object.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

// blend lays c over dst using c's alpha.
func blend(dst colorful.Color, c object.Color) colorful.Color {
	a := c.A
	switch {
	case a >= 1:
		return ToColorful(c)
	case a <= 0:
		return dst
	}
	return dst.BlendRgb(ToColorful(c), a).Clamped()
}

// isLit reports whether a pixel differs from the background.
func isLit(c colorful.Color) bool {
	return c != Background
}

// TcellColor converts a colour for a tcell style.
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
