package css

import (
	"image/color"
)

// Color is an RGBA color with 8 bits per channel. The alpha channel is not
// premultiplied. Colors always serialize to "#rrggbbaa", even if fully opaque.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Gray creates an opaque gray tone with all color channels set to v.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v, A: 0xff}
}

// ColorOf converts a color from the standard library's color model.
// A nil color converts to transparent black.
func ColorOf(c color.Color) Color {
	switch c := c.(type) {
	case nil:
		return Color{}
	case Color:
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

const hexDigits = "0123456789abcdef"

// String returns the CSS text of c, i.e. "#rrggbbaa" with lower case hex digits.
func (c Color) String() string {
	var buf [9]byte
	buf[0] = '#'
	for i, ch := range [4]uint8{c.R, c.G, c.B, c.A} {
		buf[1+2*i] = hexDigits[ch>>4]
		buf[2+2*i] = hexDigits[ch&0x0f]
	}
	return string(buf[:])
}

var _ color.Color = Color{}
