package kidpaint

import "image/color"

// Background is the blank canvas color. The canvas is always fully
// opaque; erasing paints this color rather than clearing alpha.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Black is the default draw color when no palette is configured.
var Black = color.NRGBA{A: 255}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// FromColor converts a standard color.Color to an opaque NRGBA value.
// Alpha is forced to 255: every pixel the paint core touches is opaque.
func FromColor(c color.Color) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: 255,
	}
}
