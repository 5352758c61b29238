package kidpaint

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Canvas is the live drawing surface: a rectangular RGBA pixel buffer.
// Exactly one live Canvas exists per session. The background is always
// fully opaque; erasing repaints [Background] rather than clearing.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a canvas of the given dimensions filled with the
// blank background color.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	c.Fill(Background)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pix returns the raw pixel data (RGBA format).
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// PixelAt returns the color of a single pixel.
// Out-of-bounds coordinates return the background color.
func (c *Canvas) PixelAt(x, y int) color.NRGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Background
	}
	i := (y*c.width + x) * 4
	return color.NRGBA{
		R: c.pix[i+0],
		G: c.pix[i+1],
		B: c.pix[i+2],
		A: c.pix[i+3],
	}
}

// Fill floods the entire canvas with a color.
func (c *Canvas) Fill(col color.NRGBA) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = col.A
	}
}

// Clear resets the canvas to the blank background.
func (c *Canvas) Clear() {
	c.Fill(Background)
}

// Clone returns an independent copy of the canvas. Undo snapshots and
// archive writes both rely on clones so later strokes cannot reach back
// into recorded state.
func (c *Canvas) Clone() *Canvas {
	dup := &Canvas{
		width:  c.width,
		height: c.height,
		pix:    make([]uint8, len(c.pix)),
	}
	copy(dup.pix, c.pix)
	return dup
}

// Equal reports whether two canvases have identical dimensions and
// bit-for-bit identical pixel data.
func (c *Canvas) Equal(o *Canvas) bool {
	if o == nil || c.width != o.width || c.height != o.height {
		return false
	}
	return bytes.Equal(c.pix, o.pix)
}

// CopyFrom overwrites this canvas with the pixels of src.
// Dimensions must match; mismatches are a programming error.
func (c *Canvas) CopyFrom(src *Canvas) error {
	if src.width != c.width || src.height != c.height {
		return fmt.Errorf("kidpaint: canvas size mismatch: %dx%d vs %dx%d",
			c.width, c.height, src.width, src.height)
	}
	copy(c.pix, src.pix)
	return nil
}

// ToImage converts the canvas to an image.NRGBA sharing no memory
// with the canvas.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.pix)
	return img
}

// FromImage creates a canvas from an image. Pixels are forced opaque;
// a loaded archive always becomes a valid blank-backed canvas.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return c
}

// EncodePNG writes the canvas to w as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// DecodeCanvas reads a PNG image from r into a new canvas.
func DecodeCanvas(r io.Reader) (*Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("kidpaint: decode canvas: %w", err)
	}
	return FromImage(img), nil
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
