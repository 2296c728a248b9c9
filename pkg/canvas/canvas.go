package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrOutOfBounds is returned when a pixel coordinate falls outside the
// canvas.
var ErrOutOfBounds = errors.New("pixel coordinate out of bounds")

// Color mirrors the shading pipeline's RGB triple so writers only need
// this package to consume the buffer.
type Color struct {
	R, G, B float64
}

// Canvas is a 2D buffer of RGB triples indexed by (x, y). The rendering
// pipeline writes into it; serialization to an image format happens
// afterwards.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// New creates a canvas of the given dimensions with every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel stores a color at (x, y).
func (c *Canvas) WritePixel(x, y int, col Color) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("write at (%d, %d) on %dx%d canvas: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	c.pixels[y*c.width+x] = col
	return nil
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) (Color, error) {
	if !c.inBounds(x, y) {
		return Color{}, fmt.Errorf("read at (%d, %d) on %dx%d canvas: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return c.pixels[y*c.width+x], nil
}

// ToImage converts the canvas to an image.RGBA with channels clamped to
// [0, 255].
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(p.R),
				G: clampChannel(p.G),
				B: clampChannel(p.B),
				A: 255,
			})
		}
	}
	return img
}

func clampChannel(v float64) uint8 {
	scaled := int(v*255 + 0.5)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
