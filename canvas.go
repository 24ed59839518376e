// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// ErrZeroArea is returned when a canvas is requested with a zero or negative
// dimension.
var ErrZeroArea = errors.New("canvas must have a positive width and height")

// ErrTooLarge is returned when a canvas, or its encoding at up to
// maxBytesPerPixel bytes per pixel, would not fit in memory addressable by int.
var ErrTooLarge = errors.New("canvas is too large")

const (
	// three values of up to three digits, each followed by a separator
	maxBytesPerPixel = 12
	// longest possible header: two 19 digit dimensions and the max value
	maxHeaderBytes = 64
)

// Model converts any color to a Color with channels in [0, 1]. Alpha is
// ignored.
var Model = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if col, ok := c.(Color); ok {
		return col
	}
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}

// CoordinateOutOfRangeError describes an access outside of a canvas.
type CoordinateOutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *CoordinateOutOfRangeError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) is outside of %dx%d canvas", e.X, e.Y, e.Width, e.Height)
}

// Canvas is a fixed size grid of colors stored row-major.
// The zero value is not usable; create one with NewCanvas.
type Canvas struct {
	width, height int
	pix           []Color
}

// NewCanvas returns a black canvas of the given size.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrZeroArea, "got %dx%d", width, height)
	}
	if width > (math.MaxInt-maxHeaderBytes)/maxBytesPerPixel/height {
		return nil, errors.Wrapf(ErrTooLarge, "got %dx%d", width, height)
	}
	// make zeroes every cell, and the zero Color is Black.
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// MustNewCanvas is like NewCanvas but panics on a zero area.
func MustNewCanvas(width, height int) *Canvas {
	c, err := NewCanvas(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Contains reports whether (x, y) addresses a pixel of c.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) index(x, y int) (int, error) {
	if !c.Contains(x, y) {
		return 0, &CoordinateOutOfRangeError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	return y*c.width + x, nil
}

// WritePixel sets the pixel at (x, y). It panics with a
// *CoordinateOutOfRangeError if (x, y) is outside of the canvas.
func (c *Canvas) WritePixel(x, y int, col Color) {
	i, err := c.index(x, y)
	if err != nil {
		panic(err)
	}
	c.pix[i] = col
}

// PixelAt returns the pixel at (x, y). It panics like WritePixel.
func (c *Canvas) PixelAt(x, y int) Color {
	i, err := c.index(x, y)
	if err != nil {
		panic(err)
	}
	return c.pix[i]
}

// SetPixel is WritePixel for coordinates that come from untrusted input.
func (c *Canvas) SetPixel(x, y int, col Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pix[i] = col
	return nil
}

// Pixel is PixelAt for coordinates that come from untrusted input.
func (c *Canvas) Pixel(x, y int) (Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return Black, err
	}
	return c.pix[i], nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Row returns row y. The slice aliases the canvas and must not be modified.
func (c *Canvas) Row(y int) []Color {
	if y < 0 || y >= c.height {
		panic(&CoordinateOutOfRangeError{X: 0, Y: y, Width: c.width, Height: c.height})
	}
	return c.pix[y*c.width : (y+1)*c.width]
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return Model }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image. Points outside of the canvas are Black.
func (c *Canvas) At(x, y int) color.Color {
	if !c.Contains(x, y) {
		return Black
	}
	return c.pix[y*c.width+x]
}

// canvasFromImage copies m into a new canvas converted by Model.
func canvasFromImage(m image.Image) (*Canvas, error) {
	if c, ok := m.(*Canvas); ok {
		return c, nil
	}
	b := m.Bounds()
	c, err := NewCanvas(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.pix[(y-b.Min.Y)*c.width+(x-b.Min.X)] = toColor(m.At(x, y)).(Color)
		}
	}
	return c, nil
}
