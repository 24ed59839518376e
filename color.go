// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxValue is the largest channel value written to the pixel data.
const MaxValue = 255

// Color is a red, green and blue sample. Components are not range checked;
// they are clamped to [0, 1] only when quantized.
type Color struct {
	R, G, B float64
}

var (
	// Black is the color a new canvas is filled with.
	Black = Color{}
	// White is full intensity on every channel.
	White = Color{1, 1, 1}
)

// NewColor returns the color (r, g, b).
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// Add returns the component-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the component-wise difference of c and o.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the Hadamard product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Equal reports exact component-wise equality.
func (c Color) Equal(o Color) bool {
	return c == o
}

// ApproxEqual reports whether every component of c is within eps of o.
func (c Color) ApproxEqual(o Color, eps float64) bool {
	return math.Abs(c.R-o.R) <= eps &&
		math.Abs(c.G-o.G) <= eps &&
		math.Abs(c.B-o.B) <= eps
}

// Quantize returns the three channel values as written to a PPM file.
func (c Color) Quantize() (r, g, b int) {
	return QuantizeChannel(c.R), QuantizeChannel(c.G), QuantizeChannel(c.B)
}

// RGBA implements color.Color. It is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	ri, gi, bi := c.Quantize()
	r = uint32(ri)
	r |= r << 8
	g = uint32(gi)
	g |= g << 8
	b = uint32(bi)
	b |= b << 8
	return r, g, b, 0xffff
}

// Colorful converts c to a go-colorful color without clamping.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts a go-colorful color.
func FromColorful(c colorful.Color) Color {
	return Color{c.R, c.G, c.B}
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

// QuantizeChannel clamps v to [0, 1], scales it to [0, MaxValue] and rounds
// half away from zero, so 0.5 becomes 128.
func QuantizeChannel(v float64) int {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return MaxValue
	}
	return int(math.Round(v * MaxValue))
}
