// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppm writes images in the plain (P3) Portable Pixmap format.
//
// Pixel data lines are wrapped so that no line is longer than 70 characters
// and no number is split across lines.
package ppm

import (
	"image"
	"io"

	"github.com/pkg/errors"
)

// Encode writes an image.Image m to io.Writer w in plain PPM format.
//
// A *Canvas is written as is. Any other image is converted first, its
// 16-bit channels becoming values in [0, 1]; alpha is ignored.
func Encode(w io.Writer, m image.Image, opts ...Option) error {
	c, err := canvasFromImage(m)
	if err != nil {
		return err
	}
	r, err := NewReader(c, opts...)
	if err != nil {
		return err
	}
	if _, err := r.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing ppm")
	}
	return nil
}

// EncodeToBytes returns the plain PPM encoding of c.
func EncodeToBytes(c *Canvas, opts ...Option) ([]byte, error) {
	r, err := NewReader(c, opts...)
	if err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}
