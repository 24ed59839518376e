// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"io"
	"strconv"
)

// Magic is the format tag of plain PPM files.
const Magic = "P3"

// Header holds the fields written before the pixel data.
type Header struct {
	Width, Height int
	MaxValue      int
}

// HeaderFor returns the header describing c.
func HeaderFor(c *Canvas) Header {
	return Header{Width: c.width, Height: c.height, MaxValue: MaxValue}
}

// String returns the encoded header.
func (h Header) String() string {
	return Magic + "\n" + strconv.Itoa(h.Width) + " " + strconv.Itoa(h.Height) + "\n" +
		strconv.Itoa(h.MaxValue) + "\n"
}

// HeaderState is the field a HeaderReader is currently emitting.
type HeaderState int

// Header fields in emission order.
const (
	StateMagic HeaderState = iota
	StateWidth
	StateHeight
	StateMaxValue
	StateFinished
)

func (s HeaderState) String() string {
	switch s {
	case StateMagic:
		return "magic"
	case StateWidth:
		return "width"
	case StateHeight:
		return "height"
	case StateMaxValue:
		return "max value"
	case StateFinished:
		return "finished"
	}
	return "HeaderState(" + strconv.Itoa(int(s)) + ")"
}

// HeaderReader emits a Header one field at a time. Reads may be of any size;
// a field cut short by a small buffer is resumed on the next call.
type HeaderReader struct {
	h     Header
	state HeaderState
	// bytes of the current field already returned
	off int
	buf []byte
}

// NewHeaderReader returns a reader positioned at the magic token.
func NewHeaderReader(h Header) *HeaderReader {
	return &HeaderReader{h: h}
}

// State returns the field that the next Read starts in.
func (r *HeaderReader) State() HeaderState { return r.state }

// field renders the current field with its separator.
func (r *HeaderReader) field() []byte {
	r.buf = r.buf[:0]
	switch r.state {
	case StateMagic:
		r.buf = append(r.buf, Magic...)
		r.buf = append(r.buf, '\n')
	case StateWidth:
		r.buf = strconv.AppendInt(r.buf, int64(r.h.Width), 10)
		r.buf = append(r.buf, ' ')
	case StateHeight:
		r.buf = strconv.AppendInt(r.buf, int64(r.h.Height), 10)
		r.buf = append(r.buf, '\n')
	case StateMaxValue:
		r.buf = strconv.AppendInt(r.buf, int64(r.h.MaxValue), 10)
		r.buf = append(r.buf, '\n')
	case StateFinished:
	}
	return r.buf
}

// Read implements io.Reader. It returns io.EOF once every field was read.
func (r *HeaderReader) Read(p []byte) (int, error) {
	if r.state == StateFinished {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && r.state != StateFinished {
		f := r.field()
		c := copy(p[n:], f[r.off:])
		n += c
		r.off += c
		if r.off == len(f) {
			r.state++
			r.off = 0
		}
	}
	return n, nil
}
