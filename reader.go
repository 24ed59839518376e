// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reader serves the plain PPM encoding of a canvas. The whole encoding is
// built by NewReader; reads only copy out of it.
type Reader struct {
	buf []byte
	off int
}

// NewReader encodes c. Rows are written top to bottom, so callers plotting
// with y pointing up have to flip y before writing pixels.
func NewReader(c *Canvas, opts ...Option) (*Reader, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	header, err := io.ReadAll(NewHeaderReader(HeaderFor(c)))
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	buf := make([]byte, 0, len(header)+len(c.pix)*maxBytesPerPixel)
	buf = append(buf, header...)
	for y := 0; y < c.height; y++ {
		start := len(buf)
		buf = EncodeRow(buf, c.Row(y))
		wrapRow(buf[start:], o.lineLimit, o.logger.With(zap.Int("row", y)))
	}
	o.logger.Debug("encoded canvas",
		zap.Int("width", c.width), zap.Int("height", c.height), zap.Int("bytes", len(buf)))
	return &Reader{buf: buf}, nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.off:])
	r.off += n
	return n, nil
}

// WriteTo implements io.WriterTo, writing the unread part of the encoding.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.buf[r.off:])
	r.off += n
	return int64(n), err
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.off }

// Bytes returns the unread part of the encoding. The slice is only valid
// until the next read.
func (r *Reader) Bytes() []byte { return r.buf[r.off:] }
