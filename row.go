// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"bytes"
	"strconv"

	"go.uber.org/zap"
)

// LineLimit is the longest pixel data line, excluding the newline, that
// PPM readers are required to accept.
const LineLimit = 70

// EncodeRow appends the quantized channels of row to dst, each one followed by
// a single space.
func EncodeRow(dst []byte, row []Color) []byte {
	for _, c := range row {
		r, g, b := c.Quantize()
		dst = strconv.AppendInt(dst, int64(r), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(g), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(b), 10)
		dst = append(dst, ' ')
	}
	return dst
}

// WrapRow turns a row produced by EncodeRow into lines of at most limit
// bytes by replacing separators with newlines. It modifies raw in place and
// returns it. A limit below 1 is treated as 1.
//
// Each line takes the last separator at or before offset limit, so a line
// can be exactly limit bytes long. A number longer than limit is kept whole
// and ends its line at the next separator instead.
func WrapRow(raw []byte, limit int) []byte {
	return wrapRow(raw, limit, zap.NewNop())
}

func wrapRow(raw []byte, limit int, logger *zap.Logger) []byte {
	if limit < 1 {
		limit = 1
	}
	start := 0
	for start < len(raw) {
		if len(raw)-start <= limit {
			if last := len(raw) - 1; raw[last] == ' ' {
				raw[last] = '\n'
			}
			return raw
		}
		i := start + limit
		for i >= start && raw[i] != ' ' {
			i--
		}
		if i < start {
			j := bytes.IndexByte(raw[start+limit:], ' ')
			if j < 0 {
				logger.Debug("row has no separator to end it", zap.Int("offset", start))
				return raw
			}
			i = start + limit + j
			logger.Debug("no separator within line limit, splitting after it",
				zap.Int("offset", start), zap.Int("split", i), zap.Int("limit", limit))
		} else {
			logger.Debug("splitting long row", zap.Int("offset", start), zap.Int("split", i))
		}
		raw[i] = '\n'
		start = i + 1
	}
	return raw
}
