// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	lineLimit int
}

// Option configures a Reader or Encode.
type Option func(*options) error

// WithLogger sets the logger that line wrapping decisions go to at debug
// level. A nil logger discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
		return nil
	}
}

// WithLineLimit overrides LineLimit.
func WithLineLimit(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.Errorf("line limit must be positive, got %d", n)
		}
		o.lineLimit = n
		return nil
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{logger: zap.NewNop(), lineLimit: LineLimit}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}
