// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jbuchbinder/goppm"
)

var stdout io.Writer = os.Stdout

// writeCanvas encodes c to path, or to stdout if path is "-".
func writeCanvas(path string, c *ppm.Canvas, logger *zap.Logger) (err error) {
	if path == "-" {
		return ppm.Encode(stdout, c, ppm.WithLogger(logger))
	}
	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		err = multierr.Append(err, errors.Wrapf(f.Close(), "closing %s", path))
	}()
	if err := ppm.Encode(f, c, ppm.WithLogger(logger)); err != nil {
		return err
	}
	logger.Info("wrote image", zap.String("path", path),
		zap.Int("width", c.Width()), zap.Int("height", c.Height()))
	return nil
}
