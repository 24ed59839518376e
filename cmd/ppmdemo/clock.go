// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/jbuchbinder/goppm"
	"github.com/jbuchbinder/goppm/physics"
)

const (
	hours = 12
	// radius of the clock face as a fraction of the canvas size
	clockRadius = 0.33
)

func runClock(output string, size int, logger *zap.Logger) error {
	c, err := ppm.NewCanvas(size, size)
	if err != nil {
		return err
	}
	drawClock(c, logger)
	return writeCanvas(output, c, logger)
}

// drawClock marks the hours of a clock face centered on c, twelve o'clock at
// the bottom, each hour one step further around the hue circle.
func drawClock(c *ppm.Canvas, logger *zap.Logger) {
	size := float64(c.Width())
	radius := size * clockRadius
	for i, p := range physics.ClockPoints(r3.Vector{Z: 1}, hours) {
		x := int(size/2 + radius*p.X)
		y := int(float64(c.Height())/2 + radius*p.Z)
		col := ppm.FromColorful(colorful.Hsv(float64(i)*360/hours, 1, 1))
		if err := c.SetPixel(x, y, col); err != nil {
			logger.Warn("hour mark off canvas", zap.Int("hour", i), zap.Error(err))
			continue
		}
		logger.Debug("hour mark", zap.Int("hour", i), zap.Int("x", x), zap.Int("y", y),
			zap.String("color", col.Colorful().Hex()))
	}
}
