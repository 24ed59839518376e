// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/jbuchbinder/goppm"
	"github.com/jbuchbinder/goppm/physics"
)

type trajectoryConfig struct {
	Output   string
	Width    int
	Height   int
	Speed    float64
	MaxTicks int
}

func runTrajectory(cfg trajectoryConfig, logger *zap.Logger) error {
	c, err := ppm.NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if _, _, err := drawTrajectory(c, cfg.Speed, cfg.MaxTicks, logger); err != nil {
		return err
	}
	return writeCanvas(cfg.Output, c, logger)
}

// drawTrajectory plots a projectile launched from the bottom left corner in
// red. Canvas rows run top down, so y is flipped. Positions that leave the
// canvas are skipped.
func drawTrajectory(c *ppm.Canvas, speed float64, maxTicks int, logger *zap.Logger) (plotted, skipped int, err error) {
	p := physics.NewProjectile(r3.Vector{Y: 1}, r3.Vector{X: 1, Y: 1.8}.Normalize().Mul(speed))
	e := physics.Environment{
		Gravity: r3.Vector{Y: -0.1},
		Wind:    r3.Vector{X: -0.01},
	}
	red := ppm.NewColor(1, 0, 0)
	_, err = e.Simulate(p, maxTicks, func(tick int, b physics.Body) {
		x, y := int(b.Position.X), c.Height()-1-int(b.Position.Y)
		if err := c.SetPixel(x, y, red); err != nil {
			logger.Debug("projectile off canvas", zap.Int("tick", tick), zap.Error(err))
			skipped++
			return
		}
		plotted++
	})
	return plotted, skipped, err
}
