// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/jbuchbinder/goppm/physics"
)

const defaultMaxTicks = 10000

func runProjectile(maxTicks int, logger *zap.Logger) error {
	p := physics.NewProjectile(r3.Vector{Y: 1}, r3.Vector{X: 1, Y: 1}.Normalize())
	e := physics.Environment{
		Gravity: r3.Vector{Y: -0.1},
		Wind:    r3.Vector{X: 0.01},
	}
	ticks, err := e.Simulate(p, maxTicks, func(tick int, b physics.Body) {
		logger.Info("tick",
			zap.Int("tick", tick),
			zap.Stringer("position", vec(b.Position)),
			zap.Stringer("velocity", vec(b.Velocity)))
	})
	if err != nil {
		return err
	}
	logger.Info("landed", zap.Int("ticks", ticks), zap.Stringer("position", vec(p.Position)))
	return nil
}

// vec prints a vector with fewer digits than r3.Vector.String.
type vec r3.Vector

func (v vec) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
