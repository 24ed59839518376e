// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics moves point bodies through a constant force field one tick
// at a time and places points on a clock face. Its results are plotted onto
// a ppm.Canvas by the demo commands.
package physics

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrNoLanding is returned by Simulate when a projectile is still above the
// ground after the allowed number of ticks.
var ErrNoLanding = errors.New("projectile did not land")

// Body is a point with a velocity in units per tick.
type Body struct {
	Position r3.Vector
	Velocity r3.Vector
}

// Projectile is a body that is pulled down by an Environment.
type Projectile struct {
	Body
}

// NewProjectile returns a projectile at position moving with velocity.
func NewProjectile(position, velocity r3.Vector) *Projectile {
	return &Projectile{Body{Position: position, Velocity: velocity}}
}

// Landed reports whether the projectile is at or below the ground plane y = 0.
func (p *Projectile) Landed() bool {
	return p.Position.Y <= 0
}

// Environment is the constant force acting on every projectile.
type Environment struct {
	Gravity r3.Vector
	Wind    r3.Vector
}

// Force returns the per tick change of velocity.
func (e Environment) Force() r3.Vector {
	return e.Gravity.Add(e.Wind)
}

// Tick moves p by its velocity, then applies the environment to the velocity.
func (e Environment) Tick(p *Projectile) {
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = p.Velocity.Add(e.Force())
}

// Simulate calls visit with the state of p before every tick until p lands,
// and returns the number of ticks taken. It gives up after maxTicks.
func (e Environment) Simulate(p *Projectile, maxTicks int, visit func(tick int, b Body)) (int, error) {
	tick := 0
	for ; !p.Landed(); tick++ {
		if tick >= maxTicks {
			return tick, errors.Wrapf(ErrNoLanding, "after %d ticks at %v", tick, p.Position)
		}
		if visit != nil {
			visit(tick, p.Body)
		}
		e.Tick(p)
	}
	return tick, nil
}

// RotateY rotates v around the y axis by angle radians.
func RotateY(v r3.Vector, angle float64) r3.Vector {
	sin, cos := math.Sincos(angle)
	return r3.Vector{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// ClockPoints returns n points spaced evenly on the circle in the xz plane
// through start, beginning with start itself.
func ClockPoints(start r3.Vector, n int) []r3.Vector {
	points := make([]r3.Vector, n)
	for i := range points {
		points[i] = RotateY(start, float64(i)*2*math.Pi/float64(n))
	}
	return points
}
