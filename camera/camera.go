// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/multiview/window"
)

// Well-known camera names.
const (
	Main      = "Main"
	Secondary = "Secondary"
)

// Transform places a camera in world space.
type Transform struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// LookAt returns a transform at position looking at target with +Y up.
func LookAt(position, target mgl32.Vec3) Transform {
	return Transform{Position: position, Target: target, Up: mgl32.Vec3{0, 1, 0}}
}

// Projection is a perspective projection. FovY is in radians.
type Projection struct {
	FovY float32
	Near float32
	Far  float32
}

// DefaultProjection returns a 45 degree perspective with a 1..1000 depth range.
func DefaultProjection() Projection {
	return Projection{FovY: mgl32.DegToRad(45), Near: 1, Far: 1000}
}

// Camera is a named camera bound to one window.
type Camera struct {
	Name      string
	Window    window.ID
	Transform Transform
	Lens      Projection
}

// View returns the world-to-view matrix.
func (c Camera) View() mgl32.Mat4 {
	up := c.Transform.Up
	if up == (mgl32.Vec3{}) {
		up = mgl32.Vec3{0, 1, 0}
	}
	return mgl32.LookAtV(c.Transform.Position, c.Transform.Target, up)
}

// Projection returns the view-to-clip matrix for the given aspect ratio.
// A zero Lens falls back to DefaultProjection; a non-positive aspect
// is treated as 1.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	p := c.Lens
	if p == (Projection{}) {
		p = DefaultProjection()
	}
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(p.FovY, aspect, p.Near, p.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}
