package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium filling a closed boundary.
// Rays scatter inside it at an exponentially distributed distance governed by Density.
type ConstantMedium struct {
	Boundary      core.Hittable
	Density       float64
	PhaseFunction core.Material
}

// NewConstantMedium fills boundary with a medium of the given density and color
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewTexturedConstantMedium fills boundary with a textured medium
func NewTexturedConstantMedium(boundary core.Hittable, density float64, albedo core.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit finds where the ray enters and leaves the boundary and draws a
// scattering distance in between. It never hits without a sampler.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if sampler == nil || m.Density <= 0 {
		return nil, false
	}

	enter, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, enter.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t0 := math.Max(enter.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := -(1 / m.Density) * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return m.Boundary.BoundingBox()
}
