package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere in linear motion
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the sphere center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit intersects the sphere at its position at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return hitSphere(s.CenterAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox covers the sphere at both ends of its motion
func (s *MovingSphere) BoundingBox() (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius))
	box1 := core.NewAABB(s.Center1.Subtract(radius), s.Center1.Add(radius))
	return box0.Union(box1), true
}
