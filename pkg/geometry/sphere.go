package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// PDFValue returns the uniform solid-angle density of the cone the sphere
// subtends from origin, or 0 if direction misses the sphere. From inside the
// sphere every direction hits it, so the density is uniform over all directions.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, core.Infinity, nil); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if s.contains(distanceSquared) {
		return 1 / (4 * math.Pi)
	}

	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// Random samples a direction uniformly within the cone the sphere subtends
// from origin, or over the whole sphere of directions from inside
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if s.contains(distanceSquared) {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}
	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// contains reports whether a point at the given squared distance from the
// center lies inside or on the sphere
func (s *Sphere) contains(distanceSquared float64) bool {
	return distanceSquared <= s.Radius*s.Radius
}

// hitSphere solves the ray/sphere quadratic and returns the nearest root in (tMin, tMax)
func hitSphere(center core.Vec3, radius float64, material core.Material, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: material,
	}
	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u wraps around the Y axis starting at -X, v runs from the bottom pole to the top
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
