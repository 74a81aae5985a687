package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center   core.Vec3     // Center of the disc
	Normal   core.Vec3     // Outward unit normal
	Radius   float64       // Radius of the disc
	Material core.Material // Material of the disc
	basis    core.ONB      // In-plane axes U, V around Normal
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	basis := core.NewONB(normal)
	return &Disc{
		Center:   center,
		Normal:   basis.W,
		Radius:   radius,
		Material: material,
		basis:    basis,
	}
}

// Hit intersects the disc's plane and checks the radius
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := d.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	offset := point.Subtract(d.Center)
	if offset.LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	// Polar texture coordinates: u is the angle, v the normalized radius
	angle := math.Atan2(offset.Dot(d.basis.V), offset.Dot(d.basis.U)) + math.Pi
	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2(angle/(2*math.Pi), offset.Length()/d.Radius),
		Material: d.Material,
	}
	hit.SetFaceNormal(ray, d.Normal)
	return hit, true
}

// BoundingBox returns the box around the disc, padded along flat axes
func (d *Disc) BoundingBox() (core.AABB, bool) {
	// Extent along each axis is radius · sqrt(1 - n²) for that axis
	extent := core.NewVec3(
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.X*d.Normal.X)),
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.Y*d.Normal.Y)),
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.Z*d.Normal.Z)),
	)
	return core.NewAABB(d.Center.Subtract(extent), d.Center.Add(extent)).Expand(planarPad), true
}

// Area returns the disc's surface area
func (d *Disc) Area() float64 {
	return math.Pi * d.Radius * d.Radius
}

// PDFValue returns the solid-angle density of sampling direction from origin
func (d *Disc) PDFValue(origin, direction core.Vec3) float64 {
	return planarPDFValue(d, d.Area(), origin, direction)
}

// Random returns a direction from origin toward a uniform point on the disc
func (d *Disc) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	r := math.Sqrt(sample.X) * d.Radius
	theta := 2.0 * math.Pi * sample.Y

	point := d.Center.
		Add(d.basis.U.Multiply(r * math.Cos(theta))).
		Add(d.basis.V.Multiply(r * math.Sin(theta)))
	return point.Subtract(origin)
}
