package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// AxisRect is a rectangle perpendicular to one coordinate axis, at K on that axis.
// A and B are the two in-plane axes; the outward normal points along +Axis.
type AxisRect struct {
	Axis     int // Constant axis: 0 = X, 1 = Y, 2 = Z
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material
	a, b     int
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *AxisRect {
	return newAxisRect(2, 0, 1, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *AxisRect {
	return newAxisRect(1, 0, 2, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *AxisRect {
	return newAxisRect(0, 1, 2, y0, y1, z0, z1, k, material)
}

func newAxisRect(axis, a, b int, a0, a1, b0, b1, k float64, material core.Material) *AxisRect {
	return &AxisRect{
		Axis:     axis,
		A0:       min(a0, a1),
		A1:       max(a0, a1),
		B0:       min(b0, b1),
		B1:       max(b0, b1),
		K:        k,
		Material: material,
		a:        a,
		b:        b,
	}
}

// Hit intersects the rectangle's plane and checks the in-plane bounds
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	direction := ray.Direction.Axis(r.Axis)
	if direction == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.Axis)) / direction
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	a := point.Axis(r.a)
	b := point.Axis(r.b)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.Vec3{}.WithAxis(r.Axis, 1))
	return hit, true
}

// BoundingBox returns the rectangle's box, padded along its normal
func (r *AxisRect) BoundingBox() (core.AABB, bool) {
	minCorner := core.Vec3{}.WithAxis(r.a, r.A0).WithAxis(r.b, r.B0).WithAxis(r.Axis, r.K-planarPad)
	maxCorner := core.Vec3{}.WithAxis(r.a, r.A1).WithAxis(r.b, r.B1).WithAxis(r.Axis, r.K+planarPad)
	return core.NewAABB(minCorner, maxCorner), true
}

// Area returns the rectangle's surface area
func (r *AxisRect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue returns the solid-angle density of sampling direction from origin
func (r *AxisRect) PDFValue(origin, direction core.Vec3) float64 {
	return planarPDFValue(r, r.Area(), origin, direction)
}

// Random returns a direction from origin toward a uniform point on the rectangle
func (r *AxisRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := core.Vec3{}.
		WithAxis(r.a, r.A0+sample.X*(r.A1-r.A0)).
		WithAxis(r.b, r.B0+sample.Y*(r.B1-r.B0)).
		WithAxis(r.Axis, r.K)
	return point.Subtract(origin)
}
