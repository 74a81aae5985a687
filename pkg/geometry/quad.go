package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (U × V direction)
	Material core.Material // Material of the quad
	d        float64       // Plane equation constant: normal · x = d
	w        core.Vec3     // Cached n / (n · n) for planar coordinates
	area     float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        normal.Dot(corner),
		w:        n.Multiply(1.0 / n.Dot(n)),
		area:     n.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)
	return hit, true
}

// BoundingBox returns the box around all four corners, padded for axis-aligned quads
func (q *Quad) BoundingBox() (core.AABB, bool) {
	box := core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
	return box.Expand(planarPad), true
}

// Area returns the quad's surface area
func (q *Quad) Area() float64 {
	return q.area
}

// PDFValue returns the solid-angle density of sampling direction from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	return planarPDFValue(q, q.area, origin, direction)
}

// Random returns a direction from origin toward a uniform point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return point.Subtract(origin)
}
