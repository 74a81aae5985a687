package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached outward normal
	bbox       core.AABB     // Cached bounding box
	area       float64
}

// NewTriangle creates a new triangle; the outward normal follows the
// counter-clockwise winding V0 → V1 → V2
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	return newTriangle(v0, v1, v2, cross.Normalize(), material)
}

// NewTriangleWithNormal creates a new triangle with a custom outward normal
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	return newTriangle(v0, v1, v2, normal.Normalize(), material)
}

func newTriangle(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   normal,
		bbox:     core.NewAABBFromPoints(v0, v1, v2).Expand(planarPad),
		area:     0.5 * v1.Subtract(v0).Cross(v2.Subtract(v0)).Length(),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The hit UV holds the barycentric weights of V1 and V2.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if math.Abs(a) < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= tMin || tHit >= tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		UV:       core.NewVec2(u, v),
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the cached, slightly padded bounding box
func (t *Triangle) BoundingBox() (core.AABB, bool) {
	return t.bbox, true
}

// Normal returns the triangle's outward normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return t.area
}

// PDFValue returns the solid-angle density of sampling direction from origin
func (t *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	return planarPDFValue(t, t.area, origin, direction)
}

// Random returns a direction from origin toward a uniform point on the triangle
func (t *Triangle) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	// Fold the unit square onto the triangle
	u, v := sample.X, sample.Y
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	point := t.V0.Add(t.V1.Subtract(t.V0).Multiply(u)).Add(t.V2.Subtract(t.V0).Multiply(v))
	return point.Subtract(origin)
}
