package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// FlipFace reports every hit of the wrapped object with its front-face flag
// toggled. Use it to make a one-sided emitter shine from its other side.
type FlipFace struct {
	Object core.Hittable
}

// NewFlipFace wraps object
func NewFlipFace(object core.Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates and toggles FrontFace
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the wrapped object
func (f *FlipFace) BoundingBox() (core.AABB, bool) {
	return f.Object.BoundingBox()
}

// PDFValue delegates to the wrapped object
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return core.PDFValue(f.Object, origin, direction)
}

// Random delegates to the wrapped object
func (f *FlipFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.RandomDirection(f.Object, origin, sampler)
}

// FlipNormals negates the outward normal of the wrapped object.
// Hit records keep their normal facing the incoming ray, so the reversed
// outward normal shows up as the opposite front-face classification.
type FlipNormals struct {
	Object core.Hittable
}

// NewFlipNormals wraps object
func NewFlipNormals(object core.Hittable) *FlipNormals {
	return &FlipNormals{Object: object}
}

// Hit delegates and re-orients the hit against the reversed outward normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.SetFaceNormal(ray, outwardNormal(hit).Negate())
	return hit, true
}

// BoundingBox delegates to the wrapped object
func (f *FlipNormals) BoundingBox() (core.AABB, bool) {
	return f.Object.BoundingBox()
}

// PDFValue delegates to the wrapped object
func (f *FlipNormals) PDFValue(origin, direction core.Vec3) float64 {
	return core.PDFValue(f.Object, origin, direction)
}

// Random delegates to the wrapped object
func (f *FlipNormals) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.RandomDirection(f.Object, origin, sampler)
}

// outwardNormal recovers the geometric outward normal of a hit
func outwardNormal(hit *core.HitRecord) core.Vec3 {
	if hit.FrontFace {
		return hit.Normal
	}
	return hit.Normal.Negate()
}
