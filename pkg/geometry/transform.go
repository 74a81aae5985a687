package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Translate moves the wrapped object by Offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps object, moving it by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, delegates and moves the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Object.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	hit.SetFaceNormal(ray, outwardNormal(hit))
	return hit, true
}

// BoundingBox returns the wrapped object's box moved by Offset
func (t *Translate) BoundingBox() (core.AABB, bool) {
	box, ok := t.Object.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// PDFValue evaluates the wrapped object's density from the origin in object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return core.PDFValue(t.Object, origin.Subtract(t.Offset), direction)
}

// Random samples the wrapped object from the origin in object space
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.RandomDirection(t.Object, origin.Subtract(t.Offset), sampler)
}

// Rotate turns the wrapped object about an axis through the origin
type Rotate struct {
	Object  core.Hittable
	toWorld r3.Rotation
	toLocal r3.Rotation
	box     core.AABB
	bounded bool
}

// NewRotate wraps object, rotating it by degrees about axis (right-handed)
func NewRotate(object core.Hittable, axis core.Vec3, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180
	unit := toR3(axis.Normalize())

	r := &Rotate{
		Object:  object,
		toWorld: r3.NewRotation(radians, unit),
		toLocal: r3.NewRotation(-radians, unit),
	}

	// World box: rotate all eight corners of the local box
	if local, ok := object.BoundingBox(); ok {
		r.box = core.EmptyAABB()
		for _, corner := range local.Corners() {
			p := r.rotate(r.toWorld, corner)
			r.box = r.box.Union(core.NewAABB(p, p))
		}
		r.bounded = true
	}

	return r
}

// NewRotateY wraps object, rotating it by degrees about the Y axis
func NewRotateY(object core.Hittable, degrees float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 1, 0), degrees)
}

// Hit rotates the ray into object space, delegates and rotates the hit back
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	local := core.NewRayAt(r.rotate(r.toLocal, ray.Origin), r.rotate(r.toLocal, ray.Direction), ray.Time)
	hit, ok := r.Object.Hit(local, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.rotate(r.toWorld, hit.Point)
	hit.SetFaceNormal(ray, r.rotate(r.toWorld, outwardNormal(hit)))
	return hit, true
}

// BoundingBox returns the axis-aligned box around the rotated local box
func (r *Rotate) BoundingBox() (core.AABB, bool) {
	return r.box, r.bounded
}

// PDFValue evaluates the wrapped object's density in object space
func (r *Rotate) PDFValue(origin, direction core.Vec3) float64 {
	return core.PDFValue(r.Object, r.rotate(r.toLocal, origin), r.rotate(r.toLocal, direction))
}

// Random samples the wrapped object in object space and rotates the result back
func (r *Rotate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	local := core.RandomDirection(r.Object, r.rotate(r.toLocal, origin), sampler)
	return r.rotate(r.toWorld, local)
}

func (r *Rotate) rotate(rotation r3.Rotation, v core.Vec3) core.Vec3 {
	return fromR3(rotation.Rotate(toR3(v)))
}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
