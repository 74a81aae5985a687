package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// HittableList is a flat collection of hittables.
// As a light, it samples each child with equal probability.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects, shrinking tMax as hits are found
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox merges the boxes of all children.
// It reports false for an empty list or if any child is unbounded.
func (l *HittableList) BoundingBox() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	box := core.EmptyAABB()
	for _, object := range l.Objects {
		childBox, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		box = box.Union(childBox)
	}
	return box, true
}

// PDFValue averages the light densities of all children
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * core.PDFValue(object, origin, direction)
	}
	return sum
}

// Random samples a direction toward a uniformly chosen child
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(l.Objects)
	if n == 0 {
		return core.NewVec3(1, 0, 0)
	}
	index := min(int(sampler.Get1D()*float64(n)), n-1)
	return core.RandomDirection(l.Objects[index], origin, sampler)
}
