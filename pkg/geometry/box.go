package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Box is a closed axis-aligned cuboid made of six rectangles.
// The three faces on the minimum corner are wrapped in FlipNormals so every
// face's outward normal points away from the box interior.
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the two corners p0 and p1
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	minCorner := p0.Min(p1)
	maxCorner := p0.Max(p1)

	sides := NewHittableList(
		NewXYRect(minCorner.X, maxCorner.X, minCorner.Y, maxCorner.Y, maxCorner.Z, material),
		NewFlipNormals(NewXYRect(minCorner.X, maxCorner.X, minCorner.Y, maxCorner.Y, minCorner.Z, material)),
		NewXZRect(minCorner.X, maxCorner.X, minCorner.Z, maxCorner.Z, maxCorner.Y, material),
		NewFlipNormals(NewXZRect(minCorner.X, maxCorner.X, minCorner.Z, maxCorner.Z, minCorner.Y, material)),
		NewYZRect(minCorner.Y, maxCorner.Y, minCorner.Z, maxCorner.Z, maxCorner.X, material),
		NewFlipNormals(NewYZRect(minCorner.Y, maxCorner.Y, minCorner.Z, maxCorner.Z, minCorner.X, material)),
	)

	return &Box{Min: minCorner, Max: maxCorner, sides: sides}
}

// NewCenteredBox creates a box from its center and half-extents
func NewCenteredBox(center, halfSize core.Vec3, material core.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), material)
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
