package geometry

import "errors"

var (
	// ErrEmptyList is returned when a BVH is built over no objects
	ErrEmptyList = errors.New("geometry: no objects to build BVH from")
	// ErrNoBoundingBox is returned when an object without bounds is placed in a BVH
	ErrNoBoundingBox = errors.New("geometry: object has no bounding box")
)
