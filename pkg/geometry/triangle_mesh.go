package geometry

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TriangleMesh is an indexed triangle set with its own internal BVH
type TriangleMesh struct {
	triangles []core.Hittable
	bvh       *BVHNode
}

// NewTriangleMesh creates a mesh from vertices and face indices, where every
// group of three indices forms a counter-clockwise triangle
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, random *rand.Rand) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("triangle mesh: %d face indices is not a multiple of 3", len(faces))
	}

	triangles := make([]core.Hittable, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range [3]int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("triangle mesh: face %d index %d out of range", i/3, index)
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	bvh, err := NewBVH(triangles, random)
	if err != nil {
		return nil, fmt.Errorf("triangle mesh: %w", err)
	}

	return &TriangleMesh{triangles: triangles, bvh: bvh}, nil
}

// Hit delegates to the mesh's BVH
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box of the whole mesh
func (m *TriangleMesh) BoundingBox() (core.AABB, bool) {
	return m.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles in this mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}
