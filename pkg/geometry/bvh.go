package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode is a node in a Bounding Volume Hierarchy.
// Right is nil for a leaf built over a single object.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// BVHStats summarizes the shape of a built tree
type BVHStats struct {
	Nodes    int // Internal and leaf BVH nodes
	Objects  int // Objects referenced by leaves
	MaxDepth int
}

// NewBVH builds a BVH over objects. Each node splits along a random axis chosen
// from random, after sorting its objects by bounding box minimum on that axis.
// The input slice is not modified.
func NewBVH(objects []core.Hittable, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyList
	}

	// Resolve every box once up front so construction never sees an unbounded object
	items := make([]bvhItem, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		items[i] = bvhItem{object: object, box: box}
	}

	return buildBVH(items, random), nil
}

type bvhItem struct {
	object core.Hittable
	box    core.AABB
}

func buildBVH(items []bvhItem, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})

	switch len(items) {
	case 1:
		return &BVHNode{Left: items[0].object, Box: items[0].box}
	case 2:
		return &BVHNode{
			Left:  items[0].object,
			Right: items[1].object,
			Box:   items[0].box.Union(items[1].box),
		}
	}

	mid := len(items) / 2
	left := buildBVH(items[:mid], random)
	right := buildBVH(items[mid:], random)
	return &BVHNode{Left: left, Right: right, Box: left.Box.Union(right.Box)}
}

// Hit tests the node's box first, then both children, passing the closer
// hit's t as the upper bound to the second child
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if n.Right == nil {
		return leftHit, hitLeft
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the precomputed box covering both children
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}

// Stats walks the tree and reports its size and depth
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)
	for _, child := range []core.Hittable{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Objects++
		}
	}
}
