package geometry

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is one node of a bounding volume hierarchy. Leaves hold an object
// directly in Left; a node built from a single object has a nil Right.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a hierarchy over objects. The split axis of each node is
// drawn from sampler, so the tree shape depends on the sampler's sequence but
// the nearest hit it reports does not. The input slice is not modified.
// It panics if objects is empty or a bounding box holds NaN on the split axis.
func NewBVHNode(objects []Hittable, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("cannot build a BVH over zero objects")
	}

	shapes := make([]Hittable, len(objects))
	copy(shapes, objects)
	return buildBVH(shapes, sampler)
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, sampler core.Sampler) *BVHNode {
	return NewBVHNode(list.Objects, sampler)
}

func buildBVH(shapes []Hittable, sampler core.Sampler) *BVHNode {
	axis := randomAxis(sampler)
	node := &BVHNode{}

	switch len(shapes) {
	case 1:
		node.Left = shapes[0]
	case 2:
		// Ascending by the axis minimum; ties keep input order
		if compareBoxMin(shapes[0], shapes[1], axis) > 0 {
			node.Left, node.Right = shapes[1], shapes[0]
		} else {
			node.Left, node.Right = shapes[0], shapes[1]
		}
	default:
		slices.SortStableFunc(shapes, func(a, b Hittable) int {
			return compareBoxMin(a, b, axis)
		})
		mid := len(shapes) / 2
		node.Left = buildBVH(shapes[:mid], sampler)
		node.Right = buildBVH(shapes[mid:], sampler)
	}

	node.bbox = node.Left.BoundingBox()
	if node.Right != nil {
		node.bbox = node.bbox.Union(node.Right.BoundingBox())
	}
	return node
}

// randomAxis picks 0, 1 or 2 uniformly
func randomAxis(sampler core.Sampler) int {
	return min(int(sampler.Get1D()*3), 2)
}

// compareBoxMin orders two objects by the minimum of their boxes on axis
func compareBoxMin(a, b Hittable, axis int) int {
	aMin := a.BoundingBox().Axis(axis).Min
	bMin := b.BoundingBox().Axis(axis).Min
	if math.IsNaN(aMin) || math.IsNaN(bMin) {
		panic(fmt.Sprintf("NaN bounding box on axis %d while building BVH", axis))
	}
	return cmp.Compare(aMin, bMin)
}

// Hit tests the left child over the full interval and the right child only
// for hits closer than the left one
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)
	if n.Right == nil {
		return leftHit, hitLeft
	}

	upper := rayT.Max
	if hitLeft {
		upper = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, core.NewInterval(rayT.Min, upper), sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the union of both children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Depth returns the number of node levels below and including n
func (n *BVHNode) Depth() int {
	depth := 0
	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			depth = max(depth, node.Depth())
		}
	}
	return depth + 1
}
