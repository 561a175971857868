package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal (U × V normalized)
	Material material.Material
	D        float64   // Plane equation constant: normal · p = D
	W        core.Vec3 // n / |n|², projects plane points onto the (U, V) basis
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        n.Divide(n.LengthSquared()),
		bbox:     quadBox(corner, u, v),
	}
}

// quadBox bounds all four corners; the box is padded because a quad is flat
func quadBox(corner, u, v core.Vec3) core.AABB {
	return core.NewAABBFromPoints(corner, corner.Add(u), corner.Add(v), corner.Add(u).Add(v)).Pad()
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Express the hit in planar coordinates relative to the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// NewBox returns the six outward-facing quads of the axis-aligned box with
// opposite corners a and b
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	sides := NewHittableList()

	min := a.Min(b)
	max := a.Max(b)

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat))          // front
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat)) // right
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat)) // back
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat))          // left
	sides.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat)) // top
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat))          // bottom

	return sides
}
