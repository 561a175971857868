package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     sphereBox(center, radius),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(ray, rayT, s.Center, s.Radius, s.Material)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// MovingSphere is a sphere whose center moves linearly from Center0 at time 0
// to Center1 at time 1, producing motion blur
type MovingSphere struct {
	Center0  core.Vec3
	Center1  core.Vec3
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewMovingSphere creates a sphere moving between two keyframe centers
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Radius:   radius,
		Material: mat,
		bbox:     sphereBox(center0, radius).Union(sphereBox(center1, radius)),
	}
}

// CenterAt returns the center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	return s.Center0.Lerp(s.Center1, time)
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(ray, rayT, s.CenterAt(ray.Time), s.Radius, s.Material)
}

// BoundingBox covers the sphere over its whole path
func (s *MovingSphere) BoundingBox() core.AABB {
	return s.bbox
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABBFromPoints(center.Subtract(r), center.Add(r))
}

// hitSphere solves |origin + t*dir - center|² = r² using the half-b form
func hitSphere(ray core.Ray, rayT core.Interval, center core.Vec3, radius float64, mat material.Material) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}
	outwardNormal := hit.Point.Subtract(center).Divide(radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to equirectangular coordinates:
// u runs around the Y axis starting at -X, v runs from -Y (0) to +Y (1)
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
