package core

import "fmt"

// minBoxThickness is the smallest extent Pad allows on any axis
const minBoxThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from three intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{
		X: NewInterval(min.X, max.X),
		Y: NewInterval(min.Y, max.Y),
		Z: NewInterval(min.Z, max.Z),
	}
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic(fmt.Sprintf("invalid AABB axis index %d", axis))
}

// Hit tests if a ray intersects with this AABB using the slab method.
// A zero direction component divides to a signed infinity, which the
// min/max narrowing resolves to either "always inside" or "never inside".
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: UnionInterval(aabb.X, other.X),
		Y: UnionInterval(aabb.Y, other.Y),
		Z: UnionInterval(aabb.Z, other.Z),
	}
}

// Pad returns a box where no axis is thinner than minBoxThickness,
// so flat geometry such as quads still has a hittable volume
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() >= minBoxThickness {
			return i
		}
		return i.Expand(minBoxThickness)
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Offset returns the box translated by offset
func (aabb AABB) Offset(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return !aabb.X.IsEmpty() && !aabb.Y.IsEmpty() && !aabb.Z.IsEmpty()
}
