package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect: primitives, media, transforms and aggregates.
// Implementations are immutable after construction and safe for concurrent Hit calls.
type Hittable interface {
	// Hit reports the nearest intersection with t inside rayT. The sampler is
	// only consumed by participating media.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
