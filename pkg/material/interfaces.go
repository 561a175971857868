package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Behaviour is the outcome of a scattering event
type Behaviour int

const (
	// Absorb terminates the path; only emitted light is returned
	Absorb Behaviour = iota
	// Scatter continues the path along ScatterResult.Scattered
	Scatter
)

// String returns the behaviour name for logs and test failures
func (b Behaviour) String() string {
	if b == Scatter {
		return "scatter"
	}
	return "absorb"
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter computes how an incoming ray interacts with the surface at hit.
	// The scattered ray carries rayIn.Time forward.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) ScatterResult

	// Emitted returns light emitted at surface coordinates (u, v) and point p
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Behaviour   Behaviour
	Attenuation core.Vec3 // Color attenuation
	Scattered   core.Ray  // The scattered ray, meaningful only for Scatter
}

// DidScatter reports whether the path continues
func (s ScatterResult) DidScatter() bool {
	return s.Behaviour == Scatter
}

// HitRecord contains information about a ray-object intersection.
// It lives for one scatter computation and is never stored.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing against the ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmissive provides the black Emitted shared by every material except lights
type nonEmissive struct{}

// Emitted returns black
func (nonEmissive) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// absorbed is the result for a path that ends at the surface
func absorbed() ScatterResult {
	return ScatterResult{Behaviour: Absorb}
}
