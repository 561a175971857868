package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter; it never scatters
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a uniform color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) ScatterResult {
	return absorbed()
}

// Emitted returns the emission texture at the hit
func (l *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return l.Emit.Evaluate(u, v, p)
}
