package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction
type Isotropic struct {
	nonEmissive
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a uniform color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function from a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) ScatterResult {
	return ScatterResult{
		Behaviour:   Scatter,
		Attenuation: i.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
	}
}
