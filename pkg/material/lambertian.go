package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmissive
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) ScatterResult {
	// Normal plus a point on the unit sphere is cosine distributed about the normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// A unit vector almost opposite the normal would give a degenerate direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Behaviour:   Scatter,
		Attenuation: l.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRay(hit.Point, scatterDirection, rayIn.Time),
	}
}
