package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmissive
	Albedo   Texture // Metal color
	Fuzzness float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzzness)
}

// NewTexturedMetal creates a metal whose tint varies over the surface
func NewTexturedMetal(albedo Texture, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) ScatterResult {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	// Fuzz can push a grazing reflection below the surface; those paths end here.
	// The negated comparison also absorbs NaN directions.
	if !(reflected.Dot(hit.Normal) > 0) {
		return absorbed()
	}

	return ScatterResult{
		Behaviour:   Scatter,
		Attenuation: m.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRay(hit.Point, reflected, rayIn.Time),
	}
}
