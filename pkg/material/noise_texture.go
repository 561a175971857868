package material

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	turbulenceOctaves = 7
	noiseSeed         = 42
)

// NoiseTexture is a grey marble-like turbulence pattern driven by 3D Perlin noise
type NoiseTexture struct {
	Scale float64
	noise *perlin.Perlin
}

// NewNoiseTexture creates a turbulence texture with unit scale
func NewNoiseTexture() *NoiseTexture {
	return NewScaledNoiseTexture(1.0)
}

// NewScaledNoiseTexture creates a turbulence texture; larger scales give finer detail
func NewScaledNoiseTexture(scale float64) *NoiseTexture {
	// One octave per call; turbulence does its own octave summing
	return &NoiseTexture{
		Scale: scale,
		noise: perlin.NewPerlin(2, 2, 1, noiseSeed),
	}
}

// Evaluate returns white scaled by the turbulence at the scaled point
func (n *NoiseTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1).Multiply(n.turbulence(point.Multiply(n.Scale)))
}

// turbulence sums octaves of noise with halving weight and remaps the total to [0,1]
func (n *NoiseTexture) turbulence(p core.Vec3) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < turbulenceOctaves; i++ {
		accum += weight * n.noise.Noise3D(p.X, p.Y, p.Z)
		weight *= 0.5
		p = p.Multiply(2)
	}

	// Largest possible magnitude of the weighted sum
	maxValue := (1.0 - math.Pow(0.5, turbulenceOctaves+1)) / 0.5
	accum = (accum/maxValue + 1.0) / 2.0
	return core.NewInterval(0, 1).Clamp(accum)
}
