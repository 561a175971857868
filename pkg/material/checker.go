package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates two textures on a 3D grid of cells with side scale
type CheckerTexture struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a 3D checker pattern from two textures
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerTextureFromColors creates a 3D checker pattern from two solid colors
func NewCheckerTextureFromColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture by the parity of the cell index sum
func (c *CheckerTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	x := int64(math.Floor(c.invScale * point.X))
	y := int64(math.Floor(c.invScale * point.Y))
	z := int64(math.Floor(c.invScale * point.Z))

	// Negative sums give a negative remainder, which is still non-zero for odd cells
	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(u, v, point)
	}
	return c.Odd.Evaluate(u, v, point)
}
