package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// ImageTexture provides color from a 2D image decoded once at construction
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], y=0 is the top row
}

// NewImageTexture decodes the image file at path into a texture
func NewImageTexture(path string) (*ImageTexture, error) {
	data, err := loaders.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image texture %s: %w", path, err)
	}
	return NewImageTextureFromData(data.Width, data.Height, data.Pixels), nil
}

// MustImageTexture is like NewImageTexture but panics if the image cannot be decoded.
// Scene constructors use it; a scene with a missing texture cannot be rendered.
func MustImageTexture(path string) *ImageTexture {
	texture, err := NewImageTexture(path)
	if err != nil {
		panic(err)
	}
	return texture
}

// NewImageTextureFromData creates an image texture from an already decoded raster
func NewImageTextureFromData(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	// UV outside [0,1] is clamped to the border, not wrapped.
	// V=0 is bottom, V=1 is top, so flip V for image rows.
	u = core.NewInterval(0, 1).Clamp(u)
	v = 1.0 - core.NewInterval(0, 1).Clamp(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u=1 or v=0 lands one past the last column or row
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
