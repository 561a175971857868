package renderer

import (
	"fmt"
	"runtime"
)

// RenderConfig contains the image and sampling parameters of a render
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Row workers; 0 means runtime.NumCPU()
	Seed            int64 // Scene seed; every row seed derives from it
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports configurations that cannot produce an image
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// workers resolves the worker count, never exceeding the number of rows
func (c RenderConfig) workers() int {
	n := c.NumWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, c.Height))
}
