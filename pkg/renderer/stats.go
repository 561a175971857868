package renderer

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Camera rays fired
	TotalRays    int           // Rays traced, including every bounce
	Workers      int           // Workers used
	Duration     time.Duration // Wall-clock render time
}

// RaysPerSecond returns the traced-ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.Duration.Seconds()
}

// String formats the stats with grouped digits, e.g. "1,234,567 rays"
func (s RenderStats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%dx%d: %d pixels, %d samples, %d rays in %v (%.0f rays/s, %d workers)",
		s.Width, s.Height, s.TotalPixels, s.TotalSamples, s.TotalRays,
		s.Duration.Round(time.Millisecond), s.RaysPerSecond(), s.Workers)
}
