package renderer

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// shadowAcneEpsilon is the nearest t a bounce may hit, so a scattered ray
// does not re-hit the surface it leaves through rounding error
const shadowAcneEpsilon = 0.001

// Scene is everything needed to render an image: the world, the camera and
// the sampling parameters. It is read-only once rendering starts.
type Scene struct {
	World           geometry.Hittable
	Camera          *Camera
	MaxDepth        int
	SamplesPerPixel int
	Width           int
	Height          int
	Background      core.Vec3 // Radiance of rays that escape the world
	Seed            int64     // Row seeds derive from this
	NumWorkers      int       // 0 means runtime.NumCPU()

	logger core.Logger
}

// NewScene creates a scene with the default seed and worker count
func NewScene(world geometry.Hittable, camera *Camera, maxDepth, samplesPerPixel, width, height int, background core.Vec3) *Scene {
	defaults := DefaultRenderConfig()
	return &Scene{
		World:           world,
		Camera:          camera,
		MaxDepth:        maxDepth,
		SamplesPerPixel: samplesPerPixel,
		Width:           width,
		Height:          height,
		Background:      background,
		Seed:            defaults.Seed,
		NumWorkers:      defaults.NumWorkers,
		logger:          core.NopLogger{},
	}
}

// NewSceneWithConfig creates a scene taking every render parameter from config
func NewSceneWithConfig(world geometry.Hittable, camera *Camera, background core.Vec3, config RenderConfig) *Scene {
	s := NewScene(world, camera, config.MaxDepth, config.SamplesPerPixel, config.Width, config.Height, background)
	s.Seed = config.Seed
	s.NumWorkers = config.NumWorkers
	return s
}

// SetLogger sets where progress is reported; nil silences it
func (s *Scene) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	s.logger = logger
}

// Config returns the scene's render parameters
func (s *Scene) Config() RenderConfig {
	return RenderConfig{
		Width:           s.Width,
		Height:          s.Height,
		SamplesPerPixel: s.SamplesPerPixel,
		MaxDepth:        s.MaxDepth,
		NumWorkers:      s.NumWorkers,
		Seed:            s.Seed,
	}
}

// Trace returns the radiance arriving along ray, following at most depth bounces
func (s *Scene) Trace(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	var rays int
	return s.trace(ray, depth, sampler, &rays)
}

func (s *Scene) trace(ray core.Ray, depth int, sampler core.Sampler, rays *int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}
	*rays++

	hit, isHit := s.World.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return s.Background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)
	scatter := hit.Material.Scatter(ray, hit, sampler)
	if !scatter.DidScatter() {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(s.trace(scatter.Scattered, depth-1, sampler, rays)))
}

// RenderPixel averages SamplesPerPixel jittered samples through pixel (row, col)
// and returns the gamma-encoded 8-bit color. Row 0 is the top of the image.
func (s *Scene) RenderPixel(row, col int, sampler core.Sampler) [3]byte {
	var rays int
	return s.renderPixel(row, col, sampler, &rays)
}

func (s *Scene) renderPixel(row, col int, sampler core.Sampler, rays *int) [3]byte {
	// A single-pixel axis has no span to divide
	uSpan := float64(max(s.Width-1, 1))
	vSpan := float64(max(s.Height-1, 1))

	var color core.Vec3
	for i := 0; i < s.SamplesPerPixel; i++ {
		u := (float64(col) + sampler.Get1D()) / uSpan
		v := (float64(row) + sampler.Get1D()) / vSpan
		ray := s.Camera.GetRay(u, v, sampler)
		color = color.Add(s.trace(ray, s.MaxDepth, sampler, rays))
	}
	color = color.Divide(float64(s.SamplesPerPixel))

	return [3]byte{quantize(color.X), quantize(color.Y), quantize(color.Z)}
}

// quantize gamma-2 encodes a linear channel and maps it to 0-255
func quantize(c float64) byte {
	// NaN from a degenerate path renders black rather than an arbitrary byte
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	return byte(255.999 * math.Min(math.Sqrt(c), 1))
}

// renderRow renders one full row left to right and reports the rays traced
func (s *Scene) renderRow(row int, sampler core.Sampler) ([]byte, int) {
	pixels := make([]byte, 3*s.Width)
	rays := 0
	for col := 0; col < s.Width; col++ {
		rgb := s.renderPixel(row, col, sampler, &rays)
		copy(pixels[3*col:], rgb[:])
	}
	return pixels, rays
}

// Render fills buf with the image: row-major RGB, 3 bytes per pixel, top row
// first. buf must hold exactly 3*Width*Height bytes. Rows are rendered in
// parallel; the output depends only on the scene and its Seed.
func (s *Scene) Render(buf []byte) (RenderStats, error) {
	config := s.Config()
	if err := config.Validate(); err != nil {
		return RenderStats{}, err
	}
	if want := 3 * s.Width * s.Height; len(buf) != want {
		return RenderStats{}, fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%d", len(buf), want, s.Width, s.Height)
	}

	pool := NewWorkerPool(s, config.workers())
	s.logger.Printf("Rendering %dx%d at %d samples per pixel (max depth %d, %d workers)...\n",
		s.Width, s.Height, s.SamplesPerPixel, s.MaxDepth, pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	for row := 0; row < s.Height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}

	stats := RenderStats{
		Width:        s.Width,
		Height:       s.Height,
		TotalPixels:  s.Width * s.Height,
		TotalSamples: s.Width * s.Height * s.SamplesPerPixel,
		Workers:      pool.GetNumWorkers(),
	}

	// Rows arrive in completion order; the offset places each one
	progress := newProgressReporter(s.logger, s.Height)
	for done := 0; done < s.Height; done++ {
		result, _ := pool.GetResult()
		copy(buf[3*s.Width*result.Row:], result.Pixels)
		stats.TotalRays += result.Rays
		progress.rowDone(done + 1)
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	s.logger.Printf("Render complete: %s\n", stats)
	return stats, nil
}

// RenderImage renders into a new buffer and returns it as an image
func (s *Scene) RenderImage() (*image.RGBA, RenderStats, error) {
	if err := s.Config().Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	buf := make([]byte, 3*s.Width*s.Height)
	stats, err := s.Render(buf)
	if err != nil {
		return nil, stats, err
	}

	img, err := loaders.ToRGBA(buf, s.Width, s.Height)
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}

// progressReporter logs a line each time another tenth of the rows completes
type progressReporter struct {
	logger   core.Logger
	total    int
	lastTick int
}

func newProgressReporter(logger core.Logger, total int) *progressReporter {
	return &progressReporter{logger: logger, total: total}
}

func (p *progressReporter) rowDone(done int) {
	tick := done * 10 / p.total
	if tick > p.lastTick {
		p.lastTick = tick
		p.logger.Printf("  %d%% (%d/%d rows)\n", tick*10, done, p.total)
	}
}
