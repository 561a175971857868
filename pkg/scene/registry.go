package scene

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Options carries what a scene needs to know at construction time
type Options struct {
	Config     renderer.RenderConfig // Image size, sampling and seed for the render
	TextureDir string                // Directory holding image textures such as earthmap.png
}

// Definition describes one built-in scene
type Definition struct {
	Name        string                // Identifier used on the command line
	Description string                // One line shown by -list
	Config      renderer.RenderConfig // Recommended render settings
	Build       func(opts Options) *renderer.Scene
}

// DisplayName returns the title-cased name, e.g. "cornell-smoke" -> "Cornell Smoke"
func (d Definition) DisplayName() string {
	return titleCase(d.Name)
}

// AspectRatio returns width over height of the recommended image
func (d Definition) AspectRatio() float64 {
	return float64(d.Config.Width) / float64(d.Config.Height)
}

// New builds the scene with its recommended config
func (d Definition) New(textureDir string) *renderer.Scene {
	return d.Build(Options{Config: d.Config, TextureDir: textureDir})
}

// definitions is ordered as listed by -list
var definitions = []Definition{
	{
		Name:        "basic",
		Description: "Metal and diffuse spheres on a grey ground with depth of field",
		Config:      sceneConfig(400, 225, 100),
		Build:       NewBasicScene,
	},
	{
		Name:        "two-spheres",
		Description: "Two large spheres sharing a checker texture",
		Config:      sceneConfig(400, 225, 100),
		Build:       NewTwoSpheresScene,
	},
	{
		Name:        "earth",
		Description: "Globe with an image texture (needs earthmap.png in the texture directory)",
		Config:      sceneConfig(400, 225, 100),
		Build:       NewEarthScene,
	},
	{
		Name:        "moon",
		Description: "Perlin noise spheres lit by an area light and a glowing sphere",
		Config:      sceneConfig(400, 225, 500),
		Build:       NewMoonScene,
	},
	{
		Name:        "quads",
		Description: "Five coloured quads facing the camera",
		Config:      sceneConfig(400, 225, 100),
		Build:       NewQuadsScene,
	},
	{
		Name:        "complex",
		Description: "Random field of small spheres with motion blur and three large spheres",
		Config:      sceneConfig(400, 225, 100),
		Build:       NewComplexScene,
	},
	{
		Name:        "cornell",
		Description: "Cornell box with two rotated blocks",
		Config:      sceneConfig(400, 400, 200),
		Build:       NewCornellScene,
	},
	{
		Name:        "cornell-smoke",
		Description: "Cornell box with blocks of black and white smoke",
		Config:      sceneConfig(400, 400, 200),
		Build:       NewCornellSmokeScene,
	},
	{
		Name:        "next-week-final",
		Description: "Ground of boxes, media, textures and a cluster of spheres",
		Config:      sceneConfig(400, 400, 500),
		Build:       NewNextWeekFinalScene,
	},
}

func sceneConfig(width, height, samplesPerPixel int) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samplesPerPixel
	return config
}

// All returns every built-in scene in listing order
func All() []Definition {
	return slices.Clone(definitions)
}

// Names returns the identifiers of every built-in scene
func Names() []string {
	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a built-in scene by name
func Lookup(name string) (Definition, error) {
	for _, d := range definitions {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
}

// titleCase converts a name like "two-spheres" into "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// newScene wraps the objects in a BVH and attaches a camera shaped for the
// configured image
func newScene(opts Options, objects *geometry.HittableList, camera renderer.CameraConfig, background core.Vec3, sampler core.Sampler) *renderer.Scene {
	camera.AspectRatio = float64(opts.Config.Width) / float64(opts.Config.Height)
	world := geometry.NewBVHFromList(objects, sampler)
	return renderer.NewSceneWithConfig(world, renderer.NewCamera(camera), background, opts.Config)
}

// constructionSampler drives random scene content and BVH axis choice, so a
// given seed always builds the same scene
func constructionSampler(opts Options) *core.RandomSampler {
	return core.NewSeededSampler(opts.Config.Seed)
}

func texturePath(opts Options, name string) string {
	return filepath.Join(opts.TextureDir, name)
}

// skyBlue is the background of the outdoor scenes
var skyBlue = core.NewVec3(0.7, 0.8, 1.0)
