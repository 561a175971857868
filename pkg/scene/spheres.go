package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// outdoorCamera is the low, wide-angle view shared by the sphere scenes
func outdoorCamera(aperture float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookDir:       core.NewVec3(-13, -2, -3),
		VFov:          20,
		Aperture:      aperture,
		FocusDistance: 10,
	}
}

// NewBasicScene creates a metal and a diffuse sphere resting on a huge ground sphere
func NewBasicScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
		geometry.NewSphere(core.NewVec3(7, 1, 0), 0.4, material.NewLambertian(core.NewVec3(0.7, 0.1, 0.5))),
	)

	return newScene(opts, world, outdoorCamera(0.1), skyBlue, sampler)
}

// NewTwoSpheresScene creates two large spheres touching at the origin, both checkered
func NewTwoSpheresScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	checker := material.NewCheckerTextureFromColors(0.8, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checker)),
	)

	return newScene(opts, world, outdoorCamera(0), skyBlue, sampler)
}

// NewEarthScene creates a globe wrapped in earthmap.png.
// It panics if the texture cannot be loaded.
func NewEarthScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	earth := material.MustImageTexture(texturePath(opts, "earthmap.png"))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth)),
	)

	camera := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 12),
		LookDir:       core.NewVec3(0, 0, -12),
		VFov:          30,
		Aperture:      0.1,
		FocusDistance: 10,
	}
	return newScene(opts, world, camera, skyBlue, sampler)
}

// NewComplexScene creates a field of small random spheres around three large
// ones. The diffuse spheres bounce during the shutter interval.
func NewComplexScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return newScene(opts, world, outdoorCamera(0.1), skyBlue, sampler)
}
