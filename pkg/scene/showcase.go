package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewMoonScene creates two noise-textured spheres in the dark, lit by a
// square light beside them and a glowing sphere overhead
func NewMoonScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	noise := material.NewNoiseTexture()
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(noise)),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	camera := renderer.CameraConfig{
		Center:        core.NewVec3(26, 3, 6),
		LookDir:       core.NewVec3(-26, -1, -6),
		VFov:          20,
		FocusDistance: 10,
	}
	return newScene(opts, world, camera, core.Vec3{}, sampler)
}

// NewQuadsScene creates five coloured quads forming an open box around the view
func NewQuadsScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	camera := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 9),
		LookDir:       core.NewVec3(0, 0, -9),
		VFov:          80,
		FocusDistance: 10,
	}
	return newScene(opts, world, camera, skyBlue, sampler)
}

// NewNextWeekFinalScene creates the showcase scene: a ground of random-height
// boxes, media, every texture kind and a rotated cluster of spheres.
// It panics if earthmap.png cannot be loaded.
func NewNextWeekFinalScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	groundBoxes := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			groundBoxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	world.Add(geometry.NewBVHFromList(groundBoxes, sampler))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass ball filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := material.MustImageTexture(texturePath(opts, "earthmap.png"))
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewScaledNoiseTexture(0.1))))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < 1000; i++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHFromList(cluster, sampler), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := renderer.CameraConfig{
		Center: core.NewVec3(478, 278, -600),
		LookAt: core.NewVec3(278, 278, 0),
		VFov:   40,
	}
	return newScene(opts, world, camera, core.Vec3{}, sampler)
}
