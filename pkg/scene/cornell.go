package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

var cornellCamera = renderer.CameraConfig{
	Center:  core.NewVec3(278, 278, -800), // Outside the open side, looking in
	LookDir: core.NewVec3(0, 0, 1),
	VFov:    40,
}

// cornellRoom holds the box walls and the two blocks placed inside it
type cornellRoom struct {
	walls      *geometry.HittableList
	tallBlock  geometry.Hittable
	shortBlock geometry.Hittable
}

// newCornellRoom builds the walls and a ceiling light spanning lightU by
// lightV from lightCorner, plus the rotated tall and short blocks
func newCornellRoom(lightCorner, lightU, lightV core.Vec3) cornellRoom {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.12))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	walls := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		geometry.NewQuad(lightCorner, lightU, lightV, light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)

	return cornellRoom{
		walls:      walls,
		tallBlock:  geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
		shortBlock: geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)),
	}
}

// NewCornellScene creates the classic Cornell box with a small ceiling light
func NewCornellScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	room := newCornellRoom(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105))
	world := room.walls
	world.Add(room.tallBlock)
	world.Add(room.shortBlock)

	return newScene(opts, world, cornellCamera, core.Vec3{}, sampler)
}

// NewCornellSmokeScene replaces the blocks with black and white smoke under a larger light
func NewCornellSmokeScene(opts Options) *renderer.Scene {
	sampler := constructionSampler(opts)

	room := newCornellRoom(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305))
	world := room.walls
	world.Add(geometry.NewConstantMedium(room.tallBlock, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(room.shortBlock, 0.01, core.NewVec3(1, 1, 1)))

	return newScene(opts, world, cornellCamera, core.Vec3{}, sampler)
}
