package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera(width int) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the open side of the box
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
}

// addCornellWalls adds the colored walls, floor, ceiling and back wall
func addCornellWalls(b *builder) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	b.add(
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	)
}

// cornellBlocks returns the tall and short boxes, rotated and placed on the floor
func cornellBlocks(tallMaterial, shortMaterial core.Material) (tall, short core.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), tallMaterial)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), shortMaterial)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellScene creates the classic Cornell box. The ceiling light and the
// glass sphere both form the light-sampling view.
func NewCornellScene(opts Options) (*Scene, error) {
	b := newBuilder(opts.Seed)
	addCornellWalls(b)

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	// The light rectangle faces down into the box
	b.addLight(geometry.NewFlipFace(geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	tall, short := cornellBlocks(aluminum, white)
	b.add(tall, short)

	// Glass sphere resting on the short block
	b.addLight(geometry.NewSphere(core.NewVec3(208, 225, 143), 60, material.NewDielectric(1.5)))

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 200
	return b.build("cornell", cornellCamera(opts.width(400)), integrator.NewSolidBackground(core.Vec3{}), sampling)
}

// NewCornellSmokeScene fills the Cornell box blocks with dark and light smoke
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	b := newBuilder(opts.Seed)
	addCornellWalls(b)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	b.addLight(geometry.NewFlipFace(geometry.NewXZRect(113, 443, 127, 432, boxSize-1, light)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBlocks(white, white)
	b.add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 200
	return b.build("cornell-smoke", cornellCamera(opts.width(400)), integrator.NewSolidBackground(core.Vec3{}), sampling)
}
