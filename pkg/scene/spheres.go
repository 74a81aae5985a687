package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func skyBackground() integrator.Background {
	return integrator.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

func randomVec(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
	)
}

// NewRandomSpheresScene creates a grid of small random spheres around three
// large ones. Diffuse spheres bounce during the shutter interval.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	b := newBuilder(opts.Seed)
	random := b.random

	checker := material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	b.add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for bb := -11; bb < 11; bb++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(bb)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomVec(random, 0, 1).MultiplyVec(randomVec(random, 0, 1))
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				b.add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomVec(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				b.add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				b.add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	b.add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	camera := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         opts.width(400),
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
	return b.build("random-spheres", camera, skyBackground(), renderer.DefaultSamplingConfig())
}

// addPerlinSpheres adds a marble ground sphere and a marble sphere resting on it
func addPerlinSpheres(b *builder) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(b.random), 4))
	b.add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}

// NewTwoPerlinScene creates two marble spheres under a sky
func NewTwoPerlinScene(opts Options) (*Scene, error) {
	b := newBuilder(opts.Seed)
	addPerlinSpheres(b)

	camera := renderer.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
	}
	return b.build("two-perlin", camera, skyBackground(), renderer.DefaultSamplingConfig())
}

// NewSimpleLightScene lights the marble spheres with a rectangle and a sphere
// in an otherwise black world
func NewSimpleLightScene(opts Options) (*Scene, error) {
	b := newBuilder(opts.Seed)
	addPerlinSpheres(b)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	b.addLight(geometry.NewXYRect(3, 5, 1, 3, -2, light))
	b.addLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	camera := renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
	}
	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 200
	return b.build("simple-light", camera, integrator.NewSolidBackground(core.Vec3{}), sampling)
}
