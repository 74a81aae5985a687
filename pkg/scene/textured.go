package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewEarthScene wraps an image texture around a sphere. Options.TexturePath
// must name a PNG or JPEG file.
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, fmt.Errorf("%w: earth needs an image texture", ErrMissingTexture)
	}
	texture, err := loaders.LoadTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("earth texture: %w", err)
	}
	logger.Debugf("loaded texture %s (%dx%d)", opts.TexturePath, texture.Width, texture.Height)

	b := newBuilder(opts.Seed)
	b.add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))

	camera := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
	}
	return b.build("earth", camera, skyBackground(), renderer.DefaultSamplingConfig())
}

// NewCheckerScene exercises UV mapping and the less common primitives: a UV
// debug sphere, a metal tetrahedron mesh, a disc light and a box tilted about
// a diagonal axis, on a checker floor.
func NewCheckerScene(opts Options) (*Scene, error) {
	b := newBuilder(opts.Seed)

	checker := material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0.1, 0.1, 0.1)),
		material.NewSolidColor(core.NewVec3(0.8, 0.8, 0.8)),
	)
	// Edges ordered so the floor normal points up
	b.add(geometry.NewQuad(core.NewVec3(-5, 0, -5), core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0),
		material.NewTexturedLambertian(checker)))

	b.add(geometry.NewSphere(core.NewVec3(-1.5, 1, 0), 1,
		material.NewTexturedLambertian(material.NewUVDebugTexture(64, 32))))

	vertices := []core.Vec3{
		core.NewVec3(1, 0, -1),
		core.NewVec3(3, 0, -1),
		core.NewVec3(2, 0, 0.7),
		core.NewVec3(2, 1.6, -0.4),
	}
	faces := []int{0, 1, 2, 0, 1, 3, 1, 2, 3, 2, 0, 3}
	mesh, err := geometry.NewTriangleMesh(vertices, faces, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.1), b.random)
	if err != nil {
		return nil, fmt.Errorf("checker mesh: %w", err)
	}
	b.add(mesh)

	box := geometry.NewCenteredBox(core.Vec3{}, core.NewVec3(0.5, 0.5, 0.5),
		material.NewLambertian(core.NewVec3(0.7, 0.15, 0.1)))
	b.add(geometry.NewTranslate(geometry.NewRotate(box, core.NewVec3(1, 1, 0), 30), core.NewVec3(0, 0.9, 2)))

	b.add(geometry.NewSphere(core.NewVec3(0, 0.5, -2), 0.5, material.NewDielectric(1.5)))

	// Disc faces down onto the floor
	b.addLight(geometry.NewDisc(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0), 1,
		material.NewDiffuseLight(core.NewVec3(6, 6, 6))))

	camera := renderer.CameraConfig{
		Center:      core.NewVec3(0, 3, 8),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       opts.width(400),
		AspectRatio: 16.0 / 9.0,
		VFov:        35,
	}
	background := integrator.NewGradientBackground(core.NewVec3(0.2, 0.25, 0.35), core.NewVec3(0.05, 0.05, 0.05))
	return b.build("checker", camera, background, renderer.DefaultSamplingConfig())
}
