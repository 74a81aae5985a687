package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          core.Hittable         // BVH over every object
	Lights         core.Hittable         // Emitters used for importance sampling; nil when none
	Background     integrator.Background // Color of escaping rays
	Camera         *renderer.Camera
	SamplingConfig renderer.SamplingConfig // Recommended render settings
	Stats          geometry.BVHStats
}

// GetWorld returns the root of all intersectable objects
func (s *Scene) GetWorld() core.Hittable { return s.World }

// GetLights returns the light-sampling view, or nil when the scene has none
func (s *Scene) GetLights() core.Hittable { return s.Lights }

// GetBackground returns the background for escaping rays
func (s *Scene) GetBackground() integrator.Background { return s.Background }

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// builder collects objects while a scene is being assembled
type builder struct {
	objects []core.Hittable
	lights  []core.Hittable
	random  *rand.Rand
}

func newBuilder(seed int64) *builder {
	return &builder{random: rand.New(rand.NewSource(seed))}
}

// add appends objects to the world
func (b *builder) add(objects ...core.Hittable) {
	b.objects = append(b.objects, objects...)
}

// addLight appends an object to the world and to the light-sampling view.
// The view shares the object with the world rather than copying it.
func (b *builder) addLight(object core.Hittable) {
	b.objects = append(b.objects, object)
	b.lights = append(b.lights, object)
}

// build creates the BVH and the lights view
func (b *builder) build(name string, camera renderer.CameraConfig, background integrator.Background, sampling renderer.SamplingConfig) (*Scene, error) {
	bvh, err := geometry.NewBVH(b.objects, b.random)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	s := &Scene{
		Name:           name,
		World:          bvh,
		Background:     background,
		Camera:         renderer.NewCamera(camera),
		SamplingConfig: sampling,
		Stats:          bvh.Stats(),
	}

	switch len(b.lights) {
	case 0:
	case 1:
		s.Lights = b.lights[0]
	default:
		s.Lights = geometry.NewHittableList(b.lights...)
	}

	logger.Infof("built scene %q: %d objects, %d lights, BVH nodes %d depth %d",
		name, s.Stats.Objects, len(b.lights), s.Stats.Nodes, s.Stats.MaxDepth)
	return s, nil
}
