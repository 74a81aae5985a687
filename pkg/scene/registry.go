package scene

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownScene is returned when no scene is registered under a name
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrMissingTexture is returned when a scene needs an image texture that was not supplied
	ErrMissingTexture = errors.New("scene: missing texture")
)

// Options adjusts how a built-in scene is constructed
type Options struct {
	Width       int    // Image width override; 0 keeps the scene's default
	TexturePath string // Image file for textured scenes
	Seed        int64  // Seed for scene layout randomness and BVH construction
}

// Info describes a registered scene
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type constructor func(opts Options) (*Scene, error)

type entry struct {
	info  Info
	build constructor
}

var registry = map[string]entry{}

func register(name, description string, build constructor) {
	registry[name] = entry{info: Info{Name: name, Description: description}, build: build}
}

func init() {
	register("cornell", "Cornell box with two rotated boxes and a glass sphere", NewCornellScene)
	register("cornell-smoke", "Cornell box with two blocks of smoke", NewCornellSmokeScene)
	register("random-spheres", "Field of random diffuse, metal and glass spheres with motion blur", NewRandomSpheresScene)
	register("simple-light", "Perlin spheres lit by a rectangle and a sphere light", NewSimpleLightScene)
	register("two-perlin", "Two marble spheres under a sky", NewTwoPerlinScene)
	register("earth", "Image-textured globe, requires a texture", NewEarthScene)
	register("checker", "UV debug sphere, triangle mesh, disc light and a tilted box on a checker floor", NewCheckerScene)
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns info for every registered scene, sorted by name
func List() []Info {
	names := Names()
	infos := make([]Info, len(names))
	for i, name := range names {
		infos[i] = registry[name].info
	}
	return infos
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	return e.build(opts)
}

// width returns the override if set, else the scene default
func (o Options) width(def int) int {
	if o.Width > 0 {
		return o.Width
	}
	return def
}
