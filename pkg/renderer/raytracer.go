package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Scene is everything the renderer needs to produce a frame
type Scene interface {
	GetWorld() core.Hittable              // Root of all intersectable objects
	GetLights() core.Hittable             // Emitters used for importance sampling; may be nil
	GetBackground() integrator.Background // Radiance for rays that escape
	GetCamera() *Camera
}

// Raytracer renders a scene into an RGBA image using a tile-parallel worker pool
type Raytracer struct {
	scene      Scene
	camera     *Camera
	config     SamplingConfig
	integrator *integrator.PathTracer
	width      int
	height     int
	logger     log.Logger
}

// NewRaytracer validates the scene and configuration and creates a raytracer
func NewRaytracer(scene Scene, config SamplingConfig) (*Raytracer, error) {
	if scene == nil || scene.GetWorld() == nil || scene.GetCamera() == nil {
		return nil, ErrSceneNotDefined
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	camera := scene.GetCamera()
	width, height := camera.ImageSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	return &Raytracer{
		scene:      scene,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracer(),
		width:      width,
		height:     height,
		logger:     log.New("renderer"),
	}, nil
}

// Size returns the output image dimensions
func (rt *Raytracer) Size() (width, height int) {
	return rt.width, rt.height
}

// numWorkers resolves a zero worker count to the host's logical CPUs
func (rt *Raytracer) numWorkers() int {
	if rt.config.NumWorkers > 0 {
		return rt.config.NumWorkers
	}
	return runtime.NumCPU()
}

// Render traces every tile and assembles the final image. If ctx is canceled,
// remaining tiles are skipped and the partial image is returned together with
// an error wrapping ErrInterrupted and the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)
	pixels := make([]PixelStats, rt.width*rt.height)
	numWorkers := rt.numWorkers()
	stats := newRenderStats(rt.width, rt.height, numWorkers)

	rt.logger.Infof("rendering %dx%d: %d tiles, %d spp, depth %d, %d workers",
		rt.width, rt.height, len(tiles), rt.config.SamplesPerPixel, rt.config.MaxDepth, numWorkers)

	pool := NewWorkerPool(numWorkers, len(tiles), func(task TileTask) (int, int) {
		return rt.renderTile(task, pixels)
	})
	pool.Start(ctx)

	submitted := 0
	for i, tile := range tiles {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Random: tile.NewRandom(rt.config.Seed)})
		submitted++
	}
	pool.Close()
	pool.Wait()

	for result := range pool.Results() {
		stats.addResult(result)
	}
	stats.TilesSkipped += len(tiles) - submitted
	stats.Duration = time.Since(start)

	img := rt.assemble(pixels)

	if err := ctx.Err(); err != nil {
		rt.logger.Warningf("render interrupted after %d/%d tiles", stats.TilesRendered, len(tiles))
		return img, stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	rt.logger.Infof("render finished in %v (%d samples)", stats.Duration, stats.TotalSamples)
	return img, stats, nil
}

// renderTile fills the tile's disjoint region of the pixel buffer
func (rt *Raytracer) renderTile(task TileTask, pixels []PixelStats) (int, int) {
	sampler := core.NewRandomSampler(task.Random)
	world := rt.scene.GetWorld()
	lights := rt.scene.GetLights()
	background := rt.scene.GetBackground()
	spp := rt.config.SamplesPerPixel

	bounds := task.Tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixels[y*rt.width+x]
			for s := 0; s < spp; s++ {
				u := (float64(x) + sampler.Get1D()) / float64(rt.width)
				// Image row 0 is the top of the frame
				v := (float64(rt.height-1-y) + sampler.Get1D()) / float64(rt.height)

				ray := rt.camera.GetRay(u, v, sampler)
				ps.AddSample(rt.integrator.Radiance(ray, world, lights, background, rt.config.MaxDepth, sampler))
			}
		}
	}

	count := bounds.Dx() * bounds.Dy()
	return count, count * spp
}

func (rt *Raytracer) assemble(pixels []PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			img.SetRGBA(x, y, ToRGBA(pixels[y*rt.width+x].GetColor()))
		}
	}
	return img
}
