package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average linear color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height  int
	TotalPixels    int             // Total number of pixels rendered
	TotalSamples   int             // Total number of samples taken
	TilesRendered  int             // Tiles that completed
	TilesSkipped   int             // Tiles dropped after cancellation
	WorkerTiles    []int           // Completed tiles per worker ID
	WorkerDuration []time.Duration // Busy time per worker ID
	Duration       time.Duration   // Wall-clock render time
}

// AverageSamples returns the mean number of samples per rendered pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// SamplesPerSecond returns the overall sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func newRenderStats(width, height, numWorkers int) RenderStats {
	return RenderStats{
		Width:          width,
		Height:         height,
		WorkerTiles:    make([]int, numWorkers),
		WorkerDuration: make([]time.Duration, numWorkers),
	}
}

// addResult folds a finished tile into the totals
func (s *RenderStats) addResult(result TileResult) {
	if result.Skipped {
		s.TilesSkipped++
		return
	}
	s.TilesRendered++
	s.TotalPixels += result.Pixels
	s.TotalSamples += result.Samples
	if result.WorkerID >= 0 && result.WorkerID < len(s.WorkerTiles) {
		s.WorkerTiles[result.WorkerID]++
		s.WorkerDuration[result.WorkerID] += result.Duration
	}
}
