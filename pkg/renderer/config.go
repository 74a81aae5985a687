package renderer

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Edge length of square render tiles, in pixels
	NumWorkers      int   // Worker goroutines; 0 means one per logical CPU
	Seed            int64 // Base seed for per-tile random sources
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied.
// Zero means "keep base", so a MaxDepth of 0 can only be set on base itself.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	if override.SamplesPerPixel != 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		base.MaxDepth = override.MaxDepth
	}
	if override.TileSize != 0 {
		base.TileSize = override.TileSize
	}
	if override.NumWorkers != 0 {
		base.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		base.Seed = override.Seed
	}
	return base
}

// Validate reports ErrInvalidDimensions for unusable settings
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 || c.MaxDepth < 0 || c.TileSize <= 0 || c.NumWorkers < 0 {
		return ErrInvalidDimensions
	}
	return nil
}
