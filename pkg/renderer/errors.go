package renderer

import "errors"

var (
	// ErrInvalidDimensions is returned for non-positive image sizes or sample counts
	ErrInvalidDimensions = errors.New("renderer: invalid image dimensions or sampling config")
	// ErrSceneNotDefined is returned when rendering without a scene or world
	ErrSceneNotDefined = errors.New("renderer: scene not defined")
	// ErrInterrupted is returned when a render is canceled before all tiles complete
	ErrInterrupted = errors.New("renderer: render interrupted")
)
