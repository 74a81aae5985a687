package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens look-at camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter; 0 is a pinhole
	FocusDistance float64   // Distance to the plane in focus; 0 means the LookAt distance
	Time0, Time1  float64   // Shutter interval
}

// Camera generates rays for rendering
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	width, height   int
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	if config.Up == (core.Vec3{}) {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Orthonormal camera frame: w points backward, u right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		config:          config,
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		width:           config.Width,
		height:          int(float64(config.Width) / config.AspectRatio),
	}
}

// ImageSize returns the output resolution in pixels
func (c *Camera) ImageSize() (width, height int) {
	return c.width, c.height
}

// GetRay generates a ray for image-plane coordinates (s, t) in [0,1]², with
// t = 0 at the bottom of the frame. The lens and shutter time are sampled.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.config.Time0
	if c.config.Time1 > c.config.Time0 {
		time += sampler.Get1D() * (c.config.Time1 - c.config.Time0)
	}

	return core.NewRayAt(origin, direction, time)
}
