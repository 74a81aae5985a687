package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background is the radiance returned for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) SolidBackground {
	return SolidBackground{Value: color}
}

// Color returns the constant color
func (b SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// GradientBackground blends linearly from Bottom (straight down) to Top (straight up)
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical sky gradient
func NewGradientBackground(top, bottom core.Vec3) GradientBackground {
	return GradientBackground{Top: top, Bottom: bottom}
}

// Color blends by the height of the normalized ray direction
func (b GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
