package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two color sources in a 3D sine pattern
type CheckerTexture struct {
	Odd   core.ColorSource
	Even  core.ColorSource
	Scale float64 // Spatial frequency of the pattern
}

// NewCheckerTexture creates a checker texture with the classic frequency of 10
func NewCheckerTexture(odd, even core.ColorSource) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Scale: 10}
}

// Evaluate picks Odd or Even by the sign of sin(sx)·sin(sy)·sin(sz)
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
