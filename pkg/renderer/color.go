package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxIntensity keeps 1.0 from wrapping past 255
const maxIntensity = 0.999

// ToRGBA converts an averaged linear color to an 8-bit pixel.
// NaN components become 0, then gamma 2 is applied and values are clamped.
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.ReplaceNaN()
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	v = math.Sqrt(v)
	if v > maxIntensity {
		v = maxIntensity
	}
	return uint8(256 * v)
}
