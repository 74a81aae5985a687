package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// BakeTexture rasterizes any color source into an image texture by evaluating it
// at pixel centers over the unit UV square. Row 0 is the top of the image (v = 1).
func BakeTexture(source core.ColorSource, width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		v := 1.0 - (float64(y)+0.5)/float64(height)
		for x := 0; x < width; x++ {
			u := (float64(x) + 0.5) / float64(width)
			pixels[y*width+x] = source.Evaluate(core.NewVec2(u, v), core.NewVec3(u, v, 0))
		}
	}

	return NewImageTexture(width, height, pixels)
}

// uvColor maps (u, v) to (red, green)
type uvColor struct{}

func (uvColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.NewVec3(uv.X, uv.Y, 0)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	return BakeTexture(uvColor{}, width, height)
}
