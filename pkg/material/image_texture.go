package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UVs outside [0,1] are clamped; an empty texture evaluates to cyan so it stands out.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 || len(t.Pixels) < t.Width*t.Height {
		return core.NewVec3(0, 1, 1)
	}

	u := min(max(uv.X, 0), 1)
	v := 1.0 - min(max(uv.Y, 0), 1) // flip V to image coordinates

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
