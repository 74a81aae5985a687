package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// planarPad is the thickness added to flat shapes' boxes along their normal
const planarPad = 0.0001

// planarPDFValue converts a uniform area density over a flat shape into a
// solid-angle density as seen from origin: dist² / (|cos θ| · area)
func planarPDFValue(shape core.Hittable, area float64, origin, direction core.Vec3) float64 {
	hit, ok := shape.Hit(core.NewRay(origin, direction), 0.001, core.Infinity, nil)
	if !ok || area <= 0 {
		return 0
	}

	lengthSquared := direction.LengthSquared()
	distanceSquared := hit.T * hit.T * lengthSquared
	cosine := math.Abs(direction.Dot(hit.Normal)) / math.Sqrt(lengthSquared)
	if cosine <= 0 {
		return 0
	}
	return distanceSquared / (cosine * area)
}
