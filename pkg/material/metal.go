package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the incoming ray about the normal, perturbed by fuzz.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.SamplePointInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	return core.NewSpecularScatter(m.Albedo, scattered), true
}

// ScatteringPDF is zero; metal has no continuous density
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns black
func (m *Metal) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	return core.Vec3{}
}
