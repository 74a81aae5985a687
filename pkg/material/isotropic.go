package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly over the whole sphere of directions
type Isotropic struct {
	Albedo core.ColorSource
}

// NewIsotropic creates an isotropic phase function with a uniform color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo core.ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter always scatters with a uniform sphere PDF
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.NewDiffuseScatter(i.Albedo.Evaluate(hit.UV, hit.Point), pdf.NewSphere()), true
}

// ScatteringPDF returns 1/(4π) for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Emitted returns black
func (i *Isotropic) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	return core.Vec3{}
}
