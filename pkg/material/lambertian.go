package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture core.ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter always scatters diffusely with a cosine-weighted PDF around the normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	albedo := l.Albedo.Evaluate(hit.UV, hit.Point)
	return core.NewDiffuseScatter(albedo, pdf.NewCosine(hit.Normal)), true
}

// ScatteringPDF returns cos(θ)/π for directions above the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Emitted returns black; lambertian surfaces do not emit
func (l *Lambertian) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	return core.Vec3{}
}
