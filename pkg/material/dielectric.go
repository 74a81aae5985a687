package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter chooses between reflection and refraction using Schlick's Fresnel estimate.
// Total internal reflection always reflects. Clear glass does not attenuate.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	refractionRatio := d.RefractiveIndex // exiting the material
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering from air
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)

	direction, refracted := core.Refract(unitDirection, hit.Normal, refractionRatio)
	if !refracted || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)
	return core.NewSpecularScatter(attenuation, scattered), true
}

// ScatteringPDF is zero; dielectric scattering is a delta distribution
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns black
func (d *Dielectric) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
