// Package pdf provides direction distributions used for importance sampling.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Cosine samples directions with density cos(θ)/π around a surface normal
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine-weighted PDF oriented around normal
func NewCosine(normal core.Vec3) *Cosine {
	return &Cosine{uvw: core.NewONB(normal)}
}

// Value returns cos(θ)/π, or 0 for directions below the surface
func (c *Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction
func (c *Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return c.uvw.Local(core.RandomCosineDirection(sampler.Get2D()))
}

// Hittable samples directions from an origin toward a light-capable hittable
type Hittable struct {
	origin core.Vec3
	target core.Hittable
}

// NewHittable creates a PDF that targets the given hittable from origin
func NewHittable(target core.Hittable, origin core.Vec3) *Hittable {
	return &Hittable{origin: origin, target: target}
}

// Value delegates to the target's light density
func (h *Hittable) Value(direction core.Vec3) float64 {
	return core.PDFValue(h.target, h.origin, direction)
}

// Generate delegates to the target's direction sampling
func (h *Hittable) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomDirection(h.target, h.origin, sampler)
}

// Mixture combines two PDFs with equal weight
type Mixture struct {
	p [2]core.PDF
}

// NewMixture creates a 50/50 mixture of p0 and p1
func NewMixture(p0, p1 core.PDF) *Mixture {
	return &Mixture{p: [2]core.PDF{p0, p1}}
}

// Value returns the average of both densities
func (m *Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate flips a fair coin to choose which PDF draws the direction
func (m *Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}

// Sphere samples directions uniformly over the unit sphere
type Sphere struct{}

// NewSphere creates a uniform sphere PDF
func NewSphere() *Sphere {
	return &Sphere{}
}

// Value returns 1/(4π) for every direction
func (s *Sphere) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform direction
func (s *Sphere) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}
