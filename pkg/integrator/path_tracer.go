// Package integrator estimates the radiance carried along camera rays.
package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// DefaultMinDistance is the smallest hit distance accepted for continuation rays.
// It keeps rays leaving a surface from re-hitting that same surface.
const DefaultMinDistance = 0.001

// PathTracer is a unidirectional path tracer with a fixed bounce cap.
// Diffuse bounces mix light sampling with the material's own PDF.
type PathTracer struct {
	MinDistance float64
}

// NewPathTracer creates a path tracer with the default self-intersection offset
func NewPathTracer() *PathTracer {
	return &PathTracer{MinDistance: DefaultMinDistance}
}

// Radiance estimates the light arriving along ray. lights may be nil, in which
// case diffuse bounces sample only the material PDF. The result is always a
// finite, non-negative color: invalid contributions are dropped, not propagated.
func (pt *PathTracer) Radiance(ray core.Ray, world, lights core.Hittable, background Background, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, pt.MinDistance, core.Infinity, sampler)
	if !isHit {
		return background.Color(ray)
	}

	emitted := hit.Material.Emitted(ray, hit)
	if !emitted.IsValidRadiance() {
		emitted = core.Vec3{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	var scattered core.Vec3
	switch scatter.Kind {
	case core.ScatterSpecular:
		incoming := pt.Radiance(scatter.SpecularRay, world, lights, background, depth-1, sampler)
		scattered = scatter.Attenuation.MultiplyVec(incoming)
	case core.ScatterDiffuse:
		scattered = pt.diffuse(ray, hit, scatter, world, lights, background, depth, sampler)
	}

	if !scattered.IsValidRadiance() {
		return emitted
	}
	return emitted.Add(scattered)
}

// diffuse samples a continuation from the light/material mixture and weights it
// by scatteringPDF / pdf
func (pt *PathTracer) diffuse(ray core.Ray, hit *core.HitRecord, scatter core.ScatterRecord, world, lights core.Hittable, background Background, depth int, sampler core.Sampler) core.Vec3 {
	sampling := scatter.PDF
	if lights != nil {
		sampling = pdf.NewMixture(pdf.NewHittable(lights, hit.Point), scatter.PDF)
	}

	next := core.NewRayAt(hit.Point, sampling.Generate(sampler), ray.Time)
	pdfValue := sampling.Value(next.Direction)
	if !(pdfValue > 0) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, next)
	if !(scatteringPDF > 0) {
		return core.Vec3{}
	}

	incoming := pt.Radiance(next, world, lights, background, depth-1, sampler)
	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(incoming)
}
