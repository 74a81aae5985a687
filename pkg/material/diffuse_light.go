package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is a one-sided emitter; it never scatters
type DiffuseLight struct {
	Emit core.ColorSource
}

// NewDiffuseLight creates an emitter with a uniform color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emitter whose radiance varies over the surface
func NewTexturedDiffuseLight(emit core.ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero
func (l *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission for front-face hits and black from behind
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return l.Emit.Evaluate(hit.UV, hit.Point)
}
