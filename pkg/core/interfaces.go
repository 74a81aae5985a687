package core

import "math"

// HitRecord contains information about a ray-object intersection.
// It is only valid for the duration of the query that produced it.
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the incoming ray
	FrontFace bool     // Whether the geometric normal already faced the ray
	UV        Vec2     // Surface coordinates
	Material  Material // Material active at the hit point
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by every primitive, composite and acceleration node.
//
// Hit must report the closest intersection with t in (tMin, tMax). The sampler
// is only consulted by stochastic nodes such as participating media and may be
// nil for purely geometric queries.
//
// BoundingBox returns false when the object has no well-defined bounds.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox() (AABB, bool)
}

// LightSampler is implemented by hittables that can be importance sampled as lights.
// PDFValue is the solid-angle density that Random(origin) produces direction.
type LightSampler interface {
	PDFValue(origin, direction Vec3) float64
	Random(origin Vec3, sampler Sampler) Vec3
}

// PDFValue returns h's light density toward direction, or 0 if h is not light-capable
func PDFValue(h Hittable, origin, direction Vec3) float64 {
	if ls, ok := h.(LightSampler); ok {
		return ls.PDFValue(origin, direction)
	}
	return 0
}

// RandomDirection samples a direction toward h, falling back to +X for hittables
// that cannot be sampled
func RandomDirection(h Hittable, origin Vec3, sampler Sampler) Vec3 {
	if ls, ok := h.(LightSampler); ok {
		return ls.Random(origin, sampler)
	}
	return NewVec3(1, 0, 0)
}

// PDF describes a distribution over directions
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	Evaluate(uv Vec2, point Vec3) Vec3
}

// ScatterKind tags the continuation carried by a ScatterRecord
type ScatterKind int

const (
	// ScatterSpecular continues along a single deterministic ray
	ScatterSpecular ScatterKind = iota + 1
	// ScatterDiffuse continues along a direction drawn from a PDF
	ScatterDiffuse
)

// ScatterRecord is the outcome of a successful Material.Scatter call
type ScatterRecord struct {
	Kind        ScatterKind
	Attenuation Vec3
	SpecularRay Ray // set when Kind == ScatterSpecular
	PDF         PDF // set when Kind == ScatterDiffuse
}

// NewSpecularScatter creates a specular scatter result
func NewSpecularScatter(attenuation Vec3, ray Ray) ScatterRecord {
	return ScatterRecord{Kind: ScatterSpecular, Attenuation: attenuation, SpecularRay: ray}
}

// NewDiffuseScatter creates a diffuse scatter result
func NewDiffuseScatter(attenuation Vec3, pdf PDF) ScatterRecord {
	return ScatterRecord{Kind: ScatterDiffuse, Attenuation: attenuation, PDF: pdf}
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterRecord) IsSpecular() bool {
	return s.Kind == ScatterSpecular
}

// Material describes how light interacts with a surface
type Material interface {
	// Scatter proposes a continuation, or returns false if the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterRecord, bool)

	// ScatteringPDF is the density of scattering rayIn into scattered
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64

	// Emitted returns light emitted by the surface toward rayIn
	Emitted(rayIn Ray, hit *HitRecord) Vec3
}

// Infinity is the open upper bound used for unbounded ray queries
var Infinity = math.Inf(1)
