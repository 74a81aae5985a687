package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// A RandomSampler is not safe for concurrent use; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own source seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// ONB is an orthonormal basis with W aligned to a given direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis is the normalized n
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector expressed in basis coordinates to world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}

// RandomCosineDirection returns a cosine-weighted direction around +Z
func RandomCosineDirection(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r2 := sample.Y
	sqrtR2 := math.Sqrt(r2)

	return NewVec3(
		math.Cos(phi)*sqrtR2,
		math.Sin(phi)*sqrtR2,
		math.Sqrt(1.0-r2),
	)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewONB(normal).Local(RandomCosineDirection(sample))
}

// RandomToSphere samples a direction within the cone subtended by a sphere of
// the given radius at squared distance distanceSquared, expressed around +Z
func RandomToSphere(radius, distanceSquared float64, sample Vec2) Vec3 {
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-radius*radius/distanceSquared))
	z := 1.0 + sample.Y*(cosThetaMax-1.0)
	phi := 2.0 * math.Pi * sample.X
	sinTheta := math.Sqrt(math.Max(0, 1.0-z*z))

	return NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere by rejection
func SamplePointInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SamplePointInUnitDisk generates a random point in the z=0 unit disk by rejection
func SamplePointInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
