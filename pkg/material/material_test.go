package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

func frontHit(point, normal core.Vec3) *core.HitRecord {
	return &core.HitRecord{T: 1, Point: point, Normal: normal, FrontFace: true}
}

func TestLambertianScatter(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	lambertian := NewLambertian(albedo)
	normal := core.NewVec3(0, 1, 0)
	hit := frontHit(core.Vec3{}, normal)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		scatter, ok := lambertian.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatalf("Lambertian should always scatter")
		}
		if scatter.Kind != core.ScatterDiffuse {
			t.Fatalf("Expected diffuse scatter, got %v", scatter.Kind)
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		direction := scatter.PDF.Generate(sampler)
		if direction.Dot(normal) < 0 {
			t.Errorf("Scattered direction %v below surface", direction)
		}
	}
}

func TestLambertianScatteringPDF(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := frontHit(core.Vec3{}, core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"Along normal", core.NewVec3(0, 0, 1), 1 / math.Pi},
		{"Unnormalized along normal", core.NewVec3(0, 0, 5), 1 / math.Pi},
		{"45 degrees", core.NewVec3(1, 0, 1), math.Sqrt2 / 2 / math.Pi},
		{"Below surface", core.NewVec3(0, 0, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lambertian.ScatteringPDF(ray, hit, core.NewRay(hit.Point, tt.direction))
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

// With the material PDF used for sampling, each sample's weight is
// albedo·scatteringPDF/pdf; its mean must not exceed the albedo.
func TestLambertianDoesNotAmplifyEnergy(t *testing.T) {
	albedo := 0.7
	lambertian := NewLambertian(core.NewVec3(albedo, albedo, albedo))
	normal := core.NewVec3(0, 1, 0)
	hit := frontHit(core.Vec3{}, normal)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	const n = 10000
	weights := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		direction := scatter.PDF.Generate(sampler)
		pdfValue := scatter.PDF.Value(direction)
		if pdfValue <= 0 {
			continue
		}
		scattered := core.NewRay(hit.Point, direction)
		weights = append(weights, scatter.Attenuation.X*lambertian.ScatteringPDF(ray, hit, scattered)/pdfValue)
	}

	mean := stat.Mean(weights, nil)
	if mean > albedo+1e-6 {
		t.Errorf("Mean throughput %f exceeds albedo %f", mean, albedo)
	}
	if math.Abs(mean-albedo) > 0.01 {
		t.Errorf("Mean throughput %f should match albedo %f", mean, albedo)
	}
}

func TestMetalScatter(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	hit := frontHit(core.Vec3{}, core.NewVec3(0, 1, 0))
	ray := core.NewRayAt(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0), 0.25)

	scatter, ok := metal.Scatter(ray, hit, fixedSampler{0.5})
	if !ok {
		t.Fatalf("Mirror reflection should scatter")
	}
	if !scatter.IsSpecular() {
		t.Fatalf("Metal should scatter specularly")
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.SpecularRay.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, scatter.SpecularRay.Direction)
	}
	if scatter.SpecularRay.Time != 0.25 {
		t.Errorf("Expected scattered ray to keep time 0.25, got %f", scatter.SpecularRay.Time)
	}
	if metal.ScatteringPDF(ray, hit, scatter.SpecularRay) != 0 {
		t.Errorf("Metal scattering PDF should be 0")
	}
}

func TestMetalFuzzClamp(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{2, 1},
	}
	for _, tt := range tests {
		if got := NewMetal(core.NewVec3(1, 1, 1), tt.input).Fuzzness; got != tt.expected {
			t.Errorf("NewMetal fuzz %f: expected %f, got %f", tt.input, tt.expected, got)
		}
	}
}

func TestMetalAbsorbsGrazingFuzz(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1)
	hit := frontHit(core.Vec3{}, core.NewVec3(0, 1, 0))
	// Nearly grazing incidence: reflected.y is tiny, fuzz toward -y pushes it under
	ray := core.NewRay(core.NewVec3(-1, 0.001, 0), core.NewVec3(1, -0.001, 0))

	// Get3D of 0.3 yields the in-sphere point (-0.4, -0.4, -0.4)
	_, ok := metal.Scatter(ray, hit, fixedSampler{0.3})
	if ok {
		t.Errorf("Fuzzed reflection below surface should be absorbed")
	}
}

func TestDielectricHeadOn(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := frontHit(core.Vec3{}, core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// Head-on reflectance is 0.04, so a draw of 0.99 refracts
	scatter, ok := glass.Scatter(ray, hit, fixedSampler{0.99})
	if !ok || !scatter.IsSpecular() {
		t.Fatalf("Dielectric should scatter specularly")
	}
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected unit attenuation, got %v", scatter.Attenuation)
	}
	direction := scatter.SpecularRay.Direction.Normalize()
	if direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected undeviated refraction, got %v", direction)
	}

	// A draw below 0.04 reflects
	scatter, _ = glass.Scatter(ray, hit, fixedSampler{0.01})
	if scatter.SpecularRay.Direction.Normalize().Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected reflection, got %v", scatter.SpecularRay.Direction)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	// Inside the glass, hitting the boundary at a shallow angle
	hit := &core.HitRecord{Point: core.Vec3{}, Normal: normal.Negate(), FrontFace: false}
	ray := core.NewRay(core.NewVec3(-1, -0.2, 0), core.NewVec3(1, 0.2, 0))

	scatter, ok := glass.Scatter(ray, hit, fixedSampler{0.99})
	if !ok {
		t.Fatalf("Dielectric should always scatter")
	}
	if scatter.SpecularRay.Direction.Y >= 0 {
		t.Errorf("Expected total internal reflection back down, got %v", scatter.SpecularRay.Direction)
	}
}

func TestReflectance(t *testing.T) {
	if got := Reflectance(1, 1.0/1.5); math.Abs(got-0.04) > 1e-9 {
		t.Errorf("Expected head-on reflectance 0.04, got %f", got)
	}
	if got := Reflectance(0, 1.0/1.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected grazing reflectance 1, got %f", got)
	}
}

func TestDiffuseLightEmission(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	light := NewDiffuseLight(emission)
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		frontFace bool
		expected  core.Vec3
	}{
		{"Front face emits", true, emission},
		{"Back face is dark", false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := &core.HitRecord{Normal: core.NewVec3(0, -1, 0), FrontFace: tt.frontFace}
			if got := light.Emitted(ray, hit); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if _, ok := light.Scatter(ray, hit, fixedSampler{0.5}); ok {
				t.Errorf("Diffuse light should never scatter")
			}
		})
	}
}

func TestIsotropicScatter(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.5, 0.5, 0.5))
	hit := frontHit(core.Vec3{}, core.NewVec3(1, 0, 0))
	ray := core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0))

	scatter, ok := iso.Scatter(ray, hit, fixedSampler{0.3})
	if !ok || scatter.Kind != core.ScatterDiffuse {
		t.Fatalf("Isotropic should scatter diffusely")
	}
	want := 1 / (4 * math.Pi)
	if got := scatter.PDF.Value(core.NewVec3(0, -1, 0)); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected PDF %f, got %f", want, got)
	}
	if got := iso.ScatteringPDF(ray, hit, ray); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected scattering PDF %f, got %f", want, got)
	}
}
