package core

import (
	"math"
	"testing"
)

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Reflect = %v, expected %v", got, expected)
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 0, 1)

	t.Run("head on passes straight through", func(t *testing.T) {
		in := NewVec3(0, 0, -1)
		out, ok := Refract(in, n, 1.0/1.5)
		if !ok {
			t.Fatal("Expected refraction at normal incidence")
		}
		if out.Normalize().Subtract(in).Length() > 1e-9 {
			t.Errorf("Expected collinear continuation, got %v", out)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		// Exiting glass at a grazing angle
		in := NewVec3(0.9, 0, -math.Sqrt(1-0.81))
		if _, ok := Refract(in, n, 1.5); ok {
			t.Error("Expected total internal reflection")
		}
	})

	t.Run("snell's law", func(t *testing.T) {
		sinIn := 0.5
		in := NewVec3(sinIn, 0, -math.Sqrt(1-sinIn*sinIn))
		eta := 1.0 / 1.5
		out, ok := Refract(in, n, eta)
		if !ok {
			t.Fatal("Expected refraction")
		}
		out = out.Normalize()
		if math.Abs(out.X-eta*sinIn) > 1e-9 {
			t.Errorf("sin(theta_t) = %f, expected %f", out.X, eta*sinIn)
		}
	})
}

func TestVec3_Validity(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		valid bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"positive", NewVec3(1, 2, 3), true},
		{"negative", NewVec3(-0.1, 0, 0), false},
		{"nan", NewVec3(math.NaN(), 0, 0), false},
		{"inf", NewVec3(0, math.Inf(1), 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValidRadiance(); got != tt.valid {
				t.Errorf("IsValidRadiance(%v) = %v, expected %v", tt.v, got, tt.valid)
			}
		})
	}

	fixed := NewVec3(math.NaN(), 0.5, math.NaN()).ReplaceNaN()
	if fixed != NewVec3(0, 0.5, 0) {
		t.Errorf("ReplaceNaN = %v", fixed)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRayAt(NewVec3(1, 2, 3), NewVec3(0, 0, 2), 0.25)
	if r.At(1.5) != NewVec3(1, 2, 6) {
		t.Errorf("At(1.5) = %v", r.At(1.5))
	}
	if r.Time != 0.25 {
		t.Errorf("Time = %f", r.Time)
	}
}
