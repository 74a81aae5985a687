package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphereHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertian(core.NewVec3(1, 0, 0)))

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
		frontFace bool
	}{
		{"Head on", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, core.Infinity, true, 4, true},
		{"Miss", core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 0.001, core.Infinity, false, 0, false},
		{"From inside", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)), 0.001, core.Infinity, true, 1, false},
		{"Behind tMax", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 3, false, 0, false},
		{"Exclusive tMax", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 4, false, 0, false},
		{"Far side only", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 4.5, core.Infinity, true, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(tt.ray, tt.tMin, tt.tMax, nil)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected frontFace=%v, got %v", tt.frontFace, hit.FrontFace)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
			if hit.Material != sphere.Material {
				t.Errorf("Expected sphere material on hit")
			}
		})
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"-Y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"-X", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.point)
			if math.Abs(uv.X-tt.u) > 1e-9 || math.Abs(uv.Y-tt.v) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.u, tt.v, uv.X, uv.Y)
			}
		})
	}
}

func TestMovingSphereFollowsTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(0, 2, -5), 0, 1, 0.5, nil)

	if center := sphere.CenterAt(0.5); center != core.NewVec3(0, 1, -5) {
		t.Errorf("Expected midpoint center, got %v", center)
	}

	ray := core.NewRayAt(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1), 0)
	if _, ok := sphere.Hit(ray, 0.001, core.Infinity, nil); ok {
		t.Errorf("Sphere should not be at y=2 at time 0")
	}
	ray.Time = 1
	if _, ok := sphere.Hit(ray, 0.001, core.Infinity, nil); !ok {
		t.Errorf("Sphere should be at y=2 at time 1")
	}

	box, _ := sphere.BoundingBox()
	if box.Min.Y != -0.5 || box.Max.Y != 2.5 {
		t.Errorf("Box should cover the whole motion, got %v", box)
	}
}

func TestAxisRectHit(t *testing.T) {
	rect := NewXYRect(0, 2, 0, 4, -3, nil)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		uv        core.Vec2
		frontFace bool
	}{
		{"Center from front", core.NewRay(core.NewVec3(1, 2, 0), core.NewVec3(0, 0, -1)), true, core.NewVec2(0.5, 0.5), true},
		{"Corner from behind", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), true, core.NewVec2(0, 0), false},
		{"Outside", core.NewRay(core.NewVec3(3, 2, 0), core.NewVec3(0, 0, -1)), false, core.Vec2{}, false},
		{"Parallel", core.NewRay(core.NewVec3(1, 2, -3), core.NewVec3(1, 0, 0)), false, core.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := rect.Hit(tt.ray, 0.001, core.Infinity, nil)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if hit.UV != tt.uv {
				t.Errorf("Expected uv %v, got %v", tt.uv, hit.UV)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected frontFace=%v, got %v", tt.frontFace, hit.FrontFace)
			}
		})
	}

	box, _ := rect.BoundingBox()
	if math.Abs(box.Max.Z-box.Min.Z-2*planarPad) > 1e-12 {
		t.Errorf("Expected padded thickness %f, got %f", 2*planarPad, box.Max.Z-box.Min.Z)
	}
}

func TestQuadAndTriangleHit(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), nil)
	triangle := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(-1, 1, 0), nil)

	tests := []struct {
		name      string
		shape     core.Hittable
		origin    core.Vec3
		shouldHit bool
	}{
		{"Quad center", quad, core.NewVec3(0, 0, 1), true},
		{"Quad outside", quad, core.NewVec3(1.5, 0, 1), false},
		{"Triangle inside", triangle, core.NewVec3(-0.5, -0.5, 1), true},
		{"Triangle past hypotenuse", triangle, core.NewVec3(0.5, 0.5, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			hit, ok := tt.shape.Hit(ray, 0.001, core.Infinity, nil)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if ok && (math.Abs(hit.T-1) > 1e-9 || !hit.FrontFace) {
				t.Errorf("Expected front hit at t=1, got t=%f front=%v", hit.T, hit.FrontFace)
			}
		})
	}

	if math.Abs(quad.Area()-4) > 1e-12 || math.Abs(triangle.Area()-2) > 1e-12 {
		t.Errorf("Unexpected areas: quad %f, triangle %f", quad.Area(), triangle.Area())
	}
}

func TestBoxFacesPointOutward(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)

	directions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}

	for _, direction := range directions {
		// From outside, every face is a front face
		outside := core.NewRay(direction.Multiply(-5), direction)
		hit, ok := box.Hit(outside, 0.001, core.Infinity, nil)
		if !ok || !hit.FrontFace || math.Abs(hit.T-4) > 1e-9 {
			t.Errorf("Direction %v from outside: ok=%v hit=%+v", direction, ok, hit)
		}

		// From inside, every face is a back face
		inside := core.NewRay(core.Vec3{}, direction)
		hit, ok = box.Hit(inside, 0.001, core.Infinity, nil)
		if !ok || hit.FrontFace {
			t.Errorf("Direction %v from inside: ok=%v hit=%+v", direction, ok, hit)
		}
	}
}

func TestDiscHit(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), 1, nil)

	hit, ok := disc.Hit(core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 1, 0)), 0.001, core.Infinity, nil)
	if !ok || !hit.FrontFace || math.Abs(hit.T-2) > 1e-9 {
		t.Fatalf("Expected front hit at t=2, got ok=%v hit=%+v", ok, hit)
	}
	if math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected radial coordinate 0.5, got %f", hit.UV.Y)
	}

	if _, ok := disc.Hit(core.NewRay(core.NewVec3(1.5, 0, 0), core.NewVec3(0, 1, 0)), 0.001, core.Infinity, nil); ok {
		t.Errorf("Expected miss outside radius")
	}
}

func TestTriangleMesh(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0),
		core.NewVec3(1, 1, 0), core.NewVec3(-1, 1, 0),
	}
	random := rand.New(rand.NewSource(1))

	mesh, err := NewTriangleMesh(vertices, []int{0, 1, 2, 0, 2, 3}, nil, random)
	if err != nil {
		t.Fatalf("NewTriangleMesh failed: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}
	for _, origin := range []core.Vec3{core.NewVec3(0.5, -0.5, 1), core.NewVec3(-0.5, 0.5, 1)} {
		if _, ok := mesh.Hit(core.NewRay(origin, core.NewVec3(0, 0, -1)), 0.001, core.Infinity, nil); !ok {
			t.Errorf("Expected hit from %v", origin)
		}
	}

	if _, err := NewTriangleMesh(vertices, []int{0, 1}, nil, random); err == nil {
		t.Errorf("Expected error for incomplete face")
	}
	if _, err := NewTriangleMesh(vertices, []int{0, 1, 9}, nil, random); err == nil {
		t.Errorf("Expected error for out of range index")
	}
}

// Every reported hit point must lie inside the reported bounding box
func TestBoundingBoxSoundness(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	sampler := core.NewRandomSampler(random)

	for i, object := range eightPrimitiveScene() {
		box, ok := object.BoundingBox()
		if !ok {
			t.Fatalf("Object %d has no bounding box", i)
		}
		center := box.Center()

		hits := 0
		for n := 0; n < 2000; n++ {
			// Aim roughly at the object from a random point around it
			origin := center.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(20))
			target := center.Add(core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).MultiplyVec(box.Size()))
			ray := core.NewRayAt(origin, target.Subtract(origin), random.Float64())

			hit, ok := object.Hit(ray, 0.001, 100, nil)
			if !ok {
				continue
			}
			hits++
			if !box.Contains(hit.Point, 1e-6) {
				t.Fatalf("Object %d (%T): hit point %v outside box %v", i, object, hit.Point, box)
			}
		}
		if hits == 0 {
			t.Errorf("Object %d (%T) was never hit", i, object)
		}
	}
}

func TestTriangleWithNormal(t *testing.T) {
	v0, v1, v2 := core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0)
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tri       *Triangle
		normal    core.Vec3
		frontFace bool
	}{
		{"winding normal", NewTriangle(v0, v1, v2, mat), core.NewVec3(0, 0, 1), true},
		{"custom normal", NewTriangleWithNormal(v0, v1, v2, core.NewVec3(0, 0, -2), mat), core.NewVec3(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tri.Normal() != tt.normal {
				t.Errorf("Normal() = %v, want %v", tt.tri.Normal(), tt.normal)
			}
			hit, ok := tt.tri.Hit(ray, 0.001, core.Infinity, nil)
			if !ok {
				t.Fatal("expected hit")
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("FrontFace = %v, want %v", hit.FrontFace, tt.frontFace)
			}
			// Shading normal always faces the ray
			if hit.Normal.Dot(ray.Direction) >= 0 {
				t.Errorf("normal %v does not face the ray", hit.Normal)
			}
		})
	}
}
