package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const tolerance = 1e-9

var (
	testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	forward      = core.NewInterval(0.001, math.Inf(1))
)

func newTestSampler() *core.RandomSampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func vecClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), 0)

	hit, isHit := sphere.Hit(ray, forward, newTestSampler())
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedPoint  core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, 0)
			hit, isHit := sphere.Hit(ray, forward, newTestSampler())

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecClose(hit.Point, tt.expectedPoint) {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecClose(hit.Normal, tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != testMaterial {
				t.Error("Expected the sphere's material on the hit record")
			}
		})
	}
}

func TestSphere_Hit_IntervalBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 0)

	tests := []struct {
		name      string
		interval  core.Interval
		expectHit bool
		expectedT float64
	}{
		{"Both roots inside picks near", core.NewInterval(0, 10), true, 1},
		{"Near root excluded picks far", core.NewInterval(1.5, 10), true, 3},
		{"Both roots excluded", core.NewInterval(0, 0.5), false, 0},
		{"Far root beyond max", core.NewInterval(1.5, 2.5), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.interval, newTestSampler())
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_UV(t *testing.T) {
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
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.u) > tolerance || math.Abs(v-tt.v) > tolerance {
				t.Errorf("sphereUV(%v) = (%f, %f), want (%f, %f)", tt.point, u, v, tt.u, tt.v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial)
	box := sphere.BoundingBox()
	if !box.Min().Equals(core.NewVec3(-1, 0, 1)) || !box.Max().Equals(core.NewVec3(3, 4, 5)) {
		t.Errorf("unexpected box %v - %v", box.Min(), box.Max())
	}
}

func TestMovingSphere_FollowsRayTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, testMaterial)

	tests := []struct {
		name      string
		time      float64
		expectHit bool
	}{
		{"At start the sphere is at the origin", 0, false},
		{"Halfway the sphere crosses y=1", 0.5, true},
		{"At the end the sphere is at y=2", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ray along z at y=1
			ray := core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1), tt.time)
			_, isHit := sphere.Hit(ray, forward, newTestSampler())
			if isHit != tt.expectHit {
				t.Errorf("Expected hit=%t at time %f, got %t", tt.expectHit, tt.time, isHit)
			}
		})
	}

	box := sphere.BoundingBox()
	if !box.Min().Equals(core.NewVec3(-0.5, -0.5, -0.5)) || !box.Max().Equals(core.NewVec3(0.5, 2.5, 0.5)) {
		t.Errorf("box should cover the whole path, got %v - %v", box.Min(), box.Max())
	}
}
