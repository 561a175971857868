package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func vecClose(a, b core.Vec3, eps float64) bool {
	return a.Subtract(b).Length() < eps
}

func TestCamera_CenterRay(t *testing.T) {
	tests := []struct {
		name   string
		config CameraConfig
		want   core.Vec3
	}{
		{
			name: "LookAt",
			config: CameraConfig{
				Center: core.NewVec3(0, 0, 0),
				LookAt: core.NewVec3(0, 0, -1),
				Up:     core.NewVec3(0, 1, 0),
				VFov:   90, AspectRatio: 1.0,
			},
			want: core.NewVec3(0, 0, -1),
		},
		{
			name: "LookDir",
			config: CameraConfig{
				Center:  core.NewVec3(1, 2, 3),
				LookDir: core.NewVec3(1, 0, 0),
				VFov:    40, AspectRatio: 2.0,
			},
			want: core.NewVec3(1, 0, 0),
		},
		{
			name: "Off-axis LookAt",
			config: CameraConfig{
				Center: core.NewVec3(13, 2, 3),
				LookAt: core.NewVec3(0, 0, 0),
				VFov:   20,
			},
			want: core.NewVec3(-13, -2, -3).Unit(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(tt.config)
			ray := camera.GetRay(0.5, 0.5, newTestSampler())

			if !vecClose(ray.Origin, tt.config.Center, 1e-12) {
				t.Errorf("Expected pinhole origin %v, got %v", tt.config.Center, ray.Origin)
			}
			if !vecClose(ray.Direction, tt.want, 1e-9) {
				t.Errorf("Expected center direction %v, got %v", tt.want, ray.Direction)
			}
			if !vecClose(camera.Forward(), tt.want, 1e-9) {
				t.Errorf("Expected forward %v, got %v", tt.want, camera.Forward())
			}
		})
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	// 90 degree square view: corners are at 45 degrees
	camera := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90, AspectRatio: 1.0,
	})

	tests := []struct {
		name string
		s, t float64
		want core.Vec3
	}{
		{"s=0 t=0 is upper left", 0, 0, core.NewVec3(-1, 1, -1).Unit()},
		{"s=1 t=0 is upper right", 1, 0, core.NewVec3(1, 1, -1).Unit()},
		{"s=0 t=1 is lower left", 0, 1, core.NewVec3(-1, -1, -1).Unit()},
		{"s=1 t=1 is lower right", 1, 1, core.NewVec3(1, -1, -1).Unit()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, newTestSampler())
			if !vecClose(ray.Direction, tt.want, 1e-9) {
				t.Errorf("GetRay(%v, %v) direction = %v, want %v", tt.s, tt.t, ray.Direction, tt.want)
			}
		})
	}
}

func TestCamera_DefocusAndTime(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -10),
		VFov:          30,
		AspectRatio:   1.5,
		Aperture:      0.4,
		FocusDistance: 10,
	}
	camera := NewCamera(config)
	sampler := newTestSampler()

	focusPoint := core.NewVec3(0, 0, -10)
	moved := false
	for i := 0; i < 500; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		// Origins stay on the lens disk in the z=0 plane
		if ray.Origin.Length() > 0.2+1e-12 || math.Abs(ray.Origin.Z) > 1e-12 {
			t.Fatalf("origin %v outside lens of radius 0.2", ray.Origin)
		}
		if ray.Origin.Length() > 1e-6 {
			moved = true
		}

		// Every lens ray still passes through the in-focus point
		tFocus := (focusPoint.Z - ray.Origin.Z) / ray.Direction.Z
		if !vecClose(ray.At(tFocus), focusPoint, 1e-9) {
			t.Fatalf("ray misses focus point: %v", ray.At(tFocus))
		}

		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("ray time %v outside [0,1)", ray.Time)
		}
	}
	if !moved {
		t.Error("Expected aperture to jitter ray origins")
	}
}

func TestRowSeed(t *testing.T) {
	seen := make(map[int64]int)
	for row := 0; row < 1000; row++ {
		seed := RowSeed(42, row)
		if prev, ok := seen[seed]; ok {
			t.Fatalf("rows %d and %d share seed %d", prev, row, seed)
		}
		seen[seed] = row

		if RowSeed(42, row) != seed {
			t.Fatalf("RowSeed is not deterministic for row %d", row)
		}
	}

	if RowSeed(1, 0) == RowSeed(2, 0) {
		t.Error("Expected different scene seeds to give different row seeds")
	}
}
