package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestWorkerPool_EveryRowOnce(t *testing.T) {
	scene := diffuseSphereScene(6, 9, 1)
	pool := NewWorkerPool(scene, 3)
	if pool.GetNumWorkers() != 3 {
		t.Fatalf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}

	pool.Start()
	for row := 0; row < scene.Height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}

	seen := make(map[int]bool)
	for i := 0; i < scene.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("result queue closed early")
		}
		if seen[result.Row] {
			t.Errorf("row %d rendered twice", result.Row)
		}
		seen[result.Row] = true

		if len(result.Pixels) != 3*scene.Width {
			t.Errorf("row %d has %d bytes, want %d", result.Row, len(result.Pixels), 3*scene.Width)
		}
		if result.Rays < scene.Width {
			t.Errorf("row %d traced only %d rays", result.Row, result.Rays)
		}
	}
	pool.Stop()

	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPool_RowMatchesSerialRender(t *testing.T) {
	scene := diffuseSphereScene(5, 4, 3)
	pool := NewWorkerPool(scene, 2)
	pool.Start()
	pool.SubmitTask(RowTask{Row: 2})
	result, _ := pool.GetResult()
	pool.Stop()

	want, _ := scene.renderRow(2, core.NewSeededSampler(RowSeed(scene.Seed, 2)))
	if !bytes.Equal(result.Pixels, want) {
		t.Errorf("pool row %v differs from serial row %v", result.Pixels, want)
	}
}
