package renderer

import (
	"math/rand"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RowTask represents one image row to render
type RowTask struct {
	Row int
}

// RowResult contains the RGB bytes of a rendered row
type RowResult struct {
	Row    int
	Pixels []byte // 3 bytes per pixel, left to right
	Rays   int    // Rays traced for this row
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	scene       *Scene
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool for scene. Queues are sized to hold every
// row so submitting never blocks.
func NewWorkerPool(scene *Scene, numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, scene.Height),
		resultQueue: make(chan RowResult, scene.Height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scene:       scene,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued rows to finish and shuts the workers down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row owns its generator, seeded only by scene seed and row index
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(RowSeed(w.scene.Seed, task.Row))))
		pixels, rays := w.scene.renderRow(task.Row, sampler)

		w.resultQueue <- RowResult{
			Row:    task.Row,
			Pixels: pixels,
			Rays:   rays,
		}
	}
}
