package renderer

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// TileTask represents a tile rendering task
type TileTask struct {
	Tile   Tile
	TaskID int
	Random *rand.Rand // Per-tile random source
}

// TileResult represents the result of rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Pixels   int
	Samples  int
	Duration time.Duration
	Skipped  bool // Set when the render was canceled before this tile ran
}

// TileFunc renders one tile and returns the number of pixels and samples it produced
type TileFunc func(task TileTask) (pixels, samples int)

// WorkerPool manages a pool of workers for parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	render      TileFunc
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a new worker pool with the given render function
func NewWorkerPool(numWorkers, queueSize int, render TileFunc) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		render:      render,
		numWorkers:  numWorkers,
	}
}

// Start launches the workers. Once ctx is done, queued tasks are drained and
// reported as skipped instead of rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx, i)
	}
}

func (wp *WorkerPool) run(ctx context.Context, workerID int) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if ctx.Err() != nil {
			wp.resultQueue <- TileResult{TaskID: task.TaskID, WorkerID: workerID, Skipped: true}
			continue
		}

		start := time.Now()
		pixels, samples := wp.render(task)
		wp.resultQueue <- TileResult{
			TaskID:   task.TaskID,
			WorkerID: workerID,
			Pixels:   pixels,
			Samples:  samples,
			Duration: time.Since(start),
		}
	}
}

// SubmitTask queues a task. The queue must have room for every task submitted
// before results are read.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Close signals that no more tasks will be submitted
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
}

// Wait blocks until all workers exit, then closes the result queue
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of finished tile results
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}
