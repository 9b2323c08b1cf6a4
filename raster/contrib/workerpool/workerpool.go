// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for data-parallel
// fan-out over pixel rows and sample indices. A Pool is created once and
// reused across operations, so per-call goroutine spawning never shows up
// in the per-pixel hot paths.
//
// Every unit of work is a pure, non-blocking computation: workers read
// shared immutable inputs and write disjoint output ranges, so no locking
// is needed beyond the final join.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(height, func(y0, y1 int) {
//	    processRows(y0, y1)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Pending work completes; calling Close more
// than once is safe. A closed pool still accepts ParallelFor calls and runs
// them sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and blocks
// until all ranges are done. fn receives half-open [start, end) bounds and
// must only write output slots inside its range. n <= 0 is a no-op.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForBatched distributes [0, n) in batches of batchSize using atomic
// work stealing. Better load balancing than ParallelFor when per-item cost
// varies, e.g. rows whose saliency windows hit the image border.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					batch := int(next.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
