// Package worker provides a worker pool for running independent jobs, such
// as perft subtrees, in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one unit of work together with its submission index.
type Job[T any] struct {
	Index int
	Item  T
}

// Result is the output of one Job.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// ProcessFunc is the function signature for processing a job item.
type ProcessFunc[T, R any] func(item T) (R, error)

// Pool manages a pool of workers for parallel processing.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Job[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// settings are the tunables shared by every Pool instantiation.
type settings struct {
	numWorkers int
	bufferSize int
}

// PoolOption configures a Pool.
type PoolOption func(*settings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *settings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *settings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	s := settings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		numWorkers:  s.numWorkers,
		bufferSize:  s.bufferSize,
		workChan:    make(chan Job[T], s.bufferSize),
		resultChan:  make(chan Result[R], s.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for job := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		value, err := p.processFunc(job.Item)
		p.resultChan <- Result[R]{Index: job.Index, Value: value, Err: err}
	}
}

// Submit submits a job for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(index int, item T) {
	p.workChan <- Job[T]{Index: index, Item: item}
}

// Stop signals workers to stop processing new jobs.
// Jobs already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// Map processes items on numWorkers workers and returns the values in item
// order. After the first error, remaining jobs are skipped and that error
// is returned.
func Map[T, R any](numWorkers int, items []T, fn ProcessFunc[T, R]) ([]R, error) {
	pool := NewPool(fn, WithWorkers(numWorkers), WithBufferSize(len(items)))
	pool.Start()
	for i, item := range items {
		pool.Submit(i, item)
	}
	go pool.Close()

	values := make([]R, len(items))
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			pool.Stop()
			continue
		}
		values[r.Index] = r.Value
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}
