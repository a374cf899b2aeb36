// worker/pool.go
package worker

import (
	"errors"
	"sync"
)

var (
	ErrPoolClosed = errors.New("worker pool closed")
	ErrPoolFull   = errors.New("worker pool queue is full")
)

type Job[T any] func() T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed set of goroutines and hands every
// result to the handler given to NewPool. Submit blocks only when the
// buffer is full.
type Pool[T any] struct {
	jobs   chan jobWrapper[T]
	handle func(Result[T])

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount workers. A nil handle discards results.
func NewPool[T any](workerCount int, bufferSize int, handle func(Result[T])) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	if bufferSize < 0 {
		bufferSize = 0
	}
	if handle == nil {
		handle = func(Result[T]) {}
	}
	p := &Pool[T]{
		jobs:   make(chan jobWrapper[T], bufferSize),
		handle: handle,
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.handle(Result[T]{
			JobID:  job.id,
			Output: job.fn(),
		})
	}
}

func (p *Pool[T]) Submit(id string, fn Job[T]) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
	return nil
}

// TrySubmit queues fn like Submit but returns ErrPoolFull instead of
// waiting when the buffer has no room.
func (p *Pool[T]) TrySubmit(id string, fn Job[T]) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- jobWrapper[T]{id: id, fn: fn}:
		return nil
	default:
		return ErrPoolFull
	}
}

// Close stops accepting jobs and waits for the queued ones to finish.
// Calling it more than once is a no-op.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
