// Package work runs a handler over the elements of a batch from a bounded
// set of goroutines.
package work

import (
	"sync"
	"sync/atomic"

	"github.com/gammazero/deque"

	"github.com/HovsepH/PalindromeNumberFilteringParallel/internal/log"
	"github.com/HovsepH/PalindromeNumberFilteringParallel/internal/work/catch"
)

// NoValue is the canonical empty value type for a pool.
type NoValue = struct{}

// Handler is the type for a pool's handler function.
type Handler[E, V any] func(E) (V, error)

// NoValueHandler wraps handlers for pools that produce NoValue, so that the
// handler can be written without a return value type.
func NoValueHandler[E any](handle func(E) error) Handler[E, NoValue] {
	return func(elem E) (_ NoValue, err error) {
		err = handle(elem)
		return
	}
}

// Pool executes a handler across the elements of a batch in parallel.
//
// Each element of a batch is handled independently, in an unspecified
// order, by one of a bounded set of goroutines spawned for the duration of
// a single Run call. A pool holds no state between calls other than its
// handler, worker bound, and lifetime counters.
//
// The first fault in a batch halts it: elements not yet picked up by a
// worker are never handled, and the fault is propagated to the caller of
// Run once in-flight handlers finish. Faults include handler errors as well
// as panics and [runtime.Goexit], which Run re-raises in its own goroutine
// rather than letting them tear down an anonymous worker.
type Pool[E, V any] struct {
	handle  Handler[E, V]
	workers int

	done      atomic.Uint64
	submitted atomic.Uint64
}

// NewPool creates a [Pool] that uses handle to process batch elements.
//
// If workers > 0, at most that many handlers run concurrently. If
// workers <= 0, every element of a batch is handled in its own goroutine.
func NewPool[E, V any](workers int, handle Handler[E, V]) *Pool[E, V] {
	return &Pool[E, V]{handle: handle, workers: workers}
}

// Run handles every element of elems and returns the handler values in
// element order.
//
// If any handler returns a non-nil error, Run returns a nil slice and the
// first such error with respect to element order. If any handler panics or
// calls [runtime.Goexit], Run re-raises the first such exit in the calling
// goroutine. In all fault cases the batch is halted and no partial values
// are returned.
func (p *Pool[E, V]) Run(elems []E) ([]V, error) {
	p.submitted.Add(uint64(len(elems)))
	if len(elems) == 0 {
		return []V{}, nil
	}

	workers := p.workers
	if workers <= 0 || workers > len(elems) {
		workers = len(elems)
	}

	var (
		pending   deque.Deque[int]
		pendingMu sync.Mutex
		halted    atomic.Bool
		results   = make([]catch.Result[V], len(elems))
	)
	for i := range elems {
		pending.PushBack(i)
	}

	// next hands out the index of an unhandled element, or reports that the
	// worker should exit because the batch is drained or halted.
	next := func() (int, bool) {
		pendingMu.Lock()
		defer pendingMu.Unlock()
		if halted.Load() || pending.Len() == 0 {
			return 0, false
		}
		return pending.PopFront(), true
	}

	halt := func() {
		if !halted.Swap(true) {
			log.Verbosef("work: halting batch of %d elements after fault", len(elems))
		}
	}

	handle := func(i int) {
		// Pre-assign a Goexit result: if the handler unwinds the worker
		// goroutine, the overwrite below never executes and waiters still
		// see a coherent result.
		res := catch.Goexit[V]()
		defer func() {
			results[i] = res
			p.done.Add(1)
			if !res.Returned() {
				halt()
			} else if _, err := res.Unwrap(); err != nil {
				halt()
			}
		}()
		res = catch.Run(func() (V, error) { return p.handle(elems[i]) })
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i, ok := next()
				if !ok {
					return
				}
				handle(i)
			}
		}()
	}
	wg.Wait()

	// Coalesce in element order, so the propagated fault is deterministic
	// for a deterministic handler: an element is only skipped when a fault
	// at an earlier or concurrent position halted the batch.
	values := make([]V, len(results))
	var firstErr error
	for i, res := range results {
		v, err := res.Unwrap() // Re-raises a captured panic or Goexit.
		if err != nil && firstErr == nil {
			firstErr = err
		}
		values[i] = v
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}

// Stats returns the number of elements handled to completion and the number
// submitted across the lifetime of the pool.
func (p *Pool[E, V]) Stats() (done, submitted uint64) {
	return p.done.Load(), p.submitted.Load()
}
