// Package cluster provides the fork/join runner for the parallel kernel
// entry points.
//
// A parallel operation launches nPE identical invocations of a kernel body,
// one per logical worker core, each distinguishing its share of work solely
// by the coreID it receives. Kernels partition output rows cyclically, so
// worker writes are disjoint and the only synchronization point is the join
// before Run or Fork returns. Results must not be read before that join.
package cluster

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many parallel operations.
// Workers are spawned once at creation, avoiding per-call goroutine spawn
// overhead in kernel-heavy call paths.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one kernel body invocation plus its join barrier.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool creates a pool with the given number of OS-scheduled workers.
// If workers <= 0, GOMAXPROCS is used. The worker count bounds how many
// bodies execute concurrently, not how many logical cores an operation may
// request.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: workers,
		workC:      make(chan workItem, workers*2),
	}

	for range workers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Pending work completes first. Safe to call more
// than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run invokes body(coreID) for every coreID in [0, nPE) and blocks until all
// invocations return. nPE may exceed the pool's worker count; excess bodies
// queue behind free workers. On a closed pool the bodies run sequentially on
// the calling goroutine, which preserves the result (kernel output never
// depends on which core computes which row).
func (p *Pool) Run(nPE int, body func(coreID int)) {
	if nPE <= 0 {
		return
	}
	if nPE == 1 || p.closed.Load() {
		for coreID := 0; coreID < nPE; coreID++ {
			body(coreID)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(nPE)

	for coreID := range nPE {
		p.workC <- workItem{
			fn: func() {
				body(coreID)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// Default returns the shared process-wide pool, created on first use with
// GOMAXPROCS workers. The parallel front-ends run on it.
func Default() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(0)
	})
	return defaultPool
}
