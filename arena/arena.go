// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Named worker pool with a FIFO job queue and dynamic resizing.

package arena

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-jobs/api"
	"github.com/momentics/hioload-jobs/concurrency"
	"github.com/momentics/hioload-jobs/internal/affinity"
	"github.com/momentics/hioload-jobs/pool"
)

// jobPool recycles queue nodes across all arenas.
var jobPool = pool.NewSyncPool(func() *queuedJob { return new(queuedJob) })

// DefaultWorkers is the worker count for arenas created without an
// explicit size.
const DefaultWorkers = 2

// Options configures a directly constructed arena.
type Options struct {
	Workers    int  // worker-thread count; <= 0 selects DefaultWorkers
	PinWorkers bool // pin worker threads to CPUs where the platform allows
}

// queuedJob is one unit in the arena queue. Owned exclusively by the queue
// until a worker dequeues it.
type queuedJob struct {
	fn  func()
	sem *concurrency.Semaphore // group accounting; released even on panic
}

// Arena is a named pool of worker goroutines draining one FIFO queue.
// Jobs are dequeued in submission order; group membership affects only
// completion accounting, never scheduling order.
type Arena struct {
	name string
	pin  bool

	mu      sync.Mutex
	cond    *sync.Cond
	jobs    *queue.Queue // of *queuedJob; push tail, pop head
	target  int          // desired worker count
	running int          // live worker count
	nextID  int
	closed  bool
	wg      sync.WaitGroup

	dispatched atomic.Uint64
	completed  atomic.Uint64
}

var _ api.Dispatcher = (*Arena)(nil)

// New creates an arena and starts its workers.
func New(name string, opts Options) *Arena {
	a := &Arena{
		name: name,
		pin:  opts.PinWorkers,
		jobs: queue.New(),
	}
	a.cond = sync.NewCond(&a.mu)
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	a.Resize(workers)
	return a
}

// Name returns the arena's registered name.
func (a *Arena) Name() string { return a.name }

// Dispatch appends a job to the tail of the queue and wakes one worker.
func (a *Arena) Dispatch(fn func()) error {
	return a.DispatchGrouped(fn, nil)
}

// DispatchGrouped is Dispatch with group accounting. The group semaphore is
// acquired before the job becomes visible in the queue, so a concurrent
// Group.Join cannot observe a false empty state between dispatch and
// execution.
func (a *Arena) DispatchGrouped(fn func(), g *Group) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return api.ErrArenaClosed
	}
	j := jobPool.Get()
	j.fn = fn
	if g != nil {
		g.sem.Acquire()
		j.sem = g.sem
	}
	a.jobs.Add(j)
	a.dispatched.Add(1)
	a.cond.Signal()
	a.mu.Unlock()
	return nil
}

// Resize adjusts the worker count at runtime. New workers start
// immediately; excess workers finish their in-flight job, observe the
// lowered target between jobs and exit. Queued work is never dropped.
// Counts below 1 are clamped to 1.
func (a *Arena) Resize(n int) {
	if n < 1 {
		n = 1
	}
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.target = n
	for a.running < a.target {
		a.running++
		id := a.nextID
		a.nextID++
		a.wg.Add(1)
		go a.worker(id)
	}
	a.cond.Broadcast()
	a.mu.Unlock()
}

// NumWorkers returns the current worker-count target.
func (a *Arena) NumWorkers() int {
	a.mu.Lock()
	n := a.target
	a.mu.Unlock()
	return n
}

// QueueSize returns the instantaneous queue depth. Advisory only.
func (a *Arena) QueueSize() int {
	a.mu.Lock()
	n := a.jobs.Length()
	a.mu.Unlock()
	return n
}

// Stats returns basic arena metrics.
func (a *Arena) Stats() map[string]int64 {
	a.mu.Lock()
	depth := a.jobs.Length()
	workers := a.target
	a.mu.Unlock()
	return map[string]int64{
		"dispatched":  int64(a.dispatched.Load()),
		"completed":   int64(a.completed.Load()),
		"queue_depth": int64(depth),
		"workers":     int64(workers),
	}
}

// Close shuts the arena down and waits for workers to exit. Jobs still
// queued are not executed. Registry arenas live for the process lifetime
// and are never closed; Close exists for directly constructed arenas.
func (a *Arena) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		a.wg.Wait()
		return
	}
	a.closed = true
	a.cond.Broadcast()
	a.mu.Unlock()
	a.wg.Wait()
}

// worker is the per-thread loop: park while the queue is empty, pop the
// head, run it. Exits when the arena closes or the worker count target
// drops below the live count.
func (a *Arena) worker(id int) {
	defer a.wg.Done()
	if a.pin {
		_ = affinity.PinWorker(id)
	}
	for {
		a.mu.Lock()
		for !a.closed && a.running <= a.target && a.jobs.Length() == 0 {
			a.cond.Wait()
		}
		if a.closed || a.running > a.target {
			a.running--
			a.mu.Unlock()
			return
		}
		j := a.jobs.Remove().(*queuedJob)
		a.mu.Unlock()
		a.invoke(j)
		a.completed.Add(1)
		j.fn, j.sem = nil, nil
		jobPool.Put(j)
	}
}

// invoke runs one job. The group semaphore release is deferred first so it
// happens even when the job panics, otherwise a Group.Join would deadlock;
// the panic is then contained to keep the worker alive.
func (a *Arena) invoke(j *queuedJob) {
	defer func() { _ = recover() }()
	if j.sem != nil {
		defer j.sem.Release()
	}
	j.fn()
}
