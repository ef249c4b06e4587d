// File: api/dispatch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dispatcher contract for named job arenas.

package api

// Dispatcher abstracts a FIFO job arena: a named pool of worker threads
// draining one ordered queue.
type Dispatcher interface {
	// Dispatch appends a job to the tail of the arena queue.
	Dispatch(job func()) error

	// Resize adjusts the worker count at runtime. Growth takes effect
	// immediately; shrinking workers finish their in-flight job first.
	// Queued work is never dropped.
	Resize(n int)

	// NumWorkers returns the current worker-thread target.
	NumWorkers() int

	// QueueSize returns the instantaneous queue depth. Advisory only:
	// there is no ordering guarantee versus concurrent dispatch or pop.
	QueueSize() int
}
