// File: future/container.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared state behind a Promise/Future pair.

package future

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-jobs/concurrency"
)

// getPollInterval bounds how long a blocking Get sleeps before re-checking
// abandonment and cancellation.
const getPollInterval = 10 * time.Millisecond

// container is the heap block shared by every handle of one promise/future
// pair. Lifetime is the longest surviving handle; refs counts live handles.
type container[T any] struct {
	refs  atomic.Int32
	event *concurrency.Event

	mu        sync.Mutex // guards value, resolved, callbacks
	value     T
	resolved  bool
	callbacks []func(T)
}

func newContainer[T any]() *container[T] {
	c := &container[T]{event: concurrency.NewEvent()}
	c.refs.Store(1)
	return c
}

// abandoned reports whether no resolution occurred and the caller is the
// sole remaining handle, meaning the result can never be produced.
func (c *container[T]) abandoned() bool {
	c.mu.Lock()
	resolved := c.resolved
	c.mu.Unlock()
	return !resolved && c.refs.Load() == 1
}

// safeInvoke runs one registered callback, containing its panic so one
// failing callback cannot prevent the others from running.
func safeInvoke[T any](cb func(T), v T) {
	defer func() { _ = recover() }()
	cb(v)
}
