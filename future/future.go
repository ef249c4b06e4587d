// File: future/future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Consumer half of the asynchronous result channel.

package future

import (
	"sync/atomic"

	"github.com/momentics/hioload-jobs/api"
)

// Future is the consumer handle. Get blocks with a bounded re-poll so it
// can observe abandonment and cancellation without OS-level interruption.
type Future[T any] struct {
	c        *container[T]
	released atomic.Bool
}

// IsReady reports whether the result is available without blocking.
func (f *Future[T]) IsReady() bool {
	return f.c.event.IsSet()
}

// TryGet returns the value if already resolved, without blocking.
func (f *Future[T]) TryGet() (T, bool) {
	c := f.c
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.resolved {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Get blocks until the result is available and returns it. If the promise
// is released without resolving, Get returns the zero value instead. A
// future that is neither resolved nor abandoned blocks forever; that is a
// documented risk of the pairing, not a guarded error.
func (f *Future[T]) Get() T {
	return f.GetCancelable(nil)
}

// GetCancelable is Get with an external cancellation token, re-checked on
// every poll interval. Returns the zero value on cancellation.
func (f *Future[T]) GetCancelable(cancel api.Cancelable) T {
	c := f.c
	for {
		if c.event.WaitTimeout(getPollInterval) {
			c.mu.Lock()
			v := c.value
			c.mu.Unlock()
			return v
		}
		if f.IsAbandoned() {
			var zero T
			return zero
		}
		if cancel != nil && cancel.IsCanceled() {
			var zero T
			return zero
		}
	}
}

// IsAbandoned reports whether the result was never produced and the
// originating promise no longer exists. Once resolved, a future is never
// abandoned, regardless of release order afterward.
func (f *Future[T]) IsAbandoned() bool {
	return f.c.abandoned()
}

// Then registers a callback to run with the value when the promise
// resolves, on the resolving thread. If already resolved the callback runs
// immediately and synchronously on the calling thread. Not safe to call
// from inside another callback on the same future: the callback guard is
// not reentrant.
func (f *Future[T]) Then(cb func(T)) {
	c := f.c
	c.mu.Lock()
	if c.resolved {
		v := c.value
		c.mu.Unlock()
		cb(v)
		return
	}
	c.callbacks = append(c.callbacks, cb)
	c.mu.Unlock()
}

// Clone returns a new handle sharing this future's state. Pending results
// are shared by reference, never deep-copied.
func (f *Future[T]) Clone() *Future[T] {
	f.c.refs.Add(1)
	return &Future[T]{c: f.c}
}

// Abandon detaches this handle from its current shared state and rebinds
// it to a fresh unresolved pair. Other handles still reference the
// original state and are unaffected. The rebound future has no producer,
// so it reads as abandoned until replaced again.
func (f *Future[T]) Abandon() {
	old := f.c
	fresh := newContainer[T]()
	f.c = fresh
	if !f.released.Load() {
		old.refs.Add(-1)
	}
	f.released.Store(false)
}

// Release drops this handle. Idempotent.
func (f *Future[T]) Release() {
	if !f.released.Swap(true) {
		f.c.refs.Add(-1)
	}
}
