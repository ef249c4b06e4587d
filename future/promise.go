// File: future/promise.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer half of the asynchronous result channel.

package future

import (
	"sync/atomic"

	"github.com/momentics/hioload-jobs/api"
)

// Promise is the producer handle. Resolve it at most once, then Release it.
// Releasing without resolving marks the paired Futures abandoned.
type Promise[T any] struct {
	c        *container[T]
	released atomic.Bool
}

var _ api.Cancelable = (*Promise[int])(nil)

// NewPromise creates an unresolved promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{c: newContainer[T]()}
}

// Future returns a new consumer handle sharing this promise's state. Each
// returned Future must be released independently.
func (p *Promise[T]) Future() *Future[T] {
	p.c.refs.Add(1)
	return &Future[T]{c: p.c}
}

// Resolve stores the value, invokes the registered callbacks synchronously
// in registration order on the calling thread, then signals the paired
// event. A second Resolve overwrites silently; callers must not rely on it.
func (p *Promise[T]) Resolve(value T) {
	c := p.c
	c.mu.Lock()
	c.value = value
	c.resolved = true
	cbs := c.callbacks
	c.callbacks = nil
	for _, cb := range cbs {
		safeInvoke(cb, value)
	}
	c.mu.Unlock()
	c.event.Set()
}

// Signal resolves the promise without storing a value, leaving the zero
// value in place. Used when T is a marker type and only completion matters.
func (p *Promise[T]) Signal() {
	c := p.c
	c.mu.Lock()
	c.resolved = true
	cbs := c.callbacks
	c.callbacks = nil
	v := c.value
	for _, cb := range cbs {
		safeInvoke(cb, v)
	}
	c.mu.Unlock()
	c.event.Set()
}

// IsAbandoned reports whether every paired Future has been released without
// the promise resolving: the result, if produced, would go unobserved.
// Dispatched jobs poll this through api.Cancelable to skip unwanted work.
func (p *Promise[T]) IsAbandoned() bool {
	return p.c.abandoned()
}

// IsCanceled implements api.Cancelable as an alias for IsAbandoned.
func (p *Promise[T]) IsCanceled() bool {
	return p.IsAbandoned()
}

// Release drops this handle. Idempotent. After the last producer handle is
// gone an unresolved pair can never resolve, and consumers observe
// abandonment.
func (p *Promise[T]) Release() {
	if !p.released.Swap(true) {
		p.c.refs.Add(-1)
	}
}
