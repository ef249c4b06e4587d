// File: jobs/dispatch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed dispatch composing Promise + Arena + Group.

package jobs

import (
	"github.com/momentics/hioload-jobs/api"
	"github.com/momentics/hioload-jobs/arena"
	"github.com/momentics/hioload-jobs/future"
)

// Func is a unit of user work producing a typed result. The token is the
// job's own promise; a long-running function should poll IsCanceled and
// exit early once its result is unwanted.
type Func[T any] func(token api.Cancelable) T

// Dispatch runs fn on the default arena and returns the paired future.
func Dispatch[T any](fn Func[T]) *future.Future[T] {
	return DispatchGroupedIn(arena.Default(), nil, fn)
}

// DispatchTo runs fn on the named arena, creating the arena on first
// reference.
func DispatchTo[T any](arenaName string, fn Func[T]) *future.Future[T] {
	return DispatchGroupedIn(arena.Get(arenaName), nil, fn)
}

// DispatchIn runs fn on the given arena.
func DispatchIn[T any](a *arena.Arena, fn Func[T]) *future.Future[T] {
	return DispatchGroupedIn(a, nil, fn)
}

// DispatchGrouped runs fn on the named arena under the group.
func DispatchGrouped[T any](arenaName string, g *arena.Group, fn Func[T]) *future.Future[T] {
	return DispatchGroupedIn(arena.Get(arenaName), g, fn)
}

// DispatchGroupedIn is the general form: wrap fn in a promise, enqueue the
// closure on the arena under an optional group, return the paired future.
//
// The closure checks abandonment before invoking fn, skipping work whose
// result nobody can observe anymore. The promise handle is released when
// the closure finishes either way; if fn panics, the release still runs
// and the future reads as abandoned rather than blocking its consumer.
func DispatchGroupedIn[T any](a *arena.Arena, g *arena.Group, fn Func[T]) *future.Future[T] {
	p := future.NewPromise[T]()
	fut := p.Future()
	closure := func() {
		defer p.Release()
		if p.IsAbandoned() {
			return
		}
		p.Resolve(fn(p))
	}
	if err := a.DispatchGrouped(closure, g); err != nil {
		// Arena closed: the closure will never run, so drop the producer
		// handle now and let the future observe abandonment.
		p.Release()
	}
	return fut
}

// DispatchAndForget runs fn on the default arena with no promise pairing:
// purely fire-and-queue, no result retrieval, no abandonment check. The
// closure always runs.
func DispatchAndForget(fn func()) error {
	return arena.Default().Dispatch(fn)
}

// DispatchAndForgetTo is DispatchAndForget on the named arena.
func DispatchAndForgetTo(arenaName string, fn func()) error {
	return arena.Get(arenaName).Dispatch(fn)
}

// DispatchAndForgetGrouped is DispatchAndForget on the named arena under
// the group.
func DispatchAndForgetGrouped(arenaName string, g *arena.Group, fn func()) error {
	return arena.Get(arenaName).DispatchGrouped(fn, g)
}
