// File: arena/group.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Named aggregate of in-flight jobs joinable as a unit.

package arena

import (
	"github.com/momentics/hioload-jobs/api"
	"github.com/momentics/hioload-jobs/concurrency"
)

// Group tracks a set of jobs through one shared semaphore: each grouped
// dispatch acquires it, each completion releases it, and Join waits for
// the drain to zero. A group is reusable for successive waves of dispatch
// after a Join returns. The group must outlive every job dispatched under
// it.
type Group struct {
	name string
	sem  *concurrency.Semaphore
}

// NewGroup creates an empty named group.
func NewGroup(name string) *Group {
	return &Group{name: name, sem: concurrency.NewSemaphore()}
}

// Name returns the group's registered name.
func (g *Group) Name() string { return g.name }

// Pending returns the number of jobs dispatched under the group that have
// not completed. Advisory only.
func (g *Group) Pending() int { return g.sem.Count() }

// Join blocks until every job dispatched under the group has completed.
func (g *Group) Join() { g.sem.Join() }

// JoinCancelable is Join with an external cancellation token, reporting
// whether the group actually drained.
func (g *Group) JoinCancelable(c api.Cancelable) bool {
	return g.sem.JoinCancelable(c)
}

// Reset forcibly zeroes the group's accounting and unblocks pending
// joiners. Jobs still in flight will over-release the semaphore; those
// releases are absorbed at zero.
func (g *Group) Reset() { g.sem.Reset() }
