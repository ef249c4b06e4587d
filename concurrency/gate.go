// File: concurrency/gate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-key mutual exclusion: many logical locks multiplexed over one mutex.

package concurrency

import "sync"

// Gate serializes access per key. A key is either free or held by exactly
// one caller; distinct keys never contend with each other beyond the brief
// internal critical section.
type Gate[K comparable] struct {
	mu   sync.Mutex
	cond *sync.Cond
	held map[K]struct{}
}

// NewGate creates an empty gate.
func NewGate[K comparable]() *Gate[K] {
	g := &Gate[K]{held: make(map[K]struct{})}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Lock blocks until the key is free, then claims it.
func (g *Gate[K]) Lock(key K) {
	g.mu.Lock()
	for {
		if _, busy := g.held[key]; !busy {
			break
		}
		g.cond.Wait()
	}
	g.held[key] = struct{}{}
	g.mu.Unlock()
}

// TryLock claims the key without blocking, reporting success.
func (g *Gate[K]) TryLock(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.held[key]; busy {
		return false
	}
	g.held[key] = struct{}{}
	return true
}

// Unlock frees the key and wakes all gate waiters. Waiters on other keys
// re-check and park again; overwaking is accepted since only the freed
// key's availability actually changed.
func (g *Gate[K]) Unlock(key K) {
	g.mu.Lock()
	delete(g.held, key)
	g.cond.Broadcast()
	g.mu.Unlock()
}

// Held reports whether the key is currently claimed. Advisory only.
func (g *Gate[K]) Held(key K) bool {
	g.mu.Lock()
	_, busy := g.held[key]
	g.mu.Unlock()
	return busy
}
