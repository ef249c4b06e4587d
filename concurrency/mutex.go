// File: concurrency/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Named, instrumentable exclusive locks satisfying the api.Lockable contract.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-jobs/api"
)

// Mutex is a named exclusive lock. The name identifies the lock in debug
// probes and stats; locking behavior is that of sync.Mutex.
type Mutex struct {
	name         string
	mu           sync.Mutex
	acquisitions atomic.Uint64
}

var _ api.Lockable = (*Mutex)(nil)

// NewMutex creates a named mutex.
func NewMutex(name string) *Mutex {
	return &Mutex{name: name}
}

// Name returns the lock's registered name.
func (m *Mutex) Name() string { return m.name }

// Lock acquires the mutex, blocking until it is available.
func (m *Mutex) Lock() {
	m.mu.Lock()
	m.acquisitions.Add(1)
}

// Unlock releases the mutex. Unlocking an unheld mutex is a fatal runtime
// error, not a recoverable one.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}

// TryLock acquires the mutex without blocking and reports success.
func (m *Mutex) TryLock() bool {
	if m.mu.TryLock() {
		m.acquisitions.Add(1)
		return true
	}
	return false
}

// Acquisitions returns the total number of successful lock acquisitions.
func (m *Mutex) Acquisitions() uint64 { return m.acquisitions.Load() }

// RecursiveMutex is a named exclusive lock that may be re-acquired by the
// goroutine already holding it. Each Lock must be balanced by an Unlock;
// the lock is released when the outermost Unlock runs.
type RecursiveMutex struct {
	name  string
	mu    sync.Mutex
	owner atomic.Uint64
	depth int // touched only by the owning goroutine
}

var _ api.Lockable = (*RecursiveMutex)(nil)

// NewRecursiveMutex creates a named recursive mutex.
func NewRecursiveMutex(name string) *RecursiveMutex {
	return &RecursiveMutex{name: name}
}

// Name returns the lock's registered name.
func (m *RecursiveMutex) Name() string { return m.name }

// Lock acquires the mutex, re-entering if the caller already holds it.
func (m *RecursiveMutex) Lock() {
	gid := goroutineID()
	if m.owner.Load() == gid {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.depth = 1
}

// Unlock releases one level of recursion, unlocking the mutex when the
// outermost hold is released.
func (m *RecursiveMutex) Unlock() {
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

// TryLock acquires the mutex without blocking, re-entering if the caller
// already holds it.
func (m *RecursiveMutex) TryLock() bool {
	gid := goroutineID()
	if m.owner.Load() == gid {
		m.depth++
		return true
	}
	if m.mu.TryLock() {
		m.owner.Store(gid)
		m.depth = 1
		return true
	}
	return false
}

// goroutineID extracts the numeric goroutine id from the stack header
// ("goroutine N [...]"). The runtime offers no public accessor.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for _, c := range buf[len("goroutine "):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
