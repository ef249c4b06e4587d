// File: concurrency/rwlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reader/writer lock built generically over any lockable type.

package concurrency

import (
	"sync"

	"github.com/momentics/hioload-jobs/api"
)

// ReadWrite layers reader/writer semantics over any api.Lockable. Readers
// proceed concurrently while no writer is active or waiting; writers get
// priority over newly arriving readers so a steady reader stream cannot
// starve them.
type ReadWrite[L api.Lockable] struct {
	l              L
	cond           *sync.Cond
	readers        int
	writer         bool
	waitingWriters int
}

// NewReadWrite wraps the given lockable. The lockable also backs the
// internal condition variable and must not be used independently while
// the ReadWrite is in service.
func NewReadWrite[L api.Lockable](l L) *ReadWrite[L] {
	return &ReadWrite[L]{l: l, cond: sync.NewCond(l)}
}

// LockRead acquires shared access. Blocks while a writer is active or
// waiting. An acquiring reader passes the wakeup along so one Signal
// admits a whole run of readers.
func (rw *ReadWrite[L]) LockRead() {
	rw.l.Lock()
	for rw.writer || rw.waitingWriters > 0 {
		rw.cond.Wait()
	}
	rw.readers++
	rw.cond.Signal()
	rw.l.Unlock()
}

// UnlockRead releases shared access, waking waiters when the last reader
// leaves.
func (rw *ReadWrite[L]) UnlockRead() {
	rw.l.Lock()
	rw.readers--
	if rw.readers == 0 {
		rw.cond.Broadcast()
	}
	rw.l.Unlock()
}

// LockWrite acquires exclusive access, blocking until all readers have
// drained and no other writer holds the lock.
func (rw *ReadWrite[L]) LockWrite() {
	rw.l.Lock()
	rw.waitingWriters++
	for rw.writer || rw.readers > 0 {
		rw.cond.Wait()
	}
	rw.waitingWriters--
	rw.writer = true
	rw.l.Unlock()
}

// UnlockWrite releases exclusive access. Wakes one waiter when only
// readers can be waiting; broadcasts when other writers wait, since a
// single wakeup could land on a reader that must yield to them.
func (rw *ReadWrite[L]) UnlockWrite() {
	rw.l.Lock()
	rw.writer = false
	if rw.waitingWriters > 0 {
		rw.cond.Broadcast()
	} else {
		rw.cond.Signal()
	}
	rw.l.Unlock()
}
