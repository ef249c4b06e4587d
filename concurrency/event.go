// File: concurrency/event.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Level-triggered binary event with broadcast wakeups on every state
// transition. The primitive beneath future resolution and arena idling.

package concurrency

import (
	"sync"
	"time"
)

// Event is a binary signal. Set and Reset are idempotent; every transition
// in either direction wakes all parked waiters, which then re-observe the
// current level. There is no queueing of consumed signals.
type Event struct {
	mu       sync.Mutex
	signaled bool
	wake     chan struct{} // closed and replaced on every transition
}

// NewEvent creates an unsignaled event.
func NewEvent() *Event {
	return &Event{wake: make(chan struct{})}
}

// Set signals the event, waking all waiters. Setting an already-set event
// is a no-op.
func (e *Event) Set() {
	e.mu.Lock()
	if !e.signaled {
		e.signaled = true
		close(e.wake)
		e.wake = make(chan struct{})
	}
	e.mu.Unlock()
}

// Reset clears the event, also waking all waiters so they re-observe the
// level. Resetting an already-clear event is a no-op.
func (e *Event) Reset() {
	e.mu.Lock()
	if e.signaled {
		e.signaled = false
		close(e.wake)
		e.wake = make(chan struct{})
	}
	e.mu.Unlock()
}

// IsSet reports the current level without blocking.
func (e *Event) IsSet() bool {
	e.mu.Lock()
	s := e.signaled
	e.mu.Unlock()
	return s
}

// Wait blocks until the event is set and returns true. There is no
// cancellation; an event that is never set blocks forever.
func (e *Event) Wait() bool {
	for {
		e.mu.Lock()
		if e.signaled {
			e.mu.Unlock()
			return true
		}
		ch := e.wake
		e.mu.Unlock()
		<-ch
	}
}

// WaitTimeout blocks until the event is set or the timeout elapses,
// reporting whether the event was observed set.
func (e *Event) WaitTimeout(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for {
		e.mu.Lock()
		if e.signaled {
			e.mu.Unlock()
			return true
		}
		ch := e.wake
		e.mu.Unlock()

		remain := time.Until(deadline)
		if remain <= 0 {
			return false
		}
		t := time.NewTimer(remain)
		select {
		case <-ch:
			t.Stop()
		case <-t.C:
			return false
		}
	}
}

// WaitAndReset blocks until the event is set, then clears it in the same
// critical section, so a concurrent Set between observation and reset
// cannot be lost. Returns true.
func (e *Event) WaitAndReset() bool {
	for {
		e.mu.Lock()
		if e.signaled {
			e.signaled = false
			close(e.wake)
			e.wake = make(chan struct{})
			e.mu.Unlock()
			return true
		}
		ch := e.wake
		e.mu.Unlock()
		<-ch
	}
}
