// File: concurrency/semaphore.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting semaphore with a drain-to-zero join, the completion-accounting
// primitive beneath job groups.

package concurrency

import (
	"sync"
	"time"

	"github.com/momentics/hioload-jobs/api"
)

// joinPollInterval bounds how long a cancelable join sleeps between
// re-checks of its cancellation token.
const joinPollInterval = 10 * time.Millisecond

// Semaphore counts in-flight work. Acquire increments, Release decrements,
// and Join blocks until the count drains to zero. The count never goes
// below zero.
//
// A semaphore that never leaves zero through Release blocks its joiners
// forever; that is a documented misuse hazard, not a guarded error.
type Semaphore struct {
	mu    sync.Mutex
	count int
	wake  chan struct{} // closed and replaced when the count reaches zero
}

// NewSemaphore creates a semaphore with a zero count.
func NewSemaphore() *Semaphore {
	return &Semaphore{wake: make(chan struct{})}
}

// Acquire increments the count.
func (s *Semaphore) Acquire() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
}

// Release decrements the count, waking all joiners when it reaches zero.
// Releasing at zero is a no-op.
func (s *Semaphore) Release() {
	s.mu.Lock()
	if s.count > 0 {
		s.count--
		if s.count == 0 {
			close(s.wake)
			s.wake = make(chan struct{})
		}
	}
	s.mu.Unlock()
}

// Reset forces the count to zero and wakes all joiners, even joiners that
// were parked while the count never moved through a normal Release.
func (s *Semaphore) Reset() {
	s.mu.Lock()
	s.count = 0
	close(s.wake)
	s.wake = make(chan struct{})
	s.mu.Unlock()
}

// Count returns the instantaneous count. Advisory only.
func (s *Semaphore) Count() int {
	s.mu.Lock()
	c := s.count
	s.mu.Unlock()
	return c
}

// Join blocks until the count is zero.
func (s *Semaphore) Join() {
	for {
		s.mu.Lock()
		if s.count == 0 {
			s.mu.Unlock()
			return
		}
		ch := s.wake
		s.mu.Unlock()
		<-ch
	}
}

// JoinCancelable blocks until the count is zero or the token reports
// cancellation, re-checking the token on a bounded interval. Reports
// whether the count actually drained.
func (s *Semaphore) JoinCancelable(c api.Cancelable) bool {
	for {
		s.mu.Lock()
		if s.count == 0 {
			s.mu.Unlock()
			return true
		}
		ch := s.wake
		s.mu.Unlock()

		if c != nil && c.IsCanceled() {
			return false
		}
		t := time.NewTimer(joinPollInterval)
		select {
		case <-ch:
			t.Stop()
		case <-t.C:
		}
	}
}
