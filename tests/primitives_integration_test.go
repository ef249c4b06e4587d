// Copyright 2025 momentics@gmail.com
// License: Apache 2.0

// primitives_integration_test.go — synchronization primitives exercised
// under real arena load.
package tests

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/hioload-jobs/api"
	"github.com/momentics/hioload-jobs/arena"
	"github.com/momentics/hioload-jobs/concurrency"
	"github.com/momentics/hioload-jobs/jobs"
)

func TestIntegration_GateSerializesPerKeyUnderLoad(t *testing.T) {
	a := arena.New("int-gate", arena.Options{Workers: 8})
	defer a.Close()

	gate := concurrency.NewGate[int]()
	g := arena.NewGroup("gate-load")
	var perKey [4]int64
	var violations int64
	for i := 0; i < 200; i++ {
		key := i % 4
		_ = a.DispatchGrouped(func() {
			gate.Lock(key)
			if atomic.AddInt64(&perKey[key], 1) != 1 {
				atomic.AddInt64(&violations, 1)
			}
			atomic.AddInt64(&perKey[key], -1)
			gate.Unlock(key)
		}, g)
	}
	g.Join()
	if atomic.LoadInt64(&violations) != 0 {
		t.Fatalf("%d concurrent holders of one key", violations)
	}
}

func TestIntegration_ReadWriteUnderLoad(t *testing.T) {
	a := arena.New("int-rw", arena.Options{Workers: 8})
	defer a.Close()

	rw := concurrency.NewReadWrite(concurrency.NewMutex("int-rw"))
	g := arena.NewGroup("rw-load")
	var shared, mismatches int64
	for i := 0; i < 100; i++ {
		if i%10 == 0 {
			_ = a.DispatchGrouped(func() {
				rw.LockWrite()
				atomic.AddInt64(&shared, 1)
				rw.UnlockWrite()
			}, g)
			continue
		}
		_ = a.DispatchGrouped(func() {
			rw.LockRead()
			v := atomic.LoadInt64(&shared)
			time.Sleep(time.Millisecond)
			if atomic.LoadInt64(&shared) != v {
				// A writer mutated while readers held the lock.
				atomic.AddInt64(&mismatches, 1)
			}
			rw.UnlockRead()
		}, g)
	}
	g.Join()
	if atomic.LoadInt64(&mismatches) != 0 {
		t.Fatalf("%d reads observed mutation under a read hold", mismatches)
	}
	if atomic.LoadInt64(&shared) != 10 {
		t.Fatalf("shared = %d, want 10 writer increments", shared)
	}
}

func TestIntegration_EventFansOutToJobs(t *testing.T) {
	a := arena.New("int-event", arena.Options{Workers: 4})
	defer a.Close()

	start := concurrency.NewEvent()
	g := arena.NewGroup("event-fan")
	var released int64
	for i := 0; i < 4; i++ {
		_ = a.DispatchGrouped(func() {
			start.Wait()
			atomic.AddInt64(&released, 1)
		}, g)
	}
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt64(&released) != 0 {
		t.Fatal("jobs ran past an unset event")
	}
	start.Set()
	g.Join()
	if atomic.LoadInt64(&released) != 4 {
		t.Fatalf("released = %d, want 4", released)
	}
}

func TestIntegration_CancelableJoinOnStuckGroup(t *testing.T) {
	// A group whose jobs never finish must still be joinable with a
	// cancellation token.
	a := arena.New("int-stuck", arena.Options{Workers: 1})
	defer a.Close()

	g := arena.NewGroup("stuck")
	release := make(chan struct{})
	_ = a.DispatchGrouped(func() { <-release }, g)

	p := cancelAfter(30 * time.Millisecond)
	if g.JoinCancelable(p) {
		t.Fatal("join reported drained on a stuck group")
	}
	close(release)
	g.Join()
}

// cancelAfter returns a token that reports canceled once d has elapsed.
func cancelAfter(d time.Duration) api.Cancelable {
	t := &timedToken{deadline: time.Now().Add(d)}
	return t
}

type timedToken struct{ deadline time.Time }

func (t *timedToken) IsCanceled() bool { return time.Now().After(t.deadline) }

func TestIntegration_ChainedDispatch(t *testing.T) {
	// A job dispatching a follow-up job from inside a worker, with the
	// consumer blocked on the outer future.
	f := jobs.DispatchTo("int-chain", func(api.Cancelable) int {
		inner := jobs.DispatchTo("int-chain-2", func(api.Cancelable) int { return 21 })
		defer inner.Release()
		return inner.Get() * 2
	})
	if got := f.Get(); got != 42 {
		t.Fatalf("chained Get() = %d, want 42", got)
	}
	f.Release()
}
