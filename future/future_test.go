// File: future/future_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package future

import (
	"sync/atomic"
	"testing"
	"time"
)

type testToken struct{ canceled atomic.Bool }

func (t *testToken) IsCanceled() bool { return t.canceled.Load() }

func TestPromise_ResolveDeliversValue(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	go func() {
		time.Sleep(20 * time.Millisecond)
		p.Resolve(42)
		p.Release()
	}()
	if got := f.Get(); got != 42 {
		t.Fatalf("Get() = %d, want 42", got)
	}
	if !f.IsReady() {
		t.Fatal("future not ready after resolution")
	}
	f.Release()
}

func TestFuture_TryGet(t *testing.T) {
	p := NewPromise[string]()
	f := p.Future()
	if _, ok := f.TryGet(); ok {
		t.Fatal("TryGet reported a value before resolution")
	}
	p.Resolve("done")
	v, ok := f.TryGet()
	if !ok || v != "done" {
		t.Fatalf("TryGet() = (%q, %v), want (done, true)", v, ok)
	}
	p.Release()
	f.Release()
}

func TestFuture_Abandonment(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	if f.IsAbandoned() {
		t.Fatal("future abandoned while its promise is live")
	}
	p.Release()
	if !f.IsAbandoned() {
		t.Fatal("future not abandoned after its promise was released unresolved")
	}
	// Abandoned Get returns the zero value instead of blocking.
	if got := f.Get(); got != 0 {
		t.Fatalf("abandoned Get() = %d, want 0", got)
	}
	f.Release()
}

func TestFuture_ResolvedNeverAbandoned(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	p.Resolve(1)
	p.Release()
	if f.IsAbandoned() {
		t.Fatal("resolved future reported abandoned after promise release")
	}
	f.Release()
}

func TestPromise_AbandonmentMirror(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	if p.IsAbandoned() || p.IsCanceled() {
		t.Fatal("promise reads abandoned while a future is live")
	}
	f.Release()
	if !p.IsAbandoned() || !p.IsCanceled() {
		t.Fatal("promise not abandoned after its last future was released")
	}
	p.Release()
}

func TestFuture_ThenCallbackOrder(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	var order []int
	f.Then(func(v int) { order = append(order, 1) })
	f.Then(func(v int) { order = append(order, 2) })
	f.Then(func(v int) { order = append(order, 3) })
	p.Resolve(9)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("callback order = %v, want [1 2 3]", order)
	}
	p.Release()
	f.Release()
}

func TestFuture_ThenAfterResolveRunsImmediately(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	p.Resolve(5)
	ran := false
	f.Then(func(v int) {
		ran = true
		if v != 5 {
			t.Errorf("callback value = %d, want 5", v)
		}
	})
	if !ran {
		t.Fatal("Then on a resolved future did not run synchronously")
	}
	p.Release()
	f.Release()
}

func TestPromise_PanickingCallbackDoesNotStopOthers(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	var ran atomic.Int32
	f.Then(func(int) { panic("boom") })
	f.Then(func(int) { ran.Add(1) })
	p.Resolve(1)
	if ran.Load() != 1 {
		t.Fatal("callback after a panicking one did not run")
	}
	p.Release()
	f.Release()
}

func TestFuture_CloneSharesState(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	c := f.Clone()
	p.Resolve(7)
	if c.Get() != 7 || f.Get() != 7 {
		t.Fatal("clone did not share the resolved value")
	}
	// With two consumer handles live, releasing one does not abandon.
	p2 := NewPromise[int]()
	f2 := p2.Future()
	c2 := f2.Clone()
	p2.Release()
	if f2.IsAbandoned() {
		t.Fatal("future with a live clone reported abandoned")
	}
	c2.Release()
	if !f2.IsAbandoned() {
		t.Fatal("sole surviving future not abandoned")
	}
}

func TestFuture_AbandonRebinds(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	other := p.Future()
	f.Abandon()
	p.Resolve(3)
	// The detached handle sees fresh unresolved state with no producer.
	if f.IsReady() {
		t.Fatal("rebound future observed the original resolution")
	}
	if !f.IsAbandoned() {
		t.Fatal("rebound future has no producer and must read abandoned")
	}
	// Other handles still see the original state.
	if other.Get() != 3 {
		t.Fatal("sibling handle lost the original resolution")
	}
}

func TestFuture_GetCancelable(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	tok := &testToken{}
	done := make(chan int, 1)
	go func() {
		done <- f.GetCancelable(tok)
	}()
	time.Sleep(20 * time.Millisecond)
	tok.canceled.Store(true)
	select {
	case v := <-done:
		if v != 0 {
			t.Fatalf("canceled Get returned %d, want zero value", v)
		}
	case <-time.After(time.Second):
		t.Fatal("GetCancelable did not observe cancellation")
	}
	p.Release()
	f.Release()
}

func TestPromise_SignalOnly(t *testing.T) {
	p := NewPromise[struct{}]()
	f := p.Future()
	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Signal()
	}()
	f.Get()
	if !f.IsReady() {
		t.Fatal("Signal did not mark the future ready")
	}
	p.Release()
	f.Release()
}

func TestPromise_ResolveAfterAbandonIsNoop(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()
	f.Release()
	// Legal: nobody observes it.
	p.Resolve(11)
	p.Release()
}
