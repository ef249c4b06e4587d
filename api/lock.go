// File: api/lock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Minimal lockable contract shared by Mutex, RecursiveMutex and any
// user-supplied lock usable with the generic ReadWrite wrapper.

package api

// Lockable is the minimal exclusive-lock contract.
//
// Lock blocks until the lock is held, Unlock releases it, and TryLock
// acquires without blocking, reporting success. A Lockable is also a
// sync.Locker and can back a sync.Cond.
type Lockable interface {
	Lock()
	Unlock()

	// TryLock acquires the lock without blocking and reports whether
	// it succeeded.
	TryLock() bool
}
