// File: concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package concurrency provides the low-level synchronization primitives of
// hioload-jobs: named exclusive and recursive mutexes, a level-triggered
// binary Event, a counting Semaphore with drain-to-zero join, a reader/writer
// lock generic over any lockable, and a per-key Gate.
//
// All primitives coordinate through mutex-guarded state. Waits that must
// observe cooperative cancellation use bounded timeout re-polling; waits
// without cancellation support block indefinitely.
package concurrency
