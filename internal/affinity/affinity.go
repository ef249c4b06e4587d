// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Optional CPU pinning for arena worker threads. Pure Go; platforms
// without sched_setaffinity fall back to a no-op.

package affinity

import "runtime"

// PinWorker binds the calling goroutine to an OS thread and pins that
// thread to a CPU derived from the worker id. Returns
// api.ErrAffinityNotSupported on platforms without affinity control.
func PinWorker(id int) error {
	runtime.LockOSThread()
	cpu := id % runtime.NumCPU()
	return pinCurrentThread(cpu)
}
