// File: internal/affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build linux

package affinity

import "golang.org/x/sys/unix"

// pinCurrentThread binds the current OS thread to the given CPU.
func pinCurrentThread(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	// pid 0 targets the calling thread.
	return unix.SchedSetaffinity(0, &set)
}
