// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for hioload-jobs.

package api

import "errors"

var (
	// ErrArenaClosed indicates the arena has been shut down and no longer
	// accepts work.
	ErrArenaClosed = errors.New("arena is closed")

	// ErrAffinityNotSupported indicates CPU affinity is not supported on
	// this platform.
	ErrAffinityNotSupported = errors.New("CPU affinity not supported")
)
