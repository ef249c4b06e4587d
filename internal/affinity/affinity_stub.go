// File: internal/affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !linux

package affinity

import "github.com/momentics/hioload-jobs/api"

// pinCurrentThread reports that affinity control is unavailable here.
func pinCurrentThread(cpu int) error {
	return api.ErrAffinityNotSupported
}
