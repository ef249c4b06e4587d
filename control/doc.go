// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package control exposes the runtime observability and reconfiguration
// surface of hioload-jobs: a dynamic config store whose reload hook applies
// per-arena worker counts, a stats snapshot over the arena registry, and
// named debug probes for internal inspection.
package control
