// File: jobs/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package jobs is the ergonomic dispatch façade: one call wraps a typed
// function in a promise, enqueues it on a named or default arena,
// optionally under a group, and returns the paired future.
//
// The dispatched function receives its promise as an api.Cancelable and
// can poll it to abandon work whose result nobody wants anymore.
package jobs
