// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the public contracts of hioload-jobs: the minimal
// lockable interface shared by all exclusive locks, the cooperative
// cancellation token consumed by blocking waits and dispatched jobs, and
// the dispatcher contract implemented by job arenas.
//
// Implementations live in the concurrency, future, arena and jobs packages.
package api
