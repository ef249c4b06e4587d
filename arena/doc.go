// File: arena/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package arena implements the job scheduler: named worker pools draining
// FIFO queues, job groups for bulk synchronization, and the process-wide
// registry of named arenas.
//
// Within one arena jobs run in submission order relative to dequeue; across
// arenas there is no ordering relationship. Worker counts are adjustable at
// runtime without dropping queued work.
package arena
