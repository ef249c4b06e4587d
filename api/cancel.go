// File: api/cancel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cooperative cancellation token.

package api

// Cancelable is a cheap, poll-style cancellation token.
//
// Blocking waits that accept a Cancelable re-check IsCanceled on a bounded
// interval and return early once it reports true. Dispatched job functions
// receive their Promise as a Cancelable so they can abort work whose result
// nobody wants anymore. There is no preemptive interruption: a running job
// must poll its token itself.
type Cancelable interface {
	// IsCanceled reports whether the operation's result is no longer wanted.
	IsCanceled() bool
}
