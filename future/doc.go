// File: future/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package future implements a single-assignment asynchronous result channel.
// A Promise is the producer half, a Future the consumer half; both are
// handles onto one reference-counted shared container and event.
//
// Handles are explicitly released. A Future whose Promise was released
// without resolving is abandoned: the result can never arrive, and blocked
// Get calls return the zero value. Abandonment doubles as the cooperative
// cancellation signal for dispatched work, with the Promise itself serving
// as the job's api.Cancelable.
package future
