// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object pooling for allocation-heavy dispatch paths. The arena
// recycles its queue nodes through a SyncPool so sustained dispatch does
// not churn the allocator.
package pool
