// File: arena/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide registry of named arenas.

package arena

import "sync"

// The registry maps arena names to live arenas, plus desired worker counts
// recordable before an arena exists, and the process default arena name.
// It is created on first use and lives until process exit; registered
// arenas are never destroyed while the process runs.
var reg = struct {
	mu          sync.Mutex
	arenas      map[string]*Arena
	desired     map[string]int
	defaultName string
}{
	arenas:      make(map[string]*Arena),
	desired:     make(map[string]int),
	defaultName: "default",
}

// Get returns the arena registered under name, lazily creating it on first
// reference. Creation honors any size previously recorded via SetSize and
// defaults to DefaultWorkers otherwise. Concurrent first references create
// exactly one arena.
func Get(name string) *Arena {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if a, ok := reg.arenas[name]; ok {
		return a
	}
	workers := DefaultWorkers
	if n, ok := reg.desired[name]; ok {
		workers = n
	}
	a := New(name, Options{Workers: workers})
	reg.arenas[name] = a
	return a
}

// Default returns the arena registered under the process default name.
func Default() *Arena {
	return Get(DefaultName())
}

// DefaultName returns the process default arena name.
func DefaultName() string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.defaultName
}

// SetDefaultName changes the process default arena name. The arena itself
// is created lazily on the next default dispatch.
func SetDefaultName(name string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.defaultName = name
}

// SetSize records the desired worker count for a named arena and applies
// it immediately if the arena is already running. Callable before the
// arena's first reference.
func SetSize(name string, workers int) {
	reg.mu.Lock()
	reg.desired[name] = workers
	a := reg.arenas[name]
	reg.mu.Unlock()
	if a != nil {
		a.Resize(workers)
	}
}

// QueueSize returns the instantaneous queue depth of the named arena,
// creating it on first reference. Advisory only.
func QueueSize(name string) int {
	return Get(name).QueueSize()
}

// Names returns the names of all live registered arenas.
func Names() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	names := make([]string, 0, len(reg.arenas))
	for name := range reg.arenas {
		names = append(names, name)
	}
	return names
}
