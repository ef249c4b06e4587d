// File: control/control.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified runtime control surface over the arena registry.

package control

import "github.com/momentics/hioload-jobs/arena"

// Control aggregates the config store and debug probes and snapshots
// scheduler state for monitoring.
type Control struct {
	cfg    *ConfigStore
	probes *DebugProbes
}

// New creates a control surface with a default probe reporting per-arena
// scheduler metrics.
func New() *Control {
	c := &Control{
		cfg:    NewConfigStore(),
		probes: NewDebugProbes(),
	}
	c.probes.RegisterProbe("arenas", func() any { return c.Stats() })
	return c
}

// Config returns the dynamic config store.
func (c *Control) Config() *ConfigStore { return c.cfg }

// RegisterDebugProbe inserts a named debug hook.
func (c *Control) RegisterDebugProbe(name string, fn func() any) {
	c.probes.RegisterProbe(name, fn)
}

// DumpState returns the output of all registered probes.
func (c *Control) DumpState() map[string]any {
	return c.probes.DumpState()
}

// Stats returns per-arena metrics (queue depth, worker count, dispatched
// and completed counters) for every live registered arena.
func (c *Control) Stats() map[string]map[string]int64 {
	out := make(map[string]map[string]int64)
	for _, name := range arena.Names() {
		out[name] = arena.Get(name).Stats()
	}
	return out
}
