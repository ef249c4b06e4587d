// File: control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-safe configuration store with dynamic update and hot-reload
// propagation.

package control

import (
	"strings"
	"sync"

	"github.com/momentics/hioload-jobs/arena"
)

// workersKeyPrefix marks config keys carrying arena worker counts, e.g.
// "workers.render" = 4.
const workersKeyPrefix = "workers."

// ConfigStore is a dynamic key/value map with atomic snapshot and listener
// support. Keys under "workers." are applied to the arena registry on
// every update.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: make(map[string]any),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values, applies arena sizing keys, and dispatches
// reload listeners.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	cs.mu.Unlock()

	for k, v := range newCfg {
		name, ok := strings.CutPrefix(k, workersKeyPrefix)
		if !ok || name == "" {
			continue
		}
		if n, ok := v.(int); ok {
			arena.SetSize(name, n)
		}
	}
	cs.dispatchReload()
}

// OnReload registers a listener hook called after every config change.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners.
func (cs *ConfigStore) dispatchReload() {
	cs.mu.RLock()
	listeners := cs.listeners
	cs.mu.RUnlock()
	for _, fn := range listeners {
		go fn()
	}
}
