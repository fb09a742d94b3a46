package config

import "sync"

// SharedConfig wraps EngineConfig with a mutex so the evolutionary loop and
// a hot-reload watcher (or a dashboard, read-only) can safely share one
// live configuration.
type SharedConfig struct {
	mu     sync.RWMutex
	config EngineConfig
}

// NewSharedConfig seeds a SharedConfig with an initial value.
func NewSharedConfig(cfg EngineConfig) *SharedConfig {
	return &SharedConfig{config: cfg}
}

// Get returns a copy of the current config.
func (sc *SharedConfig) Get() EngineConfig {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Update atomically replaces the current config.
func (sc *SharedConfig) Update(cfg EngineConfig) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = cfg
}
