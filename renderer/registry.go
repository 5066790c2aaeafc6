// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"fmt"
	"sort"
	"sync"
)

// FactoryFunc creates a backend factory.
// Factories are registered via Register() and called by NewFactory().
type FactoryFunc func() (Factory, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]FactoryFunc)
)

// Register registers a backend with the given name.
// This function is typically called from init() in backend packages.
//
// Register panics if fn is nil or a backend with the same name is already
// registered.
func Register(name string, fn FactoryFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("renderer: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("renderer: Register called twice for " + name)
	}
	backends[name] = fn
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewFactory creates a factory from the backend registered under name.
func NewFactory(name string) (Factory, error) {
	registryMu.RLock()
	fn, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("renderer: unknown backend %q (forgotten import?)", name)
	}
	f, err := fn()
	if err != nil {
		return nil, fmt.Errorf("renderer: backend %q: %w", name, err)
	}
	return f, nil
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
