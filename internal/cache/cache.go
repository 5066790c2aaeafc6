// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small concurrent cache with a soft size limit.
package cache

import (
	"slices"
	"sync"
)

// Cache maps keys to values and evicts the least recently used quarter
// of its entries when it grows past its soft limit.
//
// Cache is safe for concurrent use and must not be copied.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    int64
}

type entry[V any] struct {
	value V
	atime int64
}

// New returns a cache holding about limit entries. Zero means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]*entry[V]), limit: limit}
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// LoadOrStore returns the value stored under key, or stores v when
// there is none. loaded reports whether the value was already present.
// Callers compute v outside the cache, so concurrent misses may both
// compute it; the first one stored wins.
func (c *Cache[K, V]) LoadOrStore(key K, v V) (actual V, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, true
	}
	c.entries[key] = &entry[V]{value: v, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return v, false
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.tick = 0
}

// evict shrinks the cache to three quarters of its limit, oldest first.
// The caller holds c.mu.
func (c *Cache[K, V]) evict() {
	target := max(c.limit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		default:
			return 0
		}
	})
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}
