// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"sync"
	"testing"
)

func TestLoadOrStore(t *testing.T) {
	c := New[string, int](0)

	if v, loaded := c.LoadOrStore("a", 7); loaded || v != 7 {
		t.Errorf("LoadOrStore() = %d, %v, want 7, false", v, loaded)
	}
	if v, loaded := c.LoadOrStore("a", 8); !loaded || v != 7 {
		t.Errorf("LoadOrStore() again = %d, %v, want 7, true", v, loaded)
	}
	if v, ok := c.Get("a"); !ok || v != 7 {
		t.Errorf("Get() = %d, %v, want 7, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestEvictOldest(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.LoadOrStore(i, i)
	}
	// Touch 0 so that 1 and 2 are the oldest.
	c.Get(0)
	c.LoadOrStore(4, 4)

	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for _, k := range []int{0, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("Get(%d) ok = false, want true", k)
		}
	}
	for _, k := range []int{1, 2} {
		if _, ok := c.Get(k); ok {
			t.Errorf("Get(%d) ok = true, want evicted", k)
		}
	}
}

func TestClear(t *testing.T) {
	c := New[int, int](0)
	c.LoadOrStore(1, 1)
	c.Clear()
	if got := c.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}

func TestConcurrentLoadOrStore(t *testing.T) {
	c := New[int, int](0)
	var wg sync.WaitGroup
	got := make([][16]int, 8)
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range 16 {
				got[g][k], _ = c.LoadOrStore(k, g)
			}
		}()
	}
	wg.Wait()
	for k := range 16 {
		for g := 1; g < 8; g++ {
			if got[g][k] != got[0][k] {
				t.Errorf("key %d: goroutine %d saw %d, goroutine 0 saw %d", k, g, got[g][k], got[0][k])
			}
		}
	}
}
