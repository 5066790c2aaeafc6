// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"runtime"
	"sync/atomic"
)

// releaser drops one reference to an engine object.
type releaser interface {
	release()
}

// ref counts the owners of an engine object and frees it when the last
// one goes away.
type ref struct {
	refs atomic.Int64
	free func()
}

func (r *ref) init(free func()) {
	r.free = free
	r.refs.Store(1)
}

func (r *ref) retain() {
	if r.refs.Add(1) <= 1 {
		panic("rive: retain of a released reference")
	}
}

func (r *ref) release() {
	switch n := r.refs.Add(-1); {
	case n == 0:
		r.free()
	case n < 0:
		panic("rive: reference released too many times")
	}
}

// closer is the public side of one reference: Close drops it exactly once,
// and a cleanup drops it if the owning handle is never closed.
type closer struct {
	closed  atomic.Bool
	cleanup runtime.Cleanup
	owned   releaser
}

// track ties the reference held by c to the lifetime of w. Methods of w
// that hand a raw engine object to the engine must keep w alive until the
// call returns, with runtime.KeepAlive.
func track[T any](w *T, c *closer, inner releaser) {
	c.owned = inner
	c.cleanup = runtime.AddCleanup(w, releaser.release, inner)
}

func (c *closer) close() {
	if c.closed.CompareAndSwap(false, true) {
		c.cleanup.Stop()
		c.owned.release()
	}
}

func (c *closer) check() {
	if c.closed.Load() {
		panic(ErrClosed)
	}
}
