// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"iter"
	"runtime"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

// artboardInner owns an artboard instance and one reference to its file.
type artboardInner struct {
	ref
	file *fileInner
	raw  ffi.Artboard
}

func (a *artboardInner) engine() ffi.Engine {
	return a.file.engine
}

// Artboard is a drawable canvas instantiated from a File.
type Artboard struct {
	inner *artboardInner
	closer
}

func newArtboard(inner *artboardInner) *Artboard {
	a := &Artboard{inner: inner}
	track(a, &a.closer, inner)
	return a
}

// ComponentCount returns the number of components.
func (a *Artboard) ComponentCount() int {
	defer runtime.KeepAlive(a)
	a.check()
	return int(a.inner.engine().ArtboardComponentCount(a.inner.raw)) //nolint:gosec // engine counts fit in int
}

// Component returns the component at index i, or nil when i is out of
// range.
func (a *Artboard) Component(i int) *Component {
	defer runtime.KeepAlive(a)
	if i < 0 || i >= a.ComponentCount() {
		return nil
	}
	return &Component{artboard: a, raw: a.inner.engine().ArtboardComponent(a.inner.raw, uint(i))}
}

// Components iterates over the artboard's components in order.
func (a *Artboard) Components() iter.Seq[*Component] {
	return func(yield func(*Component) bool) {
		n := a.ComponentCount()
		for i := range n {
			if !yield(a.Component(i)) {
				return
			}
		}
	}
}

// Transforms fits the artboard into a width x height viewport, centered
// and scaled to contain, and returns the view transform and its inverse.
func (a *Artboard) Transforms(width, height uint32) (view, inverse renderer.Mat2D) {
	defer runtime.KeepAlive(a)
	a.check()
	v, inv := a.inner.engine().ArtboardTransforms(a.inner.raw, width, height)
	return renderer.Mat2D(v), renderer.Mat2D(inv)
}

// LinearAnimation instantiates a linear animation. It reports false when
// nothing matches h.
func (a *Artboard) LinearAnimation(h Handle) (*LinearAnimation, bool) {
	defer runtime.KeepAlive(a)
	a.check()
	ai := a.inner
	raw, ok := pick(h,
		func(i *uint) (ffi.LinearAnimation, bool) { return ai.engine().InstantiateLinearAnimation(ai.raw, i) },
		func(name []byte) (ffi.LinearAnimation, bool) {
			return ai.engine().InstantiateLinearAnimationByName(ai.raw, name)
		},
	)
	if !ok {
		return nil, false
	}
	la := &LinearAnimation{sceneBase: sceneBase{inner: newSceneInner(ai, raw.Scene())}, raw: raw}
	track(la, &la.closer, la.inner)
	return la, true
}

// StateMachine instantiates a state machine. It reports false when
// nothing matches h.
func (a *Artboard) StateMachine(h Handle) (*StateMachine, bool) {
	defer runtime.KeepAlive(a)
	a.check()
	ai := a.inner
	raw, ok := pick(h,
		func(i *uint) (ffi.StateMachine, bool) { return ai.engine().InstantiateStateMachine(ai.raw, i) },
		func(name []byte) (ffi.StateMachine, bool) {
			return ai.engine().InstantiateStateMachineByName(ai.raw, name)
		},
	)
	if !ok {
		return nil, false
	}
	sm := &StateMachine{sceneBase: sceneBase{inner: newSceneInner(ai, raw.Scene())}, raw: raw}
	track(sm, &sm.closer, sm.inner)
	return sm, true
}

// Close drops the caller's reference to the artboard.
func (a *Artboard) Close() {
	a.close()
}
