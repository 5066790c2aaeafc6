// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"runtime"
	"time"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

// Scene is a playback cursor over an artboard: a *LinearAnimation or a
// *StateMachine.
type Scene interface {
	// Name returns the name of the animation or state machine.
	Name() string

	// Width and Height return the artboard size.
	Width() float32
	Height() float32

	Loop() Loop
	IsTranslucent() bool

	// Duration returns the playback length. It reports false for scenes
	// that have no fixed length, such as state machines.
	Duration() (time.Duration, bool)

	// PointerDown, PointerMove and PointerUp forward a pointer event given
	// in viewport pixels. The position is mapped into artboard space with
	// the inverse view transform of the last AdvanceAndMaybeDraw on vp.
	PointerDown(x, y float32, vp *Viewport)
	PointerMove(x, y float32, vp *Viewport)
	PointerUp(x, y float32, vp *Viewport)

	// AdvanceAndApply advances by elapsed and applies the result to the
	// artboard. It reports whether anything changed.
	AdvanceAndApply(elapsed time.Duration) bool

	// Draw draws the artboard in its current state onto r.
	Draw(r renderer.Renderer)

	// AdvanceAndMaybeDraw fits the artboard into vp, advances by elapsed
	// and, when anything changed, draws it onto r under the view
	// transform. r is not touched when it reports false.
	AdvanceAndMaybeDraw(r renderer.Renderer, elapsed time.Duration, vp *Viewport) bool

	// Artboard returns a new reference to the scene's artboard.
	Artboard() *Artboard

	Close()

	base() *sceneBase
}

// InstantiateScene instantiates the state machine selected by h, or the
// linear animation selected by h when there is no such state machine.
func InstantiateScene(a *Artboard, h Handle) (Scene, bool) {
	if sm, ok := a.StateMachine(h); ok {
		return sm, true
	}
	if la, ok := a.LinearAnimation(h); ok {
		return la, true
	}
	return nil, false
}

// sceneInner owns a scene and one reference to its artboard.
type sceneInner struct {
	ref
	artboard *artboardInner
	raw      ffi.Scene
}

func newSceneInner(ai *artboardInner, raw ffi.Scene) *sceneInner {
	ai.retain()
	s := &sceneInner{artboard: ai, raw: raw}
	s.init(func() {
		ai.engine().SceneRelease(raw)
		ai.release()
	})
	return s
}

// sceneBase implements the Scene methods shared by both kinds.
type sceneBase struct {
	inner *sceneInner
	closer
}

func (s *sceneBase) base() *sceneBase { return s }

func (s *sceneBase) engine() ffi.Engine {
	s.check()
	return s.inner.artboard.engine()
}

// Name implements Scene.
func (s *sceneBase) Name() string {
	defer runtime.KeepAlive(s)
	return ffi.MustString(s.engine().SceneName(s.inner.raw))
}

// Width implements Scene.
func (s *sceneBase) Width() float32 {
	defer runtime.KeepAlive(s)
	return s.engine().SceneWidth(s.inner.raw)
}

// Height implements Scene.
func (s *sceneBase) Height() float32 {
	defer runtime.KeepAlive(s)
	return s.engine().SceneHeight(s.inner.raw)
}

// Loop implements Scene.
func (s *sceneBase) Loop() Loop {
	defer runtime.KeepAlive(s)
	return s.engine().SceneLoop(s.inner.raw)
}

// IsTranslucent implements Scene.
func (s *sceneBase) IsTranslucent() bool {
	defer runtime.KeepAlive(s)
	return s.engine().SceneIsTranslucent(s.inner.raw)
}

// Duration implements Scene.
func (s *sceneBase) Duration() (time.Duration, bool) {
	defer runtime.KeepAlive(s)
	d := s.engine().SceneDuration(s.inner.raw)
	if d < 0 {
		return 0, false
	}
	return seconds(d), true
}

// PointerDown implements Scene.
func (s *sceneBase) PointerDown(x, y float32, vp *Viewport) {
	defer runtime.KeepAlive(s)
	x, y = vp.Map(x, y)
	s.engine().ScenePointerDown(s.inner.raw, x, y)
}

// PointerMove implements Scene.
func (s *sceneBase) PointerMove(x, y float32, vp *Viewport) {
	defer runtime.KeepAlive(s)
	x, y = vp.Map(x, y)
	s.engine().ScenePointerMove(s.inner.raw, x, y)
}

// PointerUp implements Scene.
func (s *sceneBase) PointerUp(x, y float32, vp *Viewport) {
	defer runtime.KeepAlive(s)
	x, y = vp.Map(x, y)
	s.engine().ScenePointerUp(s.inner.raw, x, y)
}

// AdvanceAndApply implements Scene.
func (s *sceneBase) AdvanceAndApply(elapsed time.Duration) bool {
	defer runtime.KeepAlive(s)
	return s.engine().SceneAdvanceAndApply(s.inner.raw, float32(elapsed.Seconds()))
}

// Draw implements Scene.
func (s *sceneBase) Draw(r renderer.Renderer) {
	defer runtime.KeepAlive(s)
	e := s.engine()
	d := s.inner.artboard.file.dispatch
	h, unbind := d.BindRenderer(r)
	defer unbind()
	e.SceneDraw(s.inner.raw, h, d)
}

// AdvanceAndMaybeDraw implements Scene.
func (s *sceneBase) AdvanceAndMaybeDraw(r renderer.Renderer, elapsed time.Duration, vp *Viewport) bool {
	defer runtime.KeepAlive(s)
	e := s.engine()
	view, inverse := e.ArtboardTransforms(s.inner.artboard.raw, vp.Width(), vp.Height())
	vp.setInverse(renderer.Mat2D(inverse))

	if !s.AdvanceAndApply(elapsed) {
		return false
	}
	r.StatePush()
	r.Transform(renderer.Mat2D(view))
	s.Draw(r)
	r.StatePop()
	return true
}

// Artboard implements Scene.
func (s *sceneBase) Artboard() *Artboard {
	defer runtime.KeepAlive(s)
	s.check()
	ai := s.inner.artboard
	ai.retain()
	return newArtboard(ai)
}

// Close implements Scene. The artboard is released once nothing else
// refers to it.
func (s *sceneBase) Close() {
	s.close()
}

func seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}
