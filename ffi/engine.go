// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ffi

// Engine is the native engine's C ABI.
//
// Byte slices returned by Engine methods are copies owned by the caller.
// Instantiation methods report false when nothing matches; a nil index
// selects the default. Every object passed in must have been returned by
// the same Engine and not yet released.
type Engine interface {
	// FileNew imports an encoded file. Backend resources the file needs
	// are created through d, which must stay alive until FileRelease.
	FileNew(data []byte, d *Dispatch) (File, Factory, FileResult)
	FileRelease(f File, factory Factory)

	InstantiateArtboard(f File, index *uint) (Artboard, bool)
	InstantiateArtboardByName(f File, name []byte) (Artboard, bool)
	ArtboardRelease(a Artboard)
	ArtboardComponentCount(a Artboard) uint
	ArtboardComponent(a Artboard, index uint) Component
	// ArtboardTransforms fits the artboard into a width x height viewport
	// and returns the view transform and its inverse, column major.
	ArtboardTransforms(a Artboard, width, height uint32) (view, inverse [6]float32)

	ComponentTypeID(c Component) uint16
	ComponentName(c Component) []byte
	TextValueRunText(c Component) []byte
	TextValueRunSetText(c Component, text []byte)

	InstantiateLinearAnimation(a Artboard, index *uint) (LinearAnimation, bool)
	InstantiateLinearAnimationByName(a Artboard, name []byte) (LinearAnimation, bool)
	LinearAnimationTime(la LinearAnimation) float32
	LinearAnimationSetTime(la LinearAnimation, seconds float32)
	LinearAnimationIsForwards(la LinearAnimation) bool
	LinearAnimationSetIsForwards(la LinearAnimation, forwards bool)
	LinearAnimationAdvance(la LinearAnimation, elapsed float32) bool
	LinearAnimationApply(la LinearAnimation, mix float32)
	LinearAnimationDidLoop(la LinearAnimation) bool
	LinearAnimationSetLoop(la LinearAnimation, loop Loop)
	LinearAnimationIsDone(la LinearAnimation) bool

	InstantiateStateMachine(a Artboard, index *uint) (StateMachine, bool)
	InstantiateStateMachineByName(a Artboard, name []byte) (StateMachine, bool)

	// Events reported by the last advance, read without consuming them.
	StateMachineEventCount(sm StateMachine) uint
	StateMachineEvent(sm StateMachine, index uint) (e Event, delay float32)
	EventName(e Event) []byte
	EventPropertyCount(e Event) uint
	EventProperty(e Event, index uint) RawProperty

	StateMachineInputCount(sm StateMachine) uint
	StateMachineInput(sm StateMachine, index uint) (InputTag, Input)
	StateMachineBool(sm StateMachine, name []byte) (Input, bool)
	StateMachineNumber(sm StateMachine, name []byte) (Input, bool)
	StateMachineTrigger(sm StateMachine, name []byte) (Input, bool)
	InputName(in Input) []byte
	BoolGet(in Input) bool
	BoolSet(in Input, v bool)
	NumberGet(in Input) float32
	NumberSet(in Input, v float32)
	TriggerFire(in Input)

	SceneRelease(s Scene)
	SceneName(s Scene) []byte
	SceneWidth(s Scene) float32
	SceneHeight(s Scene) float32
	SceneLoop(s Scene) Loop
	SceneIsTranslucent(s Scene) bool
	// SceneDuration returns the duration in seconds, negative when the
	// scene has none.
	SceneDuration(s Scene) float32
	SceneAdvanceAndApply(s Scene, elapsed float32) bool
	// SceneDraw draws s through d onto the renderer bound to r.
	SceneDraw(s Scene, r Handle, d *Dispatch)
	ScenePointerDown(s Scene, x, y float32)
	ScenePointerMove(s Scene, x, y float32)
	ScenePointerUp(s Scene, x, y float32)
}
