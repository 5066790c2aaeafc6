// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"runtime"
	"time"

	"github.com/gogpu/rive/ffi"
)

// Loop is the playback mode of an animation.
type Loop = ffi.Loop

// Loop modes.
const (
	LoopOneShot  = ffi.LoopOneShot
	LoopLoop     = ffi.LoopLoop
	LoopPingPong = ffi.LoopPingPong
)

// Direction is the playback direction of a linear animation.
type Direction uint8

// Playback directions.
const (
	Forwards Direction = iota
	Backwards
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backwards {
		return "Backwards"
	}
	return "Forwards"
}

// LinearAnimation plays a keyframed timeline. It implements Scene.
type LinearAnimation struct {
	sceneBase
	raw ffi.LinearAnimation
}

var _ Scene = (*LinearAnimation)(nil)

// Time returns the position of the time cursor.
func (la *LinearAnimation) Time() time.Duration {
	defer runtime.KeepAlive(la)
	return seconds(la.engine().LinearAnimationTime(la.raw))
}

// SetTime moves the time cursor.
func (la *LinearAnimation) SetTime(t time.Duration) {
	defer runtime.KeepAlive(la)
	la.engine().LinearAnimationSetTime(la.raw, float32(t.Seconds()))
}

// Direction returns the playback direction.
func (la *LinearAnimation) Direction() Direction {
	defer runtime.KeepAlive(la)
	if la.engine().LinearAnimationIsForwards(la.raw) {
		return Forwards
	}
	return Backwards
}

// SetDirection changes the playback direction.
func (la *LinearAnimation) SetDirection(d Direction) {
	defer runtime.KeepAlive(la)
	la.engine().LinearAnimationSetIsForwards(la.raw, d == Forwards)
}

// Advance moves the time cursor by elapsed without applying it. It
// reports whether the animation should keep playing.
func (la *LinearAnimation) Advance(elapsed time.Duration) bool {
	defer runtime.KeepAlive(la)
	return la.engine().LinearAnimationAdvance(la.raw, float32(elapsed.Seconds()))
}

// Apply applies the animation at its current time to the artboard,
// blended with weight mix in [0, 1].
func (la *LinearAnimation) Apply(mix float32) {
	defer runtime.KeepAlive(la)
	la.engine().LinearAnimationApply(la.raw, mix)
}

// DidLoop reports whether the last Advance wrapped around.
func (la *LinearAnimation) DidLoop() bool {
	defer runtime.KeepAlive(la)
	return la.engine().LinearAnimationDidLoop(la.raw)
}

// SetLoop overrides the loop mode.
func (la *LinearAnimation) SetLoop(l Loop) {
	defer runtime.KeepAlive(la)
	la.engine().LinearAnimationSetLoop(la.raw, l)
}

// IsDone reports whether a one-shot animation has reached its end.
func (la *LinearAnimation) IsDone() bool {
	defer runtime.KeepAlive(la)
	return la.engine().LinearAnimationIsDone(la.raw)
}
