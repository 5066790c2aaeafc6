// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"runtime"

	"github.com/gogpu/rive/ffi"
)

// Input is a state machine input: a *BoolInput, *NumberInput or
// *TriggerInput. Inputs are views that are valid while their
// StateMachine is open.
type Input interface {
	Name() string
	isInput()
}

type input struct {
	sm  *StateMachine
	raw ffi.Input
}

func (in *input) isInput() {}

// Name returns the input name.
func (in *input) Name() string {
	defer runtime.KeepAlive(in)
	return ffi.MustString(in.sm.engine().InputName(in.raw))
}

// BoolInput is a boolean input.
type BoolInput struct{ input }

// Get returns the current value.
func (b *BoolInput) Get() bool {
	defer runtime.KeepAlive(b)
	return b.sm.engine().BoolGet(b.raw)
}

// Set changes the value.
func (b *BoolInput) Set(v bool) {
	defer runtime.KeepAlive(b)
	b.sm.engine().BoolSet(b.raw, v)
}

// NumberInput is a numeric input.
type NumberInput struct{ input }

// Get returns the current value.
func (n *NumberInput) Get() float32 {
	defer runtime.KeepAlive(n)
	return n.sm.engine().NumberGet(n.raw)
}

// Set changes the value.
func (n *NumberInput) Set(v float32) {
	defer runtime.KeepAlive(n)
	n.sm.engine().NumberSet(n.raw, v)
}

// TriggerInput is a momentary input.
type TriggerInput struct{ input }

// Fire fires the trigger. It takes effect on the next advance.
func (t *TriggerInput) Fire() {
	defer runtime.KeepAlive(t)
	t.sm.engine().TriggerFire(t.raw)
}
