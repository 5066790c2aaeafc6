// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"iter"
	"runtime"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/internal/logger"
)

// StateMachine drives an artboard from inputs and pointer events. It
// implements Scene.
type StateMachine struct {
	sceneBase
	raw ffi.StateMachine
}

var _ Scene = (*StateMachine)(nil)

// Inputs iterates over the state machine's inputs in order.
func (sm *StateMachine) Inputs() iter.Seq[Input] {
	return func(yield func(Input) bool) {
		defer runtime.KeepAlive(sm)
		e := sm.engine()
		n := e.StateMachineInputCount(sm.raw)
		for i := range n {
			tag, raw := e.StateMachineInput(sm.raw, i)
			in := sm.newInput(tag, raw)
			if in == nil {
				logger.Get().Warn("rive: unknown input kind", "index", i, "tag", tag)
				continue
			}
			if !yield(in) {
				return
			}
		}
	}
}

func (sm *StateMachine) newInput(tag ffi.InputTag, raw ffi.Input) Input {
	in := input{sm: sm, raw: raw}
	switch tag {
	case ffi.InputBool:
		return &BoolInput{in}
	case ffi.InputNumber:
		return &NumberInput{in}
	case ffi.InputTrigger:
		return &TriggerInput{in}
	default:
		return nil
	}
}

// Bool returns the boolean input called name.
func (sm *StateMachine) Bool(name string) (*BoolInput, bool) {
	defer runtime.KeepAlive(sm)
	raw, ok := sm.engine().StateMachineBool(sm.raw, []byte(name))
	if !ok {
		return nil, false
	}
	return &BoolInput{input{sm: sm, raw: raw}}, true
}

// Number returns the number input called name.
func (sm *StateMachine) Number(name string) (*NumberInput, bool) {
	defer runtime.KeepAlive(sm)
	raw, ok := sm.engine().StateMachineNumber(sm.raw, []byte(name))
	if !ok {
		return nil, false
	}
	return &NumberInput{input{sm: sm, raw: raw}}, true
}

// Trigger returns the trigger input called name.
func (sm *StateMachine) Trigger(name string) (*TriggerInput, bool) {
	defer runtime.KeepAlive(sm)
	raw, ok := sm.engine().StateMachineTrigger(sm.raw, []byte(name))
	if !ok {
		return nil, false
	}
	return &TriggerInput{input{sm: sm, raw: raw}}, true
}

// Events iterates over the events reported by the last advance. Reading
// them does not consume them: they stay available until the next advance.
func (sm *StateMachine) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		defer runtime.KeepAlive(sm)
		e := sm.engine()
		n := e.StateMachineEventCount(sm.raw)
		for i := range n {
			raw, delay := e.StateMachineEvent(sm.raw, i)
			ev := Event{
				Name:       ffi.MustString(e.EventName(raw)),
				Delay:      seconds(delay),
				Properties: eventProperties(e, raw),
			}
			if !yield(ev) {
				return
			}
		}
	}
}

func eventProperties(e ffi.Engine, ev ffi.Event) map[string]Property {
	n := e.EventPropertyCount(ev)
	props := make(map[string]Property, n)
	for i := range n {
		p := e.EventProperty(ev, i)
		key, err := ffi.String(p.Key)
		if err != nil {
			logger.Get().Warn("rive: dropped event property", "index", i, "err", err)
			continue
		}
		v, err := propertyValue(p)
		if err != nil {
			logger.Get().Warn("rive: dropped event property", "key", key, "err", err)
			continue
		}
		props[key] = v
	}
	return props
}
