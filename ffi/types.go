// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ffi is the boundary between Go and the native animation engine.
//
// [Engine] is the engine's C ABI expressed as a Go interface over opaque
// values. The engine draws by calling back into a [Dispatch], which owns a
// handle table of backend objects created through a renderer.Factory:
// the engine only ever sees [Handle] values, never Go pointers.
//
// [Open] binds a shared library through purego. Tests use the pure-Go
// engine in internal/enginetest instead.
package ffi

import (
	"errors"
	"unicode/utf8"
)

// Opaque engine objects. A zero value means "none".
type (
	File            uintptr
	Factory         uintptr
	Artboard        uintptr
	Component       uintptr
	LinearAnimation uintptr
	StateMachine    uintptr
	Event           uintptr
	Input           uintptr
	Scene           uintptr
)

// Scene returns the scene view of the animation.
func (la LinearAnimation) Scene() Scene { return Scene(la) }

// Scene returns the scene view of the state machine.
func (sm StateMachine) Scene() Scene { return Scene(sm) }

// FileResult is the outcome of importing a file.
type FileResult uint8

// Import results.
const (
	Success FileResult = iota
	UnsupportedVersion
	Malformed
)

// String returns the result name.
func (r FileResult) String() string {
	switch r {
	case Success:
		return "Success"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case Malformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// Loop is the playback mode of an animation.
type Loop uint8

// Loop modes.
const (
	LoopOneShot  Loop = 0
	LoopLoop     Loop = 1
	LoopPingPong Loop = 2
)

// String returns the loop mode name.
func (l Loop) String() string {
	switch l {
	case LoopOneShot:
		return "OneShot"
	case LoopLoop:
		return "Loop"
	case LoopPingPong:
		return "PingPong"
	default:
		return "Unknown"
	}
}

// InputTag identifies the kind of a state machine input.
type InputTag uint8

// Input kinds.
const (
	InputBool InputTag = iota
	InputNumber
	InputTrigger
)

// PropertyTag identifies the kind of an event property value.
type PropertyTag uint8

// Property kinds.
const (
	PropertyBool PropertyTag = iota
	PropertyNumber
	PropertyString
)

// RawProperty is an event property as reported by the engine. Key and
// String are unvalidated bytes; String is only meaningful for
// PropertyString.
type RawProperty struct {
	Key    []byte
	Tag    PropertyTag
	Bool   bool
	Number float32
	String []byte
}

var (
	// ErrUnavailable is returned when no native engine can be opened on
	// this platform or at the given path.
	ErrUnavailable = errors.New("ffi: native engine unavailable")

	// ErrInvalidUTF8 reports engine text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("ffi: invalid UTF-8 from engine")
)

// String validates b as UTF-8 and converts it.
func String(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// MustString is like String but panics on invalid input. The engine
// guarantees UTF-8 names, so a failure is a contract violation.
func MustString(b []byte) string {
	s, err := String(b)
	if err != nil {
		panic(err)
	}
	return s
}
