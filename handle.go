// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"fmt"
	"strconv"
)

type handleKind uint8

const (
	handleDefault handleKind = iota
	handleIndex
	handleName
)

// Handle selects what to instantiate from a file or artboard: the
// default, the object at an index, or the object with a name.
type Handle struct {
	kind  handleKind
	index uint
	name  string
}

// Default selects the default object.
func Default() Handle {
	return Handle{}
}

// Index selects the object at index i.
func Index(i uint) Handle {
	return Handle{kind: handleIndex, index: i}
}

// Name selects the object named s.
func Name(s string) Handle {
	return Handle{kind: handleName, name: s}
}

// String returns a description of the selector.
func (h Handle) String() string {
	switch h.kind {
	case handleIndex:
		return "index " + strconv.FormatUint(uint64(h.index), 10)
	case handleName:
		return fmt.Sprintf("name %q", h.name)
	default:
		return "default"
	}
}

// pick resolves h against an engine's by-index and by-name lookups.
func pick[T any](h Handle, byIndex func(*uint) (T, bool), byName func([]byte) (T, bool)) (T, bool) {
	switch h.kind {
	case handleIndex:
		i := h.index
		return byIndex(&i)
	case handleName:
		return byName([]byte(h.name))
	default:
		return byIndex(nil)
	}
}
