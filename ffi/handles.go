// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ffi

import (
	"errors"
	"fmt"
	"sync"
)

// Kind is the type of object a Handle refers to.
type Kind uint8

// Handle kinds.
const (
	KindBuffer Kind = iota + 1
	KindPath
	KindPaint
	KindGradient
	KindImage
	KindRenderer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "Buffer"
	case KindPath:
		return "Path"
	case KindPaint:
		return "Paint"
	case KindGradient:
		return "Gradient"
	case KindImage:
		return "Image"
	case KindRenderer:
		return "Renderer"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Handle identifies a backend object held by a Dispatch. Zero is never
// a valid handle.
type Handle uint64

var (
	// ErrUnknownHandle is returned for handles that were never issued or
	// have been released.
	ErrUnknownHandle = errors.New("ffi: unknown handle")

	// ErrWrongKind is returned when a handle refers to an object of a
	// different kind than requested.
	ErrWrongKind = errors.New("ffi: handle has wrong kind")
)

type entry struct {
	kind  Kind
	value any
}

// Handles is a table of typed handles. The zero value is ready to use.
// It is safe for concurrent use.
type Handles struct {
	mu      sync.Mutex
	last    Handle
	entries map[Handle]entry
}

// Register stores v and returns its new handle. Handles are never reused.
func (h *Handles) Register(kind Kind, v any) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.entries == nil {
		h.entries = make(map[Handle]entry)
	}
	h.last++
	h.entries[h.last] = entry{kind: kind, value: v}
	return h.last
}

// Lookup returns the object for id if it exists and has the given kind.
func (h *Handles) Lookup(id Handle, kind Kind) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, id)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%w: %d is %v, want %v", ErrWrongKind, id, e.kind, kind)
	}
	return e.value, nil
}

// Release removes id and returns the object it referred to. A handle of
// another kind is left in place.
func (h *Handles) Release(id Handle, kind Kind) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, id)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%w: %d is %v, want %v", ErrWrongKind, id, e.kind, kind)
	}
	delete(h.entries, id)
	return e.value, nil
}

// Len returns the number of live handles.
func (h *Handles) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// LenKind returns the number of live handles of the given kind.
func (h *Handles) LenKind(kind Kind) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, e := range h.entries {
		if e.kind == kind {
			n++
		}
	}
	return n
}
