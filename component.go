// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"runtime"

	"github.com/gogpu/rive/ffi"
)

// TextValueRunTypeID is the component type id of text value runs.
const TextValueRunTypeID = 135

// Component is a named element of an artboard. It is a view that is
// valid while its Artboard is open.
type Component struct {
	artboard *Artboard
	raw      ffi.Component
}

func (c *Component) engine() ffi.Engine {
	c.artboard.check()
	return c.artboard.inner.engine()
}

// Name returns the component name.
func (c *Component) Name() string {
	defer runtime.KeepAlive(c)
	return ffi.MustString(c.engine().ComponentName(c.raw))
}

// TypeID returns the engine's type id of the component.
func (c *Component) TypeID() uint16 {
	defer runtime.KeepAlive(c)
	return c.engine().ComponentTypeID(c.raw)
}

// AsTextValueRun returns the component as a text run. It reports false
// for other kinds of components.
func (c *Component) AsTextValueRun() (*TextValueRun, bool) {
	if c.TypeID() != TextValueRunTypeID {
		return nil, false
	}
	return &TextValueRun{c}, true
}

// TextValueRun is a component holding a run of text.
type TextValueRun struct {
	*Component
}

// Text returns the current text.
func (t *TextValueRun) Text() string {
	defer runtime.KeepAlive(t)
	return ffi.MustString(t.engine().TextValueRunText(t.raw))
}

// SetText replaces the text.
func (t *TextValueRun) SetText(s string) {
	defer runtime.KeepAlive(t)
	t.engine().TextValueRunSetText(t.raw, []byte(s))
}
