// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import "github.com/gogpu/rive/renderer"

// Viewport is the pixel area a scene is drawn into. It remembers the
// inverse view transform of the last frame so pointer positions can be
// mapped back into artboard space.
//
// The zero value is an empty viewport with an identity inverse.
type Viewport struct {
	width, height uint32
	inverse       renderer.Mat2D
	hasInverse    bool
}

// NewViewport returns a width x height viewport.
func NewViewport(width, height uint32) *Viewport {
	return &Viewport{width: width, height: height}
}

// Width returns the width in pixels.
func (v *Viewport) Width() uint32 {
	return v.width
}

// Height returns the height in pixels.
func (v *Viewport) Height() uint32 {
	return v.height
}

// Resize changes the viewport size. The inverse transform is updated by
// the next AdvanceAndMaybeDraw.
func (v *Viewport) Resize(width, height uint32) {
	v.width = width
	v.height = height
}

// Inverse returns the inverse view transform of the last frame.
func (v *Viewport) Inverse() renderer.Mat2D {
	if !v.hasInverse {
		return renderer.Identity
	}
	return v.inverse
}

// Map maps a point in viewport pixels into artboard space.
func (v *Viewport) Map(x, y float32) (float32, float32) {
	return v.Inverse().Apply(x, y)
}

func (v *Viewport) setInverse(m renderer.Mat2D) {
	v.inverse = m
	v.hasInverse = true
}
