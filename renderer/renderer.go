// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package renderer defines the capability set a rendering backend
// implements so the animation engine can draw through it.
//
// The engine calls a [Factory] to build every resource it needs (paths,
// paints, gradients, images and mesh buffers) when a file is loaded, and
// drives a [Renderer] once per frame. Values returned by a Factory are
// only ever passed back to the same backend; a backend may type-assert
// them to its own concrete types.
//
// Backends register themselves by name, following the database/sql
// driver pattern:
//
//	func init() {
//	    renderer.Register("scene", func() (renderer.Factory, error) {
//	        return NewFactory(), nil
//	    })
//	}
package renderer

import "iter"

// Buffer is a typed byte buffer used for mesh vertices, UVs and indices.
type Buffer interface {
	// Type returns what kind of data the buffer holds.
	Type() BufferType

	// Map returns the writable contents of the buffer. The slice stays
	// valid until Unmap.
	Map() []byte

	// Unmap ends the write window opened by Map.
	Unmap()
}

// Path is mutable vector geometry.
type Path interface {
	// Reset removes all geometry.
	Reset()

	// Extend appends a copy of from transformed by t. from is not modified.
	Extend(from Path, t Mat2D)

	SetFillRule(rule FillRule)
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(ox, oy, ix, iy, x, y float32)
	Close()
}

// Paint describes how a path is filled or stroked.
type Paint interface {
	SetStyle(style PaintStyle)
	SetColor(color ARGB)
	SetThickness(thickness float32)
	SetJoin(join StrokeJoin)
	SetCap(c StrokeCap)
	SetBlendMode(mode BlendMode)
	SetGradient(gradient Gradient)
	InvalidateStroke()
}

// Gradient is an opaque backend gradient created by a Factory.
type Gradient any

// Image is a decoded raster image created by a Factory.
type Image interface {
	Width() int
	Height() int
}

// Renderer records the drawing of one frame.
//
// Implementations keep a stack of transforms and clip flags: StatePush
// saves the current transform, StatePop restores it and ends any clip
// set since the matching push.
type Renderer interface {
	StatePush()
	StatePop()

	// Transform right-multiplies the current transform by t.
	Transform(t Mat2D)

	// SetClip replaces the clip of the current state with path.
	SetClip(path Path)

	DrawPath(path Path, paint Paint)
	DrawImage(image Image, blend BlendMode, opacity float32)
	DrawImageMesh(image Image, vertices, uvs, indices Buffer, blend BlendMode, opacity float32)
}

// Factory creates backend resources for the engine.
type Factory interface {
	NewBuffer(typ BufferType, flags BufferFlags, size int) Buffer

	// NewPath builds a path from a command stream. The stream is read once.
	NewPath(commands iter.Seq[Command], rule FillRule) Path

	// DefaultPath returns an empty NonZero path.
	DefaultPath() Path

	// NewPaint returns a transparent source-over fill paint.
	NewPaint() Paint

	NewLinearGradient(sx, sy, ex, ey float32, colors []ARGB, stops []float32) Gradient
	NewRadialGradient(cx, cy, radius float32, colors []ARGB, stops []float32) Gradient

	// DecodeImage decodes an encoded image. It reports false, and never
	// panics, when the data cannot be decoded.
	DecodeImage(data []byte) (Image, bool)
}
