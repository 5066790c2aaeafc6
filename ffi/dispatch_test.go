// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ffi_test

import (
	"slices"
	"testing"

	"github.com/gogpu/rive/backend"
	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

func square() []renderer.Command {
	return []renderer.Command{
		{Verb: renderer.Move, Points: []renderer.Point{{X: 0, Y: 0}}},
		{Verb: renderer.Line, Points: []renderer.Point{{X: 10, Y: 0}}},
		{Verb: renderer.Line, Points: []renderer.Point{{X: 10, Y: 10}}},
		{Verb: renderer.Close},
	}
}

func TestDispatchDrawPath(t *testing.T) {
	d := ffi.NewDispatch(backend.NewFactory())
	path := d.PathNew(slices.Values(square()), renderer.NonZero)
	paint := d.PaintDefault()
	d.PaintSetColor(paint, 0xff00ff00)

	r := backend.NewRenderer(nil)
	rh, release := d.BindRenderer(r)
	d.RendererStatePush(rh)
	d.RendererTransform(rh, renderer.Mat2D{2, 0, 0, 2, 0, 0})
	d.RendererDrawPath(rh, path, paint)
	d.RendererStatePop(rh)
	release()

	if got := r.Scene().Encoding().ShapeCount(); got != 1 {
		t.Errorf("ShapeCount() = %d, want 1", got)
	}
	if b := r.Scene().Bounds(); b.MaxX != 20 || b.MaxY != 20 {
		t.Errorf("Bounds() = %+v, want max (20,20)", b)
	}
	if got := d.Handles().LenKind(ffi.KindRenderer); got != 0 {
		t.Errorf("renderer handles after release = %d, want 0", got)
	}
}

func TestDispatchIgnoresInvalidHandles(t *testing.T) {
	d := ffi.NewDispatch(backend.NewFactory())
	path := d.PathDefault()
	paint := d.PaintDefault()

	r := backend.NewRenderer(nil)
	rh, release := d.BindRenderer(r)
	defer release()

	// Swapped arguments and stale handles must not reach the backend.
	d.RendererDrawPath(rh, paint, path)
	d.RendererSetClip(rh, 12345)
	d.PathMoveTo(paint, 1, 1)
	d.PaintSetGradient(paint, path)
	d.RendererStatePush(path)

	d.PathRelease(path)
	d.PathRelease(path)
	d.PathLineTo(path, 1, 1)

	if !r.Scene().IsEmpty() {
		t.Error("invalid handles produced drawing")
	}
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if got := d.Handles().Len(); got != 2 {
		t.Errorf("Len() = %d, want 2 (paint and renderer)", got)
	}
}

func TestDispatchGradientAndImage(t *testing.T) {
	d := ffi.NewDispatch(backend.NewFactory())
	g := d.GradientNewLinear(0, 0, 1, 0, []renderer.ARGB{0xffff0000, 0xff0000ff}, []float32{0, 1})
	paint := d.PaintDefault()
	d.PaintSetGradient(paint, g)
	d.GradientRelease(g)

	if h := d.ImageDecode([]byte("not an image")); h != 0 {
		t.Errorf("ImageDecode(garbage) = %d, want 0", h)
	}
	if got := d.Handles().LenKind(ffi.KindGradient); got != 0 {
		t.Errorf("gradient handles = %d, want 0", got)
	}
}

func TestDispatchBuffers(t *testing.T) {
	d := ffi.NewDispatch(backend.NewFactory())
	b := d.BufferNew(renderer.VertexBuffer, renderer.MappedOnceAtInitialization, 16)
	data := d.BufferMap(b)
	if len(data) != 16 {
		t.Fatalf("len(BufferMap()) = %d, want 16", len(data))
	}
	d.BufferUnmap(b)
	d.BufferRelease(b)
	if d.BufferMap(b) != nil {
		t.Error("BufferMap() on released handle should return nil")
	}
}
