// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ffi

import (
	"iter"

	"github.com/gogpu/rive/internal/logger"
	"github.com/gogpu/rive/renderer"
)

// Dispatch carries the engine's drawing callbacks to a renderer backend.
//
// Each method corresponds to one entry of the engine's renderer table.
// Constructors register the new object and return its handle; release
// methods drop exactly one handle. Handles that are unknown, released or
// of the wrong kind are logged and ignored.
//
// A Dispatch is created once per renderer.Factory and shared by every
// file loaded with that factory.
type Dispatch struct {
	factory renderer.Factory
	handles Handles
}

// NewDispatch returns a Dispatch creating resources with f.
func NewDispatch(f renderer.Factory) *Dispatch {
	return &Dispatch{factory: f}
}

// Factory returns the backend factory.
func (d *Dispatch) Factory() renderer.Factory {
	return d.factory
}

// Handles returns the handle table.
func (d *Dispatch) Handles() *Handles {
	return &d.handles
}

// BindRenderer makes r reachable from SceneDraw for the duration of one
// draw. The returned function releases the handle.
func (d *Dispatch) BindRenderer(r renderer.Renderer) (Handle, func()) {
	h := d.handles.Register(KindRenderer, r)
	return h, func() { d.release("renderer_release", h, KindRenderer) }
}

func lookup[T any](d *Dispatch, op string, h Handle, kind Kind) (T, bool) {
	var zero T
	v, err := d.handles.Lookup(h, kind)
	if err != nil {
		logger.Get().Warn("ffi: invalid handle", "op", op, "handle", uint64(h), "err", err)
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		logger.Get().Warn("ffi: handle holds unexpected value", "op", op, "handle", uint64(h))
		return zero, false
	}
	return t, true
}

func (d *Dispatch) release(op string, h Handle, kind Kind) any {
	v, err := d.handles.Release(h, kind)
	if err != nil {
		logger.Get().Warn("ffi: invalid handle", "op", op, "handle", uint64(h), "err", err)
		return nil
	}
	return v
}

// BufferNew creates a buffer of size bytes.
func (d *Dispatch) BufferNew(typ renderer.BufferType, flags renderer.BufferFlags, size int) Handle {
	return d.handles.Register(KindBuffer, d.factory.NewBuffer(typ, flags, size))
}

// BufferRelease releases a buffer.
func (d *Dispatch) BufferRelease(h Handle) {
	d.release("buffer_release", h, KindBuffer)
}

// BufferMap returns the writable contents of a buffer, or nil.
func (d *Dispatch) BufferMap(h Handle) []byte {
	b, ok := lookup[renderer.Buffer](d, "buffer_map", h, KindBuffer)
	if !ok {
		return nil
	}
	return b.Map()
}

// BufferUnmap ends the write window of a buffer.
func (d *Dispatch) BufferUnmap(h Handle) {
	if b, ok := lookup[renderer.Buffer](d, "buffer_unmap", h, KindBuffer); ok {
		b.Unmap()
	}
}

// PathDefault creates an empty path.
func (d *Dispatch) PathDefault() Handle {
	return d.handles.Register(KindPath, d.factory.DefaultPath())
}

// PathNew creates a path from a command stream.
func (d *Dispatch) PathNew(commands iter.Seq[renderer.Command], rule renderer.FillRule) Handle {
	return d.handles.Register(KindPath, d.factory.NewPath(commands, rule))
}

// PathRelease releases a path.
func (d *Dispatch) PathRelease(h Handle) {
	d.release("path_release", h, KindPath)
}

// PathReset clears a path.
func (d *Dispatch) PathReset(h Handle) {
	if p, ok := lookup[renderer.Path](d, "path_reset", h, KindPath); ok {
		p.Reset()
	}
}

// PathExtend appends from, transformed by t, to h.
func (d *Dispatch) PathExtend(h, from Handle, t renderer.Mat2D) {
	p, ok := lookup[renderer.Path](d, "path_extend", h, KindPath)
	if !ok {
		return
	}
	src, ok := lookup[renderer.Path](d, "path_extend", from, KindPath)
	if !ok {
		return
	}
	p.Extend(src, t)
}

// PathSetFillRule sets the fill rule of a path.
func (d *Dispatch) PathSetFillRule(h Handle, rule renderer.FillRule) {
	if p, ok := lookup[renderer.Path](d, "path_set_fill_rule", h, KindPath); ok {
		p.SetFillRule(rule)
	}
}

// PathMoveTo starts a subpath.
func (d *Dispatch) PathMoveTo(h Handle, x, y float32) {
	if p, ok := lookup[renderer.Path](d, "path_move_to", h, KindPath); ok {
		p.MoveTo(x, y)
	}
}

// PathLineTo appends a line.
func (d *Dispatch) PathLineTo(h Handle, x, y float32) {
	if p, ok := lookup[renderer.Path](d, "path_line_to", h, KindPath); ok {
		p.LineTo(x, y)
	}
}

// PathCubicTo appends a cubic curve.
func (d *Dispatch) PathCubicTo(h Handle, ox, oy, ix, iy, x, y float32) {
	if p, ok := lookup[renderer.Path](d, "path_cubic_to", h, KindPath); ok {
		p.CubicTo(ox, oy, ix, iy, x, y)
	}
}

// PathClose closes the current subpath.
func (d *Dispatch) PathClose(h Handle) {
	if p, ok := lookup[renderer.Path](d, "path_close", h, KindPath); ok {
		p.Close()
	}
}

// PaintDefault creates a default paint.
func (d *Dispatch) PaintDefault() Handle {
	return d.handles.Register(KindPaint, d.factory.NewPaint())
}

// PaintRelease releases a paint.
func (d *Dispatch) PaintRelease(h Handle) {
	d.release("paint_release", h, KindPaint)
}

func (d *Dispatch) paint(op string, h Handle) (renderer.Paint, bool) {
	return lookup[renderer.Paint](d, op, h, KindPaint)
}

// PaintSetStyle sets fill or stroke.
func (d *Dispatch) PaintSetStyle(h Handle, style renderer.PaintStyle) {
	if p, ok := d.paint("paint_set_style", h); ok {
		p.SetStyle(style)
	}
}

// PaintSetColor sets a solid color.
func (d *Dispatch) PaintSetColor(h Handle, color renderer.ARGB) {
	if p, ok := d.paint("paint_set_color", h); ok {
		p.SetColor(color)
	}
}

// PaintSetThickness sets the stroke width.
func (d *Dispatch) PaintSetThickness(h Handle, thickness float32) {
	if p, ok := d.paint("paint_set_thickness", h); ok {
		p.SetThickness(thickness)
	}
}

// PaintSetJoin sets the stroke join.
func (d *Dispatch) PaintSetJoin(h Handle, join renderer.StrokeJoin) {
	if p, ok := d.paint("paint_set_join", h); ok {
		p.SetJoin(join)
	}
}

// PaintSetCap sets the stroke caps.
func (d *Dispatch) PaintSetCap(h Handle, c renderer.StrokeCap) {
	if p, ok := d.paint("paint_set_cap", h); ok {
		p.SetCap(c)
	}
}

// PaintSetBlendMode sets the blend mode.
func (d *Dispatch) PaintSetBlendMode(h Handle, mode renderer.BlendMode) {
	if p, ok := d.paint("paint_set_blend_mode", h); ok {
		p.SetBlendMode(mode)
	}
}

// PaintSetGradient sets a gradient brush.
func (d *Dispatch) PaintSetGradient(h, gradient Handle) {
	p, ok := d.paint("paint_set_gradient", h)
	if !ok {
		return
	}
	g, err := d.handles.Lookup(gradient, KindGradient)
	if err != nil {
		logger.Get().Warn("ffi: invalid handle", "op", "paint_set_gradient", "handle", uint64(gradient), "err", err)
		return
	}
	p.SetGradient(g)
}

// PaintInvalidateStroke invalidates cached stroke geometry.
func (d *Dispatch) PaintInvalidateStroke(h Handle) {
	if p, ok := d.paint("paint_invalidate_stroke", h); ok {
		p.InvalidateStroke()
	}
}

// GradientNewLinear creates a linear gradient.
func (d *Dispatch) GradientNewLinear(sx, sy, ex, ey float32, colors []renderer.ARGB, stops []float32) Handle {
	return d.handles.Register(KindGradient, d.factory.NewLinearGradient(sx, sy, ex, ey, colors, stops))
}

// GradientNewRadial creates a radial gradient.
func (d *Dispatch) GradientNewRadial(cx, cy, radius float32, colors []renderer.ARGB, stops []float32) Handle {
	return d.handles.Register(KindGradient, d.factory.NewRadialGradient(cx, cy, radius, colors, stops))
}

// GradientRelease releases a gradient.
func (d *Dispatch) GradientRelease(h Handle) {
	d.release("gradient_release", h, KindGradient)
}

// ImageDecode decodes an image. It returns 0 when decoding fails.
func (d *Dispatch) ImageDecode(data []byte) Handle {
	img, ok := d.factory.DecodeImage(data)
	if !ok {
		logger.Get().Debug("ffi: image decode failed", "size", len(data))
		return 0
	}
	return d.handles.Register(KindImage, img)
}

// ImageRelease releases an image.
func (d *Dispatch) ImageRelease(h Handle) {
	d.release("image_release", h, KindImage)
}

func (d *Dispatch) renderer(op string, h Handle) (renderer.Renderer, bool) {
	return lookup[renderer.Renderer](d, op, h, KindRenderer)
}

// RendererStatePush saves the renderer state.
func (d *Dispatch) RendererStatePush(r Handle) {
	if rr, ok := d.renderer("renderer_state_push", r); ok {
		rr.StatePush()
	}
}

// RendererStatePop restores the renderer state.
func (d *Dispatch) RendererStatePop(r Handle) {
	if rr, ok := d.renderer("renderer_state_pop", r); ok {
		rr.StatePop()
	}
}

// RendererTransform multiplies the current transform by t.
func (d *Dispatch) RendererTransform(r Handle, t renderer.Mat2D) {
	if rr, ok := d.renderer("renderer_transform", r); ok {
		rr.Transform(t)
	}
}

// RendererSetClip clips to a path.
func (d *Dispatch) RendererSetClip(r, path Handle) {
	rr, ok := d.renderer("renderer_set_clip", r)
	if !ok {
		return
	}
	if p, ok := lookup[renderer.Path](d, "renderer_set_clip", path, KindPath); ok {
		rr.SetClip(p)
	}
}

// RendererDrawPath draws a path with a paint.
func (d *Dispatch) RendererDrawPath(r, path, paint Handle) {
	rr, ok := d.renderer("renderer_draw_path", r)
	if !ok {
		return
	}
	p, ok := lookup[renderer.Path](d, "renderer_draw_path", path, KindPath)
	if !ok {
		return
	}
	if pt, ok := d.paint("renderer_draw_path", paint); ok {
		rr.DrawPath(p, pt)
	}
}

// RendererDrawImage draws an image.
func (d *Dispatch) RendererDrawImage(r, image Handle, blend renderer.BlendMode, opacity float32) {
	rr, ok := d.renderer("renderer_draw_image", r)
	if !ok {
		return
	}
	if img, ok := lookup[renderer.Image](d, "renderer_draw_image", image, KindImage); ok {
		rr.DrawImage(img, blend, opacity)
	}
}

// RendererDrawImageMesh draws a textured triangle mesh.
func (d *Dispatch) RendererDrawImageMesh(r, image, vertices, uvs, indices Handle, blend renderer.BlendMode, opacity float32) {
	const op = "renderer_draw_image_mesh"
	rr, ok := d.renderer(op, r)
	if !ok {
		return
	}
	img, ok := lookup[renderer.Image](d, op, image, KindImage)
	if !ok {
		return
	}
	v, ok1 := lookup[renderer.Buffer](d, op, vertices, KindBuffer)
	uv, ok2 := lookup[renderer.Buffer](d, op, uvs, KindBuffer)
	idx, ok3 := lookup[renderer.Buffer](d, op, indices, KindBuffer)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	rr.DrawImageMesh(img, v, uv, idx, blend, opacity)
}
