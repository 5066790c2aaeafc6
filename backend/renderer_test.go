// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/rive/renderer"
	"github.com/gogpu/rive/scene"
)

func rectPath(x, y, w, h float32) *Path {
	p := &Path{path: scene.NewPath()}
	p.path.Rectangle(x, y, w, h)
	return p
}

func testImage(w, h int) *Image {
	return &Image{img: &scene.Image{Width: w, Height: h, Data: make([]byte, w*h*4)}}
}

func TestRendererPushPopIdempotent(t *testing.T) {
	r := NewRenderer(nil)
	r.Transform(renderer.Mat2D{2, 0, 0, 2, 5, 5})
	depth, top := r.Depth(), r.Current()

	r.StatePush()
	if r.Depth() != depth+1 {
		t.Errorf("Depth() after push = %d, want %d", r.Depth(), depth+1)
	}
	if r.Current() != top {
		t.Errorf("Current() after push = %+v, want %+v", r.Current(), top)
	}
	r.StatePop()

	if r.Depth() != depth {
		t.Errorf("Depth() after push/pop = %d, want %d", r.Depth(), depth)
	}
	if r.Current() != top {
		t.Errorf("Current() after push/pop = %+v, want %+v", r.Current(), top)
	}
	if !r.Scene().IsEmpty() {
		t.Error("push/pop without clip should not touch the scene")
	}
}

func TestRendererPopRestoresTransform(t *testing.T) {
	r := NewRenderer(nil)
	r.StatePush()
	r.Transform(renderer.Mat2D{1, 0, 0, 1, 3, 4})
	r.StatePop()
	if !r.Current().IsIdentity() {
		t.Errorf("Current() = %+v, want identity", r.Current())
	}
}

func TestRendererPopFloor(t *testing.T) {
	r := NewRenderer(nil)
	r.Transform(renderer.Mat2D{1, 0, 0, 1, 3, 4})
	r.StatePop()
	r.StatePop()
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if !r.Current().IsIdentity() || r.ClipActive() {
		t.Error("floor level should be identity without clip")
	}
}

func TestRendererTransformRightMultiplies(t *testing.T) {
	r := NewRenderer(nil)
	r.Transform(renderer.Mat2D{1, 0, 0, 1, 10, 0}) // translate
	r.Transform(renderer.Mat2D{2, 0, 0, 2, 0, 0})  // then scale in local space
	x, y := r.Current().TransformPoint(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("Current() maps (1,1) to (%v,%v), want (12,2)", x, y)
	}
}

func TestRendererSetClipTwiceKeepsOneLayer(t *testing.T) {
	r := NewRenderer(nil)
	r.StatePush()
	r.SetClip(rectPath(0, 0, 10, 10))
	r.SetClip(rectPath(5, 5, 10, 10))

	if got := r.Scene().ClipDepth(); got != 1 {
		t.Fatalf("ClipDepth() = %d, want 1", got)
	}
	top := r.Scene().TopLayer()
	if top == nil || top.ClipBounds.MinX != 5 {
		t.Errorf("open clip = %+v, want the second clip", top)
	}

	r.StatePop()
	if got := r.Scene().ClipDepth(); got != 0 {
		t.Errorf("ClipDepth() after pop = %d, want 0", got)
	}
}

func TestRendererNestedClips(t *testing.T) {
	r := NewRenderer(nil)
	r.StatePush()
	r.SetClip(rectPath(0, 0, 10, 10))
	r.StatePush()
	r.SetClip(rectPath(0, 0, 5, 5))
	if got := r.Scene().ClipDepth(); got != 2 {
		t.Errorf("ClipDepth() = %d, want 2", got)
	}
	r.StatePop()
	if got := r.Scene().ClipDepth(); got != 1 {
		t.Errorf("ClipDepth() after inner pop = %d, want 1", got)
	}
}

func TestRendererDrawPathBlendLayer(t *testing.T) {
	tests := []struct {
		name   string
		blend  renderer.BlendMode
		layers int
	}{
		{"src over draws directly", renderer.SrcOver, 0},
		{"multiply uses layer", renderer.Multiply, 1},
		{"screen uses layer", renderer.Screen, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(nil)
			paint := NewPaint()
			paint.SetColor(0xff00ff00)
			paint.SetBlendMode(tt.blend)
			r.DrawPath(rectPath(0, 0, 4, 4), paint)

			enc := r.Scene().Encoding()
			if enc.LayerCount() != tt.layers {
				t.Errorf("LayerCount() = %d, want %d", enc.LayerCount(), tt.layers)
			}
			if enc.ShapeCount() != 1 {
				t.Errorf("ShapeCount() = %d, want 1", enc.ShapeCount())
			}
			if r.Scene().LayerDepth() != 1 {
				t.Errorf("LayerDepth() = %d, want 1 (balanced)", r.Scene().LayerDepth())
			}
		})
	}
}

func TestRendererDrawPathStroke(t *testing.T) {
	r := NewRenderer(nil)
	paint := NewPaint()
	paint.SetThickness(2)
	r.DrawPath(rectPath(0, 0, 4, 4), paint)

	dec := scene.NewDecoder(r.Scene().Encoding())
	strokes := 0
	for dec.Next() {
		switch dec.Tag() {
		case scene.TagBeginPath:
			dec.SkipPath()
		case scene.TagStroke:
			strokes++
		}
	}
	if strokes != 1 {
		t.Errorf("strokes = %d, want 1", strokes)
	}
}

func TestRendererDrawImageSkipsLayer(t *testing.T) {
	tests := []struct {
		name    string
		blend   renderer.BlendMode
		opacity float32
		layers  int
	}{
		{"normal opaque", renderer.SrcOver, 1, 0},
		{"normal translucent", renderer.SrcOver, 0.5, 1},
		{"blended opaque", renderer.Multiply, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(nil)
			r.DrawImage(testImage(4, 2), tt.blend, tt.opacity)
			if got := r.Scene().Encoding().LayerCount(); got != tt.layers {
				t.Errorf("LayerCount() = %d, want %d", got, tt.layers)
			}
		})
	}
}

func TestRendererDrawImageCentered(t *testing.T) {
	r := NewRenderer(nil)
	r.Transform(renderer.Mat2D{1, 0, 0, 1, 10, 10})
	r.DrawImage(testImage(4, 2), renderer.SrcOver, 1)
	b := r.Scene().Bounds()
	if b.MinX != 8 || b.MinY != 9 || b.MaxX != 12 || b.MaxY != 11 {
		t.Errorf("Bounds() = %+v, want (8,9)-(12,11)", b)
	}
}

func putFloats(b *Buffer, vals ...float32) {
	data := b.Map()
	for i, v := range vals {
		binary.NativeEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	b.Unmap()
}

func putIndices(b *Buffer, vals ...uint16) {
	data := b.Map()
	for i, v := range vals {
		binary.NativeEndian.PutUint16(data[i*2:], v)
	}
	b.Unmap()
}

func TestRendererDrawImageMesh(t *testing.T) {
	verts := NewBuffer(renderer.VertexBuffer, renderer.MappedOnceAtInitialization, 4*8)
	putFloats(verts, 0, 0, 10, 0, 10, 10, 0, 10)
	uvs := NewBuffer(renderer.VertexBuffer, renderer.MappedOnceAtInitialization, 4*8)
	putFloats(uvs, 0, 0, 1, 0, 1, 1, 0, 1)
	idx := NewBuffer(renderer.IndexBuffer, renderer.MappedOnceAtInitialization, 9*2)
	putIndices(idx, 0, 1, 2, 0, 2, 3, 0, 1, 9) // last triangle is out of range

	r := NewRenderer(nil)
	r.DrawImageMesh(testImage(8, 8), verts, uvs, idx, renderer.SrcOver, 1)

	enc := r.Scene().Encoding()
	if enc.ShapeCount() != 2 {
		t.Errorf("ShapeCount() = %d, want 2", enc.ShapeCount())
	}
	if enc.LayerCount() != 0 {
		t.Errorf("LayerCount() = %d, want 0", enc.LayerCount())
	}

	brushTransforms := 0
	dec := scene.NewDecoder(enc)
	for dec.Next() {
		switch dec.Tag() {
		case scene.TagBeginPath:
			dec.SkipPath()
		case scene.TagTransform:
			dec.Transform()
		case scene.TagBrushTransform:
			brushTransforms++
			bt := dec.Transform()
			// Pixel (8, 0) of the image sits at UV (1, 0), vertex (10, 0).
			x, y := bt.TransformPoint(8, 0)
			if !near(x, 10) || !near(y, 0) {
				t.Errorf("brush transform maps (8,0) to (%v,%v), want (10,0)", x, y)
			}
		case scene.TagFill:
			brush, _ := dec.Fill()
			if brush.Kind != scene.BrushImage {
				t.Errorf("mesh brush kind = %v, want Image", brush.Kind)
			}
		}
	}
	if brushTransforms != 2 {
		t.Errorf("brush transforms = %d, want 2", brushTransforms)
	}
}

func TestRendererDrawImageMeshBlended(t *testing.T) {
	verts := NewBuffer(renderer.VertexBuffer, 0, 3*8)
	putFloats(verts, 0, 0, 10, 0, 0, 10)
	uvs := NewBuffer(renderer.VertexBuffer, 0, 3*8)
	putFloats(uvs, 0, 0, 1, 0, 0, 1)
	idx := NewBuffer(renderer.IndexBuffer, 0, 3*2)
	putIndices(idx, 0, 1, 2)

	r := NewRenderer(nil)
	r.DrawImageMesh(testImage(2, 2), verts, uvs, idx, renderer.Overlay, 0.5)
	if got := r.Scene().Encoding().LayerCount(); got != 1 {
		t.Errorf("LayerCount() = %d, want 1", got)
	}
}

func TestRendererReset(t *testing.T) {
	r := NewRenderer(nil)
	r.StatePush()
	r.SetClip(rectPath(0, 0, 1, 1))
	r.Reset()
	if r.Depth() != 1 || r.ClipActive() || !r.Scene().IsEmpty() {
		t.Error("Reset() should restore a single identity level and empty scene")
	}
}
