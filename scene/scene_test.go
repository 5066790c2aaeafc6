// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "testing"

var red = Color{R: 255, A: 255}

func TestNewScene(t *testing.T) {
	s := NewScene()
	if !s.IsEmpty() {
		t.Error("new scene should be empty")
	}
	if s.Version() != 0 {
		t.Errorf("Version() = %d, want 0", s.Version())
	}
	if s.LayerDepth() != 1 {
		t.Errorf("LayerDepth() = %d, want 1 (root layer)", s.LayerDepth())
	}
	if s.ClipDepth() != 0 {
		t.Errorf("ClipDepth() = %d, want 0", s.ClipDepth())
	}
}

func TestSceneFillBounds(t *testing.T) {
	s := NewScene()
	s.Fill(FillNonZero, TranslateAffine(5, 5), SolidBrush(red), nil, NewRect(10, 20, 100, 50))

	b := s.Bounds()
	if b.MinX != 15 || b.MinY != 25 || b.MaxX != 115 || b.MaxY != 75 {
		t.Errorf("Bounds() = %+v, want (15,25)-(115,75)", b)
	}
	if got := s.Encoding().ShapeCount(); got != 1 {
		t.Errorf("ShapeCount() = %d, want 1", got)
	}
}

func TestSceneFillEmptyShape(t *testing.T) {
	s := NewScene()
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(red), nil, NewPath())
	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(red), nil, nil)
	if !s.IsEmpty() {
		t.Error("empty shapes should not be encoded")
	}
}

func TestSceneStrokeBounds(t *testing.T) {
	s := NewScene()
	s.Stroke(DefaultStrokeStyle(4), IdentityAffine(), SolidBrush(red), nil, NewRect(0, 0, 10, 10))
	b := s.Bounds()
	if b.MinX != -2 || b.MaxX != 12 {
		t.Errorf("Bounds() = %+v, want x in [-2, 12]", b)
	}
}

func TestSceneLayers(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendClip, 1, IdentityAffine(), NewRect(0, 0, 10, 10))
	s.PushLayer(BlendMultiply, 2, IdentityAffine(), NewRect(0, 0, 5, 5))

	if s.LayerDepth() != 3 {
		t.Errorf("LayerDepth() = %d, want 3", s.LayerDepth())
	}
	if s.ClipDepth() != 1 {
		t.Errorf("ClipDepth() = %d, want 1", s.ClipDepth())
	}
	if top := s.TopLayer(); top == nil || top.Alpha != 1 {
		t.Errorf("TopLayer().Alpha = %v, want clamped 1", top)
	}

	if !s.PopLayer() || !s.PopLayer() {
		t.Fatal("PopLayer() = false with open layers")
	}
	if s.PopLayer() {
		t.Error("PopLayer() at root = true, want false")
	}
	if got := s.Encoding().LayerCount(); got != 2 {
		t.Errorf("LayerCount() = %d, want 2", got)
	}
}

func TestSceneDrawImage(t *testing.T) {
	s := NewScene()
	img := &Image{Width: 4, Height: 2, Data: make([]byte, 32)}
	s.DrawImage(img, TranslateAffine(-2, -1))
	s.DrawImage(&Image{}, IdentityAffine())

	if len(s.Images()) != 1 {
		t.Fatalf("len(Images()) = %d, want 1", len(s.Images()))
	}
	b := s.Bounds()
	if b.MinX != -2 || b.MinY != -1 || b.MaxX != 2 || b.MaxY != 1 {
		t.Errorf("Bounds() = %+v, want (-2,-1)-(2,1)", b)
	}
}

func TestSceneReset(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendClip, 1, IdentityAffine(), NewRect(0, 0, 1, 1))
	v := s.Version()
	s.Reset()
	if !s.IsEmpty() || s.LayerDepth() != 1 {
		t.Error("Reset() should clear encoding and layers")
	}
	if s.Version() <= v {
		t.Error("version should increment after Reset()")
	}
}

func TestDecoderRoundTrip(t *testing.T) {
	s := NewScene()
	path := NewPath().MoveTo(0, 0).LineTo(10, 0).CubicTo(10, 5, 5, 10, 0, 10).Close()
	bt := ScaleAffine(2, 2)
	s.PushLayer(BlendScreen, 0.5, IdentityAffine(), path)
	s.Fill(FillEvenOdd, TranslateAffine(1, 2), SolidBrush(red), &bt, path)
	s.Stroke(&StrokeStyle{Width: 3, StartCap: LineCapRound, EndCap: LineCapRound, Join: LineJoinBevel}, IdentityAffine(), SolidBrush(red), nil, path)
	s.PopLayer()

	dec := NewDecoder(s.Encoding())
	var tags []Tag
	for dec.Next() {
		tags = append(tags, dec.Tag())
		switch dec.Tag() {
		case TagBeginPath:
			got, _ := dec.CollectPath()
			if !got.Equal(path) {
				t.Errorf("CollectPath() = %v, want %v", got.Verbs(), path.Verbs())
			}
		case TagTransform, TagBrushTransform:
			dec.Transform()
		case TagPushLayer:
			blend, alpha := dec.PushLayer()
			if blend != BlendScreen || alpha != 0.5 {
				t.Errorf("PushLayer() = (%v, %v), want (Screen, 0.5)", blend, alpha)
			}
		case TagFill:
			brush, style := dec.Fill()
			if brush.Color != red || style != FillEvenOdd {
				t.Errorf("Fill() = (%+v, %v), want red EvenOdd", brush, style)
			}
		case TagStroke:
			_, style := dec.Stroke()
			if style.Width != 3 || style.EndCap != LineCapRound || style.Join != LineJoinBevel {
				t.Errorf("Stroke() style = %+v", style)
			}
		}
	}

	want := []Tag{
		TagTransform, TagBeginPath, TagPushLayer,
		TagTransform, TagBeginPath, TagBrushTransform, TagFill,
		TagTransform, TagBeginPath, TagStroke,
		TagPopLayer,
	}
	if len(tags) != len(want) {
		t.Fatalf("decoded %d top-level tags %v, want %d", len(tags), tags, len(want))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag[%d] = %v, want %v", i, tags[i], want[i])
		}
	}
}

func TestEncodingHashChanges(t *testing.T) {
	a := NewScene()
	b := NewScene()
	a.Fill(FillNonZero, IdentityAffine(), SolidBrush(red), nil, NewRect(0, 0, 1, 1))
	b.Fill(FillNonZero, IdentityAffine(), SolidBrush(red), nil, NewRect(0, 0, 1, 2))
	if a.Encoding().Hash() == b.Encoding().Hash() {
		t.Error("different scenes should hash differently")
	}
	if a.Encoding().Hash() != a.Encoding().Clone().Hash() {
		t.Error("Clone() should hash the same")
	}
}

func TestRectShape(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if want := (Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}); r.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", r.Bounds(), want)
	}
	if got := r.ToPath().Bounds(); got != r {
		t.Errorf("ToPath().Bounds() = %v, want %v", got, r)
	}
	if !EmptyRect().ToPath().IsEmpty() {
		t.Error("EmptyRect().ToPath() is not empty")
	}
}
