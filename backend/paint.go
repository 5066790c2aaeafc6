// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/gogpu/rive/internal/logger"
	"github.com/gogpu/rive/renderer"
	"github.com/gogpu/rive/scene"
)

// Paint holds a fill or stroke style, a brush and a blend mode.
// A nil stroke means the paint fills.
type Paint struct {
	stroke *scene.StrokeStyle
	brush  scene.Brush
	blend  renderer.BlendMode
}

// NewPaint returns a transparent source-over fill paint.
func NewPaint() *Paint {
	return &Paint{
		brush: scene.SolidBrush(scene.Transparent),
		blend: renderer.SrcOver,
	}
}

// defaultStroke is a zero-width stroke with round caps and joins.
func defaultStroke() *scene.StrokeStyle {
	return &scene.StrokeStyle{
		Width:      0,
		MiterLimit: 4,
		StartCap:   scene.LineCapRound,
		EndCap:     scene.LineCapRound,
		Join:       scene.LineJoinRound,
	}
}

// strokeStyle returns the stroke, converting a fill paint to a default
// stroke first.
func (p *Paint) strokeStyle() *scene.StrokeStyle {
	if p.stroke == nil {
		p.stroke = defaultStroke()
	}
	return p.stroke
}

// IsStroke reports whether the paint strokes.
func (p *Paint) IsStroke() bool {
	return p.stroke != nil
}

// Stroke returns a copy of the stroke style, or nil for a fill paint.
func (p *Paint) Stroke() *scene.StrokeStyle {
	if p.stroke == nil {
		return nil
	}
	s := *p.stroke
	return &s
}

// Brush returns the paint brush.
func (p *Paint) Brush() scene.Brush {
	return p.brush
}

// BlendMode returns the engine blend mode.
func (p *Paint) BlendMode() renderer.BlendMode {
	return p.blend
}

// SetStyle implements renderer.Paint. Switching to Stroke keeps an
// existing stroke's parameters.
func (p *Paint) SetStyle(style renderer.PaintStyle) {
	if style == renderer.Stroke {
		p.strokeStyle()
		return
	}
	p.stroke = nil
}

// SetColor implements renderer.Paint.
func (p *Paint) SetColor(color renderer.ARGB) {
	p.brush = scene.SolidBrush(sceneColor(color))
}

// SetThickness implements renderer.Paint.
func (p *Paint) SetThickness(thickness float32) {
	p.strokeStyle().Width = thickness
}

// SetJoin implements renderer.Paint.
func (p *Paint) SetJoin(join renderer.StrokeJoin) {
	s := p.strokeStyle()
	switch join {
	case renderer.JoinRound:
		s.Join = scene.LineJoinRound
	case renderer.JoinBevel:
		s.Join = scene.LineJoinBevel
	default:
		s.Join = scene.LineJoinMiter
	}
}

// SetCap implements renderer.Paint. Both ends get the same cap.
func (p *Paint) SetCap(c renderer.StrokeCap) {
	s := p.strokeStyle()
	switch c {
	case renderer.CapRound:
		s.StartCap = scene.LineCapRound
	case renderer.CapSquare:
		s.StartCap = scene.LineCapSquare
	default:
		s.StartCap = scene.LineCapButt
	}
	s.EndCap = s.StartCap
}

// SetBlendMode implements renderer.Paint.
func (p *Paint) SetBlendMode(mode renderer.BlendMode) {
	p.blend = mode
}

// SetGradient implements renderer.Paint. The gradient is copied.
func (p *Paint) SetGradient(gradient renderer.Gradient) {
	g, ok := gradient.(*Gradient)
	if !ok || g == nil {
		logger.Get().Warn("backend: SetGradient with foreign gradient", "type", typeName(gradient))
		return
	}
	p.brush = scene.GradientBrush(g.g.Clone())
}

// InvalidateStroke implements renderer.Paint.
func (p *Paint) InvalidateStroke() {}
