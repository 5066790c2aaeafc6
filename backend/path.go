// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"iter"

	"github.com/gogpu/rive/internal/logger"
	"github.com/gogpu/rive/renderer"
	"github.com/gogpu/rive/scene"
)

// Path is a scene path with a fill rule.
type Path struct {
	path *scene.Path
	rule scene.FillStyle
}

// NewPath builds a path from an engine command stream.
func NewPath(commands iter.Seq[renderer.Command], rule renderer.FillRule) *Path {
	p := &Path{path: scene.NewPath()}
	if commands != nil {
		for cmd := range commands {
			p.apply(cmd)
		}
	}
	p.SetFillRule(rule)
	return p
}

func (p *Path) apply(cmd renderer.Command) {
	if len(cmd.Points) < cmd.Verb.PointCount() {
		logger.Get().Warn("backend: short path command", "verb", cmd.Verb, "points", len(cmd.Points))
		return
	}
	pts := cmd.Points
	switch cmd.Verb {
	case renderer.Move:
		p.MoveTo(pts[0].X, pts[0].Y)
	case renderer.Line:
		p.LineTo(pts[0].X, pts[0].Y)
	case renderer.Cubic:
		p.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
	case renderer.Close:
		p.Close()
	default:
		logger.Get().Warn("backend: unknown path verb", "verb", uint8(cmd.Verb))
	}
}

// Scene returns the underlying scene path.
func (p *Path) Scene() *scene.Path {
	return p.path
}

// FillRule returns the scene fill rule.
func (p *Path) FillRule() scene.FillStyle {
	return p.rule
}

// Reset implements renderer.Path.
func (p *Path) Reset() {
	p.path.Reset()
}

// Extend implements renderer.Path. from must be a *Path.
func (p *Path) Extend(from renderer.Path, t renderer.Mat2D) {
	src, ok := from.(*Path)
	if !ok {
		logger.Get().Warn("backend: Extend with foreign path", "type", typeName(from))
		return
	}
	p.path.Extend(src.path, sceneAffine(t))
}

// SetFillRule implements renderer.Path.
func (p *Path) SetFillRule(rule renderer.FillRule) {
	if rule == renderer.EvenOdd {
		p.rule = scene.FillEvenOdd
	} else {
		p.rule = scene.FillNonZero
	}
}

// MoveTo implements renderer.Path.
func (p *Path) MoveTo(x, y float32) { p.path.MoveTo(x, y) }

// LineTo implements renderer.Path.
func (p *Path) LineTo(x, y float32) { p.path.LineTo(x, y) }

// CubicTo implements renderer.Path.
func (p *Path) CubicTo(ox, oy, ix, iy, x, y float32) { p.path.CubicTo(ox, oy, ix, iy, x, y) }

// Close implements renderer.Path.
func (p *Path) Close() { p.path.Close() }
