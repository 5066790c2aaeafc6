// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"iter"
	"slices"
)

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo starts a new subpath.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of float32 coordinates this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2
	case VerbCubicTo:
		return 6
	default:
		return 0
	}
}

// Path represents a vector path for encoding.
// It stores path commands (verbs) and coordinate data separately.
// A Path is also a [Shape].
type Path struct {
	verbs  []PathVerb
	points []float32
	bounds Rect
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
		bounds: EmptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.bounds = EmptyRect()
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	return p
}

// CubicTo draws a cubic Bezier curve to (x, y) using (c1x, c1y) and
// (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	// Control points give a conservative bound.
	p.bounds = p.bounds.UnionPoint(c1x, c1y)
	p.bounds = p.bounds.UnionPoint(c2x, c2y)
	p.bounds = p.bounds.UnionPoint(x, y)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Extend appends a copy of other transformed by t. other is not modified.
func (p *Path) Extend(other *Path, t Affine) *Path {
	if other == nil {
		return p
	}
	p.verbs = append(p.verbs, other.verbs...)
	for i := 0; i+1 < len(other.points); i += 2 {
		x, y := t.TransformPoint(other.points[i], other.points[i+1])
		p.points = append(p.points, x, y)
		p.bounds = p.bounds.UnionPoint(x, y)
	}
	return p
}

// Bounds returns the control-point bounding box of the path.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// ToPath returns the path itself, making *Path a Shape.
func (p *Path) ToPath() *Path {
	return p
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream. The slice must not be modified.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the coordinate stream. The slice must not be modified.
func (p *Path) Points() []float32 {
	return p.points
}

// VerbCount returns the number of verbs.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// IsOpen reports whether the last subpath is not closed.
func (p *Path) IsOpen() bool {
	for i := len(p.verbs) - 1; i >= 0; i-- {
		switch p.verbs[i] {
		case VerbClose:
			return false
		case VerbMoveTo:
			return true
		}
	}
	return false
}

// Transform returns a transformed copy of the path.
func (p *Path) Transform(t Affine) *Path {
	return NewPath().Extend(p, t)
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		verbs:  slices.Clone(p.verbs),
		points: slices.Clone(p.points),
		bounds: p.bounds,
	}
}

// Equal reports whether two paths have identical verbs and points.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return slices.Equal(p.verbs, other.verbs) && slices.Equal(p.points, other.points)
}

// PathElement is a single path command with its points.
type PathElement struct {
	// Verb is the path command type.
	Verb PathVerb

	// Points contains the coordinates for this element:
	//   - MoveTo: 1 point (destination)
	//   - LineTo: 1 point (destination)
	//   - CubicTo: 3 points (control1, control2, destination)
	//   - Close: 0 points
	Points []Point
}

// Elements returns an iterator over the path elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		pointIdx := 0
		for _, verb := range p.verbs {
			elem := PathElement{Verb: verb}
			n := verb.PointCount()
			for j := 0; j < n; j += 2 {
				elem.Points = append(elem.Points, Point{p.points[pointIdx+j], p.points[pointIdx+j+1]})
			}
			pointIdx += n
			if !yield(elem) {
				return
			}
		}
	}
}
