// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// Shape is geometry that can be drawn or used as a layer clip.
// Both *Path and Rect implement it.
type Shape interface {
	ToPath() *Path
	Bounds() Rect
}

var (
	_ Shape = (*Path)(nil)
	_ Shape = Rect{}
)

// NewRect returns the rectangle with top-left corner (x, y).
func NewRect(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// ToPath returns r as a closed path. An empty rectangle yields an empty
// path.
func (r Rect) ToPath() *Path {
	if r.IsEmpty() {
		return NewPath()
	}
	return NewPath().Rectangle(r.MinX, r.MinY, r.Width(), r.Height())
}

// Bounds returns r.
func (r Rect) Bounds() Rect { return r }
