// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float32
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// EmptyRect returns a rectangle that contains nothing. Union with any
// point or rectangle yields that point or rectangle.
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle contains nothing.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include a point.
func (r Rect) UnionPoint(x, y float32) Rect {
	return Rect{
		MinX: min(r.MinX, x),
		MinY: min(r.MinY, y),
		MaxX: max(r.MaxX, x),
		MaxY: max(r.MaxY, y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// TranslateAffine creates a translation transformation.
func TranslateAffine(x, y float32) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

// ScaleAffine creates a scaling transformation.
func ScaleAffine(x, y float32) Affine {
	return Affine{A: x, E: y}
}

// RotateAffine creates a rotation transformation (angle in radians).
func RotateAffine(angle float32) Affine {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Affine{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns a*b: the transform that applies b first, then a.
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// PreTranslate returns a translated by (x, y) before a is applied.
func (a Affine) PreTranslate(x, y float32) Affine {
	return a.Multiply(TranslateAffine(x, y))
}

// PreScale returns a scaled uniformly by s before a is applied.
func (a Affine) PreScale(s float32) Affine {
	return a.Multiply(ScaleAffine(s, s))
}

// PreScaleAbout returns a scaled uniformly by s around (ox, oy) before a
// is applied.
func (a Affine) PreScaleAbout(s, ox, oy float32) Affine {
	return a.PreTranslate(ox, oy).PreScale(s).PreTranslate(-ox, -oy)
}

// Determinant returns the determinant of the linear part.
func (a Affine) Determinant() float32 {
	return a.A*a.E - a.B*a.D
}

// Invert returns the inverse transform. A singular matrix yields the
// identity and false.
func (a Affine) Invert() (Affine, bool) {
	det := a.Determinant()
	if det == 0 {
		return IdentityAffine(), false
	}
	inv := 1 / det
	return Affine{
		A: a.E * inv,
		B: -a.B * inv,
		C: (a.B*a.F - a.E*a.C) * inv,
		D: -a.D * inv,
		E: a.A * inv,
		F: (a.D*a.C - a.A*a.F) * inv,
	}, true
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(x, y float32) (float32, float32) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// TransformRect returns the bounding box of the transformed rectangle.
func (a Affine) TransformRect(r Rect) Rect {
	if r.IsEmpty() {
		return r
	}
	out := EmptyRect()
	for _, c := range [4][2]float32{
		{r.MinX, r.MinY}, {r.MaxX, r.MinY},
		{r.MinX, r.MaxY}, {r.MaxX, r.MaxY},
	} {
		x, y := a.TransformPoint(c[0], c[1])
		out = out.UnionPoint(x, y)
	}
	return out
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}

// IsFinite reports whether every coefficient is finite.
func (a Affine) IsFinite() bool {
	for _, v := range [6]float32{a.A, a.B, a.C, a.D, a.E, a.F} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
