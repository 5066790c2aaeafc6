// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import "math"

const unknownStr = "Unknown"

// FillRule selects how path interiors are determined.
type FillRule uint8

// Fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// Verb is a path command verb as emitted by the engine.
type Verb uint8

// Path verbs. The numeric values are fixed by the engine ABI.
const (
	Move  Verb = 0
	Line  Verb = 1
	Cubic Verb = 4
	Close Verb = 5
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case Move:
		return "Move"
	case Line:
		return "Line"
	case Cubic:
		return "Cubic"
	case Close:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of points a command with this verb carries.
func (v Verb) PointCount() int {
	switch v {
	case Move, Line:
		return 1
	case Cubic:
		return 3
	default:
		return 0
	}
}

// Point is a 2D point in engine coordinates.
type Point struct {
	X, Y float32
}

// Command is one path command. Points holds PointCount(Verb) points:
// the destination for Move and Line, the two control points and the
// destination for Cubic, and nothing for Close.
type Command struct {
	Verb   Verb
	Points []Point
}

// BufferType is the kind of data a Buffer holds.
type BufferType uint8

// Buffer types.
const (
	// IndexBuffer holds uint16 triangle indices.
	IndexBuffer BufferType = iota
	// VertexBuffer holds float32 (x, y) pairs.
	VertexBuffer
)

// String returns the buffer type name.
func (t BufferType) String() string {
	switch t {
	case IndexBuffer:
		return "Index"
	case VertexBuffer:
		return "Vertex"
	default:
		return unknownStr
	}
}

// BufferFlags are creation hints for buffers.
type BufferFlags uint32

// Buffer flags.
const (
	BufferFlagsNone BufferFlags = 0

	// MappedOnceAtInitialization marks a buffer that is written exactly
	// once, right after creation.
	MappedOnceAtInitialization BufferFlags = 1 << 0
)

// StrokeJoin is the shape of stroke corners.
type StrokeJoin uint8

// Stroke joins.
const (
	JoinMiter StrokeJoin = iota
	JoinRound
	JoinBevel
)

// StrokeCap is the shape of stroke endpoints.
type StrokeCap uint8

// Stroke caps.
const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// PaintStyle selects whether a paint fills or strokes.
type PaintStyle uint8

// Paint styles.
const (
	Stroke PaintStyle = iota
	Fill
)

// String returns the style name.
func (s PaintStyle) String() string {
	switch s {
	case Stroke:
		return "Stroke"
	case Fill:
		return "Fill"
	default:
		return unknownStr
	}
}

// BlendMode is the engine's blend mode. The numeric values are fixed by
// the engine ABI.
type BlendMode uint8

// Blend modes.
const (
	SrcOver    BlendMode = 3
	Screen     BlendMode = 14
	Overlay    BlendMode = 15
	Darken     BlendMode = 16
	Lighten    BlendMode = 17
	ColorDodge BlendMode = 18
	ColorBurn  BlendMode = 19
	HardLight  BlendMode = 20
	SoftLight  BlendMode = 21
	Difference BlendMode = 22
	Exclusion  BlendMode = 23
	Multiply   BlendMode = 24
	Hue        BlendMode = 25
	Saturation BlendMode = 26
	Color      BlendMode = 27
	Luminosity BlendMode = 28
)

var blendNames = map[BlendMode]string{
	SrcOver:    "SrcOver",
	Screen:     "Screen",
	Overlay:    "Overlay",
	Darken:     "Darken",
	Lighten:    "Lighten",
	ColorDodge: "ColorDodge",
	ColorBurn:  "ColorBurn",
	HardLight:  "HardLight",
	SoftLight:  "SoftLight",
	Difference: "Difference",
	Exclusion:  "Exclusion",
	Multiply:   "Multiply",
	Hue:        "Hue",
	Saturation: "Saturation",
	Color:      "Color",
	Luminosity: "Luminosity",
}

// String returns the blend mode name.
func (m BlendMode) String() string {
	if s, ok := blendNames[m]; ok {
		return s
	}
	return unknownStr
}

// IsValid reports whether m is a blend mode the engine defines.
func (m BlendMode) IsValid() bool {
	_, ok := blendNames[m]
	return ok
}

// ARGB is a 0xAARRGGBB color as produced by the engine.
type ARGB uint32

// RGBA returns the color channels.
func (c ARGB) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Mat2D is a 2x3 affine matrix in column-major order [a, b, c, d, e, f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Mat2D [6]float32

// Identity is the identity matrix.
var Identity = Mat2D{1, 0, 0, 1, 0, 0}

// Mul returns m*n: the transform that applies n first, then m.
func (m Mat2D) Mul(n Mat2D) Mat2D {
	return Mat2D{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Apply maps the point (x, y).
func (m Mat2D) Apply(x, y float32) (float32, float32) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Invert returns the inverse matrix, or the identity and false when m is
// singular.
func (m Mat2D) Invert() (Mat2D, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(float64(det)) {
		return Identity, false
	}
	inv := 1 / det
	return Mat2D{
		m[3] * inv,
		-m[1] * inv,
		-m[2] * inv,
		m[0] * inv,
		(m[2]*m[5] - m[3]*m[4]) * inv,
		(m[1]*m[4] - m[0]*m[5]) * inv,
	}, true
}
