// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene provides a retained-mode vector scene graph that rive
// drawing commands are recorded into.
//
// The encoding uses a dual-stream layout inspired by vello:
//   - A compact tags stream (1 byte per command)
//   - Separate data streams for paths, draws, transforms and brushes
//
// Layers carry a blend mode, an alpha, a transform and a clip shape. A
// layer pushed with [BlendClip] only clips its content, which is how
// renderer clip regions are expressed.
package scene

// Tag represents a single-byte command identifier in the encoding stream.
// Tags are organized into groups by their high nibble:
//
//	0x0X: Transform operations
//	0x1X: Path commands
//	0x2X: Fill/Stroke operations
//	0x3X: Layer operations
//	0x5X: Image operations
type Tag byte

// Tag constants define all encoding commands.
const (
	// TagTransform sets the geometry transform of the next draw or layer.
	// Data: 1 Affine in the transforms stream.
	TagTransform Tag = 0x01

	// TagBrushTransform sets the brush transform of the next draw.
	// Data: 1 Affine in the transforms stream.
	TagBrushTransform Tag = 0x02

	// TagBeginPath marks the start of a new path.
	// Data: 1 uint32 fill style.
	TagBeginPath Tag = 0x10

	// TagMoveTo moves the current point without drawing.
	// Data: 2 float32 values [x, y]
	TagMoveTo Tag = 0x11

	// TagLineTo draws a line to the specified point.
	// Data: 2 float32 values [x, y]
	TagLineTo Tag = 0x12

	// TagCubicTo draws a cubic Bezier curve.
	// Data: 6 float32 values [c1x, c1y, c2x, c2y, x, y]
	TagCubicTo Tag = 0x14

	// TagClosePath closes the current subpath.
	TagClosePath Tag = 0x16

	// TagEndPath marks the end of a path definition.
	TagEndPath Tag = 0x17

	// TagFill fills the current path.
	// Data: 1 uint32 brush index, 1 uint32 fill style.
	TagFill Tag = 0x20

	// TagStroke strokes the current path.
	// Data: 1 uint32 brush index, then
	// [width, miterLimit, startCap, endCap, join].
	TagStroke Tag = 0x21

	// TagPushLayer pushes a compositing layer clipped to the current path.
	// Data: 1 uint32 blend mode, 1 float32 alpha.
	TagPushLayer Tag = 0x30

	// TagPopLayer pops the current compositing layer.
	TagPopLayer Tag = 0x31

	// TagImage draws an image.
	// Data: 1 uint32 image index, 1 Affine in the transforms stream.
	TagImage Tag = 0x51
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagTransform:
		return "Transform"
	case TagBrushTransform:
		return "BrushTransform"
	case TagBeginPath:
		return "BeginPath"
	case TagMoveTo:
		return "MoveTo"
	case TagLineTo:
		return "LineTo"
	case TagCubicTo:
		return "CubicTo"
	case TagClosePath:
		return "ClosePath"
	case TagEndPath:
		return "EndPath"
	case TagFill:
		return "Fill"
	case TagStroke:
		return "Stroke"
	case TagPushLayer:
		return "PushLayer"
	case TagPopLayer:
		return "PopLayer"
	case TagImage:
		return "Image"
	default:
		return unknownStr
	}
}

// IsPathCommand returns true if the tag is a path construction command.
func (t Tag) IsPathCommand() bool {
	return t >= TagBeginPath && t <= TagEndPath
}

// IsDrawCommand returns true if the tag is a draw command (fill/stroke/image).
func (t Tag) IsDrawCommand() bool {
	return t == TagFill || t == TagStroke || t == TagImage
}

// IsLayerCommand returns true if the tag is a layer command.
func (t Tag) IsLayerCommand() bool {
	return t == TagPushLayer || t == TagPopLayer
}

// DataSize returns the number of float32 values this tag consumes from pathData.
func (t Tag) DataSize() int {
	switch t {
	case TagMoveTo, TagLineTo:
		return 2
	case TagCubicTo:
		return 6
	default:
		return 0
	}
}
