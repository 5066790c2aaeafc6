// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "math"

// Encoding holds the dual-stream encoded representation of drawing commands.
// It uses separate streams for tags (1 byte each), path data, draw data,
// transforms and brushes.
type Encoding struct {
	// tags is the command stream (1 byte per command)
	tags []Tag

	// pathData holds coordinate data for path commands
	// MoveTo: 2, LineTo: 2, CubicTo: 6
	pathData []float32

	// drawData holds draw and layer parameters
	drawData []uint32

	// transforms holds geometry and brush transforms
	transforms []Affine

	// brushes holds brush definitions referenced by draw commands
	brushes []Brush

	// bounds tracks the cumulative device-space bounding box
	bounds Rect

	pathCount  int
	shapeCount int
	layerCount int
}

// NewEncoding creates a new empty encoding.
func NewEncoding() *Encoding {
	return &Encoding{
		tags:       make([]Tag, 0, 64),
		pathData:   make([]float32, 0, 256),
		drawData:   make([]uint32, 0, 32),
		transforms: make([]Affine, 0, 8),
		brushes:    make([]Brush, 0, 16),
		bounds:     EmptyRect(),
	}
}

// Reset clears the encoding for reuse without deallocating memory.
func (e *Encoding) Reset() {
	e.tags = e.tags[:0]
	e.pathData = e.pathData[:0]
	e.drawData = e.drawData[:0]
	e.transforms = e.transforms[:0]
	e.brushes = e.brushes[:0]
	e.bounds = EmptyRect()
	e.pathCount = 0
	e.shapeCount = 0
	e.layerCount = 0
}

// EncodeTransform adds a geometry transform command.
func (e *Encoding) EncodeTransform(t Affine) {
	e.tags = append(e.tags, TagTransform)
	e.transforms = append(e.transforms, t)
}

// EncodeBrushTransform adds a brush transform for the next draw.
func (e *Encoding) EncodeBrushTransform(t Affine) {
	e.tags = append(e.tags, TagBrushTransform)
	e.transforms = append(e.transforms, t)
}

// EncodePath encodes a complete path with its fill rule.
func (e *Encoding) EncodePath(p *Path, style FillStyle) {
	e.tags = append(e.tags, TagBeginPath)
	e.drawData = append(e.drawData, uint32(style))
	if p != nil {
		pointIdx := 0
		for _, verb := range p.verbs {
			switch verb {
			case VerbMoveTo:
				e.tags = append(e.tags, TagMoveTo)
			case VerbLineTo:
				e.tags = append(e.tags, TagLineTo)
			case VerbCubicTo:
				e.tags = append(e.tags, TagCubicTo)
			case VerbClose:
				e.tags = append(e.tags, TagClosePath)
			}
			n := verb.PointCount()
			e.pathData = append(e.pathData, p.points[pointIdx:pointIdx+n]...)
			pointIdx += n
		}
	}
	e.tags = append(e.tags, TagEndPath)
	e.pathCount++
}

// EncodeFill adds a fill command with the given brush and fill style.
func (e *Encoding) EncodeFill(brush Brush, style FillStyle) {
	brushIdx := len(e.brushes)
	e.brushes = append(e.brushes, brush)

	e.tags = append(e.tags, TagFill)
	//nolint:gosec // brush index is bounded by slice length
	e.drawData = append(e.drawData, uint32(brushIdx), uint32(style))
	e.shapeCount++
}

// EncodeStroke adds a stroke command with the given brush and stroke style.
func (e *Encoding) EncodeStroke(brush Brush, style *StrokeStyle) {
	if style == nil {
		style = DefaultStrokeStyle(1)
	}

	brushIdx := len(e.brushes)
	e.brushes = append(e.brushes, brush)

	e.tags = append(e.tags, TagStroke)
	//nolint:gosec // brush index is bounded by slice length
	e.drawData = append(e.drawData,
		uint32(brushIdx),
		math.Float32bits(style.Width),
		math.Float32bits(style.MiterLimit),
		uint32(style.StartCap),
		uint32(style.EndCap),
		uint32(style.Join),
	)
	e.shapeCount++
}

// EncodePushLayer pushes a compositing layer clipped to the last encoded path.
func (e *Encoding) EncodePushLayer(blend BlendMode, alpha float32) {
	e.tags = append(e.tags, TagPushLayer)
	e.drawData = append(e.drawData, uint32(blend), math.Float32bits(alpha))
	e.layerCount++
}

// EncodePopLayer pops the current compositing layer.
func (e *Encoding) EncodePopLayer() {
	e.tags = append(e.tags, TagPopLayer)
}

// EncodeImage encodes an image draw under transform.
func (e *Encoding) EncodeImage(imageIndex uint32, transform Affine) {
	e.tags = append(e.tags, TagImage)
	e.drawData = append(e.drawData, imageIndex)
	e.transforms = append(e.transforms, transform)
	e.shapeCount++
}

// ExpandBounds grows the cumulative bounds by r.
func (e *Encoding) ExpandBounds(r Rect) {
	if !r.IsEmpty() {
		e.bounds = e.bounds.Union(r)
	}
}

// Bounds returns the cumulative bounding box of all encoded content.
func (e *Encoding) Bounds() Rect {
	return e.bounds
}

// Hash computes a 64-bit FNV-1a hash of the encoding streams.
func (e *Encoding) Hash() uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)

	hash := uint64(fnvOffset)
	mix := func(v uint32) {
		hash ^= uint64(v)
		hash *= fnvPrime
	}

	for _, t := range e.tags {
		mix(uint32(t))
	}
	for _, v := range e.pathData {
		mix(math.Float32bits(v))
	}
	for _, v := range e.drawData {
		mix(v)
	}
	for _, t := range e.transforms {
		for _, v := range [6]float32{t.A, t.B, t.C, t.D, t.E, t.F} {
			mix(math.Float32bits(v))
		}
	}
	for _, b := range e.brushes {
		mix(uint32(b.Kind))
		mix(b.Color.ARGB())
	}

	return hash
}

// Clone creates a deep copy of the encoding streams. Brush gradients and
// images are shared.
func (e *Encoding) Clone() *Encoding {
	return &Encoding{
		tags:       append([]Tag(nil), e.tags...),
		pathData:   append([]float32(nil), e.pathData...),
		drawData:   append([]uint32(nil), e.drawData...),
		transforms: append([]Affine(nil), e.transforms...),
		brushes:    append([]Brush(nil), e.brushes...),
		bounds:     e.bounds,
		pathCount:  e.pathCount,
		shapeCount: e.shapeCount,
		layerCount: e.layerCount,
	}
}

// Tags returns the tag stream.
func (e *Encoding) Tags() []Tag { return e.tags }

// PathData returns the path data stream.
func (e *Encoding) PathData() []float32 { return e.pathData }

// DrawData returns the draw data stream.
func (e *Encoding) DrawData() []uint32 { return e.drawData }

// Transforms returns the transform stream.
func (e *Encoding) Transforms() []Affine { return e.transforms }

// Brushes returns the brush stream.
func (e *Encoding) Brushes() []Brush { return e.brushes }

// PathCount returns the number of encoded paths.
func (e *Encoding) PathCount() int { return e.pathCount }

// ShapeCount returns the number of fill, stroke and image draws.
func (e *Encoding) ShapeCount() int { return e.shapeCount }

// LayerCount returns the number of pushed layers.
func (e *Encoding) LayerCount() int { return e.layerCount }

// IsEmpty returns true if the encoding has no commands.
func (e *Encoding) IsEmpty() bool { return len(e.tags) == 0 }

// Size returns the approximate memory size of the encoded streams in bytes.
func (e *Encoding) Size() int {
	return len(e.tags) +
		len(e.pathData)*4 +
		len(e.drawData)*4 +
		len(e.transforms)*24
}
