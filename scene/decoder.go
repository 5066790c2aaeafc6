// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "math"

// Decoder provides sequential decoding of an Encoding's command stream.
// It tracks position indices across all data streams and provides
// methods to read each command type's associated data.
//
// Example usage:
//
//	dec := NewDecoder(encoding)
//	for dec.Next() {
//	    switch dec.Tag() {
//	    case TagBeginPath:
//	        path, rule := dec.CollectPath()
//	        // handle path
//	    case TagFill:
//	        brush, style := dec.Fill()
//	        // handle fill
//	    }
//	}
type Decoder struct {
	enc *Encoding

	tagIdx   int
	pathIdx  int
	drawIdx  int
	transIdx int

	currentTag Tag
}

// NewDecoder creates a new decoder for the given encoding.
// Returns nil if encoding is nil.
func NewDecoder(enc *Encoding) *Decoder {
	if enc == nil {
		return nil
	}
	return &Decoder{enc: enc}
}

// Reset resets the decoder to the beginning of enc.
func (d *Decoder) Reset(enc *Encoding) {
	*d = Decoder{enc: enc}
}

// Next advances to the next command in the stream.
func (d *Decoder) Next() bool {
	if d.enc == nil || d.tagIdx >= len(d.enc.tags) {
		return false
	}
	d.currentTag = d.enc.tags[d.tagIdx]
	d.tagIdx++
	return true
}

// Tag returns the current command tag.
func (d *Decoder) Tag() Tag {
	return d.currentTag
}

// HasMore returns true if there are more commands to decode.
func (d *Decoder) HasMore() bool {
	return d.enc != nil && d.tagIdx < len(d.enc.tags)
}

// Position returns the current position in the tag stream.
func (d *Decoder) Position() int {
	return d.tagIdx
}

// Transform reads a Transform or BrushTransform command.
func (d *Decoder) Transform() Affine {
	if d.transIdx >= len(d.enc.transforms) {
		return IdentityAffine()
	}
	t := d.enc.transforms[d.transIdx]
	d.transIdx++
	return t
}

func (d *Decoder) readDraw() uint32 {
	if d.drawIdx >= len(d.enc.drawData) {
		return 0
	}
	v := d.enc.drawData[d.drawIdx]
	d.drawIdx++
	return v
}

func (d *Decoder) readPoints(n int) []float32 {
	if d.pathIdx+n > len(d.enc.pathData) {
		d.pathIdx = len(d.enc.pathData)
		return make([]float32, n)
	}
	pts := d.enc.pathData[d.pathIdx : d.pathIdx+n]
	d.pathIdx += n
	return pts
}

// CollectPath reads path commands up to EndPath into a new Path.
// Only valid when Tag() == TagBeginPath.
func (d *Decoder) CollectPath() (*Path, FillStyle) {
	style := FillStyle(d.readDraw())
	path := NewPath()
	for d.Next() {
		switch d.currentTag {
		case TagMoveTo:
			p := d.readPoints(2)
			path.MoveTo(p[0], p[1])
		case TagLineTo:
			p := d.readPoints(2)
			path.LineTo(p[0], p[1])
		case TagCubicTo:
			p := d.readPoints(6)
			path.CubicTo(p[0], p[1], p[2], p[3], p[4], p[5])
		case TagClosePath:
			path.Close()
		case TagEndPath:
			return path, style
		}
	}
	return path, style
}

// SkipPath advances past the current path.
// Only valid when Tag() == TagBeginPath.
func (d *Decoder) SkipPath() {
	d.readDraw()
	for d.Next() {
		if d.currentTag == TagEndPath {
			return
		}
		d.readPoints(d.currentTag.DataSize())
	}
}

// Fill reads the current Fill command data.
func (d *Decoder) Fill() (Brush, FillStyle) {
	brushIdx := d.readDraw()
	style := FillStyle(d.readDraw())
	return d.brush(brushIdx), style
}

// Stroke reads the current Stroke command data.
func (d *Decoder) Stroke() (Brush, *StrokeStyle) {
	brushIdx := d.readDraw()
	style := &StrokeStyle{
		Width:      math.Float32frombits(d.readDraw()),
		MiterLimit: math.Float32frombits(d.readDraw()),
		StartCap:   LineCap(d.readDraw()),
		EndCap:     LineCap(d.readDraw()),
		Join:       LineJoin(d.readDraw()),
	}
	return d.brush(brushIdx), style
}

// PushLayer reads the current PushLayer command data.
func (d *Decoder) PushLayer() (BlendMode, float32) {
	blend := BlendMode(d.readDraw())
	alpha := math.Float32frombits(d.readDraw())
	return blend, alpha
}

// Image reads the current Image command data.
func (d *Decoder) Image() (uint32, Affine) {
	idx := d.readDraw()
	return idx, d.Transform()
}

func (d *Decoder) brush(idx uint32) Brush {
	if int(idx) < len(d.enc.brushes) {
		return d.enc.brushes[idx]
	}
	return Brush{}
}

// Encoding returns the encoding being decoded.
func (d *Decoder) Encoding() *Encoding {
	return d.enc
}
