// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// Scene is the retained mode container for accumulating drawing operations.
// It builds an Encoding that can be handed to a GPU renderer or inspected
// with a Decoder.
//
// Every operation takes its transform explicitly; the scene keeps no
// transform state of its own.
//
// Example:
//
//	s := NewScene()
//	s.PushLayer(BlendClip, 1, IdentityAffine(), clipPath)
//	s.Fill(FillNonZero, IdentityAffine(), SolidBrush(red), nil, shape)
//	s.PopLayer()
//	enc := s.Encoding()
type Scene struct {
	// encoding accumulates all commands
	encoding *Encoding

	// layers tracks open layers so PopLayer can be balanced
	layers *LayerStack

	// version is incremented on each modification for cache invalidation
	version uint64

	// images holds the images referenced by Image commands
	images []*Image
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{
		encoding: NewEncoding(),
		layers:   NewLayerStack(),
		images:   make([]*Image, 0, 8),
	}
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.encoding.Reset()
	s.layers.Reset()
	s.images = s.images[:0]
	s.version++
}

// Fill fills shape with brush. brushTransform, when non-nil, maps brush
// space into shape space.
func (s *Scene) Fill(style FillStyle, transform Affine, brush Brush, brushTransform *Affine, shape Shape) {
	path := shapePath(shape)
	if path == nil {
		return
	}

	s.encoding.EncodeTransform(transform)
	s.encoding.EncodePath(path, style)
	if brushTransform != nil {
		s.encoding.EncodeBrushTransform(*brushTransform)
	}
	s.encoding.EncodeFill(brush, style)
	s.encoding.ExpandBounds(transform.TransformRect(shape.Bounds()))
	s.version++
}

// Stroke strokes shape with brush.
func (s *Scene) Stroke(style *StrokeStyle, transform Affine, brush Brush, brushTransform *Affine, shape Shape) {
	path := shapePath(shape)
	if path == nil {
		return
	}
	if style == nil {
		style = DefaultStrokeStyle(1)
	}

	s.encoding.EncodeTransform(transform)
	s.encoding.EncodePath(path, FillNonZero)
	if brushTransform != nil {
		s.encoding.EncodeBrushTransform(*brushTransform)
	}
	s.encoding.EncodeStroke(brush, style)

	// Expand bounds by half the stroke width on each side.
	b := shape.Bounds()
	hw := style.Width / 2
	b = Rect{MinX: b.MinX - hw, MinY: b.MinY - hw, MaxX: b.MaxX + hw, MaxY: b.MaxY + hw}
	s.encoding.ExpandBounds(transform.TransformRect(b))
	s.version++
}

// DrawImage draws img with its top-left corner at the transform origin.
func (s *Scene) DrawImage(img *Image, transform Affine) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return
	}

	//nolint:gosec // image count is bounded by slice length
	idx := uint32(len(s.images))
	s.images = append(s.images, img)
	s.encoding.EncodeImage(idx, transform)
	s.encoding.ExpandBounds(transform.TransformRect(Rect{
		MaxX: float32(img.Width),
		MaxY: float32(img.Height),
	}))
	s.version++
}

// PushLayer opens a compositing layer clipped to clip under transform.
// Content drawn until the matching PopLayer is composited with blend and
// alpha. A BlendClip layer only clips.
func (s *Scene) PushLayer(blend BlendMode, alpha float32, transform Affine, clip Shape) {
	alpha = clampAlpha(alpha)
	clipBounds := EmptyRect()

	s.encoding.EncodeTransform(transform)
	if path := shapePath(clip); path != nil {
		s.encoding.EncodePath(path, FillNonZero)
		clipBounds = transform.TransformRect(clip.Bounds())
	} else {
		s.encoding.EncodePath(nil, FillNonZero)
	}
	s.encoding.EncodePushLayer(blend, alpha)

	s.layers.Push(LayerState{
		BlendMode:  blend,
		Alpha:      alpha,
		Transform:  transform,
		Clip:       clip,
		ClipBounds: clipBounds,
	})
	s.version++
}

// PopLayer closes the innermost layer. It returns false, and encodes
// nothing, when no layer is open.
func (s *Scene) PopLayer() bool {
	if _, ok := s.layers.Pop(); !ok {
		return false
	}
	s.encoding.EncodePopLayer()
	s.version++
	return true
}

// TopLayer returns the innermost open layer, or nil.
func (s *Scene) TopLayer() *LayerState {
	return s.layers.Top()
}

// Encoding returns the scene's encoding.
func (s *Scene) Encoding() *Encoding {
	return s.encoding
}

// Images returns the images referenced by Image commands, by index.
func (s *Scene) Images() []*Image {
	return s.images
}

// Bounds returns the bounding box of all drawn content.
func (s *Scene) Bounds() Rect {
	return s.encoding.Bounds()
}

// Version returns the modification counter.
func (s *Scene) Version() uint64 {
	return s.version
}

// IsEmpty returns true if nothing has been recorded.
func (s *Scene) IsEmpty() bool {
	return s.encoding.IsEmpty()
}

// LayerDepth returns the number of open layers including the root.
func (s *Scene) LayerDepth() int {
	return s.layers.Depth()
}

// ClipDepth returns the number of open clip-only layers.
func (s *Scene) ClipDepth() int {
	return s.layers.ClipDepth()
}

func shapePath(shape Shape) *Path {
	if shape == nil {
		return nil
	}
	path := shape.ToPath()
	if path == nil || path.IsEmpty() {
		return nil
	}
	return path
}
