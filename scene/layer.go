// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// LayerState represents an open compositing layer.
type LayerState struct {
	// BlendMode specifies how this layer composites with layers below.
	// BlendClip layers only clip.
	BlendMode BlendMode

	// Alpha is the layer opacity (0.0 to 1.0)
	Alpha float32

	// Transform is the transform applied to Clip.
	Transform Affine

	// Clip is the clip shape of the layer. Nil means unbounded.
	Clip Shape

	// ClipBounds is the device-space bounding box of Clip.
	ClipBounds Rect
}

// IsClipOnly returns true if this layer only clips.
func (ls *LayerState) IsClipOnly() bool {
	return ls.BlendMode == BlendClip
}

// clampAlpha clamps alpha to [0, 1].
func clampAlpha(alpha float32) float32 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// LayerStack tracks open layers above an implicit root layer.
type LayerStack struct {
	layers []LayerState
}

// NewLayerStack creates an empty layer stack.
func NewLayerStack() *LayerStack {
	return &LayerStack{layers: make([]LayerState, 0, 8)}
}

// Push opens a layer.
func (s *LayerStack) Push(layer LayerState) {
	s.layers = append(s.layers, layer)
}

// Pop closes the top layer. It returns false when only the root is open.
func (s *LayerStack) Pop() (LayerState, bool) {
	if len(s.layers) == 0 {
		return LayerState{}, false
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	return top, true
}

// Top returns the innermost open layer, or nil at the root.
func (s *LayerStack) Top() *LayerState {
	if len(s.layers) == 0 {
		return nil
	}
	return &s.layers[len(s.layers)-1]
}

// Depth returns the number of open layers including the root.
func (s *LayerStack) Depth() int {
	return len(s.layers) + 1
}

// ClipDepth returns the number of open clip-only layers.
func (s *LayerStack) ClipDepth() int {
	n := 0
	for i := range s.layers {
		if s.layers[i].IsClipOnly() {
			n++
		}
	}
	return n
}

// Reset closes every layer.
func (s *LayerStack) Reset() {
	s.layers = s.layers[:0]
}

// All returns the open layers, outermost first.
func (s *LayerStack) All() []LayerState {
	return s.layers
}
