// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// BlendMode represents a compositing blend mode.
type BlendMode uint32

// Blend mode constants. BlendNormal is source-over compositing.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	// BlendClip marks a clip-only layer: its shape masks the content drawn
	// until the matching PopLayer and nothing is composited for the layer
	// itself.
	BlendClip
)

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	case BlendHue:
		return "Hue"
	case BlendSaturation:
		return "Saturation"
	case BlendColor:
		return "Color"
	case BlendLuminosity:
		return "Luminosity"
	case BlendClip:
		return "Clip"
	default:
		return unknownStr
	}
}

// IsHSL returns true if this is an HSL-based non-separable blend mode.
func (mode BlendMode) IsHSL() bool {
	return mode >= BlendHue && mode <= BlendLuminosity
}

// FillStyle represents the fill rule for paths.
type FillStyle uint32

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillStyle = 0
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd FillStyle = 1
)

// String returns the fill rule name.
func (s FillStyle) String() string {
	switch s {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// LineCap specifies the shape of stroke endpoints.
type LineCap uint32

// Line cap constants.
const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of stroke corners.
type LineJoin uint32

// Line join constants.
const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// StrokeStyle defines stroke parameters.
type StrokeStyle struct {
	Width      float32
	MiterLimit float32
	StartCap   LineCap
	EndCap     LineCap
	Join       LineJoin
}

// DefaultStrokeStyle returns a stroke of the given width with butt caps,
// miter joins and a miter limit of 4.
func DefaultStrokeStyle(width float32) *StrokeStyle {
	return &StrokeStyle{
		Width:      width,
		MiterLimit: 4.0,
		StartCap:   LineCapButt,
		EndCap:     LineCapButt,
		Join:       LineJoinMiter,
	}
}
