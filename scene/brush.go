// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// Color is a straight-alpha RGBA8 color.
type Color struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black.
var Transparent = Color{}

// ColorFromARGB unpacks a 0xAARRGGBB color integer.
func ColorFromARGB(argb uint32) Color {
	return Color{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// BrushKind identifies the type of brush.
type BrushKind uint32

// Brush kind constants.
const (
	BrushSolid BrushKind = iota
	BrushLinearGradient
	BrushRadialGradient
	BrushImage
)

// String returns the brush kind name.
func (k BrushKind) String() string {
	switch k {
	case BrushSolid:
		return "Solid"
	case BrushLinearGradient:
		return "LinearGradient"
	case BrushRadialGradient:
		return "RadialGradient"
	case BrushImage:
		return "Image"
	default:
		return unknownStr
	}
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float32
	Color  Color
}

// Gradient describes a linear or radial color ramp. Stops are kept in the
// order they were given; offsets are not sorted or clamped.
type Gradient struct {
	Kind BrushKind

	// Start and End are the endpoints of a linear gradient.
	Start, End Point

	// Center and Radius describe a radial gradient.
	Center Point
	Radius float32

	Stops []ColorStop
}

// NewLinearGradient creates a linear gradient between two points.
func NewLinearGradient(start, end Point, stops []ColorStop) *Gradient {
	return &Gradient{Kind: BrushLinearGradient, Start: start, End: end, Stops: stops}
}

// NewRadialGradient creates a radial gradient around center.
func NewRadialGradient(center Point, radius float32, stops []ColorStop) *Gradient {
	return &Gradient{Kind: BrushRadialGradient, Center: center, Radius: radius, Stops: stops}
}

// Clone returns a deep copy of the gradient.
func (g *Gradient) Clone() *Gradient {
	if g == nil {
		return nil
	}
	c := *g
	c.Stops = append([]ColorStop(nil), g.Stops...)
	return &c
}

// Image is an RGBA8 raster with straight alpha, row-major, 4 bytes per pixel.
type Image struct {
	Width, Height int
	Data          []byte
}

// Brush describes how a fill or stroke is colored.
type Brush struct {
	Kind     BrushKind
	Color    Color
	Gradient *Gradient
	Image    *Image
}

// SolidBrush creates a solid color brush.
func SolidBrush(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}

// GradientBrush creates a brush from a gradient.
func GradientBrush(g *Gradient) Brush {
	if g == nil {
		return SolidBrush(Transparent)
	}
	return Brush{Kind: g.Kind, Gradient: g}
}

// ImageBrush creates a brush that samples an image.
func ImageBrush(img *Image) Brush {
	return Brush{Kind: BrushImage, Image: img}
}
