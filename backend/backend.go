// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend implements the renderer capability set on top of the
// scene graph in package scene.
//
// Importing the package registers it with the renderer registry under
// the name "scene":
//
//	f, err := renderer.NewFactory(backend.Name)
//
// A Renderer records one frame into a scene.Scene. Transforms and clips
// follow the engine's save/restore model: each state level owns at most
// one clip layer, and blend modes other than source-over are isolated in
// a temporary layer around the draw.
package backend

import (
	"hash/fnv"
	"iter"

	"github.com/gogpu/rive/internal/cache"
	"github.com/gogpu/rive/internal/logger"
	"github.com/gogpu/rive/renderer"
	"github.com/gogpu/rive/scene"
)

// Name is the registry name of this backend.
const Name = "scene"

func init() {
	renderer.Register(Name, func() (renderer.Factory, error) {
		return NewFactory(), nil
	})
}

var (
	_ renderer.Factory  = (*Factory)(nil)
	_ renderer.Renderer = (*Renderer)(nil)
	_ renderer.Path     = (*Path)(nil)
	_ renderer.Paint    = (*Paint)(nil)
	_ renderer.Image    = (*Image)(nil)
	_ renderer.Buffer   = (*Buffer)(nil)
)

// ImageCacheSize is the number of decoded images a Factory keeps.
const ImageCacheSize = 64

// Factory creates scene-backed resources. Decoded images are shared
// between files that embed the same bytes.
type Factory struct {
	images *cache.Cache[imageKey, *Image]
}

type imageKey struct {
	sum uint64
	n   int
}

// NewFactory returns a Factory.
func NewFactory() *Factory {
	return &Factory{images: cache.New[imageKey, *Image](ImageCacheSize)}
}

// NewBuffer implements renderer.Factory.
func (f *Factory) NewBuffer(typ renderer.BufferType, flags renderer.BufferFlags, size int) renderer.Buffer {
	return NewBuffer(typ, flags, size)
}

// NewPath implements renderer.Factory.
func (f *Factory) NewPath(commands iter.Seq[renderer.Command], rule renderer.FillRule) renderer.Path {
	return NewPath(commands, rule)
}

// DefaultPath implements renderer.Factory.
func (f *Factory) DefaultPath() renderer.Path {
	return &Path{path: scene.NewPath()}
}

// NewPaint implements renderer.Factory.
func (f *Factory) NewPaint() renderer.Paint {
	return NewPaint()
}

// NewLinearGradient implements renderer.Factory.
func (f *Factory) NewLinearGradient(sx, sy, ex, ey float32, colors []renderer.ARGB, stops []float32) renderer.Gradient {
	return &Gradient{g: scene.NewLinearGradient(
		scene.Point{X: sx, Y: sy},
		scene.Point{X: ex, Y: ey},
		zipStops(colors, stops),
	)}
}

// NewRadialGradient implements renderer.Factory.
func (f *Factory) NewRadialGradient(cx, cy, radius float32, colors []renderer.ARGB, stops []float32) renderer.Gradient {
	return &Gradient{g: scene.NewRadialGradient(
		scene.Point{X: cx, Y: cy},
		radius,
		zipStops(colors, stops),
	)}
}

// DecodeImage implements renderer.Factory.
func (f *Factory) DecodeImage(data []byte) (renderer.Image, bool) {
	h := fnv.New64a()
	h.Write(data)
	key := imageKey{sum: h.Sum64(), n: len(data)}

	if img, ok := f.images.Get(key); ok {
		return img, true
	}
	img, err := DecodeImage(data)
	if err != nil {
		logger.Get().Debug("backend: image decode failed", "bytes", len(data), "err", err)
		return nil, false
	}
	img, _ = f.images.LoadOrStore(key, img)
	return img, true
}

// Gradient is a scene gradient.
type Gradient struct {
	g *scene.Gradient
}

// Scene returns the underlying scene gradient.
func (g *Gradient) Scene() *scene.Gradient {
	return g.g
}

// zipStops pairs colors with offsets. Extra entries in the longer slice
// are ignored; offsets are kept as given.
func zipStops(colors []renderer.ARGB, offsets []float32) []scene.ColorStop {
	n := min(len(colors), len(offsets))
	stops := make([]scene.ColorStop, n)
	for i := range n {
		stops[i] = scene.ColorStop{Offset: offsets[i], Color: sceneColor(colors[i])}
	}
	return stops
}

func sceneColor(c renderer.ARGB) scene.Color {
	r, g, b, a := c.RGBA()
	return scene.Color{R: r, G: g, B: b, A: a}
}

// sceneBlend maps an engine blend mode onto the scene. Unknown values
// fall back to normal compositing.
func sceneBlend(m renderer.BlendMode) scene.BlendMode {
	switch m {
	case renderer.Screen:
		return scene.BlendScreen
	case renderer.Overlay:
		return scene.BlendOverlay
	case renderer.Darken:
		return scene.BlendDarken
	case renderer.Lighten:
		return scene.BlendLighten
	case renderer.ColorDodge:
		return scene.BlendColorDodge
	case renderer.ColorBurn:
		return scene.BlendColorBurn
	case renderer.HardLight:
		return scene.BlendHardLight
	case renderer.SoftLight:
		return scene.BlendSoftLight
	case renderer.Difference:
		return scene.BlendDifference
	case renderer.Exclusion:
		return scene.BlendExclusion
	case renderer.Multiply:
		return scene.BlendMultiply
	case renderer.Hue:
		return scene.BlendHue
	case renderer.Saturation:
		return scene.BlendSaturation
	case renderer.Color:
		return scene.BlendColor
	case renderer.Luminosity:
		return scene.BlendLuminosity
	default:
		return scene.BlendNormal
	}
}

// sceneAffine converts a column-major engine matrix to a scene affine.
func sceneAffine(m renderer.Mat2D) scene.Affine {
	return scene.Affine{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}
