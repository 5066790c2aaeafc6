// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.

	"github.com/gogpu/gputypes"
	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.

	"github.com/gogpu/rive/scene"
)

// Image decoding errors.
var (
	// ErrEmptyImage is returned for empty input or a zero-sized image.
	ErrEmptyImage = errors.New("backend: empty image")

	// ErrDecodePanic is returned when a decoder panicked on bad input.
	ErrDecodePanic = errors.New("backend: image decoder panicked")
)

// Image is a decoded RGBA8 image.
type Image struct {
	img    *scene.Image
	format string
}

// DecodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP data into an
// RGBA8 image with straight alpha. A decoder panic is reported as
// ErrDecodePanic.
func DecodeImage(data []byte) (img *Image, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrDecodePanic, r)
		}
	}()

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("backend: decode image: %w", err)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	var rgba *image.NRGBA
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		rgba = n
	} else {
		rgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	}

	return &Image{
		img: &scene.Image{
			Width:  b.Dx(),
			Height: b.Dy(),
			Data:   packRows(rgba),
		},
		format: format,
	}, nil
}

// packRows returns the pixel data without row padding.
func packRows(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == w*4 {
		return img.Pix[:w*h*4]
	}
	out := make([]byte, 0, w*h*4)
	for y := range h {
		off := y * img.Stride
		out = append(out, img.Pix[off:off+w*4]...)
	}
	return out
}

// Width implements renderer.Image.
func (i *Image) Width() int { return i.img.Width }

// Height implements renderer.Image.
func (i *Image) Height() int { return i.img.Height }

// Scene returns the underlying scene image.
func (i *Image) Scene() *scene.Image { return i.img }

// SourceFormat returns the detected encoding ("png", "jpeg", ...).
func (i *Image) SourceFormat() string { return i.format }

// TextureFormat returns the GPU texture format of the pixel data.
func (i *Image) TextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}
