// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rive/renderer"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImagePNG(t *testing.T) {
	img, err := DecodeImage(encodePNG(t, 3, 2))
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", img.Width(), img.Height())
	}
	if img.SourceFormat() != "png" {
		t.Errorf("SourceFormat() = %q, want png", img.SourceFormat())
	}
	data := img.Scene().Data
	if len(data) != 3*2*4 {
		t.Fatalf("len(Data) = %d, want 24", len(data))
	}
	if got := data[4:8]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 128 {
		t.Errorf("pixel (1,0) = %v, want straight alpha [10 20 30 128]", got)
	}
	if img.TextureFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("TextureFormat() = %v, want RGBA8Unorm", img.TextureFormat())
	}
}

func TestDecodeImageFailures(t *testing.T) {
	valid := encodePNG(t, 4, 4)
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not an image")},
		{"truncated png", valid[:len(valid)/2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NewFactory().DecodeImage(tt.data); ok {
				t.Error("DecodeImage() ok = true, want false")
			}
		})
	}
	if _, err := DecodeImage(nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("DecodeImage(nil) error = %v, want ErrEmptyImage", err)
	}
}

func TestFactoryDecodeImageShared(t *testing.T) {
	f := NewFactory()
	data := encodePNG(t, 2, 2)

	a, ok := f.DecodeImage(data)
	if !ok {
		t.Fatal("DecodeImage() ok = false, want true")
	}
	b, ok := f.DecodeImage(bytes.Clone(data))
	if !ok {
		t.Fatal("DecodeImage() ok = false, want true")
	}
	if a != b {
		t.Error("DecodeImage() of equal bytes returned distinct images")
	}
	if c, _ := f.DecodeImage(encodePNG(t, 3, 3)); c == a {
		t.Error("DecodeImage() of different bytes returned the cached image")
	}
	if got := f.images.Len(); got != 2 {
		t.Errorf("cached images = %d, want 2", got)
	}
	if _, ok := f.DecodeImage([]byte("junk")); ok {
		t.Error("DecodeImage(junk) ok = true, want false")
	}
	if got := f.images.Len(); got != 2 {
		t.Errorf("cached images after failure = %d, want 2", got)
	}
}

func TestFactoryDecodeImageConcurrent(t *testing.T) {
	f := NewFactory()
	data := encodePNG(t, 8, 8)

	imgs := make([]renderer.Image, 8)
	var wg sync.WaitGroup
	for i := range imgs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			imgs[i], _ = f.DecodeImage(data)
		}()
	}
	wg.Wait()
	for i, img := range imgs {
		if img == nil || img != imgs[0] {
			t.Errorf("image %d = %p, want the shared %p", i, img, imgs[0])
		}
	}
}
