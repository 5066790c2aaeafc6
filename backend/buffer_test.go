// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rive/renderer"
)

func TestBufferMapUnmap(t *testing.T) {
	b := NewBuffer(renderer.VertexBuffer, renderer.BufferFlagsNone, 16)
	if b.Len() != 16 {
		t.Errorf("Len() = %d, want 16", b.Len())
	}
	putFloats(b, 1.5, -2, 3, 4)
	if b.Mapped() {
		t.Error("Mapped() = true after Unmap()")
	}
	pts := b.Points()
	if len(pts) != 2 || pts[0].X != 1.5 || pts[0].Y != -2 || pts[1].X != 3 {
		t.Errorf("Points() = %v", pts)
	}
}

func TestBufferUsage(t *testing.T) {
	if u := NewBuffer(renderer.IndexBuffer, 0, 2).Usage(); u&gputypes.BufferUsageIndex == 0 {
		t.Errorf("index buffer usage = %v, want Index bit", u)
	}
	if u := NewBuffer(renderer.VertexBuffer, 0, 8).Usage(); u&gputypes.BufferUsageVertex == 0 {
		t.Errorf("vertex buffer usage = %v, want Vertex bit", u)
	}
	if NewBuffer(renderer.IndexBuffer, 0, -1).Len() != 0 {
		t.Error("negative size should allocate nothing")
	}
}

func TestRegisteredBackend(t *testing.T) {
	f, err := renderer.NewFactory(Name)
	if err != nil {
		t.Fatalf("renderer.NewFactory(%q) error = %v", Name, err)
	}
	if _, ok := f.(*Factory); !ok {
		t.Errorf("factory = %T, want *Factory", f)
	}
}
