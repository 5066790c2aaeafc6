// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rive/renderer"
	"github.com/gogpu/rive/scene"
)

// Buffer is a CPU-side mesh buffer. The engine writes it through Map, and
// the renderer reads vertices as float32 pairs and indices as uint16 in
// native byte order.
type Buffer struct {
	typ    renderer.BufferType
	flags  renderer.BufferFlags
	data   []byte
	mapped bool
}

// NewBuffer allocates a zeroed buffer of size bytes.
func NewBuffer(typ renderer.BufferType, flags renderer.BufferFlags, size int) *Buffer {
	return &Buffer{typ: typ, flags: flags, data: make([]byte, max(size, 0))}
}

// Type implements renderer.Buffer.
func (b *Buffer) Type() renderer.BufferType { return b.typ }

// Flags returns the creation flags.
func (b *Buffer) Flags() renderer.BufferFlags { return b.flags }

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Map implements renderer.Buffer.
func (b *Buffer) Map() []byte {
	b.mapped = true
	return b.data
}

// Unmap implements renderer.Buffer.
func (b *Buffer) Unmap() {
	b.mapped = false
}

// Mapped reports whether the buffer is between Map and Unmap.
func (b *Buffer) Mapped() bool { return b.mapped }

// Usage returns the GPU usage a device copy of this buffer needs.
func (b *Buffer) Usage() gputypes.BufferUsage {
	if b.typ == renderer.IndexBuffer {
		return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	}
	return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
}

// Points decodes the buffer as (x, y) float32 pairs.
func (b *Buffer) Points() []scene.Point {
	n := len(b.data) / 8
	pts := make([]scene.Point, n)
	for i := range n {
		pts[i] = scene.Point{
			X: math.Float32frombits(binary.NativeEndian.Uint32(b.data[i*8:])),
			Y: math.Float32frombits(binary.NativeEndian.Uint32(b.data[i*8+4:])),
		}
	}
	return pts
}

// Indices decodes the buffer as uint16 values.
func (b *Buffer) Indices() []uint16 {
	n := len(b.data) / 2
	idx := make([]uint16, n)
	for i := range n {
		idx[i] = binary.NativeEndian.Uint16(b.data[i*2:])
	}
	return idx
}
