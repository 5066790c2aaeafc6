// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || darwin) && (amd64 || arm64)

package ffi

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/gogpu/rive/renderer"
)

// rawCommand is one command as the engine's iterator reports it: Line and
// Cubic are preceded by the previous point.
type rawCommand struct {
	verb   renderer.Verb
	points []renderer.Point
}

// scripted returns an engine with a commands iterator that replays script,
// and a pointer to the number of iterator steps taken.
func scripted(script []rawCommand) (*native, *int) {
	steps := 0
	n := &native{
		commandsNext: func(_ unsafe.Pointer, verb *uint8, points *unsafe.Pointer) {
			c := script[steps]
			steps++
			*verb = uint8(c.verb)
			if len(c.points) > 0 {
				*points = unsafe.Pointer(&c.points[0])
			}
		},
	}
	return n, &steps
}

func TestNativeCommandsDropPreviousPoint(t *testing.T) {
	script := []rawCommand{
		{renderer.Move, []renderer.Point{{X: 1, Y: 2}}},
		{renderer.Line, []renderer.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}},
		{renderer.Cubic, []renderer.Point{{X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}, {X: 9, Y: 10}}},
		{renderer.Close, nil},
	}
	n, _ := scripted(script)

	var got []renderer.Command
	for c := range n.commands(nil, uintptr(len(script))) {
		got = append(got, c)
	}
	want := []renderer.Command{
		{Verb: renderer.Move, Points: []renderer.Point{{X: 1, Y: 2}}},
		{Verb: renderer.Line, Points: []renderer.Point{{X: 3, Y: 4}}},
		{Verb: renderer.Cubic, Points: []renderer.Point{{X: 5, Y: 6}, {X: 7, Y: 8}, {X: 9, Y: 10}}},
		{Verb: renderer.Close},
	}
	if !slices.EqualFunc(got, want, func(a, b renderer.Command) bool {
		return a.Verb == b.Verb && slices.Equal(a.Points, b.Points)
	}) {
		t.Errorf("commands() = %v, want %v", got, want)
	}

	// The points are copied out of engine memory.
	script[1].points[1] = renderer.Point{X: -1, Y: -1}
	if got[1].Points[0] != (renderer.Point{X: 3, Y: 4}) {
		t.Errorf("Line point = %v after engine memory changed, want {3 4}", got[1].Points[0])
	}
}

func TestNativeCommandsNilPoints(t *testing.T) {
	n, _ := scripted([]rawCommand{{renderer.Line, nil}})
	for c := range n.commands(nil, 1) {
		if c.Verb != renderer.Line || c.Points != nil {
			t.Errorf("command = %v, want Line without points", c)
		}
	}
}

func TestNativeCommandsStopEarly(t *testing.T) {
	script := []rawCommand{
		{renderer.Move, []renderer.Point{{X: 0, Y: 0}}},
		{renderer.Close, nil},
	}
	n, steps := scripted(script)
	for range n.commands(nil, 2) {
		break
	}
	if *steps != 1 {
		t.Errorf("iterator steps = %d, want 1", *steps)
	}
}

func TestGradientStops(t *testing.T) {
	colors := []renderer.ARGB{0xff000000, 0xffffffff}
	stops := []float32{0, 1}
	cp, sp := unsafe.Pointer(&colors[0]), unsafe.Pointer(&stops[0])

	tests := []struct {
		name       string
		colors     unsafe.Pointer
		stops      unsafe.Pointer
		count      uintptr
		wantColors []renderer.ARGB
		wantStops  []float32
	}{
		{"both", cp, sp, 2, colors, stops},
		{"prefix", cp, sp, 1, colors[:1], stops[:1]},
		{"zero count", cp, sp, 0, nil, nil},
		{"nil colors", nil, sp, 2, nil, nil},
		{"nil stops", cp, nil, 2, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := gradientStops(tt.colors, tt.stops, tt.count)
			if !slices.Equal(c, tt.wantColors) || !slices.Equal(s, tt.wantStops) {
				t.Errorf("gradientStops() = %v, %v, want %v, %v", c, s, tt.wantColors, tt.wantStops)
			}
		})
	}

	c, _ := gradientStops(cp, sp, 2)
	colors[0] = 0
	if c[0] != 0xff000000 {
		t.Errorf("gradientStops() color = %#x after source changed, want copy", c[0])
	}
}

// stubEngine returns an engine whose file calls succeed without a library
// and whose tables are counted instead of filled with callbacks.
func stubEngine(built *int) *native {
	n := newNative(0)
	n.build = func(*table) { *built++ }
	next := uintptr(0)
	n.fileNew = func(_ unsafe.Pointer, _ uintptr, _ unsafe.Pointer, result *uint32, factory *uintptr) uintptr {
		next++
		*result = uint32(Success)
		*factory = next
		return next
	}
	n.fileRelease = func(_, _ uintptr) {}
	return n
}

func TestNativeTablesReused(t *testing.T) {
	built := 0
	n := stubEngine(&built)

	for range 100 {
		f, fac, _ := n.FileNew(nil, NewDispatch(nil))
		n.FileRelease(f, fac)
	}
	if built != 1 {
		t.Errorf("tables built for sequential dispatches = %d, want 1", built)
	}
	if len(n.tables) != 0 || len(n.files) != 0 {
		t.Errorf("bound tables = %d, files = %d after release, want 0, 0", len(n.tables), len(n.files))
	}
}

func TestNativeTablePerLiveDispatch(t *testing.T) {
	built := 0
	n := stubEngine(&built)
	d1, d2 := NewDispatch(nil), NewDispatch(nil)

	f1, fac1, _ := n.FileNew(nil, d1)
	f2, fac2, _ := n.FileNew(nil, d1)
	f3, fac3, _ := n.FileNew(nil, d2)
	if built != 2 {
		t.Fatalf("tables built = %d, want 2", built)
	}
	t1, t2 := n.bound(d1), n.bound(d2)
	if t1 == nil || t2 == nil || t1 == t2 {
		t.Fatalf("bound(d1) = %p, bound(d2) = %p, want two distinct tables", t1, t2)
	}

	n.FileRelease(f1, fac1)
	if n.bound(d1) != t1 {
		t.Error("table of d1 released while a file still uses it")
	}
	n.FileRelease(f2, fac2)
	if n.bound(d1) != nil {
		t.Error("table of d1 still bound after its last file")
	}

	d3 := NewDispatch(nil)
	f4, fac4, _ := n.FileNew(nil, d3)
	if built != 2 || n.bound(d3) != t1 || t1.dispatch() != d3 {
		t.Errorf("tables built = %d, want the free table rebound to the new dispatch", built)
	}
	n.FileRelease(f3, fac3)
	n.FileRelease(f4, fac4)
}

func TestNativeFailedLoadFreesTable(t *testing.T) {
	built := 0
	n := stubEngine(&built)
	n.fileNew = func(_ unsafe.Pointer, _ uintptr, _ unsafe.Pointer, result *uint32, _ *uintptr) uintptr {
		*result = uint32(Malformed)
		return 0
	}

	d := NewDispatch(nil)
	if _, _, r := n.FileNew(nil, d); r != Malformed {
		t.Fatalf("FileNew() result = %v, want Malformed", r)
	}
	if n.bound(d) != nil || len(n.free) != 1 {
		t.Errorf("bound = %p, free = %d, want the table back on the free list", n.bound(d), len(n.free))
	}
}

func TestNativeSceneDrawWithoutFile(t *testing.T) {
	built := 0
	n := stubEngine(&built)
	drawn := 0
	n.sceneDraw = func(_, _ uintptr, _ unsafe.Pointer) { drawn++ }

	n.SceneDraw(1, 1, NewDispatch(nil))
	if drawn != 0 || built != 0 {
		t.Errorf("draws = %d, tables built = %d, want 0, 0", drawn, built)
	}
}
