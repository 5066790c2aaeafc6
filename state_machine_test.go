// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive_test

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/internal/enginetest"
)

func openMachine(t *testing.T, doc enginetest.Document) (*enginetest.Engine, *rive.StateMachine) {
	t.Helper()
	e := enginetest.New()
	f := load(t, e, doc)
	ab := artboard(t, f, rive.Default())
	sm := stateMachine(t, ab, rive.Default())
	f.Close()
	ab.Close()
	t.Cleanup(func() {
		sm.Close()
		checkClean(t, e)
	})
	return e, sm
}

func collect(sm *rive.StateMachine) []rive.Event {
	var events []rive.Event
	for ev := range sm.Events() {
		events = append(events, ev)
	}
	return events
}

func TestInputs(t *testing.T) {
	_, sm := openMachine(t, testDoc())

	var names, kinds []string
	for in := range sm.Inputs() {
		names = append(names, in.Name())
		switch in.(type) {
		case *rive.BoolInput:
			kinds = append(kinds, "bool")
		case *rive.NumberInput:
			kinds = append(kinds, "number")
		case *rive.TriggerInput:
			kinds = append(kinds, "trigger")
		}
	}
	if want := []string{"on", "level", "go"}; !slices.Equal(names, want) {
		t.Errorf("input names = %v, want %v", names, want)
	}
	if want := []string{"bool", "number", "trigger"}; !slices.Equal(kinds, want) {
		t.Errorf("input kinds = %v, want %v", kinds, want)
	}
}

func TestInputsByName(t *testing.T) {
	_, sm := openMachine(t, testDoc())
	sm.AdvanceAndApply(0)

	on, ok := sm.Bool("on")
	if !ok {
		t.Fatal(`Bool("on") reported no match`)
	}
	if !on.Get() {
		t.Error("Get() = false, want true")
	}
	on.Set(false)
	if on.Get() {
		t.Error("Get() after Set(false) = true, want false")
	}
	if !sm.AdvanceAndApply(0) {
		t.Error("AdvanceAndApply() after Set = false, want true")
	}

	level, ok := sm.Number("level")
	if !ok {
		t.Fatal(`Number("level") reported no match`)
	}
	if got := level.Get(); got != 3 {
		t.Errorf("Get() = %v, want 3", got)
	}
	level.Set(4.5)
	if got := level.Get(); got != 4.5 {
		t.Errorf("Get() after Set(4.5) = %v, want 4.5", got)
	}

	if _, ok := sm.Bool("level"); ok {
		t.Error(`Bool("level") ok = true, want false`)
	}
	if _, ok := sm.Trigger("missing"); ok {
		t.Error(`Trigger("missing") ok = true, want false`)
	}
}

func TestTriggerReportsEvent(t *testing.T) {
	_, sm := openMachine(t, testDoc())
	sm.AdvanceAndApply(0)
	if sm.AdvanceAndApply(0) {
		t.Fatal("idle AdvanceAndApply() = true, want false")
	}

	trig, ok := sm.Trigger("go")
	if !ok {
		t.Fatal(`Trigger("go") reported no match`)
	}
	trig.Fire()
	if got := collect(sm); len(got) != 0 {
		t.Errorf("Events() before advance = %v, want none", got)
	}
	if !sm.AdvanceAndApply(16 * time.Millisecond) {
		t.Error("AdvanceAndApply() after Fire = false, want true")
	}
	events := collect(sm)
	if len(events) != 1 || events[0].Name != "fired" {
		t.Errorf("Events() = %v, want one event named fired", events)
	}
}

func TestPointerThroughViewport(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float32
		events int
	}{
		// The 100x50 artboard is drawn at 2x into 200x100.
		{"inside listener", 60, 60, 1},
		{"outside listener", 180, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sm := openMachine(t, testDoc())
			vp := rive.NewViewport(200, 100)
			sm.AdvanceAndMaybeDraw(&recorder{}, 0, vp)

			sm.PointerDown(tt.x, tt.y, vp)
			sm.PointerMove(tt.x, tt.y, vp)
			sm.PointerUp(tt.x, tt.y, vp)
			sm.AdvanceAndApply(16 * time.Millisecond)

			if got := len(collect(sm)); got != tt.events {
				t.Errorf("len(Events()) = %d, want %d", got, tt.events)
			}
		})
	}
}

func TestEventsReadTwice(t *testing.T) {
	_, sm := openMachine(t, testDoc())
	sm.PointerDown(10, 10, &rive.Viewport{})
	sm.AdvanceAndApply(16 * time.Millisecond)

	first := collect(sm)
	second := collect(sm)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second Events() = %v, want %v", second, first)
	}

	want := []rive.Event{{
		Name:  "click",
		Delay: 250 * time.Millisecond,
		Properties: map[string]rive.Property{
			"ok":    rive.BoolProperty(true),
			"x":     rive.NumberProperty(1.5),
			"label": rive.StringProperty("hi"),
		},
	}}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Events() = %v, want %v", first, want)
	}

	// The next advance replaces the reported events.
	sm.AdvanceAndApply(16 * time.Millisecond)
	if got := collect(sm); len(got) != 0 {
		t.Errorf("Events() after next advance = %v, want none", got)
	}
}

func TestEventsStopEarly(t *testing.T) {
	doc := testDoc()
	l := &doc.Artboards[0].StateMachines[0].Listeners[0]
	l.Events = append(l.Events, enginetest.EventDef{Name: "second"})
	_, sm := openMachine(t, doc)
	sm.PointerDown(10, 10, &rive.Viewport{})
	sm.AdvanceAndApply(0)

	n := 0
	for range sm.Events() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations = %d, want 1", n)
	}
	if got := len(collect(sm)); got != 2 {
		t.Errorf("len(Events()) = %d, want 2", got)
	}
}

func TestEventDropsInvalidProperties(t *testing.T) {
	doc := testDoc()
	ev := &doc.Artboards[0].StateMachines[0].Listeners[0].Events[0]
	ev.Properties = []enginetest.PropertyDef{
		{Key: "kept", Tag: ffi.PropertyNumber, Number: 2},
		{RawKey: []byte{0xff, 0xfe}, Tag: ffi.PropertyBool, Bool: true},
		{Key: "unknown", Tag: 9},
	}
	_, sm := openMachine(t, doc)
	sm.PointerDown(10, 10, &rive.Viewport{})
	sm.AdvanceAndApply(0)

	events := collect(sm)
	if len(events) != 1 {
		t.Fatalf("len(Events()) = %d, want 1", len(events))
	}
	want := map[string]rive.Property{"kept": rive.NumberProperty(2)}
	if got := events[0].Properties; !reflect.DeepEqual(got, want) {
		t.Errorf("Properties = %v, want %v", got, want)
	}
}

func TestComponents(t *testing.T) {
	e := enginetest.New()
	f := load(t, e, testDoc())
	defer f.Close()
	ab := artboard(t, f, rive.Default())
	defer ab.Close()

	if got := ab.ComponentCount(); got != 2 {
		t.Fatalf("ComponentCount() = %d, want 2", got)
	}
	var names []string
	for c := range ab.Components() {
		names = append(names, c.Name())
	}
	if want := []string{"title", "shape"}; !slices.Equal(names, want) {
		t.Errorf("component names = %v, want %v", names, want)
	}
	if c := ab.Component(2); c != nil {
		t.Errorf("Component(2) = %v, want nil", c)
	}

	run, ok := ab.Component(0).AsTextValueRun()
	if !ok {
		t.Fatal("AsTextValueRun() ok = false, want true")
	}
	if got := run.Text(); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}
	run.SetText("bye")
	if got := run.Text(); got != "bye" {
		t.Errorf("Text() after SetText = %q, want %q", got, "bye")
	}

	shape := ab.Component(1)
	if got := shape.TypeID(); got != 3 {
		t.Errorf("TypeID() = %d, want 3", got)
	}
	if _, ok := shape.AsTextValueRun(); ok {
		t.Error("AsTextValueRun() on a shape ok = true, want false")
	}
	checkClean(t, e)
}

func TestTransforms(t *testing.T) {
	e := enginetest.New()
	f := load(t, e, testDoc())
	defer f.Close()
	ab := artboard(t, f, rive.Default())
	defer ab.Close()

	view, inverse := ab.Transforms(100, 100)
	if x, y := view.Apply(100, 50); x != 100 || y != 75 {
		t.Errorf("view.Apply(100, 50) = %v, %v, want 100, 75", x, y)
	}
	if x, y := inverse.Apply(50, 50); x != 50 || y != 25 {
		t.Errorf("inverse.Apply(50, 50) = %v, %v, want 50, 25", x, y)
	}
}
