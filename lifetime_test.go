// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive_test

import (
	"runtime"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/backend"
	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/internal/enginetest"
)

// gcEngine collects garbage inside selected engine calls and records how
// many objects are live at that point, so cleanups of handles that are
// unreachable from the caller get a chance to run mid-call.
type gcEngine struct {
	*enginetest.Engine
	files  []int
	scenes []int
}

func collectGarbage() {
	for range 5 {
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
}

func (g *gcEngine) InstantiateArtboard(f ffi.File, index *uint) (ffi.Artboard, bool) {
	collectGarbage()
	g.files = append(g.files, g.Files())
	return g.Engine.InstantiateArtboard(f, index)
}

func (g *gcEngine) SceneAdvanceAndApply(s ffi.Scene, elapsed float32) bool {
	collectGarbage()
	g.scenes = append(g.scenes, g.Scenes())
	return g.Engine.SceneAdvanceAndApply(s, elapsed)
}

func loadWith(t *testing.T, e ffi.Engine) *rive.File {
	t.Helper()
	f, err := rive.Load(enginetest.Encode(testDoc()), rive.WithEngine(e), rive.WithFactory(backend.NewFactory()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return f
}

// advanceOnce advances a scene that nothing refers to afterwards.
func advanceOnce(ab *rive.Artboard) bool {
	sc, ok := ab.LinearAnimation(rive.Default())
	if !ok {
		return false
	}
	return sc.AdvanceAndApply(time.Second / 60)
}

func TestHandleAliveDuringEngineCall(t *testing.T) {
	g := &gcEngine{Engine: enginetest.New()}

	ab, ok := loadWith(t, g).Artboard(rive.Default())
	if !ok {
		t.Fatal("Artboard(default) reported no match")
	}
	defer ab.Close()
	if want := []int{1}; !slices.Equal(g.files, want) {
		t.Errorf("live files inside InstantiateArtboard = %v, want %v", g.files, want)
	}

	if !advanceOnce(ab) {
		t.Error("AdvanceAndApply() = false, want true")
	}
	if want := []int{1}; !slices.Equal(g.scenes, want) {
		t.Errorf("live scenes inside SceneAdvanceAndApply = %v, want %v", g.scenes, want)
	}
	checkClean(t, g.Engine)
}
