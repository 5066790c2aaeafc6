// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rive plays vector animations exported by the Rive editor.
//
// Files are imported and evaluated by a native engine reached through
// package ffi. Drawing goes through a renderer backend: by default the
// "scene" backend from package backend, which records every frame into
// a vello-style scene graph.
//
// # Quick Start
//
//	f, err := rive.Load(data)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	ab, ok := f.Artboard(rive.Default())
//	if !ok {
//	    return errors.New("no artboard")
//	}
//	defer ab.Close()
//
//	sc, ok := rive.InstantiateScene(ab, rive.Default())
//	if !ok {
//	    return errors.New("no scene")
//	}
//	defer sc.Close()
//
//	vp := rive.NewViewport(800, 600)
//	r := backend.NewRenderer(nil)
//	for {
//	    r.Reset()
//	    if sc.AdvanceAndMaybeDraw(r, 16*time.Millisecond, vp) {
//	        present(r.Scene())
//	    }
//	}
//
// # Ownership
//
// A File owns the imported document, an Artboard keeps its File alive and
// a Scene keeps its Artboard alive. Close drops one reference and may be
// called in any order; the engine objects are released once nothing
// refers to them any more. Handles that are never closed are released
// after they become unreachable. Using a handle after Close panics with
// [ErrClosed].
//
// Components, inputs and viewports are plain views that need no Close.
//
// # Concurrency
//
// A Scene and the renderer it draws into are used by one goroutine at a
// time. Handles may be passed between goroutines and closed from any of
// them.
package rive
