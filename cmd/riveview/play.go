// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/backend"
	"github.com/gogpu/rive/ffi"
)

// result summarizes one playback.
type result struct {
	Scene  string
	Frames int
	Drawn  int
	Events int
	Paths  int
}

// player plays files headlessly into the scene backend.
type player struct {
	engine ffi.Engine
	cfg    Config
	log    *slog.Logger
}

// play loads path and runs cfg.Frames frames of its scene.
func (p *player) play(ctx context.Context, path string) (result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return result{}, err
	}
	f, err := rive.Load(data, rive.WithEngine(p.engine))
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	ab, ok := f.Artboard(selector(p.cfg.Artboard))
	if !ok {
		return result{}, fmt.Errorf("%s: no artboard matches %v", path, selector(p.cfg.Artboard))
	}
	defer ab.Close()

	sc, ok := rive.InstantiateScene(ab, selector(p.cfg.Scene))
	if !ok {
		return result{}, fmt.Errorf("%s: no scene matches %v", path, selector(p.cfg.Scene))
	}
	defer sc.Close()

	log := p.log.With("file", path, "scene", sc.Name())
	px, py, press, _ := p.cfg.pointer()
	vp := rive.NewViewport(p.cfg.Width, p.cfg.Height)
	r := backend.NewRenderer(nil)
	frame := time.Duration(float64(time.Second) / p.cfg.FPS)
	res := result{Scene: sc.Name(), Frames: p.cfg.Frames}

	for i := range p.cfg.Frames {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		elapsed := frame
		if i == 0 {
			elapsed = 0
		}

		r.Reset()
		if sc.AdvanceAndMaybeDraw(r, elapsed, vp) {
			res.Drawn++
			res.Paths += r.Scene().Encoding().PathCount()
			log.Debug("frame drawn", "frame", i, "paths", r.Scene().Encoding().PathCount(), "bytes", r.Scene().Encoding().Size())
		}
		if i == 0 && press {
			sc.PointerDown(px, py, vp)
			sc.PointerUp(px, py, vp)
		}
		if sm, ok := sc.(*rive.StateMachine); ok {
			for ev := range sm.Events() {
				res.Events++
				log.Info("event", "frame", i, "name", ev.Name, "delay", ev.Delay, "properties", len(ev.Properties))
			}
		}
	}

	log.Info("played", "frames", res.Frames, "drawn", res.Drawn, "paths", res.Paths, "events", res.Events)
	return res, nil
}
