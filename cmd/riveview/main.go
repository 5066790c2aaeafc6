// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command riveview plays Rive files headlessly into the scene backend and
// reports what was drawn.
//
// Usage:
//
//	riveview [flags] file.riv...
//
// Settings are read from riveview.yaml (or -config), then RIVEVIEW_*
// environment variables, then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/ffi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr, nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "riveview:", err)
		os.Exit(1)
	}
}

// run plays the files named in args. A nil engine opens the native one.
func run(ctx context.Context, args []string, stderr io.Writer, engine ffi.Engine) error {
	cfg, files, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogFormat, cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	rive.SetLogger(log)
	defer rive.SetLogger(nil)

	if engine == nil {
		if engine, err = openEngine(cfg.Library); err != nil {
			return err
		}
	}
	p := &player{engine: engine, cfg: cfg, log: log}

	if err := playAll(ctx, p, files); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	log.Info("watching", "files", len(files))
	return watch(ctx, files, watchDebounce, log, func(path string) {
		if _, err := p.play(ctx, path); err != nil {
			log.Error("replay failed", "file", path, "err", err)
		}
	})
}

func openEngine(path string) (ffi.Engine, error) {
	if path == "" {
		return ffi.OpenDefault()
	}
	return ffi.Open(path)
}

// playAll plays files concurrently, at most cfg.Jobs at a time.
func playAll(ctx context.Context, p *player, files []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Jobs)
	for _, path := range files {
		g.Go(func() error {
			_, err := p.play(ctx, path)
			return err
		})
	}
	return g.Wait()
}
