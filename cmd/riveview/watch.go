// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long a file must be quiet before it is replayed.
const watchDebounce = 100 * time.Millisecond

// watch calls onChange with the path of every watched file that changes,
// until ctx is done. Bursts of events for one file within debounce are
// coalesced into one call.
func watch(ctx context.Context, paths []string, debounce time.Duration, log *slog.Logger, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch directories, not files, so atomic renames by editors are seen.
	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	d := newDebouncer(debounce)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			d.touch(abs)

		case abs := <-d.fired:
			delete(d.timers, abs)
			onChange(watched[abs])

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}

// debouncer reports a path on fired once it has been quiet for delay.
// touch and the receiver of fired must run on one goroutine.
type debouncer struct {
	delay  time.Duration
	timers map[string]*time.Timer
	fired  chan string
	done   chan struct{}
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		fired:  make(chan string),
		done:   make(chan struct{}),
	}
}

// touch restarts the quiet period of path.
func (d *debouncer) touch(path string) {
	if t := d.timers[path]; t != nil {
		t.Stop()
	}
	d.timers[path] = time.AfterFunc(d.delay, func() { d.fire(path) })
}

func (d *debouncer) fire(path string) {
	select {
	case d.fired <- path:
	case <-d.done:
	}
}

// stop cancels pending timers. Timers that already fired give up their
// send.
func (d *debouncer) stop() {
	close(d.done)
	for _, t := range d.timers {
		t.Stop()
	}
}
