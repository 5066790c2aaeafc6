// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gogpu/rive/backend"
	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

// Option configures Load.
//
// Example:
//
//	// Default native engine and scene backend
//	f, err := rive.Load(data)
//
//	// Custom backend factory (dependency injection)
//	f, err := rive.Load(data, rive.WithFactory(myFactory))
type Option func(*options)

type options struct {
	engine  ffi.Engine
	factory renderer.Factory
	backend string
}

func defaultOptions() options {
	return options{backend: backend.Name}
}

// WithEngine sets the engine that imports and plays the file. The default
// is the native library found by ffi.OpenDefault.
func WithEngine(e ffi.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithFactory sets the backend factory that creates the file's drawing
// resources. It takes precedence over WithBackend. Files loaded with equal
// comparable factories share one handle table; any other factory gets a
// table of its own per file.
func WithFactory(f renderer.Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithBackend selects a backend registered with renderer.Register. The
// default is backend.Name.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

var defaultEngine = sync.OnceValues(ffi.OpenDefault)

func (o *options) resolveEngine() (ffi.Engine, error) {
	if o.engine != nil {
		return o.engine, nil
	}
	e, err := defaultEngine()
	if err != nil {
		return nil, fmt.Errorf("rive: open engine: %w", err)
	}
	return e, nil
}

// shared caches one factory per backend name and one Dispatch per
// factory, so all files drawn by a backend share its handle table.
var shared struct {
	mu         sync.Mutex
	factories  map[string]renderer.Factory
	dispatches map[renderer.Factory]*ffi.Dispatch
}

func (o *options) resolveDispatch() (*ffi.Dispatch, error) {
	f := o.factory
	if f == nil {
		var err error
		if f, err = backendFactory(o.backend); err != nil {
			return nil, err
		}
	}
	return dispatchFor(f), nil
}

func backendFactory(name string) (renderer.Factory, error) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if f, ok := shared.factories[name]; ok {
		return f, nil
	}
	f, err := renderer.NewFactory(name)
	if err != nil {
		return nil, fmt.Errorf("rive: %w", err)
	}
	if shared.factories == nil {
		shared.factories = make(map[string]renderer.Factory)
	}
	shared.factories[name] = f
	return f, nil
}

func dispatchFor(f renderer.Factory) *ffi.Dispatch {
	if !reflect.TypeOf(f).Comparable() {
		return ffi.NewDispatch(f)
	}
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if d, ok := shared.dispatches[f]; ok {
		return d
	}
	d := ffi.NewDispatch(f)
	if shared.dispatches == nil {
		shared.dispatches = make(map[renderer.Factory]*ffi.Dispatch)
	}
	shared.dispatches[f] = d
	return d
}
