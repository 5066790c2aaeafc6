// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"runtime"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/internal/logger"
)

// fileInner owns an imported file.
type fileInner struct {
	ref
	engine   ffi.Engine
	dispatch *ffi.Dispatch
	raw      ffi.File
	factory  ffi.Factory
}

// File is an imported animation file. It is immutable; artboards
// instantiated from it hold their own reference to it.
type File struct {
	inner *fileInner
	closer
}

// Load imports an encoded file. It returns ErrMalformed or
// ErrUnsupportedVersion when the engine rejects the data, and an error
// wrapping ffi.ErrUnavailable when no engine can be opened.
func Load(data []byte, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e, err := o.resolveEngine()
	if err != nil {
		return nil, err
	}
	d, err := o.resolveDispatch()
	if err != nil {
		return nil, err
	}

	raw, factory, result := e.FileNew(data, d)
	switch result {
	case ffi.Success:
	case ffi.UnsupportedVersion:
		return nil, ErrUnsupportedVersion
	default:
		return nil, ErrMalformed
	}
	logger.Get().Debug("rive: file loaded", "size", len(data), "handles", d.Handles().Len())

	inner := &fileInner{engine: e, dispatch: d, raw: raw, factory: factory}
	inner.init(func() {
		e.FileRelease(raw, factory)
		logger.Get().Debug("rive: file released", "handles", d.Handles().Len())
	})
	f := &File{inner: inner}
	track(f, &f.closer, inner)
	return f, nil
}

// Artboard instantiates an artboard. It reports false when the file has
// no artboard matching h.
func (f *File) Artboard(h Handle) (*Artboard, bool) {
	defer runtime.KeepAlive(f)
	f.check()
	fi := f.inner
	raw, ok := pick(h,
		func(i *uint) (ffi.Artboard, bool) { return fi.engine.InstantiateArtboard(fi.raw, i) },
		func(name []byte) (ffi.Artboard, bool) { return fi.engine.InstantiateArtboardByName(fi.raw, name) },
	)
	if !ok {
		return nil, false
	}
	fi.retain()
	inner := &artboardInner{file: fi, raw: raw}
	inner.init(func() {
		fi.engine.ArtboardRelease(raw)
		fi.release()
	})
	return newArtboard(inner), true
}

// Close drops the caller's reference. The file is released once every
// artboard instantiated from it is released too.
func (f *File) Close() {
	f.close()
}
