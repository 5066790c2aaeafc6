// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import "errors"

var (
	// ErrUnsupportedVersion is returned by Load for files exported with a
	// major version the engine does not read.
	ErrUnsupportedVersion = errors.New("rive: unsupported Rive version")

	// ErrMalformed is returned by Load for data that is not a valid file.
	ErrMalformed = errors.New("rive: file is incorrectly encoded")

	// ErrClosed is the panic value when a closed handle is used.
	ErrClosed = errors.New("rive: use of closed handle")
)
