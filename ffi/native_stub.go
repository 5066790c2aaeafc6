// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !((linux || darwin) && (amd64 || arm64))

package ffi

import "fmt"

// Open reports ErrUnavailable on platforms without purego support.
func Open(path string) (Engine, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
}
