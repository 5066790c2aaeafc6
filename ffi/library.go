// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ffi

import (
	"os"
	"runtime"
)

// EnvLibrary names the environment variable that overrides the native
// library location.
const EnvLibrary = "RIVE_LIBRARY"

// DefaultLibraryPath is the library name passed to the dynamic loader
// when EnvLibrary is unset.
var DefaultLibraryPath = defaultLibraryName(runtime.GOOS)

func defaultLibraryName(goos string) string {
	switch goos {
	case "darwin", "ios":
		return "librive_rs.dylib"
	case "windows":
		return "rive_rs.dll"
	default:
		return "librive_rs.so"
	}
}

// LibraryPath returns the value of EnvLibrary, or DefaultLibraryPath.
func LibraryPath() string {
	if p := os.Getenv(EnvLibrary); p != "" {
		return p
	}
	return DefaultLibraryPath
}

// OpenDefault opens the library at LibraryPath.
func OpenDefault() (Engine, error) {
	return Open(LibraryPath())
}
