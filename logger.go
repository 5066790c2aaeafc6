// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"log/slog"

	"github.com/gogpu/rive/internal/logger"
)

// SetLogger configures the logger for rive and all its sub-packages.
// By default, rive produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by rive:
//   - [slog.LevelDebug]: lifecycle (file import and release)
//   - [slog.LevelWarn]: engine contract violations (unknown handles,
//     dropped event properties)
//
// Example:
//
//	rive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Get()
}
