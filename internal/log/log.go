// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for docsmith using log/slog.
package log

import (
	"log/slog"
	"os"
)

// New returns a logger writing to stderr at a level derived from the
// verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// The returned logger is meant to be passed explicitly into components
// (generator, provider client) rather than reached through a global.
func New(verbose, quiet bool) *slog.Logger {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// Setup configures the process-default slog logger. The CLI calls this once
// per invocation so ad-hoc slog calls inherit the chosen verbosity.
func Setup(verbose, quiet bool) {
	slog.SetDefault(New(verbose, quiet))
}
