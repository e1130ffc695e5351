// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger used by the basecalc
// front-ends. The conversion engine never logs; only the CLI and the
// interactive form do, and only to a file so the terminal stays clean.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	// Level is debug, info, warn, error or off
	Level string
	// Path is the log file; empty logs to stderr
	Path string
	// Verbose forces debug level, even when Level is off
	Verbose bool
}

// New returns a JSON logger writing to opts.Path. Level "off" without
// Verbose yields a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if opts.Verbose {
		level = "debug"
	}
	if level == "off" {
		return zap.NewNop(), nil
	}
	if level == "" {
		level = "info"
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.ErrorOutputPaths = []string{"stderr"}

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{opts.Path}
	} else {
		cfg.OutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
