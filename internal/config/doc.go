// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for basecalc.
//
// Supports TOML, JSON and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ConverterConfig: Default source/target bases and digit grouping
//   - HistoryConfig: Conversion history file settings
//   - Watcher: Reloads the config file when it changes
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (BASECALC_*)
//   - ~/.basecalc/config.toml
//   - ~/.basecalc/config.json
//   - ~/.basecalc/config.yaml
//   - Built-in defaults
//
// BASECALC_HOME relocates the ~/.basecalc directory.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	from := cfg.Converter.From()
package config
