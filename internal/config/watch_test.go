// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\ntheme = \"dark\"\n")

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, func(cfg *Config, err error) {
		if err == nil {
			select {
			case changes <- cfg:
			default:
			}
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	writeFile(t, path, "[ui]\ntheme = \"light\"\n")

	select {
	case cfg := <-changes:
		assert.Equal(t, "light", cfg.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config write")
	}

	require.NoError(t, w.Close())
	// Close is idempotent.
	require.NoError(t, w.Close())
}

func TestWatcher_ReportsInvalidConfig(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "")

	errs := make(chan error, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, func(cfg *Config, err error) {
		if err != nil {
			select {
			case errs <- err:
			default:
			}
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	writeFile(t, path, "[converter]\ndefault_to = \"base64\"\n")

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "converter.default_to")
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported for invalid config")
	}
}

func TestWatcher_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")

	w, err := NewWatcher(path, 0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	require.NoError(t, w.Close())
}
