// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/basecalc/internal/radix"
)

// isolate points the config directory at a fresh temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BASECALC_HOME", dir)
	for _, k := range []string{"BASECALC_FROM", "BASECALC_TO", "BASECALC_THEME", "BASECALC_LOG_LEVEL", "BASECALC_HISTORY"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// =============================================================================
// DEFAULTS AND LOADING
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, radix.Decimal, cfg.Converter.From())
	assert.Equal(t, radix.Binary, cfg.Converter.To())
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[converter]
default_from = "hex"
default_to = "decimal"
group_size = 4

[ui]
theme = "light"
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, radix.Hexadecimal, cfg.Converter.From())
	assert.Equal(t, radix.Decimal, cfg.Converter.To())
	assert.Equal(t, 4, cfg.Converter.GroupSize)
	assert.Equal(t, "light", cfg.UI.Theme)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 500, cfg.History.MaxEntries)
	assert.True(t, cfg.History.Enabled)
}

func TestLoad_JSONFallback(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.json"), `{"converter": {"default_to": "hexadecimal"}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, radix.Hexadecimal, cfg.Converter.To())
}

func TestLoad_YAMLFallback(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "history:\n  enabled: false\n  max_entries: 20\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 20, cfg.History.MaxEntries)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[converter]\ndefault_from = \"octal\"\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converter.default_from")
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[converter\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BASECALC_FROM", "bin")
	t.Setenv("BASECALC_TO", "hex")
	t.Setenv("BASECALC_THEME", "auto")
	t.Setenv("BASECALC_LOG_LEVEL", "debug")
	t.Setenv("BASECALC_HISTORY", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, radix.Binary, cfg.Converter.From())
	assert.Equal(t, radix.Hexadecimal, cfg.Converter.To())
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.History.Enabled)
}

func TestReadFile_IgnoresEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\ntheme = \"light\"\n")
	t.Setenv("BASECALC_THEME", "dark")

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.UI.Theme)
}

func TestReadFile_MissingGivesDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := ReadFile(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestActivePath(t *testing.T) {
	dir := isolate(t)

	p, err := ActivePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), p)

	writeFile(t, filepath.Join(dir, "config.yaml"), "ui:\n  theme: dark\n")
	p, err = ActivePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), p)
}

// =============================================================================
// SAVE
// =============================================================================

func TestSaveAndLoad_AllFormats(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.Converter.DefaultFrom = "hexadecimal"
	cfg.Converter.GroupSize = 8
	cfg.UI.ShowLogo = false

	for _, name := range []string{"out.toml", "out.json", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveTo(cfg, path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			loaded, err := LoadFromPath(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Converter.DefaultFrom = "octal"
	cfg.Converter.GroupSize = -1
	cfg.UI.Theme = "neon"
	cfg.History.MaxEntries = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidateErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()
	assert.Equal(t, "decimal", cfg.Converter.DefaultFrom)
	assert.Equal(t, "binary", cfg.Converter.DefaultTo)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 500, cfg.History.MaxEntries)
	assert.Equal(t, "info", cfg.Logging.Level)
}

// =============================================================================
// GET / SET
// =============================================================================

func TestGetSet_DotNotation(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("converter.default_to", "hex"))
	v, err := cfg.Get("converter.default_to")
	require.NoError(t, err)
	assert.Equal(t, "hex", v)

	require.NoError(t, cfg.Set("converter.group_size", "4"))
	assert.Equal(t, 4, cfg.Converter.GroupSize)

	require.NoError(t, cfg.Set("ui.show_logo", "false"))
	assert.False(t, cfg.UI.ShowLogo)

	require.NoError(t, cfg.Set("history.max_entries", 10))
	assert.Equal(t, 10, cfg.History.MaxEntries)
}

func TestSet_RejectsInvalidAndRestores(t *testing.T) {
	cfg := Default()

	err := cfg.Set("converter.default_from", "octal")
	require.Error(t, err)
	assert.Equal(t, "decimal", cfg.Converter.DefaultFrom)

	err = cfg.Set("converter.group_size", "four")
	require.Error(t, err)
	assert.Equal(t, 0, cfg.Converter.GroupSize)
}

func TestGet_UnknownKeys(t *testing.T) {
	cfg := Default()

	_, err := cfg.Get("converter.nope")
	assert.Error(t, err)

	_, err = cfg.Get("version.major")
	assert.Error(t, err)

	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestGetAllKeys_Resolvable(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

// =============================================================================
// GLOBAL SINGLETON
// =============================================================================

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently.
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := Default()
			c.UI.Theme = "light"
			SetGlobal(c)
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_SetGlobalAfterReload(t *testing.T) {
	dir := isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	assert.Equal(t, "dark", Global().UI.Theme)

	writeFile(t, filepath.Join(dir, "config.toml"), "[ui]\ntheme = \"light\"\n")
	cfg, err := Load()
	require.NoError(t, err)
	SetGlobal(cfg)
	assert.Equal(t, "light", Global().UI.Theme)
}
