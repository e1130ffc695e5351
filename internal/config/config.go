// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for basecalc.
//
// Supports TOML, JSON and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.basecalc/config.toml
//   - ~/.basecalc/config.json
//   - ~/.basecalc/config.yaml
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/basecalc/internal/radix"
	"github.com/jeranaias/basecalc/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete basecalc configuration.
type Config struct {
	Version string `toml:"version" json:"version" yaml:"version"`

	// Converter holds the default bases and output formatting
	Converter ConverterConfig `toml:"converter" json:"converter" yaml:"converter"`

	// UI configuration for the interactive form and CLI output
	UI UIConfig `toml:"ui" json:"ui" yaml:"ui"`

	// History of past conversions
	History HistoryConfig `toml:"history" json:"history" yaml:"history"`

	// Logging for the front-ends
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// ConverterConfig contains conversion defaults.
type ConverterConfig struct {
	// DefaultFrom is the source base used when none is given: "decimal", "binary", "hexadecimal"
	DefaultFrom string `toml:"default_from" json:"default_from" yaml:"default_from"`
	// DefaultTo is the target base used when none is given
	DefaultTo string `toml:"default_to" json:"default_to" yaml:"default_to"`
	// GroupSize splits output into groups of N digits for display (0 = no grouping)
	GroupSize int `toml:"group_size" json:"group_size" yaml:"group_size"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is "dark", "light" or "auto"
	Theme string `toml:"theme" json:"theme" yaml:"theme"`
	// ShowLogo prints the ASCII logo above the menu and the form
	ShowLogo bool `toml:"show_logo" json:"show_logo" yaml:"show_logo"`
}

// HistoryConfig contains conversion history settings.
type HistoryConfig struct {
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`
	// MaxEntries caps the history file; oldest entries are dropped first
	MaxEntries int `toml:"max_entries" json:"max_entries" yaml:"max_entries"`
	// Path to the history file (empty = ~/.basecalc/history.tsv)
	Path string `toml:"path" json:"path" yaml:"path"`
}

// LoggingConfig contains diagnostic logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error, off
	Level string `toml:"level" json:"level" yaml:"level"`
	// Path to the log file (empty = ~/.basecalc/basecalc.log)
	Path string `toml:"path" json:"path" yaml:"path"`
}

// From returns the configured default source base.
func (c ConverterConfig) From() radix.Base {
	b, err := radix.ParseBase(c.DefaultFrom)
	if err != nil {
		return radix.Decimal
	}
	return b
}

// To returns the configured default target base.
func (c ConverterConfig) To() radix.Base {
	b, err := radix.ParseBase(c.DefaultTo)
	if err != nil {
		return radix.Binary
	}
	return b
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Converter: ConverterConfig{
			DefaultFrom: "decimal",
			DefaultTo:   "binary",
			GroupSize:   0,
		},

		UI: UIConfig{
			Theme:    "dark",
			ShowLogo: true,
		},

		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 500,
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the basecalc configuration directory path.
// BASECALC_HOME overrides the default ~/.basecalc.
func ConfigDir() (string, error) {
	if dir := os.Getenv("BASECALC_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".basecalc"), nil
}

func pathIn(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) { return pathIn("config.toml") }

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) { return pathIn("config.json") }

// ConfigPathYAML returns the path to the YAML config file.
func ConfigPathYAML() (string, error) { return pathIn("config.yaml") }

// HistoryPath returns the effective history file path.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	return pathIn("history.tsv")
}

// LogPath returns the effective log file path.
func (c *Config) LogPath() (string, error) {
	if c.Logging.Path != "" {
		return c.Logging.Path, nil
	}
	return pathIn("basecalc.log")
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ActivePath returns the first config file that exists, or the TOML path if
// none does.
func ActivePath() (string, error) {
	for _, fn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON, ConfigPathYAML} {
		p, err := fn()
		if err != nil {
			return "", err
		}
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}
	return ConfigPathTOML()
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML, then JSON, then YAML, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	var loadErr error

	for _, fn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON, ConfigPathYAML} {
		path, err := fn()
		if err != nil {
			loadErr = err
			break
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Return defaults (with any path error for informational purposes)
	return cfg, loadErr
}

// LoadTOML decodes a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadYAML decodes a YAML file into cfg.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The format is chosen by extension; anything that is not .json,
// .yaml or .yml is read as TOML. Keys missing from the file keep their
// default values.
func LoadFromPath(path string) (*Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ReadFile loads path without environment overrides, as the file itself
// says. A missing file yields the defaults. Used when editing the file.
func ReadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return cfg, nil
}

func decodeFile(path string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = LoadJSON(cfg, path)
	case ".yaml", ".yml":
		err = LoadYAML(cfg, path)
	default:
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTo writes cfg to path in the format implied by its extension.
func SaveTo(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SaveJSON(cfg, path)
	case ".yaml", ".yml":
		return SaveYAML(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var b strings.Builder
	b.WriteString("# basecalc configuration file\n")
	b.WriteString("# Generated by basecalc - edit with care\n\n")

	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveYAML saves the configuration to a YAML file with 0600 permissions.
func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "off": true}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := radix.ParseBase(c.Converter.DefaultFrom); err != nil {
		errs = append(errs, ValidationError{
			Field:   "converter.default_from",
			Message: fmt.Sprintf("invalid base '%s', must be one of: decimal, binary, hexadecimal", c.Converter.DefaultFrom),
		})
	}
	if _, err := radix.ParseBase(c.Converter.DefaultTo); err != nil {
		errs = append(errs, ValidationError{
			Field:   "converter.default_to",
			Message: fmt.Sprintf("invalid base '%s', must be one of: decimal, binary, hexadecimal", c.Converter.DefaultTo),
		})
	}
	if c.Converter.GroupSize < 0 || c.Converter.GroupSize > 64 {
		errs = append(errs, ValidationError{
			Field:   "converter.group_size",
			Message: fmt.Sprintf("must be between 0 and 64, got %d", c.Converter.GroupSize),
		})
	}

	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light", "auto":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.History.MaxEntries < 1 {
		errs = append(errs, ValidationError{
			Field:   "history.max_entries",
			Message: fmt.Sprintf("must be at least 1, got %d", c.History.MaxEntries),
		})
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error, off", c.Logging.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Converter.DefaultFrom == "" {
		c.Converter.DefaultFrom = defaults.Converter.DefaultFrom
	}
	if c.Converter.DefaultTo == "" {
		c.Converter.DefaultTo = defaults.Converter.DefaultTo
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - BASECALC_FROM: overrides converter.default_from
//   - BASECALC_TO: overrides converter.default_to
//   - BASECALC_THEME: overrides ui.theme
//   - BASECALC_LOG_LEVEL: overrides logging.level
//   - BASECALC_HISTORY: "0"/"false" disables history, "1"/"true" enables it
func (c *Config) ApplyEnvOverrides() {
	if from := os.Getenv("BASECALC_FROM"); from != "" {
		c.Converter.DefaultFrom = from
	}
	if to := os.Getenv("BASECALC_TO"); to != "" {
		c.Converter.DefaultTo = to
	}
	if theme := os.Getenv("BASECALC_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if level := os.Getenv("BASECALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if hist := os.Getenv("BASECALC_HISTORY"); hist != "" {
		c.History.Enabled = hist == "1" || strings.ToLower(hist) == "true"
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// lookup walks a dot-notation key ("converter.default_from") to a field.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation. String values are
// converted to the field's type. The change is rejected if the resulting
// config does not validate.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}

	old := reflect.New(field.Type()).Elem()
	old.Set(field)
	if err := setFieldValue(field, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		field.Set(old)
		return err
	}
	return nil
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(lower == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"converter.default_from",
		"converter.default_to",
		"converter.group_size",
		"ui.theme",
		"ui.show_logo",
		"history.enabled",
		"history.max_entries",
		"history.path",
		"logging.level",
		"logging.path",
	}
}

// String returns the config as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
