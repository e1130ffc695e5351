// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display the effective configuration
//   get <key>           Print one value
//   set <key> <value>   Change one value in the config file
//   path                Show the config file location
//   init [--force]      Write a config file with the defaults
//
// Examples:
//   basecalc config set converter.default_to hex
//   basecalc config set converter.group_size 4
//   basecalc config set ui.theme light
//   basecalc config get history.max_entries --json
//
// The running form picks up changes made with "config set" immediately.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/config"
)

var configSubcommands = []string{"show", "get", "set", "path", "init"}

// HandleConfig handles the "config" command.
func HandleConfig(env *Env, args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(env, args)
	case "get":
		return handleConfigGet(env, args)
	case "set":
		return handleConfigSet(env, args)
	case "path":
		return handleConfigPath(env, args)
	case "init":
		return handleConfigInit(env, args)
	default:
		return errUnknownSubcommand("config", args.Subcommand, configSubcommands)
	}
}

// configPath returns the file the config subcommands operate on.
func configPath(env *Env) (string, error) {
	if env.ConfigPath != "" {
		return env.ConfigPath, nil
	}
	path, err := config.ActivePath()
	if err != nil {
		return "", &ConfigError{Err: err}
	}
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// =============================================================================
// SHOW / GET
// =============================================================================

func handleConfigShow(env *Env, args Args) error {
	path, err := configPath(env)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("config show", map[string]interface{}{
			"path":   path,
			"exists": fileExists(path),
			"config": env.Config,
		}).Write(env.Out)
	}

	keys := config.GetAllKeys()
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}

	if !args.Quiet {
		fmt.Fprintln(env.Out, TitleStyle.Render("basecalc configuration"))
		fmt.Fprintln(env.Out, RenderSeparator())
	}
	section := ""
	for _, k := range keys {
		v, err := env.Config.Get(k)
		if err != nil {
			return NewCommandError("config", "show", "unreadable key "+k, err)
		}
		if args.Quiet {
			fmt.Fprintf(env.Out, "%s=%v\n", k, v)
			continue
		}
		if head, _, ok := strings.Cut(k, "."); ok && head != section {
			section = head
			fmt.Fprintln(env.Out, SectionStyle.Render("["+section+"]"))
		}
		fmt.Fprintf(env.Out, "  %s\n", RenderKeyValue(k, displayValue(v), width+2))
	}
	if !args.Quiet {
		fmt.Fprintln(env.Out, RenderSeparator())
		state := "not created yet, run 'basecalc config init'"
		if fileExists(path) {
			state = "exists"
		}
		fmt.Fprintf(env.Out, "Config file: %s %s\n", ValueStyle.Render(path), DimStyle.Render("("+state+")"))
	}
	return nil
}

// displayValue renders empty strings visibly.
func displayValue(v interface{}) string {
	if s, ok := v.(string); ok && s == "" {
		return `""`
	}
	return fmt.Sprint(v)
}

func handleConfigGet(env *Env, args Args) error {
	key := strings.ToLower(args.ConfigKey)
	if key == "" {
		return ErrMissingArgument("key", "basecalc config get converter.default_to")
	}

	v, err := env.Config.Get(key)
	if err != nil {
		return NewValidationErrorWithExample("key", key, err.Error(),
			"one of: "+strings.Join(config.GetAllKeys(), ", "))
	}

	if args.JSON {
		return NewJSONResponse("config get", map[string]interface{}{
			"key":   key,
			"value": v,
		}).Write(env.Out)
	}
	fmt.Fprintln(env.Out, fmt.Sprint(v))
	return nil
}

// =============================================================================
// SET / PATH / INIT
// =============================================================================

func handleConfigSet(env *Env, args Args) error {
	key := strings.ToLower(args.ConfigKey)
	if key == "" {
		return ErrMissingArgument("key", "basecalc config set ui.theme light")
	}
	if args.ConfigVal == "" {
		return ErrMissingArgument("value", fmt.Sprintf("basecalc config set %s <value>", key))
	}

	path, err := configPath(env)
	if err != nil {
		return err
	}

	// Edit what the file says, not the env-overridden view of it.
	cfg, err := config.ReadFile(path)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	if _, err := cfg.Get(key); err != nil {
		return NewValidationErrorWithExample("key", key, err.Error(),
			"one of: "+strings.Join(config.GetAllKeys(), ", "))
	}
	if err := cfg.Set(key, args.ConfigVal); err != nil {
		return NewValidationError(key, args.ConfigVal, err.Error())
	}

	if err := config.SaveTo(cfg, path); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	env.Logger.Info("config updated",
		zap.String("path", path),
		zap.String("key", key),
		zap.String("value", args.ConfigVal))

	value, _ := cfg.Get(key)
	if args.JSON {
		return NewJSONResponse("config set", map[string]interface{}{
			"path":  path,
			"key":   key,
			"value": value,
		}).Write(env.Out)
	}
	if !args.Quiet {
		fmt.Fprintf(env.Out, "%s %s = %v\n", SuccessStyle.Render("[OK]"), key, value)
	}
	return nil
}

func handleConfigPath(env *Env, args Args) error {
	path, err := configPath(env)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("config path", map[string]interface{}{
			"path":   path,
			"exists": fileExists(path),
		}).Write(env.Out)
	}
	fmt.Fprintln(env.Out, path)
	return nil
}

func handleConfigInit(env *Env, args Args) error {
	path, err := configPath(env)
	if err != nil {
		return err
	}
	force := NewArgParser(args.Raw).BoolFlag("force")

	if fileExists(path) && !force {
		return NewCommandError("config", "init", "file already exists (use --force to overwrite)",
			errors.New(path))
	}

	if err := config.SaveTo(config.Default(), path); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	env.Logger.Info("config initialised", zap.String("path", path))

	if args.JSON {
		return NewJSONResponse("config init", map[string]interface{}{
			"path":    path,
			"created": true,
		}).Write(env.Out)
	}
	if !args.Quiet {
		fmt.Fprintf(env.Out, "%s Wrote default configuration to %s\n", SuccessStyle.Render("[OK]"), path)
	}
	return nil
}
