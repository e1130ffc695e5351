// basecalc - Convert numbers between decimal, binary and hexadecimal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/cli"
	"github.com/jeranaias/basecalc/internal/config"
	"github.com/jeranaias/basecalc/internal/logging"
	"github.com/jeranaias/basecalc/internal/ui/converter"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run())
}

// run executes one command and returns the process exit code.
func run() int {
	cmd, args := cli.Parse()

	if args.NoColor {
		cli.ForceColorsEnabled(false)
	}

	errOut := os.Stderr
	if args.JSON {
		errOut = os.Stdout
	}

	// help and unknown commands never touch the config.
	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdUnknown:
		err := cli.HandleUnknown(args)
		cli.DisplayError(errOut, err, args.JSON)
		return cli.GetExitCode(err)
	}

	cfg, cfgErr := loadConfig(args)
	if cfgErr != nil {
		// doctor diagnoses the file and config init repairs it.
		if cmd != cli.CmdDoctor && cmd != cli.CmdConfig && cmd != cli.CmdVersion {
			cli.DisplayError(errOut, cfgErr, args.JSON)
			return cli.GetExitCode(cfgErr)
		}
		if !args.JSON && !args.Quiet {
			fmt.Fprintf(os.Stderr, "%s %v (using defaults)\n", cli.WarningStyle.Render("[!]"), cfgErr)
		}
		cfg = config.Default()
	}
	config.SetGlobal(cfg)

	logger := newLogger(cfg, args)
	defer logger.Sync()

	env, err := cli.NewEnv(cfg, logger)
	if err != nil {
		cli.DisplayError(errOut, err, args.JSON)
		return cli.GetExitCode(err)
	}
	env.ConfigPath = args.ConfigPath
	if env.ConfigPath == "" {
		if p, err := config.ActivePath(); err == nil {
			env.ConfigPath = p
		}
	}

	logger.Debug("config loaded", zap.Stringer("config", cfg))
	logger.Debug("command started",
		zap.String("command", cmd.String()),
		zap.String("name", args.Name),
		zap.String("config", env.ConfigPath))

	if err := dispatch(cmd, env, args); err != nil {
		logger.Debug("command failed", zap.String("command", cmd.String()), zap.Error(err))
		cli.DisplayError(errOut, err, args.JSON)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}

// dispatch routes a parsed command to its handler.
func dispatch(cmd cli.Command, env *cli.Env, args cli.Args) error {
	switch cmd {
	case cli.CmdConvert:
		return cli.HandleConvert(env, args)
	case cli.CmdMenu:
		return cli.HandleMenu(env, args)
	case cli.CmdTable:
		return cli.HandleTable(env, args)
	case cli.CmdHistory:
		return cli.HandleHistory(env, args)
	case cli.CmdConfig:
		return cli.HandleConfig(env, args)
	case cli.CmdDoctor:
		return cli.HandleDoctor(env, args)
	case cli.CmdVersion:
		return cli.HandleVersion(env, args)
	default:
		return runTUI(env, args)
	}
}

// loadConfig reads --config when given, otherwise the default locations.
func loadConfig(args cli.Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		cfg, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return nil, &cli.ConfigError{Path: args.ConfigPath, Err: err}
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if cfg != nil {
		// A non-nil config with an error only means the config
		// directory could not be resolved; defaults are usable.
		return cfg, nil
	}
	return nil, &cli.ConfigError{Err: err}
}

// newLogger opens the log file, falling back to a no-op logger.
func newLogger(cfg *config.Config, args cli.Args) *zap.Logger {
	path, err := cfg.LogPath()
	if err == nil {
		err = config.EnsureConfigDir()
	}
	if err != nil {
		return zap.NewNop()
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Path:    path,
		Verbose: args.Verbose,
	})
	if err != nil {
		if args.Verbose {
			fmt.Fprintf(os.Stderr, "%s logging disabled: %v\n", cli.WarningStyle.Render("[!]"), err)
		}
		return zap.NewNop()
	}
	return logger
}

// runTUI opens the interactive converter form.
func runTUI(env *cli.Env, args cli.Args) error {
	if args.JSON {
		return cli.NewValidationErrorWithExample("json", "true",
			"the converter form is interactive and has no JSON output", "basecalc convert 255 --to hex --json")
	}
	if !cli.IsStdoutTTY() {
		return cli.NewValidationErrorWithExample("terminal", "stdout",
			"the converter form needs a terminal", "basecalc convert 255 --to hex")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Only watch a file that exists; fsnotify cannot watch a missing path.
	watchPath := env.ConfigPath
	if _, err := os.Stat(watchPath); err != nil {
		watchPath = ""
	}

	env.Logger.Info("converter started", zap.String("config", watchPath))
	err := converter.Run(ctx, converter.Options{
		Config:  env.Config,
		History: env.History,
		Logger:  env.Logger,
	}, watchPath)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
