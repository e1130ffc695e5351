// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the command handlers of
// basecalc.
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed command line, global flags included
//   - Env: what handlers share (config, logger, history store, writers)
//   - JSONResponse: the envelope printed with --json
//
// # Usage
//
//	cmd, args := cli.Parse()
//	env, err := cli.NewEnv(cfg, logger)
//	switch cmd {
//	case cli.CmdConvert:
//	    err = cli.HandleConvert(env, args)
//	case cli.CmdMenu:
//	    err = cli.HandleMenu(env, args)
//	// ... other commands
//	}
//	if err != nil {
//	    cli.DisplayError(os.Stderr, err, args.JSON)
//	    os.Exit(cli.GetExitCode(err))
//	}
//
// # Commands Overview
//
//   - convert, dec2bin, dec2hex, bin2dec, bin2hex, hex2dec, hex2bin:
//     one-shot conversions
//   - menu: the step-by-step text menu
//   - table: decimal/binary/hexadecimal table for a range
//   - history: list or clear past conversions
//   - config: show, get, set, path, init
//   - doctor: environment health checks
//
// Handlers never exit the process. Errors map to exit codes through
// GetExitCode: 2 for usage, 3 for configuration, 4 for a number that is not
// valid in its base.
package cli
