// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/basecalc/internal/config"
	"github.com/jeranaias/basecalc/internal/radix"
)

func TestMain(m *testing.M) {
	ForceColorsEnabled(false)
	os.Exit(m.Run())
}

// =============================================================================
// COMMAND PARSING
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantCmd Command
	}{
		{"no args opens the form", nil, CmdTUI},
		{"tui", []string{"tui"}, CmdTUI},
		{"gui alias", []string{"gui"}, CmdTUI},
		{"convert", []string{"convert", "255"}, CmdConvert},
		{"convert alias", []string{"c", "255"}, CmdConvert},
		{"shortcut", []string{"dec2hex", "255"}, CmdConvert},
		{"menu", []string{"menu"}, CmdMenu},
		{"table", []string{"table", "0", "7"}, CmdTable},
		{"history", []string{"history", "clear"}, CmdHistory},
		{"config", []string{"config", "get", "ui.theme"}, CmdConfig},
		{"doctor", []string{"doctor"}, CmdDoctor},
		{"doctor alias", []string{"diag", "fix"}, CmdDoctor},
		{"version", []string{"version"}, CmdVersion},
		{"--version", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"-h", []string{"-h"}, CmdHelp},
		{"case insensitive", []string{"HEX2DEC", "ff"}, CmdConvert},
		{"unknown", []string{"frobnicate"}, CmdUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.args)
			assert.Equal(t, tt.wantCmd, cmd)
		})
	}
}

func TestParseArgs_GlobalFlagsAnywhere(t *testing.T) {
	cmd, args := ParseArgs([]string{"--json", "convert", "-q", "255", "--no-color", "--config=/tmp/x.toml", "-v"})

	assert.Equal(t, CmdConvert, cmd)
	assert.True(t, args.JSON)
	assert.True(t, args.Quiet)
	assert.True(t, args.NoColor)
	assert.True(t, args.Verbose)
	assert.Equal(t, "/tmp/x.toml", args.ConfigPath)
	assert.Equal(t, "255", args.Number)

	_, args = ParseArgs([]string{"--config", "cfg.yaml", "menu"})
	assert.Equal(t, "cfg.yaml", args.ConfigPath)
}

func TestParseArgs_ConvertFlags(t *testing.T) {
	_, args := ParseArgs([]string{"convert", "1010", "--from", "bin", "-t", "hex", "--group=2"})

	assert.Equal(t, "1010", args.Number)
	assert.Equal(t, "bin", args.From)
	assert.Equal(t, "hex", args.To)
	assert.Equal(t, "2", args.Group)
}

func TestParseArgs_SignedAndDashedNumbers(t *testing.T) {
	_, args := ParseArgs([]string{"dec2bin", "-5"})
	assert.Equal(t, "-5", args.Number)

	_, args = ParseArgs([]string{"hex2dec", "--", "-q"})
	assert.Equal(t, "-q", args.Number)
	assert.False(t, args.Quiet)
}

func TestParseArgs_ShortcutSetsBases(t *testing.T) {
	tests := []struct {
		word     string
		from, to radix.Base
	}{
		{"dec2bin", radix.Decimal, radix.Binary},
		{"dec2hex", radix.Decimal, radix.Hexadecimal},
		{"bin2dec", radix.Binary, radix.Decimal},
		{"bin2hex", radix.Binary, radix.Hexadecimal},
		{"hex2dec", radix.Hexadecimal, radix.Decimal},
		{"hex2bin", radix.Hexadecimal, radix.Binary},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			_, args := ParseArgs([]string{tt.word, "1", "--from", "ignored"})
			assert.Equal(t, tt.word, args.Name)
			assert.Equal(t, tt.from.String(), args.From, "shortcut bases win over flags")
			assert.Equal(t, tt.to.String(), args.To)
		})
	}
}

func TestParseArgs_ConfigArgs(t *testing.T) {
	_, args := ParseArgs([]string{"config", "SET", "ui.theme", "light"})
	assert.Equal(t, "set", args.Subcommand)
	assert.Equal(t, "ui.theme", args.ConfigKey)
	assert.Equal(t, "light", args.ConfigVal)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "convert", CmdConvert.String())
	assert.Equal(t, "doctor", CmdDoctor.String())
	assert.Equal(t, "unknown", Command(99).String())
}

// =============================================================================
// ARG PARSER
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name: "flag with value",
			args: []string{"FF", "--from", "hex"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "FF", p.Positional(0))
				assert.Equal(t, "hex", p.Flag("from"))
				assert.Equal(t, "FF", p.Subcommand())
			},
		},
		{
			name: "flag with equals",
			args: []string{"--to=bin"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "bin", p.Flag("--to"))
				assert.Equal(t, "", p.Positional(0))
			},
		},
		{
			name: "boolean flag at the end",
			args: []string{"init", "--force"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.True(t, p.BoolFlag("force"))
				assert.True(t, p.HasFlag("--force"))
			},
		},
		{
			name: "explicit boolean value",
			args: []string{"--force=false"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.False(t, p.BoolFlag("force"))
				assert.True(t, p.HasFlag("force"))
			},
		},
		{
			name: "aliases",
			args: []string{"-g", "4"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "4", p.FlagAny("group", "g"))
				assert.Equal(t, "9", p.FlagOrDefault("missing", "9"))
			},
		},
		{
			name: "positionals in order",
			args: []string{"a", "b", "c"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "b", p.Positional(1))
				assert.Equal(t, "", p.Positional(5))
				assert.Equal(t, "", p.Positional(-1))
				assert.Equal(t, []string{"a", "b", "c"}, p.Raw())
			},
		},
		{
			name: "lone dash is positional",
			args: []string{"-"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "-", p.Positional(0))
			},
		},
		{
			name: "dash digits are values",
			args: []string{"-5", "--group", "-1"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "-5", p.Positional(0))
				assert.Equal(t, "-1", p.Flag("group"))
				assert.False(t, p.HasFlag("5"))
			},
		},
		{
			name: "double dash ends flags",
			args: []string{"--from", "hex", "--", "-f", "--to"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "hex", p.Flag("from"))
				assert.Equal(t, "-f", p.Positional(0))
				assert.Equal(t, "--to", p.Positional(1))
				assert.False(t, p.HasFlag("to"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewArgParser(tt.args))
		})
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	v, err := ParseNonNegativeInt("0", "group")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = ParseNonNegativeInt("-3", "group")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "group", verr.Field)
}

// =============================================================================
// ERRORS AND EXIT CODES
// =============================================================================

func TestGetExitCode(t *testing.T) {
	_, numErr := radix.Parse("12", radix.Binary)
	require.Error(t, numErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid numeral", numErr, ExitInvalidNumeral},
		{"wrapped numeral", fmt.Errorf("convert: %w", numErr), ExitInvalidNumeral},
		{"validation", NewValidationError("to", "base7", "unknown base"), ExitUsageError},
		{"unknown base", radix.ErrUnknownBase, ExitUsageError},
		{"config error", &ConfigError{Path: "x", Err: errors.New("boom")}, ExitConfigError},
		{"config validation", config.ValidateErrors{{Field: "ui.theme", Message: "bad"}}, ExitConfigError},
		{"command error", NewCommandError("history", "clear", "failed", nil), ExitGeneralError},
		{"silent keeps code", &SilentError{Err: NewValidationError("a", "b", "c")}, ExitUsageError},
		{"generic", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestDisplayError(t *testing.T) {
	var buf strings.Builder

	DisplayError(&buf, NewValidationErrorWithExample("to", "base7", "unknown base", "hex"), false)
	assert.Contains(t, buf.String(), "[ERROR] invalid to: unknown base (got: base7)")
	assert.Contains(t, buf.String(), "Example: hex")

	buf.Reset()
	DisplayError(&buf, &SilentError{Err: errors.New("already shown")}, false)
	assert.Empty(t, buf.String())

	buf.Reset()
	DisplayError(&buf, nil, false)
	assert.Empty(t, buf.String())
}

func TestDisplayErrorJSON_Numeral(t *testing.T) {
	_, err := radix.Parse("1F", radix.Decimal)
	require.Error(t, err)

	var buf strings.Builder
	DisplayError(&buf, err, true)

	out := buf.String()
	assert.Contains(t, out, `"error_type": "invalid_numeral"`)
	assert.Contains(t, out, `"base": "decimal"`)
	assert.Contains(t, out, `"success": false`)
}

func TestCommandError_Unwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := NewCommandError("history", "clear", "could not delete", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "history clear failed: could not delete: disk full", err.Error())
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"conver", "convert"},
		{"dec2hx", "dec2hex"},
		{"tabel", "table"},
		{"histroy", "history"},
		{"convert", ""},
		{"x", ""},
		{"zzzzzzzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestCommand(tt.input))
		})
	}
}

func TestHandleUnknown_Suggests(t *testing.T) {
	err := HandleUnknown(Args{Name: "tabel"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Example, "basecalc table")
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("menu", "menu"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 1, levenshteinDistance("table", "tables"))
	assert.Equal(t, 2, levenshteinDistance("tabel", "table"))
}
