// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert_cmd.go - One-shot conversions: convert and the dec2bin family.
package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/radix"
	"github.com/jeranaias/basecalc/internal/util"
)

// HandleConvert converts args.Number from args.From to args.To, falling back
// to the configured default bases.
func HandleConvert(env *Env, args Args) error {
	command := args.Name
	if command == "" {
		command = CmdConvert.String()
	}

	number := strings.TrimSpace(args.Number)
	if number == "" {
		return ErrMissingArgument("number", fmt.Sprintf("basecalc %s 255", command))
	}

	from, err := resolveBase(args.From, env.Config.Converter.From(), "from")
	if err != nil {
		return err
	}
	to, err := resolveBase(args.To, env.Config.Converter.To(), "to")
	if err != nil {
		return err
	}
	group, err := resolveGroup(args.Group, env.Config.Converter.GroupSize)
	if err != nil {
		return err
	}

	input := util.UngroupDigits(number)
	output, err := radix.Convert(input, from, to)
	if err != nil {
		env.Logger.Debug("conversion rejected",
			zap.String("command", command),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.String("input", input),
			zap.Error(err))
		return err
	}

	env.Logger.Debug("converted",
		zap.String("command", command),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("input_len", len(input)),
		zap.Int("output_len", len(output)))
	recordConversion(env, from, to, input, output)

	display := util.GroupDigits(output, group, " ")

	if args.JSON {
		data := ConversionData{
			Input:  input,
			From:   from.String(),
			To:     to.String(),
			Output: output,
		}
		if display != output {
			data.Grouped = display
		}
		return NewJSONResponse(command, data).Write(env.Out)
	}

	if args.Quiet {
		fmt.Fprintln(env.Out, display)
		return nil
	}

	fmt.Fprintf(env.Out, "%s %s %s %s\n",
		DimStyle.Render(from.Short()),
		ValueStyle.Render(input),
		DimStyle.Render("-> "+to.Short()),
		ResultStyle.Render(display))
	return nil
}

// resolveBase parses a base name, returning def when name is empty.
func resolveBase(name string, def radix.Base, field string) (radix.Base, error) {
	if name == "" {
		return def, nil
	}
	b, err := radix.ParseBase(name)
	if err != nil {
		return 0, &ValidationError{
			Field:   field,
			Value:   name,
			Reason:  "unknown base",
			Example: "bin, dec or hex (also 2, 10, 16)",
		}
	}
	return b, nil
}

// resolveGroup parses --group, returning def when it was not given.
func resolveGroup(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return ParseNonNegativeInt(raw, "group")
}

// recordConversion appends to history when it is enabled. Failures are
// logged, not returned.
func recordConversion(env *Env, from, to radix.Base, input, output string) {
	if env.History == nil {
		return
	}
	if _, err := env.History.Append(from, to, input, output); err != nil {
		env.Logger.Warn("failed to record history",
			zap.String("path", env.History.Path()),
			zap.Error(err))
	}
}
