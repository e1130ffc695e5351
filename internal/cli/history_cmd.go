// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Past conversions.
//
// Command: history [subcommand]
// Short:   Show or clear the conversion history
//
// Subcommands:
//   list (default)      Show the most recent conversions
//   clear               Delete the history file
//   export              Write the history to a Markdown, JSON or CSV file
//
// Flags:
//   -n, --limit N       Number of entries to show (default 20, 0 = all)
//   -v, --verbose       list: do not shorten long numerals
//   --format FMT        export: md, json or csv (default md)
//   -o, --output PATH   export: file to write, "-" for stdout
//   --json              Output in JSON format
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/export"
	"github.com/jeranaias/basecalc/internal/history"
	"github.com/jeranaias/basecalc/internal/util"
)

// DefaultHistoryLimit is the number of entries history list shows.
const DefaultHistoryLimit = 20

// historyCellWidth bounds each numeral in the styled listing.
const historyCellWidth = 32

var historySubcommands = []string{"list", "clear", "export"}

// HandleHistory handles the "history" command.
func HandleHistory(env *Env, args Args) error {
	store, err := historyStore(env)
	if err != nil {
		return err
	}

	switch args.Subcommand {
	case "", "list", "ls":
		return handleHistoryList(env, args, store)
	case "clear":
		return handleHistoryClear(env, args, store)
	case "export":
		return handleHistoryExport(env, args, store)
	default:
		return errUnknownSubcommand("history", args.Subcommand, historySubcommands)
	}
}

// historyStore returns the env's store, or one on the configured path when
// recording is disabled so existing history can still be read or cleared.
func historyStore(env *Env) (*history.Store, error) {
	if env.History != nil {
		return env.History, nil
	}
	path, err := env.Config.HistoryPath()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return history.NewStore(path, env.Config.History.MaxEntries), nil
}

// historyLimit reads --limit, returning def when it was not given.
func historyLimit(p *ArgParser, def int) (int, error) {
	raw := p.FlagAny("limit", "n")
	if raw == "" {
		if p.HasFlag("limit") || p.HasFlag("n") {
			return 0, NewValidationErrorWithExample("limit", "", "value is required", "basecalc history --limit 5")
		}
		return def, nil
	}
	return ParseNonNegativeInt(raw, "limit")
}

func handleHistoryList(env *Env, args Args, store *history.Store) error {
	limit, err := historyLimit(NewArgParser(args.Raw), DefaultHistoryLimit)
	if err != nil {
		return err
	}

	entries, err := store.List(limit)
	if err != nil {
		return NewCommandError("history", "list", "could not read the history file", err)
	}

	if args.JSON {
		data := HistoryData{Path: store.Path(), Entries: make([]HistoryEntry, 0, len(entries))}
		for _, e := range entries {
			data.Entries = append(data.Entries, HistoryEntry{
				ID:     e.ID,
				Time:   e.Time.Format(time.RFC3339),
				From:   e.From.String(),
				To:     e.To.String(),
				Input:  e.Input,
				Output: e.Output,
			})
		}
		return NewJSONResponse("history list", data).Write(env.Out)
	}

	if args.Quiet {
		for _, e := range entries {
			fmt.Fprintf(env.Out, "%s\t%s\t%s\t%s\n", e.From.Short(), e.To.Short(), e.Input, e.Output)
		}
		return nil
	}

	if !env.Config.History.Enabled {
		fmt.Fprintln(env.Out, WarningStyle.Render("[!] History recording is disabled (history.enabled = false)"))
	}
	if len(entries) == 0 {
		fmt.Fprintln(env.Out, DimStyle.Render("No conversions recorded yet."))
		return nil
	}

	cell := func(s string) string {
		if args.Verbose {
			return s
		}
		return util.TruncateWidth(s, historyCellWidth)
	}

	fmt.Fprintln(env.Out, TitleStyle.Render("Conversion history"))
	fmt.Fprintln(env.Out, RenderSeparator())
	for _, e := range entries {
		fmt.Fprintf(env.Out, "%s  %s %s %s %s\n",
			DimStyle.Render(e.Time.Local().Format("2006-01-02 15:04:05")),
			LabelStyle.Render(e.From.Short()),
			ValueStyle.Render(cell(e.Input)),
			DimStyle.Render("-> "+e.To.Short()),
			ResultStyle.Render(cell(e.Output)))
	}
	fmt.Fprintln(env.Out, RenderSeparator())
	fmt.Fprintln(env.Out, DimStyle.Render(fmt.Sprintf("%d entries from %s", len(entries), store.Path())))
	return nil
}

func handleHistoryClear(env *Env, args Args, store *history.Store) error {
	if err := store.Clear(); err != nil {
		return NewCommandError("history", "clear", "could not delete the history file", err)
	}
	env.Logger.Info("history cleared", zap.String("path", store.Path()))

	if args.JSON {
		return NewJSONResponse("history clear", map[string]interface{}{
			"path":    store.Path(),
			"cleared": true,
		}).Write(env.Out)
	}
	if !args.Quiet {
		fmt.Fprintf(env.Out, "%s History cleared\n", SuccessStyle.Render("[OK]"))
	}
	return nil
}

func handleHistoryExport(env *Env, args Args, store *history.Store) error {
	p := NewArgParser(args.Raw)
	limit, err := historyLimit(p, 0)
	if err != nil {
		return err
	}
	output := p.FlagAny("output", "o")
	format := p.FlagOrDefault("format", filepath.Ext(output))

	opts := export.DefaultOptions()
	opts.GroupSize = env.Config.Converter.GroupSize
	exporter, err := export.New(format, opts)
	if err != nil {
		return NewValidationErrorWithExample("format", format, "unknown export format",
			"basecalc history export --format "+strings.Join(export.Formats, "|"))
	}

	entries, err := store.List(limit)
	if err != nil {
		return NewCommandError("history", "export", "could not read the history file", err)
	}

	var path string
	switch output {
	case "-":
		content, err := exporter.Export(entries)
		if err != nil {
			return exportError(err)
		}
		_, err = env.Out.Write(content)
		return err
	case "":
		path, err = export.ExportToFile(entries, exporter, opts)
	default:
		path = output
		var content []byte
		if content, err = exporter.Export(entries); err == nil {
			err = export.WriteFile(path, content)
		}
	}
	if err != nil {
		return exportError(err)
	}
	env.Logger.Info("history exported",
		zap.String("path", path),
		zap.String("mime", exporter.MimeType()),
		zap.Int("entries", len(entries)))

	if args.JSON {
		return NewJSONResponse("history export", map[string]interface{}{
			"path":    path,
			"entries": len(entries),
		}).Write(env.Out)
	}
	if args.Quiet {
		fmt.Fprintln(env.Out, path)
		return nil
	}
	fmt.Fprintf(env.Out, "%s Exported %d entries to %s\n", SuccessStyle.Render("[OK]"), len(entries), path)
	return nil
}

func exportError(err error) error {
	if errors.Is(err, export.ErrNoEntries) {
		return NewCommandError("history", "export", "nothing to export", err)
	}
	return NewCommandError("history", "export", "could not write the export", err)
}
