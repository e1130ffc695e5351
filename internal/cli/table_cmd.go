// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// table_cmd.go - Conversion table for a range of values.
//
// Command: table [start] [end]
// Short:   Print decimal, binary and hexadecimal side by side
//
// Examples:
//   basecalc table              0 to 15
//   basecalc table 32           32 to 47
//   basecalc table 0 255        the full byte range
//   basecalc table 0 7 --json
package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeranaias/basecalc/internal/radix"
)

const (
	// DefaultTableRows is the row count when no end is given.
	DefaultTableRows = 16
	// MaxTableRows bounds a single table.
	MaxTableRows = 256
)

// HandleTable handles the "table" command.
func HandleTable(env *Env, args Args) error {
	start, end, err := tableRange(NewArgParser(args.Raw))
	if err != nil {
		return err
	}

	rows := make([]TableRow, 0, end-start+1)
	// Count rows rather than compare against end, which may be MaxUint64.
	for i := uint64(0); i <= end-start; i++ {
		v := start + i
		rows = append(rows, TableRow{
			Decimal:     radix.FormatUint(v, radix.Decimal),
			Binary:      radix.FormatUint(v, radix.Binary),
			Hexadecimal: radix.FormatUint(v, radix.Hexadecimal),
		})
	}

	if args.JSON {
		return NewJSONResponse("table", rows).Write(env.Out)
	}

	if args.Quiet {
		for _, r := range rows {
			fmt.Fprintf(env.Out, "%s\t%s\t%s\n", r.Decimal, r.Binary, r.Hexadecimal)
		}
		return nil
	}

	fmt.Fprintln(env.Out, renderTable(rows))
	return nil
}

// tableRange reads [start] [end]. A lone start covers DefaultTableRows values.
func tableRange(p *ArgParser) (uint64, uint64, error) {
	start, end := uint64(0), uint64(DefaultTableRows-1)

	if s := p.Positional(0); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, 0, NewValidationErrorWithExample("start", s, "must be a non-negative decimal integer", "basecalc table 0 15")
		}
		start = v
		end = v + DefaultTableRows - 1
		if end < start {
			end = ^uint64(0)
		}
	}

	if s := p.Positional(1); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, 0, NewValidationErrorWithExample("end", s, "must be a non-negative decimal integer", "basecalc table 0 15")
		}
		if v < start {
			return 0, 0, NewValidationError("end", s, fmt.Sprintf("must not be less than start (%d)", start))
		}
		end = v
	}

	if end-start >= MaxTableRows {
		return 0, 0, NewValidationError("end", strconv.FormatUint(end, 10),
			fmt.Sprintf("a table holds at most %d rows", MaxTableRows))
	}
	return start, end, nil
}

// renderTable draws rows with lipgloss/table, numbers right-aligned.
func renderTable(rows []TableRow) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SeparatorStyle).
		Headers("Decimal", "Binary", "Hexadecimal").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return LabelStyle.Bold(true).Padding(0, 1)
			}
			s := ValueStyle.Padding(0, 1).Align(lipgloss.Right)
			if col == 0 {
				s = s.Foreground(lipgloss.Color("39"))
			}
			return s
		})

	for _, r := range rows {
		t.Row(r.Decimal, r.Binary, r.Hexadecimal)
	}
	return t.Render()
}
