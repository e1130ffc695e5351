// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/basecalc/internal/history"
	"github.com/jeranaias/basecalc/internal/util"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports history to a Markdown table.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts entries to Markdown.
func (e *MarkdownExporter) Export(entries []history.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	var sb strings.Builder

	sb.WriteString("# Conversion history\n\n")
	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("- **Entries**: %d\n", len(entries)))
		sb.WriteString(fmt.Sprintf("- **From**: %s\n", formatTimestamp(entries[0].Time)))
		sb.WriteString(fmt.Sprintf("- **To**: %s\n", formatTimestamp(entries[len(entries)-1].Time)))
		sb.WriteString(fmt.Sprintf("- **Exported**: %s\n\n", e.options.timestamp().Format(time.RFC3339)))
	}

	sb.WriteString("| Time | From | Input | To | Output |\n")
	sb.WriteString("|---|---|--:|---|--:|\n")
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s | `%s` |\n",
			formatTimestamp(entry.Time),
			entry.From.Short(),
			e.digits(entry.Input),
			entry.To.Short(),
			e.digits(entry.Output)))
	}

	return []byte(sb.String()), nil
}

// digits groups s and neutralises characters that would break a table cell.
func (e *MarkdownExporter) digits(s string) string {
	s = util.GroupDigits(s, e.options.GroupSize, " ")
	return strings.NewReplacer("|", "\\|", "`", "'", "\n", " ").Replace(s)
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
