// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/jeranaias/basecalc/internal/history"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// CSVExporter exports history for spreadsheets.
type CSVExporter struct {
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &CSVExporter{options: opts}
}

var csvHeader = []string{"id", "time", "from", "to", "input", "output"}

// Export converts entries to CSV with a header row.
func (e *CSVExporter) Export(entries []history.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		rec := []string{
			entry.ID,
			entry.Time.UTC().Format(time.RFC3339),
			entry.From.String(),
			entry.To.String(),
			entry.Input,
			entry.Output,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
