// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/basecalc/internal/history"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports history as a JSON document. Digits are never grouped
// so the output can be fed back into basecalc.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

type jsonEntry struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	From   string `json:"from"`
	To     string `json:"to"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

type jsonDocument struct {
	Exported string      `json:"exported,omitempty"`
	Count    int         `json:"count"`
	Entries  []jsonEntry `json:"entries"`
}

// Export converts entries to JSON.
func (e *JSONExporter) Export(entries []history.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	doc := jsonDocument{Count: len(entries), Entries: make([]jsonEntry, 0, len(entries))}
	if e.options.IncludeMetadata {
		doc.Exported = e.options.timestamp().UTC().Format(time.RFC3339)
	}
	for _, entry := range entries {
		doc.Entries = append(doc.Entries, jsonEntry{
			ID:     entry.ID,
			Time:   entry.Time.UTC().Format(time.RFC3339),
			From:   entry.From.String(),
			To:     entry.To.String(),
			Input:  entry.Input,
			Output: entry.Output,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
