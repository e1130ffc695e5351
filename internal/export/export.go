// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/basecalc/internal/history"
	"github.com/jeranaias/basecalc/internal/util"
)

// ErrNoEntries is returned when there is nothing to export.
var ErrNoEntries = errors.New("no history entries to export")

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for history exporters.
type Exporter interface {
	// Export converts entries to the target format and returns the content.
	Export(entries []history.Entry) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".csv").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// Formats lists the format names accepted by New.
var Formats = []string{"md", "json", "csv"}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// IncludeMetadata adds a header with the export time and entry count.
	IncludeMetadata bool

	// GroupSize groups digits in Markdown output (0 = no grouping).
	GroupSize int

	now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
	}
}

func (o *Options) timestamp() time.Time {
	if o.now != nil {
		return o.now()
	}
	return time.Now()
}

// New returns the exporter for a format name: md (or markdown), json or csv.
func New(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "", "md", "markdown":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "csv":
		return NewCSVExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile writes entries to a timestamped file in opts.OutputDir and
// returns its path.
func ExportToFile(entries []history.Entry, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(entries)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	filename := fmt.Sprintf("basecalc_history_%s%s",
		opts.timestamp().Format("20060102_150405"),
		exporter.FileExtension())
	outputPath := filepath.Join(opts.OutputDir, filename)

	if err := WriteFile(outputPath, content); err != nil {
		return "", err
	}
	return outputPath, nil
}

// WriteFile writes exported content atomically.
func WriteFile(path string, content []byte) error {
	if err := util.AtomicWriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
