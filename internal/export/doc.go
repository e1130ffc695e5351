// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the conversion history to shareable files.
//
// Three formats are supported:
//
//	md    a Markdown table, optionally with a metadata header
//	json  the entries as a JSON array with string base names
//	csv   one header row, then one row per entry
//
// Usage:
//
//	exp, err := export.New("csv", nil)
//	path, err := export.ExportToFile(entries, exp, &export.Options{OutputDir: "."})
package export
