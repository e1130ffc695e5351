// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - Machine-readable output for basecalc commands.

package cli

import (
	"encoding/json"
	"io"
	"time"
)

// JSONResponse is the envelope every command emits with --json.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC3339 time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Write encodes the response to w as indented JSON.
func (r *JSONResponse) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// =============================================================================
// RESPONSE PAYLOADS
// =============================================================================

// ConversionData is the payload of convert and the shortcut commands.
type ConversionData struct {
	Input  string `json:"input"`
	From   string `json:"from"`
	To     string `json:"to"`
	Output string `json:"output"`
	// Grouped is Output with digit separators, set only when grouping applies.
	Grouped string `json:"grouped,omitempty"`
}

// TableRow is one row of the table command.
type TableRow struct {
	Decimal     string `json:"decimal"`
	Binary      string `json:"binary"`
	Hexadecimal string `json:"hexadecimal"`
}

// HistoryData is the payload of history list.
type HistoryData struct {
	Path    string         `json:"path"`
	Entries []HistoryEntry `json:"entries"`
}

// HistoryEntry mirrors history.Entry with string bases.
type HistoryEntry struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	From   string `json:"from"`
	To     string `json:"to"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// VersionData is the payload of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// DoctorData is the payload of the doctor command.
type DoctorData struct {
	Checks  []DoctorCheck `json:"checks"`
	Summary DoctorSummary `json:"summary"`
}

// DoctorCheck is one health check result.
type DoctorCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// DoctorSummary counts the check results.
type DoctorSummary struct {
	Passed  int  `json:"passed"`
	Warned  int  `json:"warned"`
	Failed  int  `json:"failed"`
	Healthy bool `json:"healthy"`
}
