// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// doctor.go - Doctor command implementation.
//
// Command: doctor [subcommand]
// Short:   Run environment health checks
// Aliases: diag
//
// Subcommands:
//   (default)           Run all health checks
//   fix                 Run checks and apply the fixes that are safe
//
// Health Checks Performed:
//   1. Engine            - A known conversion round-trips
//   2. Config Valid      - The config file parses and validates
//   3. Config Dir        - ~/.basecalc exists and is writable
//   4. History           - The history file is readable (when enabled)
//   5. Log File          - The log directory is writable (when logging)
//   6. Terminal          - stdout is a terminal with known width/colors
//
// Exit Codes:
//   0   No check failed
//   1   One or more checks failed
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/basecalc/internal/config"
	"github.com/jeranaias/basecalc/internal/radix"
)

// =============================================================================
// HEALTH CHECK TYPES
// =============================================================================

// CheckStatus represents the status of a health check.
type CheckStatus int

const (
	// CheckPass indicates the check passed successfully.
	CheckPass CheckStatus = iota
	// CheckWarn indicates the check passed with warnings.
	CheckWarn
	// CheckFail indicates the check failed.
	CheckFail
)

// String returns the string representation of the check status.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarn:
		return "warn"
	case CheckFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the styled marker for the check status.
func (s CheckStatus) Symbol() string {
	switch s {
	case CheckPass:
		return SuccessStyle.Render("[OK]")
	case CheckWarn:
		return WarningStyle.Render("[!!]")
	case CheckFail:
		return ErrorStyle.Render("[FAIL]")
	default:
		return "?"
	}
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	Name    string
	Status  CheckStatus
	Message string
	Fix     string // Suggested fix shown to the user

	apply func() error // automatic fix, nil when only manual
}

// Render returns a formatted string representation of the health check.
func (c *HealthCheck) Render() string {
	result := fmt.Sprintf("%s %s", c.Status.Symbol(), ValueStyle.Render(c.Message))
	if c.Status != CheckPass && c.Fix != "" {
		result += "\n" + DimStyle.Render("     -> "+c.Fix)
	}
	return result
}

// TryFix applies the automatic fix, if the check has one.
func (c *HealthCheck) TryFix() error {
	if c.Status == CheckPass {
		return nil
	}
	if c.apply == nil {
		return fmt.Errorf("manual fix required: %s", c.Fix)
	}
	return c.apply()
}

// =============================================================================
// HANDLE DOCTOR
// =============================================================================

// HandleDoctor handles the "doctor" command.
func HandleDoctor(env *Env, args Args) error {
	if args.Subcommand != "" && args.Subcommand != "fix" {
		return errUnknownSubcommand("doctor", args.Subcommand, []string{"fix"})
	}

	checks := runAllChecks(env)
	passed, warned, failed := tally(checks)

	if args.JSON {
		return writeDoctorJSON(env, checks, passed, warned, failed)
	}

	fmt.Fprintln(env.Out, TitleStyle.Render("basecalc doctor"))
	fmt.Fprintln(env.Out, RenderSeparator(41))
	for _, check := range checks {
		fmt.Fprintln(env.Out, check.Render())
	}
	fmt.Fprintln(env.Out, RenderSeparator(41))

	summary := []string{fmt.Sprintf("%d passed", passed)}
	if warned > 0 {
		summary = append(summary, WarningStyle.Render(fmt.Sprintf("%d warning", warned)))
	}
	if failed > 0 {
		summary = append(summary, ErrorStyle.Render(fmt.Sprintf("%d failed", failed)))
	}
	fmt.Fprintln(env.Out, DimStyle.Render(strings.Join(summary, ", ")))

	if args.Subcommand == "fix" && (warned > 0 || failed > 0) {
		fmt.Fprintln(env.Out)
		for _, check := range checks {
			if check.Status == CheckPass {
				continue
			}
			if err := check.TryFix(); err != nil {
				fmt.Fprintf(env.Out, "  %s Could not fix %s: %s\n", WarningStyle.Render("[!!]"), check.Name, err)
				continue
			}
			fmt.Fprintf(env.Out, "  %s Fixed %s\n", SuccessStyle.Render("[OK]"), check.Name)
		}
	}

	if failed > 0 {
		return NewCommandError("doctor", "check", fmt.Sprintf("%d health check(s) failed", failed), nil)
	}
	return nil
}

func tally(checks []*HealthCheck) (passed, warned, failed int) {
	for _, check := range checks {
		switch check.Status {
		case CheckPass:
			passed++
		case CheckWarn:
			warned++
		case CheckFail:
			failed++
		}
	}
	return passed, warned, failed
}

func writeDoctorJSON(env *Env, checks []*HealthCheck, passed, warned, failed int) error {
	data := DoctorData{
		Checks: make([]DoctorCheck, 0, len(checks)),
		Summary: DoctorSummary{
			Passed:  passed,
			Warned:  warned,
			Failed:  failed,
			Healthy: failed == 0,
		},
	}
	for _, check := range checks {
		data.Checks = append(data.Checks, DoctorCheck{
			Name:    check.Name,
			Status:  check.Status.String(),
			Message: check.Message,
			Fix:     check.Fix,
		})
	}

	resp := NewJSONResponse("doctor", data)
	if failed > 0 {
		errMsg := fmt.Sprintf("%d health check(s) failed", failed)
		resp.Success = false
		resp.Error = &errMsg
	}
	if err := resp.Write(env.Out); err != nil {
		return err
	}
	if failed > 0 {
		// The envelope above already carries the failure.
		return &SilentError{Err: NewCommandError("doctor", "check", *resp.Error, nil)}
	}
	return nil
}

// =============================================================================
// HEALTH CHECK FUNCTIONS
// =============================================================================

// runAllChecks runs all health checks and returns the results.
func runAllChecks(env *Env) []*HealthCheck {
	return []*HealthCheck{
		checkEngine(),
		checkConfigValid(env),
		checkConfigDir(),
		checkHistory(env),
		checkLogFile(env),
		checkTerminal(),
	}
}

// checkEngine converts a known value both ways.
func checkEngine() *HealthCheck {
	check := &HealthCheck{Name: "Engine"}

	hex, err := radix.Convert("255", radix.Decimal, radix.Hexadecimal)
	if err == nil && hex == "FF" {
		var bin string
		bin, err = radix.Convert(hex, radix.Hexadecimal, radix.Binary)
		if err == nil && bin == "11111111" {
			check.Status = CheckPass
			check.Message = "Conversions OK (255 = FF = 11111111)"
			return check
		}
	}

	check.Status = CheckFail
	check.Message = fmt.Sprintf("Conversion self-test failed (%v)", err)
	return check
}

// checkConfigValid checks if the configuration file is valid.
func checkConfigValid(env *Env) *HealthCheck {
	check := &HealthCheck{Name: "Config Valid"}

	path, err := configPath(env)
	if err != nil {
		check.Status = CheckWarn
		check.Message = "Could not determine config path"
		return check
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		check.Status = CheckPass
		check.Message = "Config valid (using defaults)"
		return check
	}

	if _, err := config.LoadFromPath(path); err != nil {
		check.Status = CheckFail
		check.Message = fmt.Sprintf("Config invalid: %s", err)
		check.Fix = "Run: basecalc config init --force"
		return check
	}

	check.Status = CheckPass
	check.Message = "Config valid: " + path
	return check
}

// checkConfigDir checks that the config directory exists and is writable.
func checkConfigDir() *HealthCheck {
	check := &HealthCheck{Name: "Config Dir"}

	dir, err := config.ConfigDir()
	if err != nil {
		check.Status = CheckFail
		check.Message = fmt.Sprintf("Could not determine config directory: %s", err)
		return check
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		check.Status = CheckWarn
		check.Message = "Config directory does not exist yet: " + dir
		check.Fix = "mkdir -p " + dir
		check.apply = config.EnsureConfigDir
		return check
	}

	if err := probeWritable(dir); err != nil {
		check.Status = CheckFail
		check.Message = fmt.Sprintf("Config directory not writable: %s", err)
		check.Fix = "Check permissions: chmod 700 " + dir
		return check
	}

	check.Status = CheckPass
	check.Message = "Config directory writable"
	return check
}

// checkHistory checks that the history file can be read.
func checkHistory(env *Env) *HealthCheck {
	check := &HealthCheck{Name: "History"}

	if env.History == nil {
		check.Status = CheckWarn
		check.Message = "History recording is disabled"
		check.Fix = "Run: basecalc config set history.enabled true"
		return check
	}

	entries, err := env.History.List(0)
	if err != nil {
		check.Status = CheckFail
		check.Message = fmt.Sprintf("History file unreadable: %s", err)
		check.Fix = "Run: basecalc history clear"
		check.apply = env.History.Clear
		return check
	}

	check.Status = CheckPass
	check.Message = fmt.Sprintf("History readable (%d entries)", len(entries))
	return check
}

// checkLogFile checks that the log directory is writable.
func checkLogFile(env *Env) *HealthCheck {
	check := &HealthCheck{Name: "Log File"}

	if strings.EqualFold(env.Config.Logging.Level, "off") {
		check.Status = CheckPass
		check.Message = "Logging disabled"
		return check
	}

	path, err := env.Config.LogPath()
	if err != nil {
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("Could not determine log path: %s", err)
		return check
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("Could not create log directory: %s", err)
		return check
	}
	if err := probeWritable(dir); err != nil {
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("Log directory not writable: %s", err)
		check.Fix = "Run: basecalc config set logging.level off"
		return check
	}

	check.Status = CheckPass
	check.Message = "Logging to " + path
	return check
}

// checkTerminal reports what the interactive form will have to work with.
func checkTerminal() *HealthCheck {
	check := &HealthCheck{Name: "Terminal"}

	if !IsStdoutTTY() {
		check.Status = CheckWarn
		check.Message = "stdout is not a terminal (plain output, no interactive form)"
		return check
	}

	colors := "colors on"
	if !ColorsEnabled() {
		colors = "colors off"
	}
	if !IsTTY() {
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("stdin is not a terminal (menu has no line editing), %s", colors)
		return check
	}
	check.Status = CheckPass
	check.Message = fmt.Sprintf("Terminal %d columns, %s", GetTerminalWidth(), colors)
	return check
}

// probeWritable writes and removes a scratch file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
