// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// menu.go - Step-by-step text menu.
//
// Command: menu
// Short:   Choose a source base, a target base, then convert numbers
//
// Levels:
//   0  choose the source base         Ctrl-C quits
//   1  choose the target base         Ctrl-C goes back to level 0
//   2  convert numbers repeatedly     Ctrl-C goes back to level 1
//
// Ctrl-D (EOF) quits from any level. Input history is kept in
// ~/.basecalc/menu_history.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/config"
	"github.com/jeranaias/basecalc/internal/radix"
	"github.com/jeranaias/basecalc/internal/ui/components"
	"github.com/jeranaias/basecalc/internal/util"
)

// =============================================================================
// LINE INPUT
// =============================================================================

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// MenuInput provides line editing and persistent history for the menu.
type MenuInput struct {
	line        *liner.State
	historyFile string
}

// NewMenuInput creates a liner-backed input and loads its history.
func NewMenuInput() *MenuInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	in := &MenuInput{
		line:        line,
		historyFile: filepath.Join(configDir, "menu_history"),
	}
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
	return in
}

// Prompt reads a line, adding non-empty input to the history.
func (in *MenuInput) Prompt(prompt string) (string, error) {
	input, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		in.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves the history with 0600 permissions and restores the terminal.
func (in *MenuInput) Close() error {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			in.line.WriteHistory(f)
			f.Close()
		}
	}
	return in.line.Close()
}

// =============================================================================
// MENU
// =============================================================================

// Menu messages.
const (
	msgInvalidChoice = "Invalid choice"
	msgInvalidNumber = "Invalid number!"
)

// menuLevel is the current step of the menu.
type menuLevel int

const (
	levelSource menuLevel = iota
	levelTarget
	levelConvert
	levelExit
)

// Menu is the three-level conversion menu.
type Menu struct {
	In       Prompter
	Out      io.Writer
	Clear    func() // nil leaves the screen alone
	ShowLogo bool

	// OnConvert is called after every successful conversion.
	OnConvert func(from, to radix.Base, input, output string)

	from, to radix.Base
}

// Run drives the menu until the user quits. Ctrl-C and EOF are not errors.
func (m *Menu) Run() error {
	level := levelSource
	for level != levelExit {
		var err error
		switch level {
		case levelSource:
			level, err = m.chooseSource()
		case levelTarget:
			level, err = m.chooseTarget()
		case levelConvert:
			level, err = m.convertLoop()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// screen clears the terminal and prints the logo and a hint line.
func (m *Menu) screen(hint string) {
	if m.Clear != nil {
		m.Clear()
	}
	if m.ShowLogo {
		bar := strings.Repeat("=", 19)
		fmt.Fprintf(m.Out, "%s\n\n%s\n\n%s\n\n", bar, components.Logo, bar)
	}
	fmt.Fprintln(m.Out, DimStyle.Render(hint))
	fmt.Fprintln(m.Out)
}

// listBases prints every base except skip, numbered from 1 in the fixed
// order of radix.Bases, and returns the bases shown by number.
func (m *Menu) listBases(skip radix.Base) map[int]radix.Base {
	choices := make(map[int]radix.Base)
	for i, b := range radix.Bases() {
		if b == skip {
			continue
		}
		fmt.Fprintf(m.Out, "%d: %s\n", i+1, b.Label())
		choices[i+1] = b
	}
	return choices
}

// choose prompts until a listed number is entered.
func (m *Menu) choose(choices map[int]radix.Base) (radix.Base, error) {
	for {
		line, err := m.In.Prompt(PromptStyle.Render("Choice: "))
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if b, ok := choices[n]; convErr == nil && ok {
			return b, nil
		}
		fmt.Fprintln(m.Out, ErrorStyle.Render(msgInvalidChoice))
	}
}

func (m *Menu) chooseSource() (menuLevel, error) {
	m.screen("Press Ctrl-C to quit")
	fmt.Fprintln(m.Out, SectionStyle.Render("Choose the source base"))

	b, err := m.choose(m.listBases(0))
	if err != nil {
		return stepBack(err, levelExit)
	}
	m.from = b
	return levelTarget, nil
}

func (m *Menu) chooseTarget() (menuLevel, error) {
	m.screen("Press Ctrl-C to go back")
	fmt.Fprintln(m.Out, SectionStyle.Render("Choose the target base"))

	b, err := m.choose(m.listBases(m.from))
	if err != nil {
		return stepBack(err, levelSource)
	}
	m.to = b
	return levelConvert, nil
}

func (m *Menu) convertLoop() (menuLevel, error) {
	m.screen("Press Ctrl-C to go back")

	prompt := PromptStyle.Render(fmt.Sprintf("%s number to convert: ", m.from.Label()))
	for {
		line, err := m.In.Prompt(prompt)
		if err != nil {
			return stepBack(err, levelTarget)
		}

		input := util.UngroupDigits(strings.TrimSpace(line))
		output, err := radix.Convert(input, m.from, m.to)
		if err != nil {
			fmt.Fprintln(m.Out, ErrorStyle.Render(msgInvalidNumber))
			continue
		}

		fmt.Fprintf(m.Out, "Converted to %s: %s\n", m.to.Label(), ResultStyle.Render(output))
		if m.OnConvert != nil {
			m.OnConvert(m.from, m.to, input, output)
		}
	}
}

// stepBack maps a prompt error to the next level: Ctrl-C goes back, EOF
// exits, anything else is returned.
func stepBack(err error, back menuLevel) (menuLevel, error) {
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return back, nil
	case errors.Is(err, io.EOF):
		return levelExit, nil
	default:
		return levelExit, err
	}
}

// =============================================================================
// HANDLER
// =============================================================================

// HandleMenu handles the "menu" command.
func HandleMenu(env *Env, args Args) error {
	if args.JSON {
		return NewValidationErrorWithExample("json", "true",
			"the menu is interactive and has no JSON output", "basecalc convert 255 --to hex --json")
	}

	in := NewMenuInput()
	defer in.Close()

	menu := &Menu{
		In:       in,
		Out:      env.Out,
		ShowLogo: env.Config.UI.ShowLogo && !args.Quiet,
		OnConvert: func(from, to radix.Base, input, output string) {
			env.Logger.Debug("converted",
				zap.String("command", "menu"),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
			recordConversion(env, from, to, input, output)
		},
	}
	if IsStdoutTTY() {
		out := termenv.NewOutput(os.Stdout)
		menu.Clear = func() {
			out.ClearScreen()
		}
	}

	env.Logger.Info("menu started")
	err := menu.Run()
	fmt.Fprintln(env.Out)
	return err
}
