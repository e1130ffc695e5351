// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/config"
	"github.com/jeranaias/basecalc/internal/history"
	"github.com/jeranaias/basecalc/internal/radix"
	"github.com/jeranaias/basecalc/internal/ui/components"
	"github.com/jeranaias/basecalc/internal/ui/styles"
	"github.com/jeranaias/basecalc/internal/util"
)

// =============================================================================
// TYPES
// =============================================================================

// Side identifies one of the two panes.
type Side int

const (
	Left Side = iota
	Right
)

// Other returns the opposite pane.
func (s Side) Other() Side {
	return 1 - s
}

// pane is a base selector paired with a text input.
type pane struct {
	base  radix.Base
	input textinput.Model
}

// focus positions in tab order: left selector, left input, right selector,
// right input.
const focusCount = 4

// ConfigReloadedMsg carries the result of re-reading the config file.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ConvertedMsg is emitted after a successful conversion.
type ConvertedMsg struct {
	From, To radix.Base
	Input    string
	Output   string
}

// Options configures a new Model.
type Options struct {
	Config  *config.Config
	History *history.Store // nil disables history
	Logger  *zap.Logger
}

// Model is the bubbletea model of the two-pane converter form.
type Model struct {
	panes [2]pane
	focus int

	keys     KeyMap
	help     help.Model
	showHelp bool

	theme  *styles.Theme
	header *components.Header
	toasts *components.ToastManager
	// errorToast is the ID of the visible conversion error, 0 when none.
	errorToast int

	history   *history.Store
	logger    *zap.Logger
	groupSize int

	width  int
	height int
}

// New creates the form with the configured default bases.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Global()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	header := components.NewHeader(theme)
	header.ShowLogo = cfg.UI.ShowLogo

	m := Model{
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		header:    header,
		toasts:    components.NewToastManager(),
		history:   opts.History,
		logger:    logger,
		groupSize: cfg.Converter.GroupSize,
		focus:     1,
	}
	m.panes[Left] = pane{base: cfg.Converter.From(), input: newInput(theme)}
	m.panes[Right] = pane{base: cfg.Converter.To(), input: newInput(theme)}
	m.applyFocus()
	m.updateSubtitle()
	return m
}

func newInput(theme *styles.Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "number"
	ti.CharLimit = 1024
	ti.Width = 30
	styleInput(&ti, theme)
	return ti
}

func styleInput(ti *textinput.Model, theme *styles.Theme) {
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.Placeholder
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Base returns the base selected in a pane.
func (m Model) Base(s Side) radix.Base {
	return m.panes[s].base
}

// Value returns the text of a pane.
func (m Model) Value(s Side) string {
	return m.panes[s].input.Value()
}

// SetValue replaces the text of a pane.
func (m *Model) SetValue(s Side, v string) {
	m.panes[s].input.SetValue(v)
}

// FocusedSide returns the pane holding focus.
func (m Model) FocusedSide() Side {
	return Side(m.focus / 2)
}

// OnSelector reports whether focus is on a base selector rather than an input.
func (m Model) OnSelector() bool {
	return m.focus%2 == 0
}

// Toasts returns the visible notifications.
func (m Model) Toasts() []components.Toast {
	return m.toasts.Toasts()
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.ToastTickMsg:
		if m.toasts.Tick() {
			return m, components.ToastTickCmd()
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.header.SetWidth(msg.Width)
	m.help.Width = msg.Width

	inputWidth := msg.Width/2 - 10
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		inputWidth = msg.Width - 10
	}
	if inputWidth < 8 {
		inputWidth = 8
	}
	for i := range m.panes {
		m.panes[i].input.Width = inputWidth
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
		m.applyFocus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.applyFocus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.BaseNext):
		m.cycleBase(m.FocusedSide(), 1)
		return m, nil

	case key.Matches(msg, m.keys.BasePrev):
		m.cycleBase(m.FocusedSide(), -1)
		return m, nil

	case key.Matches(msg, m.keys.Swap):
		m.panes[Left], m.panes[Right] = m.panes[Right], m.panes[Left]
		m.applyFocus()
		m.updateSubtitle()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		for i := range m.panes {
			m.panes[i].input.Reset()
		}
		m.toasts.Clear()
		m.errorToast = 0
		return m, nil

	case key.Matches(msg, m.keys.Convert):
		return m.convert(m.FocusedSide())
	}

	if m.OnSelector() {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused text input.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.OnSelector() {
		return m, nil
	}
	s := m.FocusedSide()
	var cmd tea.Cmd
	m.panes[s].input, cmd = m.panes[s].input.Update(msg)
	return m, cmd
}

// applyFocus focuses the input of the focused pane and blurs the rest.
func (m *Model) applyFocus() {
	for i := range m.panes {
		if !m.OnSelector() && Side(i) == m.FocusedSide() {
			m.panes[i].input.Focus()
		} else {
			m.panes[i].input.Blur()
		}
	}
}

func (m *Model) cycleBase(s Side, delta int) {
	if delta > 0 {
		m.panes[s].base = m.panes[s].base.Next()
	} else {
		m.panes[s].base = m.panes[s].base.Prev()
	}
	m.updateSubtitle()
}

func (m *Model) updateSubtitle() {
	m.header.SetSubtitle(fmt.Sprintf("%s  <->  %s",
		m.panes[Left].base.Label(), m.panes[Right].base.Label()))
}

// =============================================================================
// CONVERSION
// =============================================================================

// convert reads the src pane and writes the result into the other pane.
// On failure the target is left untouched and an error toast is shown.
func (m Model) convert(src Side) (tea.Model, tea.Cmd) {
	dst := src.Other()
	from, to := m.panes[src].base, m.panes[dst].base

	text := util.UngroupDigits(strings.TrimSpace(m.panes[src].input.Value()))
	if text == "" {
		return m.fail(fmt.Sprintf("Empty number: type a %s number first", from))
	}

	out, err := radix.Convert(text, from, to)
	if err != nil {
		m.logger.Debug("conversion rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.String("input", text),
			zap.Error(err))
		msg := "Invalid number"
		var nerr *radix.NumeralError
		if errors.As(err, &nerr) {
			msg = "Invalid number: " + nerr.Error()
		}
		return m.fail(msg)
	}

	m.panes[dst].input.SetValue(util.GroupDigits(out, m.groupSize, " "))
	m.panes[dst].input.CursorEnd()
	if m.errorToast != 0 {
		m.toasts.Dismiss(m.errorToast)
		m.errorToast = 0
	}
	m.logger.Debug("converted",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("input_len", len(text)))

	if m.history != nil {
		if _, err := m.history.Append(from, to, text, out); err != nil {
			m.logger.Warn("failed to record history", zap.Error(err))
			return m.warn("Converted, but history could not be saved")
		}
	}

	converted := ConvertedMsg{From: from, To: to, Input: text, Output: out}
	return m, func() tea.Msg { return converted }
}

// fail shows an error toast, replacing the previous conversion error.
func (m Model) fail(message string) (tea.Model, tea.Cmd) {
	cmd := m.tickIfIdle()
	if m.errorToast != 0 {
		m.toasts.Dismiss(m.errorToast)
	}
	m.errorToast = m.toasts.AddError(message)
	return m, cmd
}

func (m Model) warn(message string) (tea.Model, tea.Cmd) {
	cmd := m.tickIfIdle()
	m.toasts.AddWarning(message)
	return m, cmd
}

func (m Model) succeed(message string) (tea.Model, tea.Cmd) {
	cmd := m.tickIfIdle()
	m.toasts.AddSuccess(message)
	return m, cmd
}

// tickIfIdle starts the expiry ticker unless toasts are already showing.
func (m Model) tickIfIdle() tea.Cmd {
	if m.toasts.HasToasts() {
		return nil
	}
	return components.ToastTickCmd()
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

// handleConfigReload restyles the form. Default bases are applied only
// while both panes are empty so typed work is never reinterpreted.
func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		return m.warn("Config reload failed: " + msg.Err.Error())
	}
	cfg := msg.Config
	config.SetGlobal(cfg)

	m.theme = styles.NewTheme(cfg.UI.Theme)
	m.theme.SetSize(m.width, m.height)
	m.header.SetTheme(m.theme)
	m.header.ShowLogo = cfg.UI.ShowLogo
	for i := range m.panes {
		styleInput(&m.panes[i].input, m.theme)
	}
	m.groupSize = cfg.Converter.GroupSize

	if m.panes[Left].input.Value() == "" && m.panes[Right].input.Value() == "" {
		m.panes[Left].base = cfg.Converter.From()
		m.panes[Right].base = cfg.Converter.To()
		m.updateSubtitle()
	}

	m.logger.Info("config reloaded", zap.String("theme", m.theme.Mode))
	return m.succeed("Configuration reloaded")
}
