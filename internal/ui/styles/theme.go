// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by ui.theme.
const (
	ModeDark  = "dark"
	ModeLight = "light"
	ModeAuto  = "auto"
)

// Theme holds the styled components of the converter form.
type Theme struct {
	Mode         string
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header         lipgloss.Style
	HeaderBrand    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	Logo           lipgloss.Style

	// ==========================================================================
	// PANES
	// ==========================================================================

	Pane          lipgloss.Style
	PaneFocused   lipgloss.Style
	PaneTitle     lipgloss.Style
	Selector      lipgloss.Style
	SelectorFocus lipgloss.Style
	InputPrompt   lipgloss.Style
	InputText     lipgloss.Style
	Placeholder   lipgloss.Style
	Arrow         lipgloss.Style

	// ==========================================================================
	// STATUS AND HELP
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Muted        lipgloss.Style

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style

	// Toast boxes by severity
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// NewTheme creates a theme for mode ("dark", "light" or "auto"). Unknown
// modes behave like auto.
func NewTheme(mode string) *Theme {
	mode = strings.ToLower(strings.TrimSpace(mode))

	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// Color resolves an adaptive color to the half matching the theme.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	if t.IsDark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

func (t *Theme) initStyles() {
	c := t.Color

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Cyan)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Purple)).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Cyan))

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Italic(true)

	t.Logo = lipgloss.NewStyle().
		Foreground(c(Purple))

	// Panes
	t.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.PaneFocused = t.Pane.
		BorderForeground(c(Purple))

	t.PaneTitle = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Bold(true)

	t.Selector = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.SelectorFocus = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true).
		Underline(true)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.Placeholder = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.Arrow = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Padding(0, 1)

	// Status and help
	t.StatusBar = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.Muted = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(c(Emerald)).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(c(Rose)).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(c(Amber)).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(c(Blue)).
		Bold(true)

	toast := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)
	t.ToastSuccess = toast.BorderForeground(c(Emerald)).Foreground(c(Emerald))
	t.ToastError = toast.BorderForeground(c(Rose)).Foreground(c(Rose))
	t.ToastWarning = toast.BorderForeground(c(Amber)).Foreground(c(Amber))
	t.ToastInfo = toast.BorderForeground(c(Blue)).Foreground(c(Blue))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width > 0 && t.Width < 60 {
		return LayoutNarrow
	}
	return LayoutWide
}

// LayoutMode selects how the two panes are arranged.
type LayoutMode int

const (
	LayoutWide   LayoutMode = iota // panes side by side
	LayoutNarrow                   // panes stacked, < 60 columns
)
