// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/basecalc/internal/ui/styles"
)

// Logo is the banner shown above the form and the text menu.
const Logo = `mm   m   mmm  mmmmm
#"m  # m"   "   #
# #m # #        #
#  # # #        #
#   ##  "mmm" mm#mm`

// logoWidth is the widest line of Logo.
var logoWidth = lipgloss.Width(Logo)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title block of the converter form.
type Header struct {
	Title    string // Brand name (default: "basecalc")
	Subtitle string // Second line, e.g. the active conversion direction
	Width    int    // Available width
	ShowLogo bool   // Draw Logo above the title when it fits
	theme    *styles.Theme
}

// NewHeader creates a header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "basecalc",
		Width:    80,
		ShowLogo: true,
		theme:    theme,
	}
}

// SetTheme swaps the theme after a config reload.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSubtitle updates the second line.
func (h *Header) SetSubtitle(s string) {
	h.Subtitle = s
}

// View renders the header. The logo is dropped when the terminal is too
// narrow for it.
func (h *Header) View() string {
	width := h.Width
	if width < 30 {
		width = 30
	}
	inner := width - 6

	brand := h.theme.HeaderBrand.Render("< " + h.Title + " >")
	lines := []string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, brand)}
	if h.Subtitle != "" {
		sub := h.theme.HeaderSubtitle.Render(h.Subtitle)
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, sub))
	}
	box := h.theme.Header.Width(width - 2).Render(strings.Join(lines, "\n"))

	if !h.ShowLogo || logoWidth > h.Width {
		return box
	}
	logo := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.theme.Logo.Render(Logo))
	return lipgloss.JoinVertical(lipgloss.Left, logo, box)
}
