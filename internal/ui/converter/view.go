// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/basecalc/internal/radix"
	"github.com/jeranaias/basecalc/internal/ui/components"
	"github.com/jeranaias/basecalc/internal/ui/styles"
)

// View renders the form.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	sections := []string{m.header.View(), m.renderPanes(width)}

	if toasts := m.toasts.Toasts(); len(toasts) > 0 {
		sections = append(sections, components.RenderToastStack(m.theme, toasts, width))
	}

	sections = append(sections, m.theme.StatusBar.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPanes lays the panes side by side, or stacked on narrow terminals.
func (m Model) renderPanes(width int) string {
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		paneWidth := width - 2
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderPane(Left, paneWidth),
			m.theme.Arrow.Render("v ^"),
			m.renderPane(Right, paneWidth))
	}

	paneWidth := (width - 7) / 2
	arrow := m.theme.Arrow.Render("<->")
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderPane(Left, paneWidth),
		arrow,
		m.renderPane(Right, paneWidth))
}

func (m Model) renderPane(s Side, width int) string {
	p := m.panes[s]
	focused := m.FocusedSide() == s

	title := "From"
	if s == Right {
		title = "To"
	}

	box := m.theme.Pane
	if focused {
		box = m.theme.PaneFocused
	}

	body := strings.Join([]string{
		m.theme.PaneTitle.Render(title),
		m.renderSelector(p.base, focused && m.OnSelector()),
		p.input.View(),
	}, "\n")

	// Border takes two columns.
	if width > 2 {
		box = box.Width(width - 2)
	}
	return box.Render(body)
}

// renderSelector draws every base with the selected one highlighted.
func (m Model) renderSelector(selected radix.Base, focused bool) string {
	parts := make([]string, 0, len(radix.Bases()))
	for _, b := range radix.Bases() {
		label := b.Short()
		switch {
		case b == selected && focused:
			parts = append(parts, m.theme.SelectorFocus.Render("["+label+"]"))
		case b == selected:
			parts = append(parts, m.theme.Selector.Bold(true).Render("["+label+"]"))
		default:
			parts = append(parts, m.theme.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}
