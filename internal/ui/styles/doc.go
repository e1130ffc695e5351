// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles holds the palette and lipgloss styles of the basecalc
interactive converter.

Colors are lipgloss.AdaptiveColor pairs. A Theme resolves each pair to its
light or dark half once, according to the ui.theme setting:

	dark   always the Dark half
	light  always the Light half
	auto   detect the terminal background with termenv

Rendering never mutates global lipgloss state, so two themes can coexist
(the form rebuilds its theme when the config file changes).

Every status color is paired with an ASCII marker from StatusIndicators.
*/
package styles
