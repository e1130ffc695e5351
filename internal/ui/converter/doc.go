// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package converter implements the interactive two-pane form of basecalc.

Each pane pairs a base selector with a text input. Pressing enter converts
the focused pane into the other one; the target pane is only written when
the conversion succeeds. Invalid or empty input raises an error toast and
leaves both panes untouched.

# Keys

	tab / shift+tab      move focus: selector, input, selector, input
	] / ctrl+right       next base in the focused pane
	[ / ctrl+left        previous base in the focused pane
	enter                convert the focused pane into the other pane
	ctrl+s               swap panes
	ctrl+l               clear both panes
	?                    toggle full help
	esc / ctrl+c         quit

# Live configuration

Run watches the config file. When it changes, the model receives a
ConfigReloadedMsg and restyles itself; the default bases are only applied
while both panes are empty.
*/
package converter
