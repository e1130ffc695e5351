// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the converter form.
type KeyMap struct {
	Convert  key.Binding
	Next     key.Binding
	Prev     key.Binding
	BaseNext key.Binding
	BasePrev key.Binding
	Swap     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Convert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "convert to other pane"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous field"),
		),
		BaseNext: key.NewBinding(
			key.WithKeys("ctrl+right", "]"),
			key.WithHelp("C-right/]", "next base"),
		),
		BasePrev: key.NewBinding(
			key.WithKeys("ctrl+left", "["),
			key.WithHelp("C-left/[", "previous base"),
		),
		Swap: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "swap panes"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Next, k.BaseNext, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Conversion
		{k.Convert, k.Swap, k.Clear},
		// Navigation
		{k.Next, k.Prev, k.BaseNext, k.BasePrev},
		// Application
		{k.Help, k.Quit},
	}
}
