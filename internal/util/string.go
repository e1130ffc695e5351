// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when there is room for it. Wide characters count as two columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// StringWidth returns the display width of a string.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// GroupDigits splits a numeral into groups of size digits counted from the
// right, joined by sep: GroupDigits("11111111", 4, " ") == "1111 1111".
// A size <= 0 returns s unchanged.
func GroupDigits(s string, size int, sep string) string {
	if size <= 0 || len(s) <= size {
		return s
	}

	var b strings.Builder
	head := len(s) % size
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += size {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+size])
	}
	return b.String()
}

// UngroupDigits removes the separators GroupDigits may have inserted, along
// with underscores, so pasted grouped output can be fed back in.
func UngroupDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '\t':
			return -1
		}
		return r
	}, s)
}
