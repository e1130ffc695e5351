// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - "Did you mean" suggestions for mistyped commands.
package cli

import (
	"strings"
)

// validCommands lists every command word ParseArgs recognises.
var validCommands = []string{
	"tui",
	"gui",
	"convert",
	"dec2bin",
	"dec2hex",
	"bin2dec",
	"bin2hex",
	"hex2dec",
	"hex2bin",
	"menu",
	"table",
	"history",
	"config",
	"doctor",
	"version",
	"help",
}

// SuggestCommand returns the closest valid command to input, or "" when
// nothing is close enough. An exact match also returns "".
func SuggestCommand(input string) string {
	input = strings.ToLower(input)
	if len(input) < 2 {
		return ""
	}

	// Short words tolerate one edit, longer ones two.
	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}

	bestMatch := ""
	bestDistance := -1
	for _, cmd := range validCommands {
		distance := levenshteinDistance(input, cmd)
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cmd
		}
	}

	return bestMatch
}

// levenshteinDistance is the single-byte edit distance between s1 and s2,
// computed with two rolling rows.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}
