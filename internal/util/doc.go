// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the basecalc front-ends.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, PadRight, StringWidth: display-width aware layout
//   - GroupDigits, UngroupDigits: digit grouping for long numerals
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// "1010 1111"
//	shown := util.GroupDigits("10101111", 4, " ")
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600)
package util
