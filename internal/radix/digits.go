// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package radix

// symbols maps a digit value to its output symbol. Output is always uppercase.
const symbols = "0123456789ABCDEF"

// noSymbol marks bytes that are not digits in any supported base.
const noSymbol = -1

// symbolValues is the inverse of symbols, case-insensitive.
var symbolValues [256]int8

func init() {
	for i := range symbolValues {
		symbolValues[i] = noSymbol
	}
	for v := 0; v < len(symbols); v++ {
		c := symbols[v]
		symbolValues[c] = int8(v)
		if c >= 'A' && c <= 'F' {
			symbolValues[c+('a'-'A')] = int8(v)
		}
	}
}

// Symbol returns the symbol for a digit value in [0, 15].
func Symbol(v int) (byte, bool) {
	if v < 0 || v >= len(symbols) {
		return 0, false
	}
	return symbols[v], true
}

// SymbolValue returns the digit value of c. Lowercase hex letters are accepted.
func SymbolValue(c byte) (int, bool) {
	v := symbolValues[c]
	if v == noSymbol {
		return 0, false
	}
	return int(v), true
}
