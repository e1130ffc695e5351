// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package radix converts non-negative integers between decimal, binary and
// hexadecimal text.
//
// Every conversion goes through a *big.Int intermediate: text in a source
// base is decoded with a positional weighted sum, and the value is encoded
// into the target base by repeated division. Binary and hexadecimal are
// never converted into each other directly.
//
// # Key Functions
//
//   - Format, Parse: the two primitives
//   - Convert: text in one base to text in another
//   - DecimalToBinary, DecimalToHex, BinaryToDecimal, BinaryToHex,
//     HexToDecimal, HexToBinary: the six direction pairs
//
// # Errors
//
// Malformed input of any kind (empty text, a symbol outside the alphabet, a
// symbol too large for the base, a negative value) is reported as a
// *NumeralError that matches ErrInvalidNumeral with errors.Is. Nothing in
// this package logs, prints or panics, and there is no shared mutable state,
// so all functions are safe for concurrent use.
//
// # Usage
//
//	out, err := radix.Convert("ff", radix.Hexadecimal, radix.Binary)
//	// out == "11111111"
//
//	if errors.Is(err, radix.ErrInvalidNumeral) {
//	    // show "invalid number" to the user
//	}
package radix
