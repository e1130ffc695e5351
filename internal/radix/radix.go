// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package radix

import (
	"fmt"
	"math/big"
)

// =============================================================================
// PRIMITIVES
// =============================================================================

// Format renders v in base b by repeated division, most significant digit
// first. Zero renders as "0". A nil or negative v is an invalid numeral.
func Format(v *big.Int, b Base) (string, error) {
	if !b.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownBase, int(b))
	}
	if v == nil {
		return "", invalidWhole(Decimal, "")
	}
	if v.Sign() < 0 {
		return "", invalidWhole(Decimal, v.String())
	}

	n := new(big.Int).Set(v)
	divisor := big.NewInt(int64(b))
	rem := new(big.Int)

	// Remainders come out least significant first.
	var digits []byte
	for {
		n.QuoRem(n, divisor, rem)
		digits = append(digits, symbols[rem.Int64()])
		if n.Sign() == 0 {
			break
		}
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// FormatUint is Format for values that fit in a uint64. It returns "" for an
// unsupported base.
func FormatUint(v uint64, b Base) string {
	if !b.Valid() {
		return ""
	}
	var buf [64]byte
	i := len(buf)
	radix := uint64(b)
	for {
		i--
		buf[i] = symbols[v%radix]
		v /= radix
		if v == 0 {
			break
		}
	}
	return string(buf[i:])
}

// Parse decodes s as a numeral in base b with a positional weighted sum:
// the digit at position i, counted from the rightmost digit, contributes
// digit * b^i. Hex letters are accepted in either case. Empty input and any
// symbol that is not a digit of b are rejected; the leftmost bad symbol is
// reported.
func Parse(s string, b Base) (*big.Int, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBase, int(b))
	}
	if s == "" {
		return nil, invalidWhole(b, s)
	}
	for i := 0; i < len(s); i++ {
		d, ok := SymbolValue(s[i])
		if !ok || d >= int(b) {
			return nil, invalidAt(b, s, i)
		}
	}

	value := new(big.Int)
	weight := big.NewInt(1)
	radix := big.NewInt(int64(b))
	term := new(big.Int)
	for i := len(s) - 1; i >= 0; i-- {
		if d := symbolValues[s[i]]; d != 0 {
			term.Mul(weight, big.NewInt(int64(d)))
			value.Add(value, term)
		}
		weight.Mul(weight, radix)
	}
	return value, nil
}

// Convert parses s in base from and renders it in base to. Converting
// between two non-decimal bases goes through the integer value. When from
// equals to the canonical form is returned: uppercase, no leading zeros.
func Convert(s string, from, to Base) (string, error) {
	if !to.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownBase, int(to))
	}
	v, err := Parse(s, from)
	if err != nil {
		return "", err
	}
	return Format(v, to)
}

// =============================================================================
// DIRECTION PAIRS
// =============================================================================

// DecimalToBinary renders v in base 2.
func DecimalToBinary(v *big.Int) (string, error) {
	return Format(v, Binary)
}

// DecimalToHex renders v in base 16 with uppercase symbols.
func DecimalToHex(v *big.Int) (string, error) {
	return Format(v, Hexadecimal)
}

// BinaryToDecimal decodes a string of 0 and 1 digits.
func BinaryToDecimal(s string) (*big.Int, error) {
	return Parse(s, Binary)
}

// HexToDecimal decodes a hexadecimal string, ignoring letter case.
func HexToDecimal(s string) (*big.Int, error) {
	return Parse(s, Hexadecimal)
}

// BinaryToHex is BinaryToDecimal followed by DecimalToHex.
func BinaryToHex(s string) (string, error) {
	v, err := BinaryToDecimal(s)
	if err != nil {
		return "", err
	}
	return DecimalToHex(v)
}

// HexToBinary is HexToDecimal followed by DecimalToBinary.
func HexToBinary(s string) (string, error) {
	v, err := HexToDecimal(s)
	if err != nil {
		return "", err
	}
	return DecimalToBinary(v)
}
