// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package radix

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidNumeral is the single failure category of the converter.
var ErrInvalidNumeral = errors.New("invalid numeral")

// NumeralError describes why an input was rejected for a base.
// Pos is the byte offset of the offending character, or -1 when the input as a
// whole is unusable (empty text, negative value).
type NumeralError struct {
	Base   Base
	Input  string
	Pos    int
	Symbol rune
}

func (e *NumeralError) Error() string {
	switch {
	case e.Pos < 0 && e.Input == "":
		return fmt.Sprintf("invalid numeral for %s: empty input", e.Base)
	case e.Pos < 0:
		return fmt.Sprintf("invalid numeral for %s: %q", e.Base, e.Input)
	}
	return fmt.Sprintf("invalid numeral for %s: %q at position %d in %q",
		e.Base, e.Symbol, e.Pos, e.Input)
}

// Is makes errors.Is(err, ErrInvalidNumeral) true for every NumeralError.
func (e *NumeralError) Is(target error) bool {
	return target == ErrInvalidNumeral
}

func invalidAt(b Base, input string, pos int) error {
	r, _ := utf8.DecodeRuneInString(input[pos:])
	return &NumeralError{Base: b, Input: input, Pos: pos, Symbol: r}
}

func invalidWhole(b Base, input string) error {
	return &NumeralError{Base: b, Input: input, Pos: -1}
}
