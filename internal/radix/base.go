// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package radix

import (
	"errors"
	"fmt"
	"strings"
)

// Base is a positional numeral system. Its value is the radix.
type Base int

const (
	Binary      Base = 2
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// ErrUnknownBase is returned by ParseBase for names it does not recognise.
var ErrUnknownBase = errors.New("unknown base")

// Bases returns the supported bases in menu order.
func Bases() []Base {
	return []Base{Decimal, Binary, Hexadecimal}
}

// Valid reports whether b is one of the supported bases.
func (b Base) Valid() bool {
	switch b {
	case Binary, Decimal, Hexadecimal:
		return true
	}
	return false
}

// String returns the lowercase name of the base ("binary", "decimal", ...).
func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return fmt.Sprintf("base(%d)", int(b))
}

// Short returns the three letter abbreviation used by the shortcut commands.
func (b Base) Short() string {
	switch b {
	case Binary:
		return "bin"
	case Decimal:
		return "dec"
	case Hexadecimal:
		return "hex"
	}
	return b.String()
}

// Label returns the menu label, e.g. "Base 16 (Hexadecimal)".
func (b Base) Label() string {
	name := b.String()
	return fmt.Sprintf("Base %d (%s%s)", int(b), strings.ToUpper(name[:1]), name[1:])
}

// Next returns the base that follows b in menu order, wrapping around.
func (b Base) Next() Base {
	return b.step(1)
}

// Prev returns the base that precedes b in menu order, wrapping around.
func (b Base) Prev() Base {
	return b.step(-1)
}

func (b Base) step(delta int) Base {
	all := Bases()
	for i, c := range all {
		if c == b {
			return all[(i+delta+len(all))%len(all)]
		}
	}
	return all[0]
}

// MarshalText encodes the base by name so configs and JSON stay readable.
func (b Base) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBase, int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText accepts any name understood by ParseBase.
func (b *Base) UnmarshalText(text []byte) error {
	parsed, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBase resolves a user supplied base name. Matching is case-insensitive
// and accepts the radix itself, the short name and the long name.
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "2", "b", "bin", "binary":
		return Binary, nil
	case "10", "d", "dec", "decimal":
		return Decimal, nil
	case "16", "h", "x", "hex", "hexadecimal":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBase, name)
}
