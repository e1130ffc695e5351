// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package radix

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bi(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// sampleValues returns boundary values plus a deterministic random spread.
func sampleValues() []uint64 {
	vals := []uint64{0, 1, 2, 3, 7, 8, 15, 16, 17, 255, 256, 1023, 1024, 65535,
		1 << 32, math.MaxUint32, math.MaxInt64, math.MaxUint64}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		vals = append(vals, r.Uint64()>>uint(r.Intn(64)))
	}
	return vals
}

// =============================================================================
// FORMAT
// =============================================================================

func TestDecimalToBinary_Examples(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "10"},
		{10, "1010"},
		{255, "11111111"},
		{256, "100000000"},
	}
	for _, tt := range tests {
		got, err := DecimalToBinary(bi(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "DecimalToBinary(%d)", tt.in)
	}
}

func TestDecimalToHex_Examples(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "A"},
		{15, "F"},
		{16, "10"},
		{255, "FF"},
		{48879, "BEEF"},
	}
	for _, tt := range tests {
		got, err := DecimalToHex(bi(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "DecimalToHex(%d)", tt.in)
	}
}

func TestFormat_BinaryShape(t *testing.T) {
	shape := regexp.MustCompile(`^[01]+$`)
	for _, n := range sampleValues() {
		got, err := DecimalToBinary(bi(n))
		require.NoError(t, err)
		assert.Regexp(t, shape, got)
		if n != 0 {
			assert.False(t, strings.HasPrefix(got, "0"), "leading zero in %q for %d", got, n)
		}
	}
}

func TestFormat_MatchesStrconv(t *testing.T) {
	for _, n := range sampleValues() {
		for _, b := range Bases() {
			want := strings.ToUpper(strconv.FormatUint(n, int(b)))
			got, err := Format(bi(n), b)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want, FormatUint(n, b))
		}
	}
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	v := bi(1234)
	_, err := Format(v, Binary)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), v.Int64())
}

func TestFormat_RejectsNegativeAndNil(t *testing.T) {
	_, err := DecimalToBinary(big.NewInt(-5))
	assert.ErrorIs(t, err, ErrInvalidNumeral)

	_, err = DecimalToHex(nil)
	assert.ErrorIs(t, err, ErrInvalidNumeral)
}

func TestFormat_UnknownBase(t *testing.T) {
	_, err := Format(bi(5), Base(8))
	assert.ErrorIs(t, err, ErrUnknownBase)
	assert.False(t, errors.Is(err, ErrInvalidNumeral))
	assert.Equal(t, "", FormatUint(5, Base(3)))
}

// =============================================================================
// PARSE
// =============================================================================

func TestBinaryToDecimal_Examples(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"1", 1},
		{"1010", 10},
		{"0001010", 10},
		{"11111111", 255},
	}
	for _, tt := range tests {
		got, err := BinaryToDecimal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Uint64(), "BinaryToDecimal(%q)", tt.in)
	}
}

func TestHexToDecimal_CaseInsensitive(t *testing.T) {
	for _, in := range []string{"ff", "FF", "fF", "Ff", "00ff"} {
		got, err := HexToDecimal(in)
		require.NoError(t, err)
		assert.Equal(t, uint64(255), got.Uint64(), "HexToDecimal(%q)", in)
	}
}

func TestParse_ArbitraryLength(t *testing.T) {
	in := "1" + strings.Repeat("0", 200)
	got, err := BinaryToDecimal(in)
	require.NoError(t, err)
	want := new(big.Int).Lsh(big.NewInt(1), 200)
	assert.Equal(t, 0, got.Cmp(want))

	back, err := DecimalToBinary(got)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestParse_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		base    Base
		wantPos int
	}{
		{"binary digit 2", "102", Binary, 2},
		{"binary digit 9", "9", Binary, 0},
		{"binary letter", "10a1", Binary, 2},
		{"binary whitespace", "1 0", Binary, 1},
		{"binary sign", "-101", Binary, 0},
		{"binary empty", "", Binary, -1},
		{"hex G", "G1", Hexadecimal, 0},
		{"hex z", "ffz", Hexadecimal, 2},
		{"hex prefix", "0x1F", Hexadecimal, 1},
		{"hex empty", "", Hexadecimal, -1},
		{"decimal letter", "12a", Decimal, 2},
		{"decimal fraction", "1.5", Decimal, 1},
		{"non ascii", "1é", Hexadecimal, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.in, tt.base)
			assert.Nil(t, v)
			require.ErrorIs(t, err, ErrInvalidNumeral)

			var ne *NumeralError
			require.True(t, errors.As(err, &ne))
			assert.Equal(t, tt.base, ne.Base)
			assert.Equal(t, tt.in, ne.Input)
			assert.Equal(t, tt.wantPos, ne.Pos)
		})
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	_, err := BinaryToDecimal("102")
	assert.EqualError(t, err, `invalid numeral for binary: '2' at position 2 in "102"`)

	_, err = HexToDecimal("")
	assert.EqualError(t, err, "invalid numeral for hexadecimal: empty input")
}

func TestParse_ErrorNamesWholeCharacter(t *testing.T) {
	_, err := HexToDecimal("ＦＦ")
	assert.EqualError(t, err, `invalid numeral for hexadecimal: 'Ｆ' at position 0 in "ＦＦ"`)

	var ne *NumeralError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, 'Ｆ', ne.Symbol)

	_, err = BinaryToDecimal("10é")
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, 2, ne.Pos)
	assert.Equal(t, 'é', ne.Symbol)
}

// =============================================================================
// ROUND TRIPS AND COMPOSITION
// =============================================================================

func TestRoundTrip(t *testing.T) {
	for _, n := range sampleValues() {
		bin, err := DecimalToBinary(bi(n))
		require.NoError(t, err)
		back, err := BinaryToDecimal(bin)
		require.NoError(t, err)
		assert.Equal(t, n, back.Uint64())

		hex, err := DecimalToHex(bi(n))
		require.NoError(t, err)
		back, err = HexToDecimal(hex)
		require.NoError(t, err)
		assert.Equal(t, n, back.Uint64())
	}
}

func TestBinaryHexComposition(t *testing.T) {
	got, err := BinaryToHex("1010")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = HexToBinary("A")
	require.NoError(t, err)
	assert.Equal(t, "1010", got)

	got, err = HexToBinary("0")
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	for _, n := range sampleValues() {
		bin := FormatUint(n, Binary)
		hex, err := BinaryToHex(bin)
		require.NoError(t, err)
		assert.Equal(t, FormatUint(n, Hexadecimal), hex)

		back, err := HexToBinary(hex)
		require.NoError(t, err)
		assert.Equal(t, bin, back)
	}
}

func TestBinaryHexComposition_Errors(t *testing.T) {
	_, err := BinaryToHex("12")
	assert.ErrorIs(t, err, ErrInvalidNumeral)

	_, err = HexToBinary("xyz")
	assert.ErrorIs(t, err, ErrInvalidNumeral)

	_, err = BinaryToHex("")
	assert.ErrorIs(t, err, ErrInvalidNumeral)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		in       string
		from, to Base
		want     string
	}{
		{"255", Decimal, Hexadecimal, "FF"},
		{"255", Decimal, Binary, "11111111"},
		{"ff", Hexadecimal, Decimal, "255"},
		{"1010", Binary, Hexadecimal, "A"},
		{"a", Hexadecimal, Binary, "1010"},
		{"0", Decimal, Binary, "0"},
		{"000", Binary, Decimal, "0"},
		{"00ff", Hexadecimal, Hexadecimal, "FF"},
		{"0042", Decimal, Decimal, "42"},
		{"18446744073709551616", Decimal, Hexadecimal, "10000000000000000"},
	}
	for _, tt := range tests {
		got, err := Convert(tt.in, tt.from, tt.to)
		require.NoError(t, err, "Convert(%q, %s, %s)", tt.in, tt.from, tt.to)
		assert.Equal(t, tt.want, got)
	}
}

func TestConvert_Errors(t *testing.T) {
	_, err := Convert("FF", Decimal, Binary)
	assert.ErrorIs(t, err, ErrInvalidNumeral)

	_, err = Convert("1", Binary, Base(7))
	assert.ErrorIs(t, err, ErrUnknownBase)

	_, err = Convert("1", Base(7), Binary)
	assert.ErrorIs(t, err, ErrUnknownBase)
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			hex := FormatUint(n, Hexadecimal)
			got, err := HexToBinary(hex)
			assert.NoError(t, err)
			assert.Equal(t, FormatUint(n, Binary), got)
		}(uint64(i * 977))
	}
	wg.Wait()
}

// =============================================================================
// SYMBOL TABLE AND BASES
// =============================================================================

func TestSymbolTable_Bijective(t *testing.T) {
	seen := map[byte]bool{}
	for v := 0; v < 16; v++ {
		c, ok := Symbol(v)
		require.True(t, ok)
		assert.False(t, seen[c], "symbol %q used twice", c)
		seen[c] = true

		back, ok := SymbolValue(c)
		require.True(t, ok)
		assert.Equal(t, v, back)
	}

	for _, c := range []byte("abcdef") {
		v, ok := SymbolValue(c)
		require.True(t, ok)
		assert.Equal(t, int(c-'a'+10), v)
	}

	_, ok := Symbol(16)
	assert.False(t, ok)
	_, ok = Symbol(-1)
	assert.False(t, ok)
	_, ok = SymbolValue('g')
	assert.False(t, ok)
}

func TestParseBase(t *testing.T) {
	tests := map[string]Base{
		"2": Binary, "bin": Binary, "Binary": Binary, "b": Binary,
		"10": Decimal, "dec": Decimal, " DECIMAL ": Decimal,
		"16": Hexadecimal, "hex": Hexadecimal, "x": Hexadecimal, "Hexadecimal": Hexadecimal,
	}
	for in, want := range tests {
		got, err := ParseBase(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBase("octal")
	assert.ErrorIs(t, err, ErrUnknownBase)
}

func TestBase_LabelsAndCycle(t *testing.T) {
	assert.Equal(t, "Base 16 (Hexadecimal)", Hexadecimal.Label())
	assert.Equal(t, "Base 10 (Decimal)", Decimal.Label())
	assert.Equal(t, "bin", Binary.Short())

	assert.Equal(t, Binary, Decimal.Next())
	assert.Equal(t, Hexadecimal, Binary.Next())
	assert.Equal(t, Decimal, Hexadecimal.Next())
	assert.Equal(t, Hexadecimal, Decimal.Prev())
	assert.False(t, Base(8).Valid())
}

func TestBase_TextMarshalling(t *testing.T) {
	text, err := Hexadecimal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hexadecimal", string(text))

	var b Base
	require.NoError(t, b.UnmarshalText([]byte("bin")))
	assert.Equal(t, Binary, b)

	assert.Error(t, b.UnmarshalText([]byte("base64")))
	_, err = Base(3).MarshalText()
	assert.Error(t, err)
}
