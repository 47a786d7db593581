// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package numeral

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "IVXLCDM"

func TestToRoman_KnownValues(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "I"},
		{3, "III"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{58, "LVIII"},
		{90, "XC"},
		{123, "CXXIII"},
		{400, "CD"},
		{444, "CDXLIV"},
		{900, "CM"},
		{1994, "MCMXCIV"},
		{2024, "MMXXIV"},
		{3888, "MMMDCCCLXXXVIII"},
		{3999, "MMMCMXCIX"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := ToRoman(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToRoman_OutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, -3999, 4000, 10000} {
		got, err := ToRoman(n)
		require.Error(t, err, "ToRoman(%d)", n)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, ErrOutOfRange), "expected ErrOutOfRange, got %v", err)
		assert.False(t, errors.Is(err, ErrNotCanonical))

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, reasonBounds, rangeErr.Reason)
	}
}

func TestToRoman_NeverUsesNonTablePairs(t *testing.T) {
	forbidden := []string{"IIII", "VV", "XXXX", "LL", "CCCC", "DD", "MMMM", "VX", "IC", "IL", "XD", "XM", "VL", "LC", "DM"}

	for n := MinValue; n <= MaxValue; n++ {
		roman, err := ToRoman(n)
		require.NoError(t, err)
		require.LessOrEqual(t, len(roman), maxNumeralLen)
		for _, f := range forbidden {
			if strings.Contains(roman, f) {
				t.Fatalf("ToRoman(%d) = %q contains %q", n, roman, f)
			}
		}
	}
}

func TestToArabic_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"I", 1},
		{"IV", 4},
		{"LVIII", 58},
		{"CXXIII", 123},
		{"MCMXCIV", 1994},
		{"MMXXIV", 2024},
		{"MMMCMXCIX", 3999},
		{"mcmxciv", 1994},
		{"McMxCiV", 1994},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToArabic(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToArabic_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"four in a row", "IIII"},
		{"invalid subtraction IC", "IC"},
		{"invalid subtraction VX", "VX"},
		{"invalid subtraction IL", "IL"},
		{"repeated subtractive pair", "IXIX"},
		{"double V", "VV"},
		{"trailing pair after subtraction", "IXC"},
		{"too many thousands", "MMMM"},
		{"empty", ""},
		{"foreign letters", "ABC"},
		{"digits", "12"},
		{"whitespace", " IV"},
		{"lowercase non-canonical", "iiii"},
		{"unicode numeral", "Ⅳ"},
		{"overlong", strings.Repeat("M", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToArabic(tt.in)
			require.Error(t, err)
			assert.Zero(t, got)
			assert.True(t, errors.Is(err, ErrNotCanonical), "expected ErrNotCanonical, got %v", err)
			assert.False(t, errors.Is(err, ErrOutOfRange))

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, Normalize(tt.in), formatErr.Input)
		})
	}
}

func TestFormatError_CarriesUppercasedInput(t *testing.T) {
	_, err := ToArabic("iiii")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"IIII"`)
}

func TestToArabic_CaseInsensitive(t *testing.T) {
	lower, err := ToArabic("mcmxciv")
	require.NoError(t, err)
	upper, err := ToArabic("MCMXCIV")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestRoundTrip_AllValues(t *testing.T) {
	for n := MinValue; n <= MaxValue; n++ {
		roman, err := ToRoman(n)
		require.NoError(t, err)

		got, err := ToArabic(roman)
		require.NoError(t, err, "ToArabic(%q)", roman)
		require.Equal(t, n, got)

		back, err := ToRoman(got)
		require.NoError(t, err)
		require.Equal(t, roman, back)

		lowered, err := ToArabic(strings.ToLower(roman))
		require.NoError(t, err)
		require.Equal(t, n, lowered)
	}
}

func TestScanDirectionsAgree(t *testing.T) {
	for n := MinValue; n <= MaxValue; n++ {
		roman, err := ToRoman(n)
		require.NoError(t, err)

		ltr, ok := scanLeftToRight(roman)
		require.True(t, ok)
		rtl, ok := scanRightToLeft(roman)
		require.True(t, ok)

		require.Equal(t, n, ltr, "left-to-right %q", roman)
		require.Equal(t, n, rtl, "right-to-left %q", roman)
	}
}

// roundTripCanonical is the reference definition of canonicity: decoding and
// re-encoding reproduces the string exactly.
func roundTripCanonical(s string) bool {
	n, ok := scanLeftToRight(s)
	if !ok {
		return false
	}
	roman, err := ToRoman(n)
	return err == nil && roman == s
}

// enumerate returns every string over alphabet with length 1..maxLen.
func enumerate(maxLen int) []string {
	out := []string{}
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		next := make([]string, 0, len(level)*len(alphabet))
		for _, prefix := range level {
			for _, c := range alphabet {
				next = append(next, prefix+string(c))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// mutations returns single insertions, deletions and substitutions of s.
func mutations(s string) []string {
	var out []string
	for i := 0; i <= len(s); i++ {
		for _, c := range alphabet {
			out = append(out, s[:i]+string(c)+s[i:])
			if i < len(s) {
				out = append(out, s[:i]+string(c)+s[i+1:])
			}
		}
		if i < len(s) {
			out = append(out, s[:i]+s[i+1:])
		}
	}
	return out
}

func TestIsCanonical_MatchesRoundTripDefinition(t *testing.T) {
	candidates := enumerate(5)
	for n := MinValue; n <= MaxValue; n++ {
		roman, err := ToRoman(n)
		require.NoError(t, err)
		candidates = append(candidates, roman)
		candidates = append(candidates, mutations(roman)...)
	}

	for _, s := range candidates {
		want := roundTripCanonical(s)
		if got := IsCanonical(s); got != want {
			t.Fatalf("IsCanonical(%q) = %v, round-trip says %v", s, got, want)
		}
	}
}

func TestIsCanonical_AgreesWithToArabic(t *testing.T) {
	candidates := append(enumerate(4), "", "abc", "iv", "Iv", "mmmm", "MCMXCIV", "mcmxciv", "IC", "VX", " I")
	for _, s := range candidates {
		_, err := ToArabic(s)
		assert.Equal(t, IsCanonical(s), err == nil, "input %q", s)
	}
}

func TestIsCanonical_Edges(t *testing.T) {
	assert.False(t, IsCanonical(""))
	assert.False(t, IsCanonical("ABC"))
	assert.False(t, IsCanonical("IIII"))
	assert.False(t, IsCanonical("CMCM"))
	assert.True(t, IsCanonical("iv"))
	assert.True(t, IsCanonical("MMMCMXCIX"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "MCMXCIV", Normalize("mcmxciv"))
	assert.Equal(t, "IV", Normalize("Iv"))
	assert.Equal(t, "", Normalize(""))
}
