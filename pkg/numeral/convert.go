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
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxNumeralLen is the length of the longest canonical numeral (3888, MMMDCCCLXXXVIII).
const maxNumeralLen = 15

// maxInputBytes bounds the raw input worth uppercasing: every rune of a
// canonical candidate uppercases to at least one ASCII byte.
const maxInputBytes = maxNumeralLen * 4

// canonicalPattern is the structural form of every canonical numeral:
// thousands, hundreds, tens and units, each using only the table's pairs.
var canonicalPattern = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// ToRoman encodes n as its canonical Roman numeral by greedy descending
// subtraction over the denomination table.
// Returns *RangeError when n is outside [MinValue, MaxValue].
func ToRoman(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", &RangeError{Value: strconv.Itoa(n), Reason: reasonBounds}
	}

	var b strings.Builder
	b.Grow(maxNumeralLen)

	remaining := n
	for _, d := range denominations {
		for remaining >= d.Value {
			b.WriteString(d.Symbol)
			remaining -= d.Value
		}
	}

	return b.String(), nil
}

// IsCanonical reports whether s, compared case-insensitively, is the unique
// canonical spelling of some value in [MinValue, MaxValue].
func IsCanonical(s string) bool {
	if len(s) > maxInputBytes {
		return false
	}
	return isCanonicalUpper(Normalize(s))
}

// ToArabic decodes a canonical Roman numeral. Input is case-insensitive.
// Returns *FormatError carrying the uppercased input when s is empty,
// contains symbols outside the alphabet, or is not the canonical spelling
// of its value.
func ToArabic(s string) (int, error) {
	upper := Normalize(s)
	if len(s) > maxInputBytes || !isCanonicalUpper(upper) {
		return 0, &FormatError{Input: upper}
	}

	n, ok := scanLeftToRight(upper)
	if !ok {
		return 0, &FormatError{Input: upper}
	}

	// the decoded value must re-encode to exactly the input
	if roman, err := ToRoman(n); err != nil || roman != upper {
		return 0, &FormatError{Input: upper}
	}

	return n, nil
}

// Normalize uppercases s using Unicode case mapping.
// A Caser is stateful, so one is created per call.
func Normalize(s string) string {
	return cases.Upper(language.Und).String(s)
}

func isCanonicalUpper(s string) bool {
	return s != "" && len(s) <= maxNumeralLen && canonicalPattern.MatchString(s)
}

// scanLeftToRight consumes a two symbol subtractive pair when the lookahead
// matches one, otherwise a single symbol.
func scanLeftToRight(s string) (int, bool) {
	total := 0
	for i := 0; i < len(s); {
		if i+2 <= len(s) {
			if v, ok := symbolValue(s[i : i+2]); ok {
				total += v
				i += 2
				continue
			}
		}
		v, ok := symbolValue(s[i : i+1])
		if !ok {
			return 0, false
		}
		total += v
		i++
	}
	return total, true
}

// scanRightToLeft adds each symbol unless it is smaller than the symbol to
// its right, in which case it is subtracted.
func scanRightToLeft(s string) (int, bool) {
	total, prev := 0, 0
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := symbolValue(s[i : i+1])
		if !ok {
			return 0, false
		}
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total, true
}
