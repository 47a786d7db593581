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
	"math"
	"strconv"
	"strings"
)

// ParseArabic coerces textual input into a value ToRoman accepts.
//
// Surrounding whitespace is ignored. Decimal integers and integral
// floating point forms ("12.0", "1e3") are accepted; anything that is not a
// decimal number (hexadecimal "0x1p4" included), is fractional, NaN or
// infinite, or falls outside [MinValue, MaxValue] returns *RangeError.
func ParseArabic(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &RangeError{Value: s, Reason: reasonNotNumber}
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < MinValue || n > MaxValue {
			return 0, &RangeError{Value: trimmed, Reason: reasonBounds}
		}
		return n, nil
	}

	if isHexLiteral(trimmed) {
		return 0, &RangeError{Value: trimmed, Reason: reasonNotNumber}
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Value: trimmed, Reason: reasonBounds}
		}
		return 0, &RangeError{Value: trimmed, Reason: reasonNotNumber}
	}

	return fromFloat(f, trimmed)
}

// isHexLiteral reports whether s carries a 0x prefix after an optional sign.
// ParseFloat accepts hexadecimal floats, which are not decimal input.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// ArabicFromFloat converts f to an integer value when it is integral and in
// range, otherwise it returns *RangeError.
func ArabicFromFloat(f float64) (int, error) {
	return fromFloat(f, strconv.FormatFloat(f, 'g', -1, 64))
}

func fromFloat(f float64, value string) (int, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0, &RangeError{Value: value, Reason: reasonNotNumber}
	case f != math.Trunc(f):
		return 0, &RangeError{Value: value, Reason: reasonNotInteger}
	case f < MinValue || f > MaxValue:
		return 0, &RangeError{Value: value, Reason: reasonBounds}
	}

	return int(f), nil
}
