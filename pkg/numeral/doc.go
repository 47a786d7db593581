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

// Package numeral converts between Arabic integers and classical Roman numerals.
//
// The package owns a single ordered table of value/symbol pairs that both
// conversion directions consume, so any numeral produced by ToRoman is
// accepted by ToArabic and vice versa.
//
// # Domain
//
// Only the classical subtractive notation is supported:
//
//   - Values from 1 to 3999 inclusive (MinValue, MaxValue)
//   - Symbols I, V, X, L, C, D, M
//   - Subtractive pairs CM, CD, XC, XL, IX, IV
//
// Input numerals are case-insensitive; output is always uppercase.
//
// # Usage
//
//	roman, err := numeral.ToRoman(1994) // "MCMXCIV"
//	if err != nil {
//	    // errors.Is(err, numeral.ErrOutOfRange)
//	}
//
//	n, err := numeral.ToArabic("mcmxciv") // 1994
//	if err != nil {
//	    // errors.Is(err, numeral.ErrNotCanonical)
//	}
//
//	numeral.IsCanonical("IIII") // false
//
// # Canonical Form
//
// A numeral is canonical when it is the unique spelling ToRoman would
// produce for its value. Strings that sum arithmetically but are not that
// spelling ("IIII", "VX", "IC") are rejected.
//
// # Errors
//
// Exactly two failure kinds are returned:
//
//   - *RangeError (matches ErrOutOfRange): value is not an integer in range
//   - *FormatError (matches ErrNotCanonical): string is not a canonical numeral
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. The denomination table
// is built once at package initialization and never mutated.
package numeral
