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
	"testing"
)

// FuzzToArabic checks that decoding never panics and that every accepted
// input is the canonical spelling of the value it decodes to.
func FuzzToArabic(f *testing.F) {
	f.Add("I")
	f.Add("iv")
	f.Add("MCMXCIV")
	f.Add("MMMCMXCIX")
	f.Add("IIII")
	f.Add("IC")
	f.Add("VX")
	f.Add("")
	f.Add("ABC")
	f.Add("ıv")
	f.Add("MMMM")

	f.Fuzz(func(t *testing.T, input string) {
		n, err := ToArabic(input)
		if err != nil {
			if !errors.Is(err, ErrNotCanonical) {
				t.Fatalf("ToArabic(%q) returned unexpected error kind: %v", input, err)
			}
			if IsCanonical(input) {
				t.Fatalf("IsCanonical(%q) = true but ToArabic failed: %v", input, err)
			}
			return
		}

		if !IsCanonical(input) {
			t.Fatalf("ToArabic(%q) succeeded but IsCanonical = false", input)
		}
		roman, err := ToRoman(n)
		if err != nil {
			t.Fatalf("ToRoman(%d) failed after ToArabic(%q): %v", n, input, err)
		}
		if roman != Normalize(input) {
			t.Fatalf("ToRoman(ToArabic(%q)) = %q", input, roman)
		}
	})
}

// FuzzParseArabic checks that every accepted value encodes.
func FuzzParseArabic(f *testing.F) {
	f.Add("1")
	f.Add("3999")
	f.Add("0")
	f.Add("3.5")
	f.Add("1e3")
	f.Add("NaN")
	f.Add(" 12 ")

	f.Fuzz(func(t *testing.T, input string) {
		n, err := ParseArabic(input)
		if err != nil {
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("ParseArabic(%q) returned unexpected error kind: %v", input, err)
			}
			return
		}
		if _, err := ToRoman(n); err != nil {
			t.Fatalf("ParseArabic(%q) = %d which does not encode: %v", input, n, err)
		}
	})
}
