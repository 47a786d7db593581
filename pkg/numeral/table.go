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

const (
	// MinValue is the smallest value representable as a Roman numeral.
	MinValue = 1

	// MaxValue is the largest value representable in classical notation.
	MaxValue = 3999
)

// Denomination is a single value/symbol pair of the numeral system.
type Denomination struct {
	Value  int    `json:"value" yaml:"value"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// denominations is ordered strictly descending by value.
// Greedy encoding depends on that order.
var denominations = [...]Denomination{
	{Value: 1000, Symbol: "M"},
	{Value: 900, Symbol: "CM"},
	{Value: 500, Symbol: "D"},
	{Value: 400, Symbol: "CD"},
	{Value: 100, Symbol: "C"},
	{Value: 90, Symbol: "XC"},
	{Value: 50, Symbol: "L"},
	{Value: 40, Symbol: "XL"},
	{Value: 10, Symbol: "X"},
	{Value: 9, Symbol: "IX"},
	{Value: 5, Symbol: "V"},
	{Value: 4, Symbol: "IV"},
	{Value: 1, Symbol: "I"},
}

// symbolValues indexes every one and two symbol token of the table.
var symbolValues = func() map[string]int {
	m := make(map[string]int, len(denominations))
	for _, d := range denominations {
		m[d.Symbol] = d.Value
	}
	return m
}()

// Denominations returns a copy of the value/symbol table in descending order.
func Denominations() []Denomination {
	out := make([]Denomination, len(denominations))
	copy(out, denominations[:])
	return out
}

// Each calls fn for every denomination in descending order until fn returns false.
func Each(fn func(Denomination) bool) {
	for _, d := range denominations {
		if !fn(d) {
			return
		}
	}
}

// symbolValue returns the value of a one or two symbol token.
func symbolValue(sym string) (int, bool) {
	v, ok := symbolValues[sym]
	return v, ok
}
