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
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("value out of domain")

	// ErrNotCanonical is matched by every *FormatError.
	ErrNotCanonical = errors.New("not a canonical Roman numeral")
)

const (
	reasonBounds     = "must be an integer between 1 and 3999"
	reasonNotNumber  = "not a number"
	reasonNotInteger = "not an integer"
)

// RangeError reports a value that cannot be encoded as a Roman numeral:
// non-numeric, non-integer, or outside [MinValue, MaxValue].
type RangeError struct {
	// Value is the offending input as received.
	Value string
	// Reason describes which constraint was violated.
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %q %s", ErrOutOfRange, e.Value, e.Reason)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// FormatError reports a string that is not a canonical Roman numeral.
type FormatError struct {
	// Input is the offending input after uppercasing.
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotCanonical, e.Input)
}

// Is reports whether target is ErrNotCanonical.
func (e *FormatError) Is(target error) bool {
	return target == ErrNotCanonical
}
