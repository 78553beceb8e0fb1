// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package btern

import (
	"strings"
)

// inputs is the fixed table of accepted spellings for each trit.  Alongside
// the canonical glyphs, each polarity admits a small number of alternates:
// signed units, mnemonic letters for zero, and pictographic symbols for the
// negative and positive trits.
var inputs = map[string]Trit{
	"-":  Negative,
	"-1": Negative,
	"✗":  Negative,
	"0":  Zero,
	"":   Zero,
	"=":  Zero,
	"N":  Zero,
	"n":  Zero,
	"Z":  Zero,
	"z":  Zero,
	"+":  Positive,
	"1":  Positive,
	"✓":  Positive,
}

// ParseTrit returns the trit corresponding to a given piece of text.  The
// text is trimmed of surrounding whitespace and looked up in the fixed table
// of accepted spellings; anything unrecognised yields an InvalidSymbolError
// carrying the original input.
func ParseTrit(text string) (Trit, error) {
	if trit, ok := inputs[strings.TrimSpace(text)]; ok {
		return trit, nil
	}
	//
	return Zero, &InvalidSymbolError{text}
}

// TritFromInt returns the trit corresponding to the sign of a given integer,
// with 0 mapping exactly to the zero trit.
func TritFromInt(value int64) Trit {
	switch {
	case value < 0:
		return Negative
	case value > 0:
		return Positive
	default:
		return Zero
	}
}

// TritFromFloat returns the trit corresponding to the sign of a given
// floating point value, with 0 mapping exactly to the zero trit.
func TritFromFloat(value float64) Trit {
	switch {
	case value < 0:
		return Negative
	case value > 0:
		return Positive
	default:
		return Zero
	}
}
