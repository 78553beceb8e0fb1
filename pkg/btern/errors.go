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

import "fmt"

// InvalidSymbolError signals that a given input matched none of the accepted
// trit spellings.  The offending input is retained for diagnostics.
type InvalidSymbolError struct {
	// Input is the original text which failed to parse.
	Input string
}

// Error implementation for the error interface.
func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("failed to parse %q as a trit", e.Input)
}

// InvalidLengthError signals that a negative length was requested for a trit
// sequence.
type InvalidLengthError struct {
	// Length is the requested (negative) length.
	Length int
}

// Error implementation for the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length argument '%d'", e.Length)
}
