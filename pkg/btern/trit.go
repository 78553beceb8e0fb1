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
	"strconv"
)

// Trit is a ternary digit, the basic unit of information in balanced ternary.
// Each trit represents one of three values: -1 (negative, false, low), 0
// (zero, unknown, none) or +1 (positive, true, high).  For logical operations
// we follow the Kleene ternary propositional logic system, where Negative
// represents false, Positive represents true and Zero an indeterminate value
// which is either true or false (analogous to NULL in SQL).
//
// Trit is a closed enumeration over exactly three values; the zero value of
// the type is the zero trit.
type Trit int8

const (
	// Negative is the trit representing -1.
	Negative Trit = -1
	// Zero is the trit representing 0.  This is the zero value of Trit.
	Zero Trit = 0
	// Positive is the trit representing +1.
	Positive Trit = 1
)

// Canonical glyphs used for rendering trits.
const (
	negGlyph  = "-"
	zeroGlyph = "0"
	posGlyph  = "+"
)

// Int returns the signed unit value of this trit (i.e. -1, 0 or +1).
func (t Trit) Int() int {
	return int(t)
}

// IsZero checks whether this is the zero trit (or not).
func (t Trit) IsZero() bool {
	return t == Zero
}

// Bool returns the truth value of this trit in two-valued logic.  Only the
// positive trit is considered true in the boolean sense; the zero and
// negative trits are both false.  Note this is the three-to-two valued
// collapse, not a three-valued logic result.
func (t Trit) Bool() bool {
	return t == Positive
}

// String returns the canonical single-glyph rendering of this trit.
func (t Trit) String() string {
	switch t {
	case Negative:
		return negGlyph
	case Zero:
		return zeroGlyph
	case Positive:
		return posGlyph
	default:
		panic("invalid trit")
	}
}

// Text returns the signed unit value of this trit formatted in the given
// base (e.g. 8 or 16).
func (t Trit) Text(base int) string {
	return strconv.FormatInt(int64(t), base)
}

// Negate returns the negation of this trit.  The zero trit negates itself,
// whilst the positive and negative trits negate each other.
func (t Trit) Negate() Trit {
	return -t
}

// Invert returns the inverse of this trit.  In balanced ternary this is
// identical to negation, rather than being a separate complement.
func (t Trit) Invert() Trit {
	return t.Negate()
}

// Abs returns the absolute value (value without any sign) of this trit.  The
// negative trit yields the positive trit, whilst the positive and zero trits
// yield themselves.
func (t Trit) Abs() Trit {
	if t == Negative {
		return Positive
	}
	//
	return t
}

// And returns the tritwise AND of two trits.  The result is negative if
// either input is negative, positive if both inputs are positive, otherwise
// zero.
func (t Trit) And(other Trit) Trit {
	switch {
	case t == Negative || other == Negative:
		return Negative
	case t == Positive && other == Positive:
		return Positive
	default:
		return Zero
	}
}

// Or returns the tritwise OR of two trits.  The result is positive if either
// input is positive, negative if both inputs are negative, otherwise zero.
func (t Trit) Or(other Trit) Trit {
	switch {
	case t == Positive || other == Positive:
		return Positive
	case t == Negative && other == Negative:
		return Negative
	default:
		return Zero
	}
}

// Xor returns the tritwise XOR (exclusive-OR) of two trits.  The result is
// zero if either input is zero, positive if one input is positive and the
// other negative, and negative otherwise.
func (t Trit) Xor(other Trit) Trit {
	switch {
	case t == Zero || other == Zero:
		return Zero
	case t != other:
		return Positive
	default:
		return Negative
	}
}

// Add two trits, returning the result along with the carry into the next
// position.  If either operand is zero the result is simply the other
// operand; if the operands are equal and nonzero the position wraps around,
// with the carry signalling the overflow; otherwise the operands cancel.
func (t Trit) Add(other Trit) (result Trit, carry Trit) {
	switch {
	case t == Zero:
		return other, Zero
	case other == Zero:
		return t, Zero
	case t == other:
		return t.Negate(), t
	default:
		// Operands are unequal and neither is zero, must be -1 + 1.
		return Zero, Zero
	}
}

// Cmp returns 1 if t > other, 0 if t = other, and -1 if t < other, ordering
// trits by their signed unit values.
func (t Trit) Cmp(other Trit) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	default:
		return 0
	}
}

// Equals checks whether two trits are equal (or not).
func (t Trit) Equals(other Trit) bool {
	return t == other
}

// Hash generates a 64-bit hashcode from this trit.
func (t Trit) Hash() uint64 {
	// FNV1a hash implementation (unrolled)
	return (fnvOffset64 ^ uint64(uint8(t))) * fnvPrime64
}

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)
