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

// MatchLength returns copies of two sequences forced to have the same
// length.  If the operands are of unequal length, the shorter is padded with
// zero trits on the left to match the longer; since the target length is
// always widening, this never truncates and never changes either represented
// integer.
func MatchLength(a Trits, b Trits) (Trits, Trits) {
	switch {
	case a.Len() < b.Len():
		a, _ = a.WithLength(int(b.Len()))
	case b.Len() < a.Len():
		b, _ = b.WithLength(int(a.Len()))
	}
	//
	return a, b
}

// Negate returns the negation of this sequence, in which every trit is
// negated.  The result represents the arithmetic negation of this
// sequence's integer.
func (p Trits) Negate() Trits {
	digits := make([]Trit, len(p.digits))
	//
	for i, t := range p.digits {
		digits[i] = t.Negate()
	}
	//
	return NewTrits(digits...)
}

// Invert returns the inverse of this sequence.  In balanced ternary this is
// identical to negation, rather than being a separate complement.
func (p Trits) Invert() Trits {
	return p.Negate()
}

// Abs returns the numeric absolute value of this sequence.  This operates on
// the sign of the sequence as a whole, not on each trit individually: the
// first nonzero trit determines the sign, and a negative sequence yields its
// negation whilst any other yields itself.  For example, both "+-" (2) and
// "-+" (-2) yield "+-".
func (p Trits) Abs() Trits {
	for _, t := range p.digits {
		switch t {
		case Negative:
			return p.Negate()
		case Positive:
			return p
		}
	}
	//
	return p
}

// And returns the tritwise AND of two sequences, after length matching.
func (p Trits) And(other Trits) Trits {
	return zip(p, other, Trit.And)
}

// Or returns the tritwise OR of two sequences, after length matching.
func (p Trits) Or(other Trits) Trits {
	return zip(p, other, Trit.Or)
}

// Xor returns the tritwise XOR of two sequences, after length matching.
func (p Trits) Xor(other Trits) Trits {
	return zip(p, other, Trit.Xor)
}

// Add returns the sum of two sequences, after length matching, by
// propagating carries from the least significant position upwards.  At each
// position the two digits are added first, then the incoming carry is folded
// into the result; the two partial carries can never both be nonzero without
// cancelling, so the outgoing carry is simply their sum.  A nonzero carry
// out of the most significant position extends the result by one trit;
// otherwise the result has the matched operand length.
func (p Trits) Add(other Trits) Trits {
	a, b := MatchLength(p, other)
	//
	var (
		n      = len(a.digits)
		digits = make([]Trit, n)
		carry  = Zero
	)
	//
	for i := n - 1; i >= 0; i-- {
		sum, c1 := a.digits[i].Add(b.digits[i])
		res, c2 := sum.Add(carry)
		//
		digits[i] = res
		carry, _ = c1.Add(c2)
	}
	//
	if carry != Zero {
		digits = append([]Trit{carry}, digits...)
	}
	//
	return NewTrits(digits...)
}

// Concat returns the concatenation of this sequence with another, appended
// at the right (least significant) end.  This is structural concatenation,
// not numeric addition: the decoded integer of the result is derived afresh
// from the combined digits.
func (p Trits) Concat(other Trits) Trits {
	digits := make([]Trit, 0, len(p.digits)+len(other.digits))
	digits = append(digits, p.digits...)
	digits = append(digits, other.digits...)
	//
	return NewTrits(digits...)
}

// Append returns this sequence extended with zero or more trits at the right
// (least significant) end.
func (p Trits) Append(trits ...Trit) Trits {
	digits := make([]Trit, 0, len(p.digits)+len(trits))
	digits = append(digits, p.digits...)
	digits = append(digits, trits...)
	//
	return NewTrits(digits...)
}

// Repeat returns this sequence's digits tiled n times.  This is structural
// repetition, not numeric scaling.
func (p Trits) Repeat(n uint) Trits {
	digits := make([]Trit, 0, n*uint(len(p.digits)))
	//
	for i := uint(0); i < n; i++ {
		digits = append(digits, p.digits...)
	}
	//
	return NewTrits(digits...)
}

// Cmp compares two sequences, after length matching, position by position
// from the most significant end.  This returns -1 or 1 at the first
// differing position according to the trit ordering, or 0 if all positions
// match.  Since padding preserves value, this ordering coincides with
// comparison of the represented integers.
func (p Trits) Cmp(other Trits) int {
	a, b := MatchLength(p, other)
	//
	for i := range a.digits {
		if c := a.digits[i].Cmp(b.digits[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

// zip applies a trit-level binary operation position-wise across two
// sequences, after length matching.
func zip(a Trits, b Trits, fn func(Trit, Trit) Trit) Trits {
	a, b = MatchLength(a, b)
	//
	digits := make([]Trit, len(a.digits))
	//
	for i := range digits {
		digits[i] = fn(a.digits[i], b.digits[i])
	}
	//
	return NewTrits(digits...)
}
