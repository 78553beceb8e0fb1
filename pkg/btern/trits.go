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
	"hash/fnv"
	"math/big"
	"strings"

	"github.com/consensys/go-btern/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// Trits is an immutable ordered sequence of trits representing a single
// (arbitrary precision) signed integer in balanced ternary positional
// notation, most significant trit first.  Every sequence of trits represents
// the integer given by summing, over all positions, the signed unit value of
// each trit times 3 to the power of that trit's distance from the rightmost
// position.  For example, the sequence "-++" represents:
//
//	i = -1 * (3 ** 2)
//	  +  1 * (3 ** 1)
//	  +  1 * (3 ** 0)
//	  = -9 + 3 + 1
//	  = -5
//
// The length of a sequence is fixed at construction.  Unless otherwise
// noted, binary operations on sequences of unequal length extend the shorter
// operand by adding zero trits on the left to match the length of the
// longer.  The rendered text and decoded integer are derived from the digits
// exactly once, at construction.
//
// The zero value of Trits is the empty sequence, which renders as "" and
// represents zero.
type Trits struct {
	// digits of this sequence, most significant first.
	digits []Trit
	// text is the concatenated glyph rendering of digits.
	text string
	// value is the decoded integer represented by digits.
	value big.Int
}

// NewTrits constructs a trit sequence from zero or more trits, most
// significant first.
func NewTrits(digits ...Trit) Trits {
	var p Trits
	//
	p.digits = make([]Trit, len(digits))
	copy(p.digits, digits)
	p.finalise()
	//
	return p
}

// ParseTrits constructs a trit sequence from a piece of text, parsing one
// trit per rune.  Any rune which is not an accepted single-character
// spelling yields an InvalidSymbolError.
func ParseTrits(text string) (Trits, error) {
	var digits []Trit
	//
	for _, r := range text {
		trit, err := ParseTrit(string(r))
		if err != nil {
			return Trits{}, err
		}
		//
		digits = append(digits, trit)
	}
	//
	return NewTrits(digits...), nil
}

// TritsFromSymbols constructs a trit sequence from a slice of spellings, one
// trit per element.  Unlike ParseTrits this admits the multi-character
// spellings (e.g. "-1") and the empty string.  The first unparsable element
// propagates its error.
func TritsFromSymbols(symbols []string) (Trits, error) {
	digits := make([]Trit, len(symbols))
	//
	for i, s := range symbols {
		trit, err := ParseTrit(s)
		if err != nil {
			return Trits{}, err
		}
		//
		digits[i] = trit
	}
	//
	return NewTrits(digits...), nil
}

// TritsFromInt64 constructs the canonical (minimal length) trit sequence
// representing a given integer.
func TritsFromInt64(value int64) Trits {
	return TritsFromBigInt(big.NewInt(value))
}

// TritsFromBigInt constructs the canonical trit sequence representing a
// given (arbitrary precision) integer.  Zero is represented by a single zero
// trit; any other integer is decomposed greedily from the most significant
// position, yielding the minimal length representation (i.e. one with no
// superfluous leading zero trits).
func TritsFromBigInt(value *big.Int) Trits {
	if value.Sign() == 0 {
		return NewTrits(Zero)
	}
	//
	var (
		order  = math.TernaryOrder(value)
		rem    = new(big.Int).Set(value)
		digits = make([]Trit, order)
	)
	//
	for i := range digits {
		var (
			power = order - 1 - uint(i)
			trit  Trit
		)
		//
		switch {
		case rem.Sign() == 0 || math.TernaryOrder(rem) <= power:
			trit = Zero
		case rem.Sign() < 0:
			trit = Negative
		default:
			trit = Positive
		}
		//
		digits[i] = trit
		// rem -= trit * 3^power
		switch trit {
		case Negative:
			rem.Add(rem, math.Pow3(power))
		case Positive:
			rem.Sub(rem, math.Pow3(power))
		}
	}
	//
	return NewTrits(digits...)
}

// WithLength returns a copy of this sequence forced to have exactly n trits,
// either by padding with zero trits or by removing trits on the left as
// required.  Padding never changes the represented integer, since leading
// zero trits contribute nothing positionally.  Truncation keeps only the
// rightmost (least significant) n trits and so can change the represented
// integer; this is intentional lossy behaviour.  A negative length yields an
// InvalidLengthError.
func (p Trits) WithLength(n int) (Trits, error) {
	switch {
	case n < 0:
		return Trits{}, &InvalidLengthError{n}
	case len(p.digits) < n:
		digits := make([]Trit, n)
		copy(digits[n-len(p.digits):], p.digits)
		//
		return NewTrits(digits...), nil
	case len(p.digits) > n:
		log.Debugf("truncating trit sequence %s to %d trits", p.text, n)
		//
		return NewTrits(p.digits[len(p.digits)-n:]...), nil
	default:
		return p, nil
	}
}

// Len returns the number of trits in this sequence.
func (p Trits) Len() uint {
	return uint(len(p.digits))
}

// Get returns the trit at a given position, where position 0 is the most
// significant.
func (p Trits) Get(index uint) Trit {
	return p.digits[index]
}

// Slice returns the subsequence covering positions [lo .. hi), as a new
// sequence whose rendering and decoded integer are derived afresh from the
// selected trits.
func (p Trits) Slice(lo uint, hi uint) Trits {
	return NewTrits(p.digits[lo:hi]...)
}

// Digits returns a copy of the trits making up this sequence, most
// significant first.
func (p Trits) Digits() []Trit {
	digits := make([]Trit, len(p.digits))
	copy(digits, p.digits)
	//
	return digits
}

// String returns the rendering of this sequence: the concatenation of its
// digits' glyphs, most significant first, with no separators and no sign
// character.
func (p Trits) String() string {
	return p.text
}

// BigInt returns (a copy of) the integer represented by this sequence.
func (p Trits) BigInt() *big.Int {
	return new(big.Int).Set(&p.value)
}

// Int64 returns the integer represented by this sequence, along with a flag
// indicating whether it fits within an int64 (or not).
func (p Trits) Int64() (int64, bool) {
	return p.value.Int64(), p.value.IsInt64()
}

// Text returns the integer represented by this sequence formatted in the
// given base (e.g. 8 or 16).
func (p Trits) Text(base int) string {
	return p.value.Text(base)
}

// IsZero checks whether this sequence represents zero (or not).
func (p Trits) IsZero() bool {
	return p.value.Sign() == 0
}

// Contains checks whether a given trit occurs anywhere in this sequence.
func (p Trits) Contains(trit Trit) bool {
	for _, t := range p.digits {
		if t == trit {
			return true
		}
	}
	//
	return false
}

// ContainsString checks whether a given piece of text occurs as a substring
// of this sequence's rendering.
func (p Trits) ContainsString(text string) bool {
	return strings.Contains(p.text, text)
}

// Equals checks whether two sequences represent the same value after length
// matching.  Observe that, as with comparison, sequences differing only in
// leading zero trits are equal.
func (p Trits) Equals(other Trits) bool {
	return p.Cmp(other) == 0
}

// Hash generates a 64-bit hashcode from the rendered text of this sequence.
func (p Trits) Hash() uint64 {
	hash := fnv.New64a()
	// Write cannot fail
	hash.Write([]byte(p.text))
	//
	return hash.Sum64()
}

// finalise derives the rendered text and decoded integer from the digits of
// this sequence.  Zero digits contribute nothing and are skipped.
func (p *Trits) finalise() {
	var builder strings.Builder
	//
	p.value.SetInt64(0)
	pow := big.NewInt(1)
	// Decode from the least significant end, so the running power of three
	// can be maintained by a single multiplication per position.
	for i := len(p.digits); i > 0; i-- {
		switch p.digits[i-1] {
		case Negative:
			p.value.Sub(&p.value, pow)
		case Positive:
			p.value.Add(&p.value, pow)
		}
		//
		pow.Mul(pow, three)
	}
	//
	for _, t := range p.digits {
		builder.WriteString(t.String())
	}
	//
	p.text = builder.String()
}

var three = big.NewInt(3)
