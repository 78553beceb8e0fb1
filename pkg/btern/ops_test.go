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
	"math/big"
	"testing"
)

func Test_Trits_MatchLength(t *testing.T) {
	a := TritsFromInt64(1)
	b := TritsFromInt64(-5)
	//
	x, y := MatchLength(a, b)
	//
	if x.Len() != 3 || y.Len() != 3 {
		t.Errorf("matched lengths are (%d,%d), expected (3,3)", x.Len(), y.Len())
	}
	// Widening never changes the represented integers.
	if x.BigInt().Cmp(a.BigInt()) != 0 || y.BigInt().Cmp(b.BigInt()) != 0 {
		t.Errorf("length matching changed a value: %q, %q", x, y)
	}
}

func Test_Trits_Logical(t *testing.T) {
	a := mustParse(t, "--0++")
	b := mustParse(t, "+-")
	// Operands are padded to "000+-" before the tritwise operation.
	checkOp(t, a.And(b), "--0+-")
	checkOp(t, a.Or(b), "000++")
	checkOp(t, a.Xor(b), "000-+")
}

func Test_Trits_Logical_Exhaustive(t *testing.T) {
	// Exhaustively check idempotence, commutativity and double negation over
	// all sequences of length two, including mixed widths.
	outer := EnumerateTrits(2)
	//
	for outer.HasNext() {
		a := outer.Next()
		//
		if !a.Negate().Negate().Equals(a) {
			t.Errorf("--%q != %q", a, a)
		}
		//
		if !a.And(a).Equals(a) || !a.Or(a).Equals(a) {
			t.Errorf("%q is not idempotent", a)
		}
		//
		inner := EnumerateTrits(3)
		for inner.HasNext() {
			b := inner.Next()
			//
			if !a.And(b).Equals(b.And(a)) || !a.Or(b).Equals(b.Or(a)) || !a.Xor(b).Equals(b.Xor(a)) {
				t.Errorf("logical operations on (%q,%q) are not commutative", a, b)
			}
		}
	}
}

func Test_Trits_Negate(t *testing.T) {
	for n := int64(-100); n <= 100; n++ {
		var (
			p        = TritsFromInt64(n)
			expected = big.NewInt(-n)
		)
		//
		if v := p.Negate().BigInt(); v.Cmp(expected) != 0 {
			t.Errorf("-(%q) decodes to %s, expected %s", p, v, expected)
		}
		// Invert is identical to negation, not a separate complement.
		if !p.Invert().Equals(p.Negate()) {
			t.Errorf("invert of %q differs from its negation", p)
		}
	}
}

func Test_Trits_Abs(t *testing.T) {
	for n := int64(-100); n <= 100; n++ {
		var (
			p        = TritsFromInt64(n)
			expected = new(big.Int).Abs(big.NewInt(n))
		)
		//
		if v := p.Abs().BigInt(); v.Cmp(expected) != 0 {
			t.Errorf("abs(%q) decodes to %s, expected %s", p, v, expected)
		}
	}
}

func Test_Trits_Abs_WholeSequence(t *testing.T) {
	// Abs operates on the sequence's sign, not trit by trit.
	checkOp(t, mustParse(t, "+-").Abs(), "+-")
	checkOp(t, mustParse(t, "-+").Abs(), "+-")
	checkOp(t, mustParse(t, "0-+").Abs(), "0+-")
	// A sequence of zeros is returned unchanged.
	checkOp(t, mustParse(t, "00").Abs(), "00")
}

func Test_Trits_Add(t *testing.T) {
	for x := int64(-40); x <= 40; x++ {
		for y := int64(-40); y <= 40; y++ {
			var (
				a        = TritsFromInt64(x)
				b        = TritsFromInt64(y)
				expected = big.NewInt(x + y)
			)
			//
			if v := a.Add(b).BigInt(); v.Cmp(expected) != 0 {
				t.Errorf("%q + %q decodes to %s, expected %s", a, b, v, expected)
			}
		}
	}
}

func Test_Trits_Add_Carry(t *testing.T) {
	// A carry out of the most significant position extends the result.
	sum := TritsFromInt64(1).Add(TritsFromInt64(1))
	checkOp(t, sum, "+-")
	// Otherwise the matched operand length is preserved.
	sum = TritsFromInt64(4).Add(TritsFromInt64(-1))
	checkOp(t, sum, "+0")
}

func Test_Trits_Cmp(t *testing.T) {
	// After length matching, sequence comparison is consistent with
	// comparison of the represented integers.
	for x := int64(-40); x <= 40; x++ {
		for y := int64(-40); y <= 40; y++ {
			var (
				a        = TritsFromInt64(x)
				b        = TritsFromInt64(y)
				expected = big.NewInt(x).Cmp(big.NewInt(y))
			)
			//
			if c := a.Cmp(b); c != expected {
				t.Errorf("cmp(%q,%q) == %d, expected %d", a, b, c, expected)
			}
		}
	}
}

func mustParse(t *testing.T, text string) Trits {
	p, err := ParseTrits(text)
	if err != nil {
		t.Fatalf("parsing %q: %v", text, err)
	}
	//
	return p
}

func checkOp(t *testing.T, actual Trits, expected string) {
	if actual.String() != expected {
		t.Errorf("got %q, expected %q", actual, expected)
	}
}
