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
	"github.com/consensys/go-btern/pkg/util/math"
)

// AllTrits returns all three trits in ascending order.
func AllTrits() []Trit {
	return []Trit{Negative, Zero, Positive}
}

// EnumerateTrits returns an enumerator over all 3^n trit sequences of length
// n, in ascending order of their represented integers.  For example, if
// n==1 this enumerates "-", "0", "+".  This is primarily useful for
// exhaustively checking properties over a bounded space of sequences.
func EnumerateTrits(n uint) *TritsEnumerator {
	// Determine size of the space.
	end := math.PowUint64(3, uint64(n))
	//
	return &TritsEnumerator{n, 0, end}
}

// TritsEnumerator enumerates all trit sequences of a fixed length.
type TritsEnumerator struct {
	nitems     uint
	index, end uint64
}

// HasNext checks whether or not there are any sequences remaining to visit.
func (p *TritsEnumerator) HasNext() bool {
	return p.index < p.end
}

// Count returns the number of sequences left in this enumeration.
func (p *TritsEnumerator) Count() uint {
	return uint(p.end - p.index)
}

// Next returns the next sequence, and advances the enumerator.
func (p *TritsEnumerator) Next() Trits {
	var (
		digits = make([]Trit, p.nitems)
		index  = p.index
	)
	// Decompose index into digits, least significant first.  Enumerating
	// indices in unbalanced ternary whilst offsetting each digit by -1
	// yields the sequences in ascending order of represented value.
	for i := len(digits); i > 0; i-- {
		digits[i-1] = Trit(int8(index%3) - 1)
		index = index / 3
	}
	//
	p.index++
	//
	return NewTrits(digits...)
}

// Nth returns the nth sequence remaining in this enumeration, where 0 refers
// to the next sequence, 1 to the one after that, etc.  This will mutate the
// enumerator.
func (p *TritsEnumerator) Nth(n uint) Trits {
	p.index += uint64(n)
	//
	return p.Next()
}
