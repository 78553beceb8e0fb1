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
package math

import "math/big"

// TernaryOrder returns the number of balanced ternary digits required to
// represent a given (nonzero) integer.  That is the smallest k such that
// 3^k >= 2*|val|, determined by exact integer comparison rather than
// floating point logarithms.  This will panic if val is zero, since zero has
// no well-defined order.
func TernaryOrder(val *big.Int) uint {
	if val.Sign() == 0 {
		panic("zero has no ternary order")
	}
	//
	var (
		bound = new(big.Int).Abs(val)
		pow   = big.NewInt(1)
		order = uint(0)
	)
	// bound = 2*|val|
	bound.Lsh(bound, 1)
	//
	for pow.Cmp(bound) < 0 {
		pow.Mul(pow, big.NewInt(3))
		order++
	}

	return order
}
