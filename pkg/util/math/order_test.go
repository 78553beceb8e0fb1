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

import (
	"math/big"
	"testing"
)

func Test_TernaryOrder_Units(t *testing.T) {
	checkOrder(t, 1, 1)
	checkOrder(t, -1, 1)
}

func Test_TernaryOrder_Boundaries(t *testing.T) {
	// One trit covers [-1,1], two cover [-4,4], three cover [-13,13], etc.
	checkOrder(t, 2, 2)
	checkOrder(t, 4, 2)
	checkOrder(t, 5, 3)
	checkOrder(t, 13, 3)
	checkOrder(t, 14, 4)
	checkOrder(t, 40, 4)
	checkOrder(t, 41, 5)
	checkOrder(t, -41, 5)
}

func Test_TernaryOrder_Exhaustive(t *testing.T) {
	// The order of n is the smallest k with 3^k >= 2*|n|.
	for n := int64(1); n <= 2000; n++ {
		var (
			bound    = big.NewInt(2 * n)
			expected = uint(0)
		)
		//
		for Pow3(expected).Cmp(bound) < 0 {
			expected++
		}
		//
		checkOrder(t, n, expected)
		checkOrder(t, -n, expected)
	}
}

func Test_TernaryOrder_Zero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for zero")
		}
	}()
	//
	TernaryOrder(big.NewInt(0))
}

func checkOrder(t *testing.T, val int64, expected uint) {
	if x := TernaryOrder(big.NewInt(val)); x != expected {
		t.Errorf("order(%d) == %d, expected %d", val, x, expected)
	}
}
