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

// Package order supplies reference instances of the ordering contract
// (logic.Ordering), covering arbitrary-precision integers and scalar field
// elements, along with value embeddings between them.
package order

import "math/big"

// BigInt is the integer reference instance of the ordering contract, ordering
// arbitrary-precision integers in the usual way.
type BigInt struct{}

// Equals holds when two integers are equal.
func (p BigInt) Equals(lhs *big.Int, rhs *big.Int) bool {
	return lhs.Cmp(rhs) == 0
}

// LessThan holds when lhs < rhs.
func (p BigInt) LessThan(lhs *big.Int, rhs *big.Int) bool {
	return lhs.Cmp(rhs) < 0
}

// LessThanEquals holds when lhs ≤ rhs.
func (p BigInt) LessThanEquals(lhs *big.Int, rhs *big.Int) bool {
	return lhs.Cmp(rhs) <= 0
}

// GreaterThan holds when lhs > rhs.
func (p BigInt) GreaterThan(lhs *big.Int, rhs *big.Int) bool {
	return lhs.Cmp(rhs) > 0
}

// GreaterThanEquals holds when lhs ≥ rhs.
func (p BigInt) GreaterThanEquals(lhs *big.Int, rhs *big.Int) bool {
	return lhs.Cmp(rhs) >= 0
}
