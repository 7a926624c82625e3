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
package order

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Fr is the field reference instance of the ordering contract, ordering
// BLS12-377 scalar field elements by their canonical representative (i.e. the
// unique representative in 0 .. modulus-1).  Observe this is a total order on
// field elements, not an order compatible with field arithmetic.
type Fr struct{}

// Equals holds when two field elements are equal.
func (p Fr) Equals(lhs fr.Element, rhs fr.Element) bool {
	return lhs.Cmp(&rhs) == 0
}

// LessThan holds when the canonical representative of lhs is strictly below
// that of rhs.
func (p Fr) LessThan(lhs fr.Element, rhs fr.Element) bool {
	return lhs.Cmp(&rhs) < 0
}

// LessThanEquals holds when the canonical representative of lhs is below, or
// equal to, that of rhs.
func (p Fr) LessThanEquals(lhs fr.Element, rhs fr.Element) bool {
	return lhs.Cmp(&rhs) <= 0
}

// GreaterThan holds when the canonical representative of lhs is strictly
// above that of rhs.
func (p Fr) GreaterThan(lhs fr.Element, rhs fr.Element) bool {
	return lhs.Cmp(&rhs) > 0
}

// GreaterThanEquals holds when the canonical representative of lhs is above,
// or equal to, that of rhs.
func (p Fr) GreaterThanEquals(lhs fr.Element, rhs fr.Element) bool {
	return lhs.Cmp(&rhs) >= 0
}
