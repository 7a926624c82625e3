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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Uint64ToBigInt embeds machine naturals into arbitrary-precision integers.
// This embedding is order preserving.
func Uint64ToBigInt(val uint64) *big.Int {
	return new(big.Int).SetUint64(val)
}

// Uint64ToFr embeds machine naturals into the scalar field.  This embedding
// is order preserving with respect to the canonical order on Fr, since every
// uint64 lies below the modulus.
func Uint64ToFr(val uint64) fr.Element {
	return fr.NewElement(val)
}

// BigIntToFr embeds integers into the scalar field.  The embedding is order
// preserving only for non-negative integers below the modulus; outside that
// range values wrap, and chains mapped through this embedding no longer
// denote true statements.  Guarding against that is the caller's obligation.
func BigIntToFr(val *big.Int) fr.Element {
	var elem fr.Element
	//
	elem.SetBigInt(val)
	//
	return elem
}
