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
package chain

import "github.com/consensys/go-chain/pkg/logic"

// AscendingTag distinguishes the strict ascending relation (<) from its
// non-strict counterpart (≤).  Ascending and descending tags are deliberately
// distinct types: a tag of one family can never be supplied where the other is
// expected, which is what rules out chains mixing the two families.
type AscendingTag uint8

// LESSTHAN denotes the strict ascending relation <.
const LESSTHAN AscendingTag = 0

// LESSTHAN_EQUALS denotes the non-strict ascending relation ≤.
const LESSTHAN_EQUALS AscendingTag = 1

// IsStrict determines whether or not this tag denotes the strict relation.
func (p AscendingTag) IsStrict() bool {
	return p == LESSTHAN
}

// Join folds this tag with that of a subsequent link.  Strictness is
// absorbing: a ≤ b < c implies a < c, whilst a ≤ b ≤ c implies only a ≤ c.
func (p AscendingTag) Join(other AscendingTag) AscendingTag {
	if p.IsStrict() || other.IsStrict() {
		return LESSTHAN
	}
	//
	return LESSTHAN_EQUALS
}

// Relation returns the relation symbol this tag denotes.
func (p AscendingTag) Relation() logic.Relation {
	if p.IsStrict() {
		return logic.LESSTHAN
	}
	//
	return logic.LESSTHAN_EQUALS
}

func (p AscendingTag) String() string {
	return p.Relation().String()
}

// DescendingTag distinguishes the strict descending relation (>) from its
// non-strict counterpart (≥).
type DescendingTag uint8

// GREATERTHAN denotes the strict descending relation >.
const GREATERTHAN DescendingTag = 0

// GREATERTHAN_EQUALS denotes the non-strict descending relation ≥.
const GREATERTHAN_EQUALS DescendingTag = 1

// IsStrict determines whether or not this tag denotes the strict relation.
func (p DescendingTag) IsStrict() bool {
	return p == GREATERTHAN
}

// Join folds this tag with that of a subsequent link, exactly as for
// ascending tags: strictness is absorbing.
func (p DescendingTag) Join(other DescendingTag) DescendingTag {
	if p.IsStrict() || other.IsStrict() {
		return GREATERTHAN
	}
	//
	return GREATERTHAN_EQUALS
}

// Relation returns the relation symbol this tag denotes.
func (p DescendingTag) Relation() logic.Relation {
	if p.IsStrict() {
		return logic.GREATERTHAN
	}
	//
	return logic.GREATERTHAN_EQUALS
}

func (p DescendingTag) String() string {
	return p.Relation().String()
}
