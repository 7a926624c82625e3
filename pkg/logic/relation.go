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
package logic

// Relation identifies the binary relation symbol carried by an atom.
type Relation uint8

// EQUALS signals an equality x = y.
const EQUALS Relation = 0

// LESSTHAN signals a (strict) inequality x < y.
const LESSTHAN Relation = 1

// LESSTHAN_EQUALS signals a (non-strict) inequality x ≤ y.
const LESSTHAN_EQUALS Relation = 2

// GREATERTHAN signals a (strict) inequality x > y.
const GREATERTHAN Relation = 3

// GREATERTHAN_EQUALS signals a (non-strict) inequality x ≥ y.
const GREATERTHAN_EQUALS Relation = 4

// IsStrict determines whether or not this relation is strict.  Equality is not
// strict.
func (p Relation) IsStrict() bool {
	return p == LESSTHAN || p == GREATERTHAN
}

// Weaken returns the non-strict counterpart of this relation.  Non-strict
// relations (including equality) are returned unchanged.
func (p Relation) Weaken() Relation {
	switch p {
	case LESSTHAN:
		return LESSTHAN_EQUALS
	case GREATERTHAN:
		return GREATERTHAN_EQUALS
	default:
		return p
	}
}

func (p Relation) String() string {
	switch p {
	case EQUALS:
		return "="
	case LESSTHAN:
		return "<"
	case LESSTHAN_EQUALS:
		return "≤"
	case GREATERTHAN:
		return ">"
	case GREATERTHAN_EQUALS:
		return "≥"
	}
	//
	panic("unreachable")
}
