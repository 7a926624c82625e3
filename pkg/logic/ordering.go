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

// Ordering supplies the concrete predicate denoted by each relation symbol
// over a given term type.  Instances are expected to satisfy the usual laws:
// the non-strict predicates are reflexive and transitive; the strict
// predicates are irreflexive, transitive, and imply their non-strict
// counterparts; and a strict predicate composed with a non-strict one (in
// either order) remains strict.  The soundness of reducing a chain of
// relations to a single relation rests entirely on these laws.
type Ordering[T any] interface {
	// Equals holds when two terms denote the same value.
	Equals(T, T) bool
	// LessThan holds when the first term is strictly below the second.
	LessThan(T, T) bool
	// LessThanEquals holds when the first term is below, or equal to, the
	// second.
	LessThanEquals(T, T) bool
	// GreaterThan holds when the first term is strictly above the second.
	GreaterThan(T, T) bool
	// GreaterThanEquals holds when the first term is above, or equal to, the
	// second.
	GreaterThanEquals(T, T) bool
}

// Holds applies the predicate a given ordering assigns to a given relation
// symbol.
func Holds[T any](ord Ordering[T], rel Relation, lhs T, rhs T) bool {
	switch rel {
	case EQUALS:
		return ord.Equals(lhs, rhs)
	case LESSTHAN:
		return ord.LessThan(lhs, rhs)
	case LESSTHAN_EQUALS:
		return ord.LessThanEquals(lhs, rhs)
	case GREATERTHAN:
		return ord.GreaterThan(lhs, rhs)
	case GREATERTHAN_EQUALS:
		return ord.GreaterThanEquals(lhs, rhs)
	}
	//
	panic("unreachable")
}
