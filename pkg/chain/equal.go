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

// EqualChain represents a non-empty sequence of terms all related by
// equality, such as 3 = 1+2 = 3.  The minimum equality chain has two terms
// (one link).
type EqualChain[T any] struct {
	// prev is nil exactly when this is the base link.
	prev *EqualChain[T]
	// lhs is the first term; meaningful only for the base link.
	lhs T
	// rhs is the most recently added term.
	rhs T
}

// NewEqual constructs the base equality chain t0 = t1.
func NewEqual[T any](t0 T, t1 T) *EqualChain[T] {
	return &EqualChain[T]{lhs: t0, rhs: t1}
}

// Equals extends this chain with one further equality-linked term.
func (p *EqualChain[T]) Equals(term T) *EqualChain[T] {
	return &EqualChain[T]{prev: p, rhs: term}
}

// Ascending lifts this equality chain into an ascending chain by appending
// one ascending link.
func (p *EqualChain[T]) Ascending(tag AscendingTag, term T) *AscendingChain[T] {
	return &AscendingChain[T]{kind: ascFromEqual, tag: tag, eq: p, rhs: term}
}

// Descending lifts this equality chain into a descending chain by appending
// one descending link.
func (p *EqualChain[T]) Descending(tag DescendingTag, term T) *DescendingChain[T] {
	return &DescendingChain[T]{kind: descFromEqual, tag: tag, eq: p, rhs: term}
}

// Head returns the first term of this chain.
func (p *EqualChain[T]) Head() T {
	if p.prev == nil {
		return p.lhs
	}
	//
	return p.prev.Head()
}

// Tail returns the last term of this chain.
func (p *EqualChain[T]) Tail() T {
	return p.rhs
}

// Terms returns every term of this chain, in order.
func (p *EqualChain[T]) Terms() []T {
	if p.prev == nil {
		return []T{p.lhs, p.rhs}
	}
	//
	return append(p.prev.Terms(), p.rhs)
}

// Len returns the number of links in this chain.
func (p *EqualChain[T]) Len() uint {
	if p.prev == nil {
		return 1
	}
	//
	return p.prev.Len() + 1
}

// Shape returns a human-readable name for the shape of this chain.
func (p *EqualChain[T]) Shape() string {
	return "equality"
}

// GlobalStatement returns head = tail.
func (p *EqualChain[T]) GlobalStatement() logic.Proposition[T] {
	return logic.NewProposition(logic.NewAtom(logic.EQUALS, p.Head(), p.Tail()))
}

// WeakGlobalStatement returns head = tail.  Equality has no strict form, so
// this coincides with the global statement.
func (p *EqualChain[T]) WeakGlobalStatement() logic.Proposition[T] {
	return p.GlobalStatement()
}

// TotalStatement returns the conjunction of one equality per link, in the
// order links were added.
func (p *EqualChain[T]) TotalStatement() logic.Proposition[T] {
	if p.prev == nil {
		return logic.NewProposition(logic.NewAtom(logic.EQUALS, p.lhs, p.rhs))
	}
	//
	fact := logic.NewAtom(logic.EQUALS, p.prev.Tail(), p.rhs)
	//
	return p.prev.TotalStatement().And(logic.NewProposition(fact))
}

func (p *EqualChain[T]) String(mapping func(T) string) string {
	if p.prev == nil {
		return mapping(p.lhs) + " = " + mapping(p.rhs)
	}
	//
	return p.prev.String(mapping) + " = " + mapping(p.rhs)
}
