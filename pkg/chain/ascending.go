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

// ascKind discriminates the four constructions of an ascending chain.
type ascKind uint8

const (
	// base case, t0 < t1 or t0 ≤ t1.
	ascBase ascKind = iota
	// an equality chain lifted by one ascending link.
	ascFromEqual
	// an ascending chain extended by one equality link.
	ascEqualLink
	// an ascending chain extended by one ascending link.
	ascLink
)

// AscendingChain represents a chain whose links are ascending relations
// (< or ≤), possibly interleaved with equality links, and possibly headed by
// an equality chain.  For example, 3 ≤ 4 < 7 = 7 < 8.  The construction
// history is retained so that the full sequence of ascending tags remains
// recoverable, which the relation-flow fold and the total statement both
// require.
type AscendingChain[T any] struct {
	kind ascKind
	// tag on the newest link; meaningful except for ascEqualLink.
	tag AscendingTag
	// eq is the equality chain this chain was lifted from (ascFromEqual only).
	eq *EqualChain[T]
	// prev is the chain being extended (ascEqualLink and ascLink only).
	prev *AscendingChain[T]
	// lhs is the first term; meaningful only for ascBase.
	lhs T
	// rhs is the most recently added term.
	rhs T
}

// NewAscending constructs the base ascending chain relating two terms by a
// given tag.
func NewAscending[T any](t0 T, tag AscendingTag, t1 T) *AscendingChain[T] {
	return &AscendingChain[T]{kind: ascBase, tag: tag, lhs: t0, rhs: t1}
}

// Equals extends this chain with one equality-linked term.  An equality link
// neither weakens nor strengthens the accumulated relation, hence no tag is
// recorded.
func (p *AscendingChain[T]) Equals(term T) *AscendingChain[T] {
	return &AscendingChain[T]{kind: ascEqualLink, prev: p, rhs: term}
}

// Ascending extends this chain with one further ascending link.
func (p *AscendingChain[T]) Ascending(tag AscendingTag, term T) *AscendingChain[T] {
	return &AscendingChain[T]{kind: ascLink, tag: tag, prev: p, rhs: term}
}

// Head returns the first term of this chain.
func (p *AscendingChain[T]) Head() T {
	switch p.kind {
	case ascBase:
		return p.lhs
	case ascFromEqual:
		return p.eq.Head()
	default:
		return p.prev.Head()
	}
}

// Tail returns the last term of this chain.
func (p *AscendingChain[T]) Tail() T {
	return p.rhs
}

// Terms returns every term of this chain, in order.
func (p *AscendingChain[T]) Terms() []T {
	switch p.kind {
	case ascBase:
		return []T{p.lhs, p.rhs}
	case ascFromEqual:
		return append(p.eq.Terms(), p.rhs)
	default:
		return append(p.prev.Terms(), p.rhs)
	}
}

// Tags returns the sequence of ascending tags of this chain, in the order
// their links were added.  Equality links contribute no tag.
func (p *AscendingChain[T]) Tags() []AscendingTag {
	switch p.kind {
	case ascBase, ascFromEqual:
		return []AscendingTag{p.tag}
	case ascEqualLink:
		return p.prev.Tags()
	default:
		return append(p.prev.Tags(), p.tag)
	}
}

// Len returns the number of links in this chain.
func (p *AscendingChain[T]) Len() uint {
	switch p.kind {
	case ascBase:
		return 1
	case ascFromEqual:
		return p.eq.Len() + 1
	default:
		return p.prev.Len() + 1
	}
}

// Shape returns a human-readable name for the shape of this chain.
func (p *AscendingChain[T]) Shape() string {
	return "ascending"
}

// Flow folds the sequence of ascending tags of this chain into the single tag
// relating its head and tail.  Strictness is absorbing: one strict link makes
// the whole chain strict.  Equality links are transparent.
func (p *AscendingChain[T]) Flow() AscendingTag {
	switch p.kind {
	case ascBase, ascFromEqual:
		return p.tag
	case ascEqualLink:
		return p.prev.Flow()
	default:
		return p.prev.Flow().Join(p.tag)
	}
}

// GlobalStatement returns the relation between head and tail implied by the
// whole chain, i.e. head < tail or head ≤ tail according to Flow.
func (p *AscendingChain[T]) GlobalStatement() logic.Proposition[T] {
	return logic.NewProposition(logic.NewAtom(p.Flow().Relation(), p.Head(), p.Tail()))
}

// WeakGlobalStatement returns head ≤ tail, regardless of Flow.
func (p *AscendingChain[T]) WeakGlobalStatement() logic.Proposition[T] {
	return logic.NewProposition(logic.NewAtom(logic.LESSTHAN_EQUALS, p.Head(), p.Tail()))
}

// TotalStatement returns the conjunction of one relational fact per link, in
// the order links were added.
func (p *AscendingChain[T]) TotalStatement() logic.Proposition[T] {
	var fact logic.Atom[T]
	//
	switch p.kind {
	case ascBase:
		return logic.NewProposition(logic.NewAtom(p.tag.Relation(), p.lhs, p.rhs))
	case ascFromEqual:
		fact = logic.NewAtom(p.tag.Relation(), p.eq.Tail(), p.rhs)
		return p.eq.TotalStatement().And(logic.NewProposition(fact))
	case ascEqualLink:
		fact = logic.NewAtom(logic.EQUALS, p.prev.Tail(), p.rhs)
	default:
		fact = logic.NewAtom(p.tag.Relation(), p.prev.Tail(), p.rhs)
	}
	//
	return p.prev.TotalStatement().And(logic.NewProposition(fact))
}

func (p *AscendingChain[T]) String(mapping func(T) string) string {
	switch p.kind {
	case ascBase:
		return mapping(p.lhs) + " " + p.tag.String() + " " + mapping(p.rhs)
	case ascFromEqual:
		return p.eq.String(mapping) + " " + p.tag.String() + " " + mapping(p.rhs)
	case ascEqualLink:
		return p.prev.String(mapping) + " = " + mapping(p.rhs)
	default:
		return p.prev.String(mapping) + " " + p.tag.String() + " " + mapping(p.rhs)
	}
}
