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

// descKind discriminates the four constructions of a descending chain.
type descKind uint8

const (
	descBase descKind = iota
	descFromEqual
	descEqualLink
	descLink
)

// DescendingChain is the mirror of AscendingChain for the descending
// relations (> and ≥), e.g. 8 > 7 = 7 ≥ 4.
type DescendingChain[T any] struct {
	kind descKind
	// tag on the newest link; meaningful except for descEqualLink.
	tag DescendingTag
	// eq is the equality chain this chain was lifted from (descFromEqual only).
	eq *EqualChain[T]
	// prev is the chain being extended (descEqualLink and descLink only).
	prev *DescendingChain[T]
	// lhs is the first term; meaningful only for descBase.
	lhs T
	// rhs is the most recently added term.
	rhs T
}

// NewDescending constructs the base descending chain relating two terms by a
// given tag.
func NewDescending[T any](t0 T, tag DescendingTag, t1 T) *DescendingChain[T] {
	return &DescendingChain[T]{kind: descBase, tag: tag, lhs: t0, rhs: t1}
}

// Equals extends this chain with one equality-linked term.
func (p *DescendingChain[T]) Equals(term T) *DescendingChain[T] {
	return &DescendingChain[T]{kind: descEqualLink, prev: p, rhs: term}
}

// Descending extends this chain with one further descending link.
func (p *DescendingChain[T]) Descending(tag DescendingTag, term T) *DescendingChain[T] {
	return &DescendingChain[T]{kind: descLink, tag: tag, prev: p, rhs: term}
}

// Head returns the first term of this chain.
func (p *DescendingChain[T]) Head() T {
	switch p.kind {
	case descBase:
		return p.lhs
	case descFromEqual:
		return p.eq.Head()
	default:
		return p.prev.Head()
	}
}

// Tail returns the last term of this chain.
func (p *DescendingChain[T]) Tail() T {
	return p.rhs
}

// Terms returns every term of this chain, in order.
func (p *DescendingChain[T]) Terms() []T {
	switch p.kind {
	case descBase:
		return []T{p.lhs, p.rhs}
	case descFromEqual:
		return append(p.eq.Terms(), p.rhs)
	default:
		return append(p.prev.Terms(), p.rhs)
	}
}

// Tags returns the sequence of descending tags of this chain, in the order
// their links were added.  Equality links contribute no tag.
func (p *DescendingChain[T]) Tags() []DescendingTag {
	switch p.kind {
	case descBase, descFromEqual:
		return []DescendingTag{p.tag}
	case descEqualLink:
		return p.prev.Tags()
	default:
		return append(p.prev.Tags(), p.tag)
	}
}

// Len returns the number of links in this chain.
func (p *DescendingChain[T]) Len() uint {
	switch p.kind {
	case descBase:
		return 1
	case descFromEqual:
		return p.eq.Len() + 1
	default:
		return p.prev.Len() + 1
	}
}

// Shape returns a human-readable name for the shape of this chain.
func (p *DescendingChain[T]) Shape() string {
	return "descending"
}

// Flow folds the sequence of descending tags of this chain into the single
// tag relating its head and tail, with strictness absorbing and equality
// links transparent.
func (p *DescendingChain[T]) Flow() DescendingTag {
	switch p.kind {
	case descBase, descFromEqual:
		return p.tag
	case descEqualLink:
		return p.prev.Flow()
	default:
		return p.prev.Flow().Join(p.tag)
	}
}

// GlobalStatement returns the relation between head and tail implied by the
// whole chain, i.e. head > tail or head ≥ tail according to Flow.
func (p *DescendingChain[T]) GlobalStatement() logic.Proposition[T] {
	return logic.NewProposition(logic.NewAtom(p.Flow().Relation(), p.Head(), p.Tail()))
}

// WeakGlobalStatement returns head ≥ tail, regardless of Flow.
func (p *DescendingChain[T]) WeakGlobalStatement() logic.Proposition[T] {
	return logic.NewProposition(logic.NewAtom(logic.GREATERTHAN_EQUALS, p.Head(), p.Tail()))
}

// TotalStatement returns the conjunction of one relational fact per link, in
// the order links were added.
func (p *DescendingChain[T]) TotalStatement() logic.Proposition[T] {
	var fact logic.Atom[T]
	//
	switch p.kind {
	case descBase:
		return logic.NewProposition(logic.NewAtom(p.tag.Relation(), p.lhs, p.rhs))
	case descFromEqual:
		fact = logic.NewAtom(p.tag.Relation(), p.eq.Tail(), p.rhs)
		return p.eq.TotalStatement().And(logic.NewProposition(fact))
	case descEqualLink:
		fact = logic.NewAtom(logic.EQUALS, p.prev.Tail(), p.rhs)
	default:
		fact = logic.NewAtom(p.tag.Relation(), p.prev.Tail(), p.rhs)
	}
	//
	return p.prev.TotalStatement().And(logic.NewProposition(fact))
}

func (p *DescendingChain[T]) String(mapping func(T) string) string {
	switch p.kind {
	case descBase:
		return mapping(p.lhs) + " " + p.tag.String() + " " + mapping(p.rhs)
	case descFromEqual:
		return p.eq.String(mapping) + " " + p.tag.String() + " " + mapping(p.rhs)
	case descEqualLink:
		return p.prev.String(mapping) + " = " + mapping(p.rhs)
	default:
		return p.prev.String(mapping) + " " + p.tag.String() + " " + mapping(p.rhs)
	}
}
