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

import (
	"slices"
	"strings"
)

// Atom represents a single relational fact between two terms, such as "3 < 4"
// or "x = y".  Atoms are symbolic: deciding whether one holds requires an
// ordering instance for the term type.
type Atom[T any] struct {
	// Relation symbol of this atom.
	Relation Relation
	// Left-hand term.
	Left T
	// Right-hand term.
	Right T
}

// NewAtom constructs an atom relating two terms by a given relation symbol.
func NewAtom[T any](rel Relation, left T, right T) Atom[T] {
	return Atom[T]{rel, left, right}
}

// Holds decides this atom under a given ordering instance.
func (p Atom[T]) Holds(ord Ordering[T]) bool {
	return Holds(ord, p.Relation, p.Left, p.Right)
}

func (p Atom[T]) String(mapping func(T) string) string {
	return mapping(p.Left) + " " + p.Relation.String() + " " + mapping(p.Right)
}

// Proposition represents the conjunction of zero or more relational atoms.
// Unlike a normal form, the atoms are kept exactly in the order they were
// conjoined, since for chain statements that order mirrors the order links
// were added.  The empty proposition represents logical truth.
type Proposition[T any] struct {
	atoms []Atom[T]
}

// Truth constructs the empty (vacuously true) proposition.
func Truth[T any]() Proposition[T] {
	return Proposition[T]{nil}
}

// NewProposition constructs a proposition from a single atom.
func NewProposition[T any](atom Atom[T]) Proposition[T] {
	return Proposition[T]{[]Atom[T]{atom}}
}

// Atoms returns the individual atoms which are conjuncted together, in
// conjunction order.
func (p Proposition[T]) Atoms() []Atom[T] {
	return p.atoms
}

// And returns the conjunction of two propositions, with the atoms of this
// proposition preceding those of the other.
func (p Proposition[T]) And(other Proposition[T]) Proposition[T] {
	var atoms []Atom[T]
	//
	atoms = append(atoms, p.atoms...)
	atoms = append(atoms, other.atoms...)
	//
	return Proposition[T]{atoms}
}

// IsTrue checks whether or not this proposition is vacuously true (i.e. has no
// atoms).
func (p Proposition[T]) IsTrue() bool {
	return len(p.atoms) == 0
}

// Eval decides this proposition under a given ordering instance.
func (p Proposition[T]) Eval(ord Ordering[T]) bool {
	for _, atom := range p.atoms {
		if !atom.Holds(ord) {
			return false
		}
	}
	//
	return true
}

// Clone this proposition, ensuring the resulting atom array is disjoint.
func (p Proposition[T]) Clone() Proposition[T] {
	return Proposition[T]{slices.Clone(p.atoms)}
}

func (p Proposition[T]) String(mapping func(T) string) string {
	var builder strings.Builder
	// check for truth
	if p.IsTrue() {
		return "⊤"
	}
	//
	for i, atom := range p.atoms {
		if i != 0 {
			builder.WriteString(" ∧ ")
		}
		//
		builder.WriteString(atom.String(mapping))
	}
	//
	return builder.String()
}
