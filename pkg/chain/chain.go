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

// Package chain provides a representation of "relational chains", such as
// 3 ≤ 4 < 7 = 7 < 8, along with the three logical statements such a chain
// denotes.  A chain takes exactly one of three shapes: an equality chain,
// where every link is an equality; an ascending chain, where links are < or ≤
// (possibly interleaved with equality links); or a descending chain, the
// mirror with > and ≥.  There is intentionally no way to build a chain mixing
// ascending and descending links, since such a chain denotes no single
// relation between its end points.
//
// Chains are immutable.  Extending a chain produces a new chain value sharing
// the structure of the old one.  All operations are total over the chains
// which can actually be constructed, as every chain has at least one link.
package chain

import "github.com/consensys/go-chain/pkg/logic"

// Chain is implemented by the three chain shapes over a common term type.
type Chain[T any] interface {
	// Head returns the first term of this chain.
	Head() T
	// Tail returns the last term of this chain.
	Tail() T
	// Terms returns every term of this chain, in order.  A chain with n links
	// has n+1 terms.
	Terms() []T
	// Len returns the number of links in this chain (always at least one).
	Len() uint
	// Shape returns a human-readable name for the shape of this chain.
	Shape() string
	// GlobalStatement returns the single relational fact this chain implies
	// between its head and tail, with correct strictness.
	GlobalStatement() logic.Proposition[T]
	// WeakGlobalStatement returns the global statement, except always using
	// the non-strict relation.
	WeakGlobalStatement() logic.Proposition[T]
	// TotalStatement returns the conjunction of one relational fact per link,
	// in the order links were added.
	TotalStatement() logic.Proposition[T]
	// String returns a rendering of this chain, using a given mapping to
	// render individual terms.
	String(mapping func(T) string) string
}
