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

// MapEqual applies a value embedding to every term of an equality chain,
// preserving its structure exactly.
func MapEqual[A, B any](fn func(A) B, c *EqualChain[A]) *EqualChain[B] {
	if c.prev == nil {
		return NewEqual(fn(c.lhs), fn(c.rhs))
	}
	//
	return MapEqual(fn, c.prev).Equals(fn(c.rhs))
}

// MapAscending applies a value embedding to every term of an ascending chain,
// preserving its structure and tag sequence exactly.
func MapAscending[A, B any](fn func(A) B, c *AscendingChain[A]) *AscendingChain[B] {
	switch c.kind {
	case ascBase:
		return NewAscending(fn(c.lhs), c.tag, fn(c.rhs))
	case ascFromEqual:
		return MapEqual(fn, c.eq).Ascending(c.tag, fn(c.rhs))
	case ascEqualLink:
		return MapAscending(fn, c.prev).Equals(fn(c.rhs))
	default:
		return MapAscending(fn, c.prev).Ascending(c.tag, fn(c.rhs))
	}
}

// MapDescending applies a value embedding to every term of a descending
// chain, preserving its structure and tag sequence exactly.
func MapDescending[A, B any](fn func(A) B, c *DescendingChain[A]) *DescendingChain[B] {
	switch c.kind {
	case descBase:
		return NewDescending(fn(c.lhs), c.tag, fn(c.rhs))
	case descFromEqual:
		return MapEqual(fn, c.eq).Descending(c.tag, fn(c.rhs))
	case descEqualLink:
		return MapDescending(fn, c.prev).Equals(fn(c.rhs))
	default:
		return MapDescending(fn, c.prev).Descending(c.tag, fn(c.rhs))
	}
}

// Map applies a value embedding to every term of an arbitrary chain,
// preserving its shape.  Whether the embedding is order preserving (and hence
// whether the mapped chain denotes true statements) is the caller's
// obligation.
func Map[A, B any](fn func(A) B, c Chain[A]) Chain[B] {
	switch c := c.(type) {
	case *EqualChain[A]:
		return MapEqual(fn, c)
	case *AscendingChain[A]:
		return MapAscending(fn, c)
	case *DescendingChain[A]:
		return MapDescending(fn, c)
	}
	//
	panic("unreachable")
}
