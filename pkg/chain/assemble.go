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

import (
	"errors"
	"fmt"

	"github.com/consensys/go-chain/pkg/logic"
)

// Link pairs a relation symbol with the term it introduces.  An ordered
// sequence of links, together with a starting term, determines a chain.
type Link[T any] struct {
	// Relation symbol joining the preceding term to this one.
	Relation logic.Relation
	// Term introduced by this link.
	Term T
}

// Assemble folds a starting term and an ordered sequence of links, left to
// right, through the chain builders.  The result is a chain of exactly one
// shape.  Assembly fails if no link is given, or if the sequence mixes
// ascending and descending relation symbols: a chain mixing the two families
// has no interpretation, and none is invented here.  Failure of the latter
// kind is a usage error on the part of the caller, not a defect in the chain
// being described.
func Assemble[T any](first T, links ...Link[T]) (Chain[T], error) {
	if len(links) == 0 {
		return nil, errors.New("chain requires at least one link")
	}
	// Seed from the first link.
	c := seed(first, links[0])
	// Fold remaining links.
	for _, link := range links[1:] {
		var err error
		//
		if c, err = extend(c, link); err != nil {
			return nil, err
		}
	}
	//
	return c, nil
}

// Seed determines the initial chain shape from the first link alone.
func seed[T any](first T, link Link[T]) Chain[T] {
	switch link.Relation {
	case logic.EQUALS:
		return NewEqual(first, link.Term)
	case logic.LESSTHAN:
		return NewAscending(first, LESSTHAN, link.Term)
	case logic.LESSTHAN_EQUALS:
		return NewAscending(first, LESSTHAN_EQUALS, link.Term)
	case logic.GREATERTHAN:
		return NewDescending(first, GREATERTHAN, link.Term)
	case logic.GREATERTHAN_EQUALS:
		return NewDescending(first, GREATERTHAN_EQUALS, link.Term)
	}
	//
	panic("unreachable")
}

// Extend dispatches on the shape of the chain built so far and the relation
// symbol of the next link.  Exactly the combinations for which a builder
// exists are accepted.
func extend[T any](c Chain[T], link Link[T]) (Chain[T], error) {
	switch c := c.(type) {
	case *EqualChain[T]:
		// Every relation symbol applies to an equality chain.
		switch link.Relation {
		case logic.EQUALS:
			return c.Equals(link.Term), nil
		case logic.LESSTHAN:
			return c.Ascending(LESSTHAN, link.Term), nil
		case logic.LESSTHAN_EQUALS:
			return c.Ascending(LESSTHAN_EQUALS, link.Term), nil
		case logic.GREATERTHAN:
			return c.Descending(GREATERTHAN, link.Term), nil
		case logic.GREATERTHAN_EQUALS:
			return c.Descending(GREATERTHAN_EQUALS, link.Term), nil
		}
	case *AscendingChain[T]:
		switch link.Relation {
		case logic.EQUALS:
			return c.Equals(link.Term), nil
		case logic.LESSTHAN:
			return c.Ascending(LESSTHAN, link.Term), nil
		case logic.LESSTHAN_EQUALS:
			return c.Ascending(LESSTHAN_EQUALS, link.Term), nil
		default:
			return nil, rejection(link.Relation, c)
		}
	case *DescendingChain[T]:
		switch link.Relation {
		case logic.EQUALS:
			return c.Equals(link.Term), nil
		case logic.GREATERTHAN:
			return c.Descending(GREATERTHAN, link.Term), nil
		case logic.GREATERTHAN_EQUALS:
			return c.Descending(GREATERTHAN_EQUALS, link.Term), nil
		default:
			return nil, rejection(link.Relation, c)
		}
	}
	//
	panic("unreachable")
}

func rejection[T any](rel logic.Relation, c Chain[T]) error {
	return fmt.Errorf("no interpretation for %s applied to %s chain", rel, c.Shape())
}
