package chain

import (
	"strconv"
	"testing"
)

// Head / Tail / Len

func Test_Chain_01(t *testing.T) {
	c := NewEqual(1, 2)
	checkEnds(t, c, 1, 2, 1)
}

func Test_Chain_02(t *testing.T) {
	c := NewEqual(1, 2).Equals(3).Equals(4)
	checkEnds(t, c, 1, 4, 3)
}

func Test_Chain_03(t *testing.T) {
	c := NewAscending(1, LESSTHAN, 2)
	checkEnds(t, c, 1, 2, 1)
}

func Test_Chain_04(t *testing.T) {
	c := NewAscending(1, LESSTHAN_EQUALS, 2).Equals(2).Ascending(LESSTHAN, 7)
	checkEnds(t, c, 1, 7, 3)
}

func Test_Chain_05(t *testing.T) {
	c := NewEqual(1, 1).Equals(1).Ascending(LESSTHAN, 2)
	checkEnds(t, c, 1, 2, 3)
}

func Test_Chain_06(t *testing.T) {
	c := NewDescending(9, GREATERTHAN, 5).Descending(GREATERTHAN_EQUALS, 5).Equals(5)
	checkEnds(t, c, 9, 5, 3)
}

func Test_Chain_07(t *testing.T) {
	c := NewEqual(8, 8).Descending(GREATERTHAN, 3)
	checkEnds(t, c, 8, 3, 2)
}

// Relation flow

func Test_Flow_01(t *testing.T) {
	checkAscFlow(t, NewAscending(0, LESSTHAN_EQUALS, 1), LESSTHAN_EQUALS)
}

func Test_Flow_02(t *testing.T) {
	checkAscFlow(t, NewAscending(0, LESSTHAN, 1), LESSTHAN)
}

// 0 ≤ 1 ≤ 2 has flow ≤
func Test_Flow_03(t *testing.T) {
	c := NewAscending(0, LESSTHAN_EQUALS, 1).Ascending(LESSTHAN_EQUALS, 2)
	checkAscFlow(t, c, LESSTHAN_EQUALS)
}

// 0 ≤ 1 ≤ 2 < 3 ≤ 4 has flow < (strictness absorbs)
func Test_Flow_04(t *testing.T) {
	c := NewAscending(0, LESSTHAN_EQUALS, 1).
		Ascending(LESSTHAN_EQUALS, 2).
		Ascending(LESSTHAN, 3).
		Ascending(LESSTHAN_EQUALS, 4)
	checkAscFlow(t, c, LESSTHAN)
}

// 3 ≤ 4 = 4 < 7 has the same flow as 3 ≤ 4 < 7 (equality links are
// transparent)
func Test_Flow_05(t *testing.T) {
	spliced := NewAscending(3, LESSTHAN_EQUALS, 4).Equals(4).Ascending(LESSTHAN, 7)
	direct := NewAscending(3, LESSTHAN_EQUALS, 4).Ascending(LESSTHAN, 7)
	//
	checkAscFlow(t, spliced, direct.Flow())
}

func Test_Flow_06(t *testing.T) {
	c := NewEqual(3, 3).Ascending(LESSTHAN_EQUALS, 4).Equals(4).Equals(4)
	checkAscFlow(t, c, LESSTHAN_EQUALS)
}

func Test_Flow_07(t *testing.T) {
	c := NewDescending(9, GREATERTHAN_EQUALS, 8).Equals(8).Descending(GREATERTHAN, 2)
	//
	if flow := c.Flow(); flow != GREATERTHAN {
		t.Errorf("got %s, expected %s", flow, GREATERTHAN)
	}
}

// Tag sequences

func Test_Tags_01(t *testing.T) {
	c := NewAscending(3, LESSTHAN_EQUALS, 4).Equals(4).Ascending(LESSTHAN, 7)
	expected := []AscendingTag{LESSTHAN_EQUALS, LESSTHAN}
	//
	if tags := c.Tags(); len(tags) != len(expected) {
		t.Errorf("got %v, expected %v", tags, expected)
	} else {
		for i := range tags {
			if tags[i] != expected[i] {
				t.Errorf("got %v, expected %v", tags, expected)
			}
		}
	}
}

// Statements

func Test_Stmt_01(t *testing.T) {
	c := NewEqual(1, 1).Equals(1)
	checkStatements(t, c, "1 = 1", "1 = 1", "1 = 1 ∧ 1 = 1")
}

func Test_Stmt_02(t *testing.T) {
	c := NewAscending(0, LESSTHAN_EQUALS, 1).Ascending(LESSTHAN_EQUALS, 2)
	checkStatements(t, c, "0 ≤ 2", "0 ≤ 2", "0 ≤ 1 ∧ 1 ≤ 2")
}

func Test_Stmt_03(t *testing.T) {
	c := NewAscending(0, LESSTHAN_EQUALS, 1).
		Ascending(LESSTHAN_EQUALS, 2).
		Ascending(LESSTHAN, 3).
		Ascending(LESSTHAN_EQUALS, 4)
	checkStatements(t, c, "0 < 4", "0 ≤ 4", "0 ≤ 1 ∧ 1 ≤ 2 ∧ 2 < 3 ∧ 3 ≤ 4")
}

// The running example: 3 ≤ 4 < 7 = 7 < 8.
func Test_Stmt_04(t *testing.T) {
	c := NewAscending(3, LESSTHAN_EQUALS, 4).
		Ascending(LESSTHAN, 7).
		Equals(7).
		Ascending(LESSTHAN, 8)
	//
	checkAscFlow(t, c, LESSTHAN)
	checkStatements(t, c, "3 < 8", "3 ≤ 8", "3 ≤ 4 ∧ 4 < 7 ∧ 7 = 7 ∧ 7 < 8")
}

func Test_Stmt_05(t *testing.T) {
	c := NewDescending(8, GREATERTHAN, 7).Equals(7).Descending(GREATERTHAN_EQUALS, 4)
	checkStatements(t, c, "8 > 4", "8 ≥ 4", "8 > 7 ∧ 7 = 7 ∧ 7 ≥ 4")
}

func Test_Stmt_06(t *testing.T) {
	c := NewEqual(3, 3).Ascending(LESSTHAN, 5)
	checkStatements(t, c, "3 < 5", "3 ≤ 5", "3 = 3 ∧ 3 < 5")
}

func Test_Stmt_07(t *testing.T) {
	c := NewEqual(9, 9).Descending(GREATERTHAN_EQUALS, 2)
	checkStatements(t, c, "9 ≥ 2", "9 ≥ 2", "9 = 9 ∧ 9 ≥ 2")
}

// Soundness: for every chain, the total statement implies the global
// statement (and hence the weak global statement).  Chains of length 2..5
// links are enumerated exhaustively over a small term domain.

func Test_Sound_Ascending(t *testing.T) {
	for n := 2; n <= 5; n++ {
		enumChains(t, n, true)
	}
}

func Test_Sound_Descending(t *testing.T) {
	for n := 2; n <= 5; n++ {
		enumChains(t, n, false)
	}
}

// ==================================================================
// Framework
// ==================================================================

// intOrder provides the usual ordering on machine integers.
type intOrder struct{}

func (intOrder) Equals(lhs int, rhs int) bool            { return lhs == rhs }
func (intOrder) LessThan(lhs int, rhs int) bool          { return lhs < rhs }
func (intOrder) LessThanEquals(lhs int, rhs int) bool    { return lhs <= rhs }
func (intOrder) GreaterThan(lhs int, rhs int) bool       { return lhs > rhs }
func (intOrder) GreaterThanEquals(lhs int, rhs int) bool { return lhs >= rhs }

func checkEnds(t *testing.T, c Chain[int], head int, tail int, links uint) {
	if h := c.Head(); h != head {
		t.Errorf("head: got %d, expected %d", h, head)
	}
	//
	if l := c.Tail(); l != tail {
		t.Errorf("tail: got %d, expected %d", l, tail)
	}
	//
	if n := c.Len(); n != links {
		t.Errorf("links: got %d, expected %d", n, links)
	}
	// Sanity check head / tail appear in the term sequence
	terms := c.Terms()
	//
	if uint(len(terms)) != links+1 {
		t.Errorf("terms: got %d, expected %d", len(terms), links+1)
	} else if terms[0] != c.Head() || terms[len(terms)-1] != c.Tail() {
		t.Errorf("terms %v do not enclose head %d and tail %d", terms, c.Head(), c.Tail())
	}
}

func checkAscFlow(t *testing.T, c *AscendingChain[int], expected AscendingTag) {
	if flow := c.Flow(); flow != expected {
		t.Errorf("got %s, expected %s", flow, expected)
	}
}

func checkStatements(t *testing.T, c Chain[int], global string, weak string, total string) {
	if s := c.GlobalStatement().String(strconv.Itoa); s != global {
		t.Errorf("global: got %s, expected %s", s, global)
	}
	//
	if s := c.WeakGlobalStatement().String(strconv.Itoa); s != weak {
		t.Errorf("weak global: got %s, expected %s", s, weak)
	}
	//
	if s := c.TotalStatement().String(strconv.Itoa); s != total {
		t.Errorf("total: got %s, expected %s", s, total)
	}
}

// linkKind enumerates the three ways an ascending (resp. descending) chain
// can be extended.
const (
	linkStrict = iota
	linkNonStrict
	linkEqual
	nLinkKinds
)

// Enumerate every chain of a given number of links over the term domain
// 0..3, in the ascending (or descending) family, and check soundness of
// every statement derived from it.
func enumChains(t *testing.T, links int, ascending bool) {
	terms := make([]int, links+1)
	kinds := make([]int, links)
	//
	enumTerms(t, terms, kinds, 0, ascending)
}

func enumTerms(t *testing.T, terms []int, kinds []int, i int, ascending bool) {
	if i == len(terms) {
		enumKinds(t, terms, kinds, 0, ascending)
		return
	}
	//
	for v := 0; v <= 3; v++ {
		terms[i] = v
		enumTerms(t, terms, kinds, i+1, ascending)
	}
}

func enumKinds(t *testing.T, terms []int, kinds []int, i int, ascending bool) {
	if i == len(kinds) {
		if ascending {
			checkSoundAscending(t, terms, kinds)
		} else {
			checkSoundDescending(t, terms, kinds)
		}
		//
		return
	}
	// First link cannot be an equality (that would change the chain shape).
	for k := 0; k < nLinkKinds; k++ {
		if i == 0 && k == linkEqual {
			continue
		}
		//
		kinds[i] = k
		enumKinds(t, terms, kinds, i+1, ascending)
	}
}

func checkSoundAscending(t *testing.T, terms []int, kinds []int) {
	var c *AscendingChain[int]
	//
	for i, k := range kinds {
		switch {
		case i == 0 && k == linkStrict:
			c = NewAscending(terms[0], LESSTHAN, terms[1])
		case i == 0:
			c = NewAscending(terms[0], LESSTHAN_EQUALS, terms[1])
		case k == linkStrict:
			c = c.Ascending(LESSTHAN, terms[i+1])
		case k == linkNonStrict:
			c = c.Ascending(LESSTHAN_EQUALS, terms[i+1])
		default:
			c = c.Equals(terms[i+1])
		}
	}
	//
	checkSound(t, c)
}

func checkSoundDescending(t *testing.T, terms []int, kinds []int) {
	var c *DescendingChain[int]
	//
	for i, k := range kinds {
		switch {
		case i == 0 && k == linkStrict:
			c = NewDescending(terms[0], GREATERTHAN, terms[1])
		case i == 0:
			c = NewDescending(terms[0], GREATERTHAN_EQUALS, terms[1])
		case k == linkStrict:
			c = c.Descending(GREATERTHAN, terms[i+1])
		case k == linkNonStrict:
			c = c.Descending(GREATERTHAN_EQUALS, terms[i+1])
		default:
			c = c.Equals(terms[i+1])
		}
	}
	//
	checkSound(t, c)
}

func checkSound(t *testing.T, c Chain[int]) {
	var ord intOrder
	// The global statement always implies the weak global statement.
	if c.GlobalStatement().Eval(ord) && !c.WeakGlobalStatement().Eval(ord) {
		t.Errorf("global statement holds but weak global does not: %s", c.String(strconv.Itoa))
	}
	// Only chains whose total statement holds are of further interest.
	if !c.TotalStatement().Eval(ord) {
		return
	}
	//
	if !c.GlobalStatement().Eval(ord) {
		t.Errorf("total statement holds but global does not: %s", c.String(strconv.Itoa))
	}
	//
	if !c.WeakGlobalStatement().Eval(ord) {
		t.Errorf("total statement holds but weak global does not: %s", c.String(strconv.Itoa))
	}
}
