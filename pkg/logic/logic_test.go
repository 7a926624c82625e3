package logic

import (
	"strconv"
	"testing"
)

// Relations

func Test_Relation_01(t *testing.T) {
	if !LESSTHAN.IsStrict() || !GREATERTHAN.IsStrict() {
		t.Errorf("strict relations reported as non-strict")
	}
	//
	if EQUALS.IsStrict() || LESSTHAN_EQUALS.IsStrict() || GREATERTHAN_EQUALS.IsStrict() {
		t.Errorf("non-strict relations reported as strict")
	}
}

func Test_Relation_02(t *testing.T) {
	checkWeaken(t, LESSTHAN, LESSTHAN_EQUALS)
	checkWeaken(t, GREATERTHAN, GREATERTHAN_EQUALS)
	checkWeaken(t, EQUALS, EQUALS)
	checkWeaken(t, LESSTHAN_EQUALS, LESSTHAN_EQUALS)
	checkWeaken(t, GREATERTHAN_EQUALS, GREATERTHAN_EQUALS)
}

func Test_Relation_03(t *testing.T) {
	var symbols = map[Relation]string{
		EQUALS:             "=",
		LESSTHAN:           "<",
		LESSTHAN_EQUALS:    "≤",
		GREATERTHAN:        ">",
		GREATERTHAN_EQUALS: "≥",
	}
	//
	for rel, symbol := range symbols {
		if rel.String() != symbol {
			t.Errorf("got %s, expected %s", rel.String(), symbol)
		}
	}
}

// Propositions

func Test_Prop_01(t *testing.T) {
	p := NewProposition(NewAtom(LESSTHAN, 1, 2))
	checkProp(t, p, "1 < 2", true)
}

func Test_Prop_02(t *testing.T) {
	p := NewProposition(NewAtom(LESSTHAN, 2, 1))
	checkProp(t, p, "2 < 1", false)
}

func Test_Prop_03(t *testing.T) {
	p := Truth[int]()
	checkProp(t, p, "⊤", true)
}

// Conjunction preserves the order atoms were conjoined.
func Test_Prop_04(t *testing.T) {
	p := NewProposition(NewAtom(LESSTHAN_EQUALS, 3, 4)).
		And(NewProposition(NewAtom(LESSTHAN, 4, 7))).
		And(NewProposition(NewAtom(EQUALS, 7, 7)))
	//
	checkProp(t, p, "3 ≤ 4 ∧ 4 < 7 ∧ 7 = 7", true)
}

func Test_Prop_05(t *testing.T) {
	p := NewProposition(NewAtom(GREATERTHAN, 8, 7)).
		And(NewProposition(NewAtom(GREATERTHAN_EQUALS, 7, 9)))
	//
	checkProp(t, p, "8 > 7 ∧ 7 ≥ 9", false)
}

// Conjunction with truth is transparent.
func Test_Prop_06(t *testing.T) {
	p := Truth[int]().And(NewProposition(NewAtom(EQUALS, 1, 1)))
	checkProp(t, p, "1 = 1", true)
}

// Conjoining onto a proposition does not mutate it.
func Test_Prop_07(t *testing.T) {
	p := NewProposition(NewAtom(LESSTHAN, 1, 2))
	_ = p.And(NewProposition(NewAtom(LESSTHAN, 2, 3)))
	//
	checkProp(t, p, "1 < 2", true)
}

func Test_Prop_08(t *testing.T) {
	p := NewProposition(NewAtom(LESSTHAN, 1, 2)).Clone()
	checkProp(t, p, "1 < 2", true)
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

func checkWeaken(t *testing.T, rel Relation, expected Relation) {
	if w := rel.Weaken(); w != expected {
		t.Errorf("got %s, expected %s", w, expected)
	}
}

func checkProp(t *testing.T, p Proposition[int], expected string, holds bool) {
	if s := p.String(strconv.Itoa); s != expected {
		t.Errorf("got %s, expected %s", s, expected)
	}
	//
	if v := p.Eval(intOrder{}); v != holds {
		t.Errorf("got verdict %t, expected %t", v, holds)
	}
}
