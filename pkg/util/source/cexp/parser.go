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
package cexp

import (
	"math/big"
	"slices"

	"github.com/consensys/go-chain/pkg/logic"
	"github.com/consensys/go-chain/pkg/util/source"
	"github.com/consensys/go-chain/pkg/util/source/lex"
)

// Link pairs a relation symbol with the (constant) term following it in the
// surface notation.
type Link struct {
	// Relation symbol preceding the term.
	Relation logic.Relation
	// Term introduced by this link.
	Term big.Int
}

// Parse a given input string as a relational chain in surface notation: a
// term followed by one or more relation/term steps, such as
// "3 <= 4 < 7 = 7 < 8".  Terms are decimal integers; both ASCII (<=, >=, =,
// ==) and Unicode (≤, ≥) operator forms are accepted.  Parsing performs no
// chain assembly: the result is the starting term plus the ordered sequence
// of already-disambiguated links.
func Parse(input string) (big.Int, []Link, []source.SyntaxError) {
	var (
		first   big.Int
		srcfile = source.NewSourceFile("chain", []byte(input))
		lexer   = lex.NewLexer[rune](srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return first, nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	parser := &Parser{srcfile, tokens, 0}
	// Parse chain
	return parser.parseChain()
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// NUMBER signals an integer number
const NUMBER uint = 2

// EQUALS signals an equality
const EQUALS uint = 3

// LESSTHAN signals a (strict) inequality X < Y
const LESSTHAN uint = 4

// LESSTHAN_EQUALS signals a (non-strict) inequality X <= Y
const LESSTHAN_EQUALS uint = 5

// GREATERTHAN signals a (strict) inequality X > Y
const GREATERTHAN uint = 6

// GREATERTHAN_EQUALS signals a (non-strict) inequality X >= Y
const GREATERTHAN_EQUALS uint = 7

// RELATIONS captures the set of relation symbols.
var RELATIONS = []uint{EQUALS, LESSTHAN, LESSTHAN_EQUALS, GREATERTHAN, GREATERTHAN_EQUALS}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t')))

// Rule for describing digit sequences
var digits lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Rule for describing (optionally negative) numbers
var number lex.Scanner[rune] = lex.Or(lex.Sequence(lex.Unit('-'), digits), digits)

// lexing rules.  Longer operator forms must precede their prefixes, since the
// first matching rule wins.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('=', '='), EQUALS),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('<', '='), LESSTHAN_EQUALS),
	lex.Rule(lex.Unit('≤'), LESSTHAN_EQUALS),
	lex.Rule(lex.Unit('<'), LESSTHAN),
	lex.Rule(lex.Unit('>', '='), GREATERTHAN_EQUALS),
	lex.Rule(lex.Unit('≥'), GREATERTHAN_EQUALS),
	lex.Rule(lex.Unit('>'), GREATERTHAN),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parser provides a parser for chains written in surface notation.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *Parser) parseChain() (big.Int, []Link, []source.SyntaxError) {
	var links []Link
	// Parse leading term
	first, errs := p.parseNumber()
	//
	for len(errs) == 0 && !p.follows(END_OF) {
		var link Link
		// Sanity check
		if !p.follows(RELATIONS...) {
			return first, nil, p.syntaxErrors(p.lookahead(), "relation expected")
		}
		// Consume relation
		token := p.expect(p.lookahead().Kind)
		link.Relation = relationOf(token.Kind)
		// Consume term
		link.Term, errs = p.parseNumber()
		//
		links = append(links, link)
	}
	//
	switch {
	case len(errs) != 0:
		return first, nil, errs
	case len(links) == 0:
		return first, nil, p.syntaxErrors(p.lookahead(), "relation expected")
	}
	// All good!
	return first, links, nil
}

func (p *Parser) parseNumber() (big.Int, []source.SyntaxError) {
	var num big.Int
	//
	if !p.follows(NUMBER) {
		return num, p.syntaxErrors(p.lookahead(), "number expected")
	}
	//
	token := p.expect(NUMBER)
	num.SetString(p.string(token), 10)
	//
	return num, nil
}

// Map a relation token kind to its relation symbol.
func relationOf(kind uint) logic.Relation {
	switch kind {
	case EQUALS:
		return logic.EQUALS
	case LESSTHAN:
		return logic.LESSTHAN
	case LESSTHAN_EQUALS:
		return logic.LESSTHAN_EQUALS
	case GREATERTHAN:
		return logic.GREATERTHAN
	case GREATERTHAN_EQUALS:
		return logic.GREATERTHAN_EQUALS
	}
	//
	panic("unreachable")
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
