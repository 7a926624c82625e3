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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/go-chain/pkg/chain"
	"github.com/consensys/go-chain/pkg/util/source"
	"github.com/consensys/go-chain/pkg/util/source/cexp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse and assemble a chain expression, reporting errors and exiting on
// failure.
func readChain(input string) chain.Chain[*big.Int] {
	first, links, errs := cexp.Parse(input)
	// Report syntax errors
	if len(errs) > 0 {
		printSyntaxError(&errs[0], input)
		os.Exit(2)
	}
	//
	log.Debugf("parsed chain of %d links", len(links))
	// Convert parsed links into builder links
	clinks := make([]chain.Link[*big.Int], len(links))
	//
	for i := range links {
		clinks[i] = chain.Link[*big.Int]{
			Relation: links[i].Relation,
			Term:     &links[i].Term,
		}
	}
	// Fold links through the chain builders
	c, err := chain.Assemble(&first, clinks...)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return c
}

// Render a term for printing.
func bigIntString(val *big.Int) string {
	return val.String()
}

// Determine the relation flow of a given chain, rendered as its relation
// symbol.
func flowOf(c chain.Chain[*big.Int]) string {
	switch c := c.(type) {
	case *chain.AscendingChain[*big.Int]:
		return c.Flow().String()
	case *chain.DescendingChain[*big.Int]:
		return c.Flow().String()
	default:
		return "="
	}
}

// Determine the width of the enclosing terminal, falling back to a standard
// width when stdout is not a terminal.
func termWidth() uint {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return uint(w)
	}
	//
	return 80
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError, text string) {
	span := err.Span()
	// Print error message
	fmt.Printf("%s: %s\n", err.SourceFile().Filename(), err.Message())
	// Print offending text
	fmt.Println(text)
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", span.Start()))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, span.Length())))
}
