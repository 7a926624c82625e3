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

	"github.com/consensys/go-chain/pkg/logic"
	"github.com/consensys/go-chain/pkg/order"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] chain_expr",
	Short: "show a chain expression with each statement evaluated.",
	Long: `Parse a given chain expression and print the statements it
	denotes, evaluating each one over the integers.  Long
	conjunctions are split over multiple lines according to the
	terminal width.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Parse and assemble the chain
		c := readChain(args[0])
		width := termWidth()
		//
		fmt.Printf("chain: %s (%s)\n", c.String(bigIntString), c.Shape())
		printStatement("global", c.GlobalStatement(), width)
		printStatement("weak global", c.WeakGlobalStatement(), width)
		printStatement("total", c.TotalStatement(), width)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// Print a named statement with its verdict over the integers, splitting the
// conjunction over multiple lines when it exceeds the terminal width.
func printStatement(name string, stmt logic.Proposition[*big.Int], width uint) {
	var (
		str     = stmt.String(bigIntString)
		verdict = "✓"
	)
	//
	if !stmt.Eval(order.BigInt{}) {
		verdict = "✗"
	}
	// Check whether statement fits on one line
	if uint(len(name)+len(str))+6 <= width {
		fmt.Printf("%s: %s [%s]\n", name, str, verdict)
		return
	}
	//
	fmt.Printf("%s: [%s]\n", name, verdict)
	//
	for i, atom := range stmt.Atoms() {
		if i == 0 {
			fmt.Printf("    %s\n", atom.String(bigIntString))
		} else {
			fmt.Printf("  ∧ %s\n", atom.String(bigIntString))
		}
	}
}
