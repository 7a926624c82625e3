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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] chain_expr",
	Short: "check a chain expression and print the statements it denotes.",
	Long: `Parse a given chain expression, determine its shape and
	relation flow, and print the global, weak global and total
	statements it denotes.  Expressions mixing ascending and
	descending relations are rejected.`,
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
		//
		fmt.Printf("chain: %s\n", c.String(bigIntString))
		fmt.Printf("shape: %s (%d links)\n", c.Shape(), c.Len())
		fmt.Printf("flow: %s\n", flowOf(c))
		fmt.Printf("global: %s\n", c.GlobalStatement().String(bigIntString))
		fmt.Printf("weak global: %s\n", c.WeakGlobalStatement().String(bigIntString))
		fmt.Printf("total: %s\n", c.TotalStatement().String(bigIntString))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
