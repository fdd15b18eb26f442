// Copyright the go-pioasm authors.
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

	"github.com/rp2tools/go-pioasm/pkg/pio/parser"
	"github.com/rp2tools/go-pioasm/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] pio_file",
	Short: "parse a PIO assembly file and print its syntax tree.",
	Long: `Parse a given PIO assembly file and print the resulting
	syntax tree in canonical form.  Any syntax errors are reported
	against the original source.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		fragment := GetFlag(cmd, "fragment")
		// Read the assembly file
		srcfile, err := source.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if fragment {
			program, _, errs := parser.ParseProgram(srcfile)
			reportErrors(errs)
			//
			log.Debugf("parsed %d line(s) from %s", len(program.Lines), args[0])
			fmt.Print(program.String())
		} else {
			file, _, errs := parser.ParseFile(srcfile)
			reportErrors(errs)
			//
			log.Debugf("parsed %d program(s) from %s", len(file.Programs), args[0])
			fmt.Print(file.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("fragment", false, "parse a bare program fragment rather than a complete file")
}
