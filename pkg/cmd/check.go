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

var checkCmd = &cobra.Command{
	Use:   "check [flags] pio_file(s)",
	Short: "check PIO assembly files for syntax errors.",
	Long: `Check the given PIO assembly files for syntax errors,
	reporting any against the original source.  Nothing is printed
	for files which parse cleanly.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		failed := false
		//
		for _, filename := range args {
			srcfile, err := source.ReadFile(filename)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			file, _, errs := parser.ParseFile(srcfile)
			//
			for _, e := range errs {
				printSyntaxError(&e)
			}
			//
			if len(errs) > 0 {
				failed = true
			} else {
				log.Debugf("%s: %d program(s) ok", filename, len(file.Programs))
			}
		}
		//
		if failed {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
