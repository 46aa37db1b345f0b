// Copyright 2025 go-lightmat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lmatplan shows and verifies how expressions are evaluated.
//
// Usage:
//
//	lmatplan info                                   # lane level, width and cost constants
//	lmatplan plan --kind hrepeat --rows 8 --cols 5  # strategy Select picks
//	lmatplan check --sizes 0,1,3,4,9                # every strategy against naive loops
//
// The cost constants can be overridden on plan and check with --cache-cost,
// --short-cost and --short-threshold. LMAT_NO_SIMD and LMAT_LANE_WIDTH set
// the lane width as for any program using the library.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "lmatplan",
		Short:        "Inspect and verify expression evaluation strategies",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every evaluated case")
	root.AddCommand(newInfoCmd(), newPlanCmd(), newCheckCmd())
	return root
}
