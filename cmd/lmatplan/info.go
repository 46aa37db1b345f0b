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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightmat/expr"
	"github.com/ajroetker/go-lightmat/lane"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the lane level, width and cost constants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "level:   %v\n", lane.CurrentLevel())
			fmt.Fprintf(w, "width:   %d bytes\n", lane.CurrentWidth())
			fmt.Fprintf(w, "lanes:   float32=%d float64=%d int32=%d int8=%d\n",
				lane.MaxLanes[float32](), lane.MaxLanes[float64](), lane.MaxLanes[int32](), lane.MaxLanes[int8]())
			fmt.Fprintf(w, "no-simd: %v\n", lane.NoSimdEnv())
			fmt.Fprintf(w, "costs:   cache=%d short-vec=%d short-threshold=%d\n",
				expr.CacheCost, expr.ShortVecPerColumnCost, expr.ShortVecThreshold)
		},
	}
}
