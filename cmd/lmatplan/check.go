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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightmat/expr"
	"github.com/ajroetker/go-lightmat/matrix"
)

var strategies = []expr.Strategy{
	expr.ScalarLinear, expr.ScalarPerColumn, expr.LaneLinear, expr.LanePerColumn, expr.CachedLinear,
}

// outcome is the result of one scenario evaluated with one strategy.
type outcome struct {
	scenario scenario
	strategy expr.Strategy
	skipped  bool
	ok       bool
}

// checkScenario evaluates s with every strategy and compares each result
// with a nested At loop over the expression.
func checkScenario(s scenario) ([]outcome, error) {
	e, err := s.build()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", s, err)
	}
	sh := e.Shape()
	want := matrix.New[float64](sh.Rows, sh.Cols)
	for j := range sh.Cols {
		for i := range sh.Rows {
			want.Set(i, j, e.At(i, j))
		}
	}

	results := make([]outcome, 0, len(strategies))
	for _, st := range strategies {
		dst, err := s.destination()
		if err != nil {
			return nil, err
		}
		dst.Fill(-1)
		err = expr.EvaluatePlan(e, dst, st)
		switch {
		case errors.Is(err, expr.ErrStrategy):
			results = append(results, outcome{scenario: s, strategy: st, skipped: true})
			continue
		case err != nil:
			return nil, fmt.Errorf("%v/%v: %w", s, st, err)
		}
		ok := matrix.Equal[float64](want, dst)
		slog.Debug("checked", "scenario", s, "strategy", st, "ok", ok)
		results = append(results, outcome{scenario: s, strategy: st, ok: ok})
	}
	return results, nil
}

// report prints a per-strategy summary and returns the failed outcomes.
func report(w io.Writer, results []outcome) []outcome {
	byStrategy := lo.GroupBy(results, func(o outcome) expr.Strategy { return o.strategy })
	keys := lo.Keys(byStrategy)
	slices.Sort(keys)
	for _, st := range keys {
		group := byStrategy[st]
		skipped := lo.CountBy(group, func(o outcome) bool { return o.skipped })
		passed := lo.CountBy(group, func(o outcome) bool { return o.ok })
		fmt.Fprintf(w, "%-18v %5d passed %5d skipped %5d failed\n", st, passed, skipped, len(group)-passed-skipped)
	}
	return lo.Filter(results, func(o outcome, _ int) bool { return !o.skipped && !o.ok })
}

func newCheckCmd() *cobra.Command {
	var (
		sizes     []int
		kindList  []string
		layoutSet []string
		costs     costFlags
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate every kind, size and layout with every strategy and compare with naive loops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes = lo.Uniq(sizes)
			if bad := lo.Filter(sizes, func(n int, _ int) bool { return n < 0 }); len(bad) > 0 {
				return fmt.Errorf("negative sizes %v", bad)
			}
			costs.apply()

			scenarios := lo.FlatMap(kindList, func(kind string, _ int) []scenario {
				return lo.FlatMap(layoutSet, func(layout string, _ int) []scenario {
					var out []scenario
					for _, m := range sizes {
						for _, n := range sizes {
							for _, fixed := range []bool{false, true} {
								out = append(out, scenario{kind: kind, rows: m, cols: n, fixed: fixed, layout: layout})
							}
						}
					}
					return out
				})
			})

			var results []outcome
			for _, s := range scenarios {
				if err := s.validate(); err != nil {
					return err
				}
				r, err := checkScenario(s)
				if err != nil {
					return err
				}
				results = append(results, r...)
			}
			slog.Info("check done", "scenarios", len(scenarios), "evaluations", len(results))

			failed := report(cmd.OutOrStdout(), results)
			for _, o := range failed {
				slog.Error("mismatch", "scenario", o.scenario, "strategy", o.strategy)
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d evaluations differ from the naive loop", len(failed))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&sizes, "sizes", []int{0, 1, 3, 4, 5, 8, 17}, "row and column counts to combine")
	fs.StringSliceVar(&kindList, "kinds", kinds, "expression kinds to check")
	fs.StringSliceVar(&layoutSet, "layouts", layouts, "operand layouts to check")
	costs.register(fs)
	return cmd
}
