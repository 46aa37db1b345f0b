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
	"log/slog"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-lightmat/emath"
	"github.com/ajroetker/go-lightmat/expr"
	"github.com/ajroetker/go-lightmat/index"
	"github.com/ajroetker/go-lightmat/matrix"
)

var (
	kinds   = []string{"ewise", "ewise2", "hrepeat", "vrepeat", "outer"}
	layouts = []string{"contiguous", "padded", "row-strided"}
)

// scenario describes one expression shape to plan or check.
type scenario struct {
	kind   string
	rows   int
	cols   int
	fixed  bool
	layout string
}

func (s scenario) String() string {
	static := "dynamic"
	if s.fixed {
		static = "fixed"
	}
	return fmt.Sprintf("%s %d×%d %s %s", s.kind, s.rows, s.cols, static, s.layout)
}

func (s scenario) validate() error {
	if !lo.Contains(kinds, s.kind) {
		return fmt.Errorf("unknown kind %q, want one of %v", s.kind, kinds)
	}
	if !lo.Contains(layouts, s.layout) {
		return fmt.Errorf("unknown layout %q, want one of %v", s.layout, layouts)
	}
	if s.rows < 0 || s.cols < 0 {
		return fmt.Errorf("negative size %d×%d", s.rows, s.cols)
	}
	return nil
}

// operand allocates a rows×cols matrix in the scenario's layout, filled with
// a deterministic pattern. Static extents are only attached to contiguous
// operands with positive extents.
func (s scenario) operand(rows, cols int, salt float64) (*matrix.Dense[float64], error) {
	var d *matrix.Dense[float64]
	switch s.layout {
	case "padded":
		d = matrix.New[float64](rows+2, cols).View(index.Colon(1, rows+1), index.Whole{})
	case "row-strided":
		d = matrix.New[float64](2*rows, cols).View(index.ColonStep(0, 2, 2*rows), index.Whole{})
	default:
		d = matrix.New[float64](rows, cols)
		if s.fixed && rows > 0 && cols > 0 {
			var err error
			if d, err = d.WithStatic(rows, cols); err != nil {
				return nil, err
			}
		}
	}
	for j := range cols {
		for i := range rows {
			d.Set(i, j, float64((i*7+j*13)%11)-4.5+salt)
		}
	}
	return d, nil
}

// build returns the scenario's expression.
func (s scenario) build() (expr.Expr[float64], error) {
	switch s.kind {
	case "ewise":
		a, err := s.operand(s.rows, s.cols, 0)
		if err != nil {
			return nil, err
		}
		return emath.Sqrt[float64](emath.Abs[float64](a)), nil
	case "ewise2":
		a, err := s.operand(s.rows, s.cols, 0)
		if err != nil {
			return nil, err
		}
		b, err := s.operand(s.rows, s.cols, 0.25)
		if err != nil {
			return nil, err
		}
		return emath.Add[float64](emath.Sqr[float64](a), b)
	case "hrepeat":
		return s.hrepeat()
	case "vrepeat":
		return s.vrepeat()
	case "outer":
		h, err := s.hrepeat()
		if err != nil {
			return nil, err
		}
		v, err := s.vrepeat()
		if err != nil {
			return nil, err
		}
		return emath.Mul[float64](h, v)
	}
	return nil, fmt.Errorf("unknown kind %q", s.kind)
}

func (s scenario) hrepeat() (*expr.HRepeat[float64], error) {
	seed, err := s.operand(s.rows, 1, 0)
	if err != nil {
		return nil, err
	}
	if s.fixed && s.cols > 0 {
		return expr.HorizontalRepeatFixed[float64](seed, s.cols)
	}
	return expr.HorizontalRepeat[float64](seed, s.cols)
}

func (s scenario) vrepeat() (*expr.VRepeat[float64], error) {
	seed, err := s.operand(1, s.cols, 0.5)
	if err != nil {
		return nil, err
	}
	if s.fixed && s.rows > 0 {
		return expr.VerticalRepeatFixed[float64](seed, s.rows)
	}
	return expr.VerticalRepeat[float64](seed, s.rows)
}

// destination allocates the output for the scenario, in its layout.
func (s scenario) destination() (*matrix.Dense[float64], error) {
	return s.operand(s.rows, s.cols, 0)
}

// costFlags binds the cost constants to flags and applies them on demand.
type costFlags struct {
	cache, shortVec, threshold int
}

func (c *costFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&c.cache, "cache-cost", expr.CacheCost, "cost of materializing a repeat seed")
	fs.IntVar(&c.shortVec, "short-cost", expr.ShortVecPerColumnCost, "per-column cost of short or dynamic columns")
	fs.IntVar(&c.threshold, "short-threshold", expr.ShortVecThreshold, "static column length below which a column is short")
}

func (c *costFlags) apply() {
	expr.CacheCost = c.cache
	expr.ShortVecPerColumnCost = c.shortVec
	expr.ShortVecThreshold = c.threshold
}

func newPlanCmd() *cobra.Command {
	var (
		s     scenario
		costs costFlags
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the strategy selected for an expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.validate(); err != nil {
				return err
			}
			costs.apply()
			e, err := s.build()
			if err != nil {
				return err
			}
			dst, err := s.destination()
			if err != nil {
				return err
			}
			plan := expr.Select(e, dst)
			slog.Debug("selected", "scenario", s, "shape", e.Shape(), "policy", expr.DefaultPolicy(e))
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v, default policy %v\n", s, plan, expr.DefaultPolicy(e))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&s.kind, "kind", "ewise", fmt.Sprintf("expression kind, one of %v", kinds))
	fs.IntVar(&s.rows, "rows", 8, "rows of the result")
	fs.IntVar(&s.cols, "cols", 8, "columns of the result")
	fs.BoolVar(&s.fixed, "fixed", false, "give operands and repeat factors static extents")
	fs.StringVar(&s.layout, "layout", "contiguous", fmt.Sprintf("operand and destination layout, one of %v", layouts))
	costs.register(fs)
	return cmd
}
