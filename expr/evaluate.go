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

package expr

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-lightmat/lane"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/shape"
)

// ErrStrategy is returned when a forced strategy cannot run for the given
// expression or destination.
var ErrStrategy = errors.New("strategy not applicable")

// Strategy is a concrete way of walking an expression into a destination.
type Strategy int

const (
	ScalarLinear Strategy = iota
	ScalarPerColumn
	LaneLinear
	LanePerColumn
	CachedLinear
)

func (s Strategy) String() string {
	switch s {
	case ScalarLinear:
		return "scalar-linear"
	case ScalarPerColumn:
		return "scalar-per-column"
	case LaneLinear:
		return "lane-linear"
	case LanePerColumn:
		return "lane-per-column"
	case CachedLinear:
		return "cached-linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Linear reports whether s walks the linear index.
func (s Strategy) Linear() bool {
	return s == ScalarLinear || s == LaneLinear || s == CachedLinear
}

// Lanes reports whether s uses lane-wise evaluation.
func (s Strategy) Lanes() bool {
	return s == LaneLinear || s == LanePerColumn
}

// Plan is the outcome of Select for one expression and destination.
type Plan struct {
	linear bool
	lanes  bool
	cached bool
	cost   int
}

// Strategy returns the selected strategy.
func (p Plan) Strategy() Strategy {
	switch {
	case p.linear && p.cached:
		return CachedLinear
	case p.linear && p.lanes:
		return LaneLinear
	case p.linear:
		return ScalarLinear
	case p.lanes:
		return LanePerColumn
	default:
		return ScalarPerColumn
	}
}

// Cost returns the cost of the selected route.
func (p Plan) Cost() int { return p.cost }

func (p Plan) String() string {
	return fmt.Sprintf("%v(cost=%d)", p.Strategy(), p.cost)
}

// Select chooses how e is evaluated into dst.
//
// The linear route needs a contiguous destination and wins when it is
// cheaper than the per-column route, or as cheap and not materializing.
// Lanes are used when every node on the route has a lane form and the run
// (the whole destination, or one column) holds at least one full vector.
func Select[T lane.Lanes](e Expr[T], dst *matrix.Dense[T]) Plan {
	return selectPlan(nodeOf(e).costs(), dst)
}

func selectPlan[T lane.Lanes](c costs, dst *matrix.Dense[T]) Plan {
	width := lane.MaxLanes[T]()
	if dst.IsContiguous() && (c.linear < c.perColumn || c.linear == c.perColumn && !c.cached) {
		return Plan{
			linear: true,
			lanes:  c.linearLanes && !c.cached && dst.Len() >= width,
			cached: c.cached,
			cost:   c.linear,
		}
	}
	return Plan{
		lanes: c.perColumnLanes && dst.RowStep() == 1 && dst.Rows() >= width,
		cost:  c.perColumn,
	}
}

// Policy selects the evaluation routine used by EvaluateWith.
type Policy int

const (
	// PolicyDefault defers to DefaultPolicy.
	PolicyDefault Policy = iota
	// PolicyEvaluators walks evaluators chosen by Select.
	PolicyEvaluators
	// PolicyCopy copies or fills directly when the expression is a leaf or a
	// repeat, and falls back to PolicyEvaluators otherwise.
	PolicyCopy
	// PolicyScalars walks evaluators chosen by Select with lanes disabled.
	PolicyScalars
)

func (p Policy) String() string {
	switch p {
	case PolicyDefault:
		return "default"
	case PolicyEvaluators:
		return "evaluators"
	case PolicyCopy:
		return "copy"
	case PolicyScalars:
		return "scalars"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// DefaultPolicy returns the policy Evaluate uses for e: PolicyCopy for
// leaves and repeats, PolicyEvaluators for element-wise nodes.
func DefaultPolicy[T lane.Lanes](e Expr[T]) Policy {
	if _, ok := nodeOf(e).(copier[T]); ok {
		return PolicyCopy
	}
	return PolicyEvaluators
}

// Evaluate writes e into dst using DefaultPolicy(e).
//
// dst must have the size of e; otherwise the error wraps shape.ErrMismatch
// and dst is untouched. Evaluating an empty expression does nothing.
func Evaluate[T lane.Lanes](e Expr[T], dst *matrix.Dense[T]) error {
	return EvaluateWith(e, dst, PolicyDefault)
}

// EvaluateWith writes e into dst using policy p.
func EvaluateWith[T lane.Lanes](e Expr[T], dst *matrix.Dense[T], p Policy) error {
	if err := shape.Check(e.Shape(), dst.Shape(), "expr: evaluate"); err != nil {
		return err
	}
	if dst.Shape().IsEmpty() {
		return nil
	}
	evaluate(nodeOf(e), dst, p)
	return nil
}

// EvaluateByScalars writes e into dst without lane-wise evaluation.
func EvaluateByScalars[T lane.Lanes](e Expr[T], dst *matrix.Dense[T]) error {
	return EvaluateWith(e, dst, PolicyScalars)
}

// EvaluatePlan writes e into dst with strategy s regardless of cost.
// Linear strategies accept a strided destination except LaneLinear, which
// needs a contiguous one; LanePerColumn needs adjacent rows. Lane strategies
// also need a lane form for every node. Otherwise the error wraps
// ErrStrategy.
func EvaluatePlan[T lane.Lanes](e Expr[T], dst *matrix.Dense[T], s Strategy) error {
	if err := shape.Check(e.Shape(), dst.Shape(), "expr: evaluate"); err != nil {
		return err
	}
	nd := nodeOf(e)
	c := nd.costs()
	switch s {
	case LaneLinear:
		if !c.linearLanes || !dst.IsContiguous() {
			return fmt.Errorf("expr: %v into %v: %w", s, dst.Shape(), ErrStrategy)
		}
	case LanePerColumn:
		if !c.perColumnLanes || dst.RowStep() != 1 && dst.Rows() > 1 {
			return fmt.Errorf("expr: %v into %v: %w", s, dst.Shape(), ErrStrategy)
		}
	case ScalarLinear, ScalarPerColumn, CachedLinear:
	default:
		return fmt.Errorf("expr: %v: %w", s, ErrStrategy)
	}
	if dst.Shape().IsEmpty() {
		return nil
	}
	if s.Linear() {
		runLinear(nd.linearEval(), dst, s.Lanes())
	} else {
		runPerColumn(nd.perColumnEval(), dst, s.Lanes())
	}
	return nil
}

// evaluateDefault is Evaluate for callers that already checked the shape.
func evaluateDefault[T lane.Lanes](e Expr[T], dst *matrix.Dense[T]) {
	if dst.Shape().IsEmpty() {
		return
	}
	evaluate(nodeOf(e), dst, PolicyDefault)
}

func evaluate[T lane.Lanes](nd node[T], dst *matrix.Dense[T], p Policy) {
	if p == PolicyDefault {
		p = PolicyEvaluators
		if _, ok := nd.(copier[T]); ok {
			p = PolicyCopy
		}
	}
	if p == PolicyCopy {
		if cp, ok := nd.(copier[T]); ok {
			cp.copyTo(dst)
			return
		}
	}
	plan := selectPlan(nd.costs(), dst)
	if p == PolicyScalars {
		plan.lanes = false
	}
	if plan.linear {
		runLinear(nd.linearEval(), dst, plan.lanes)
	} else {
		runPerColumn(nd.perColumnEval(), dst, plan.lanes)
	}
}

// runLinear drives a linear evaluator over every element of dst.
func runLinear[T lane.Lanes](ev evaluator[T], dst *matrix.Dense[T], lanes bool) {
	data := dst.Data()
	if data == nil {
		for i := range dst.Len() {
			dst.SetLin(i, ev.Get(i))
		}
		return
	}
	if !lanes {
		for i := range data {
			data[i] = ev.Get(i)
		}
		return
	}
	lane.ProcessWithTail[T](len(data),
		func(offset int) {
			ev.Pack(offset).Store(data[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				data[i] = ev.Get(i)
			}
		},
	)
}

// runPerColumn drives a per-column evaluator over the columns of dst.
func runPerColumn[T lane.Lanes](ev evaluator[T], dst *matrix.Dense[T], lanes bool) {
	m := dst.Rows()
	for j := range dst.Cols() {
		if j > 0 {
			ev.NextColumn()
		}
		col := dst.Col(j)
		switch {
		case col == nil:
			for i := range m {
				dst.Set(i, j, ev.Get(i))
			}
		case lanes:
			lane.ProcessWithTail[T](m,
				func(offset int) {
					ev.Pack(offset).Store(col[offset:])
				},
				func(offset, count int) {
					for i := offset; i < offset+count; i++ {
						col[i] = ev.Get(i)
					}
				},
			)
		default:
			for i := range col {
				col[i] = ev.Get(i)
			}
		}
	}
}
