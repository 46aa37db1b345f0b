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
	"fmt"

	"github.com/ajroetker/go-lightmat/lane"
)

// The typed evaluators below expose the evaluation protocol to callers that
// drive an expression by hand. Each one is single-use: build it, walk it
// once, drop it.

// LinearEvaluator reads an expression by column-major linear index.
type LinearEvaluator[T lane.Lanes] struct {
	ev evaluator[T]
}

// NewLinear returns a linear evaluator for e.
func NewLinear[T lane.Lanes](e Expr[T]) *LinearEvaluator[T] {
	return &LinearEvaluator[T]{ev: nodeOf(e).linearEval()}
}

// Get returns the element at linear index i.
func (l *LinearEvaluator[T]) Get(i int) T { return l.ev.Get(i) }

// LaneLinearEvaluator is a LinearEvaluator that can also read whole vectors.
type LaneLinearEvaluator[T lane.Lanes] struct {
	LinearEvaluator[T]
}

// NewLaneLinear returns a lane-wise linear evaluator for e. The error wraps
// ErrStrategy when some node of e has no linear lane form.
func NewLaneLinear[T lane.Lanes](e Expr[T]) (*LaneLinearEvaluator[T], error) {
	nd := nodeOf(e)
	if !nd.costs().linearLanes {
		return nil, fmt.Errorf("expr: lane linear evaluator for %v: %w", e.Shape(), ErrStrategy)
	}
	return &LaneLinearEvaluator[T]{LinearEvaluator[T]{ev: nd.linearEval()}}, nil
}

// Pack returns the MaxLanes[T]() elements starting at linear index i.
func (l *LaneLinearEvaluator[T]) Pack(i int) lane.Vec[T] { return l.ev.Pack(i) }

// PerColumnEvaluator reads an expression one column at a time.
// It starts at column 0; NextColumn must be called once before reading
// each later column.
type PerColumnEvaluator[T lane.Lanes] struct {
	ev evaluator[T]
}

// NewPerColumn returns a per-column evaluator for e.
func NewPerColumn[T lane.Lanes](e Expr[T]) *PerColumnEvaluator[T] {
	return &PerColumnEvaluator[T]{ev: nodeOf(e).perColumnEval()}
}

// Get returns row i of the current column.
func (p *PerColumnEvaluator[T]) Get(i int) T { return p.ev.Get(i) }

// NextColumn advances to the next column.
func (p *PerColumnEvaluator[T]) NextColumn() { p.ev.NextColumn() }

// LanePerColumnEvaluator is a PerColumnEvaluator that can also read whole
// vectors within a column.
type LanePerColumnEvaluator[T lane.Lanes] struct {
	PerColumnEvaluator[T]
}

// NewLanePerColumn returns a lane-wise per-column evaluator for e. The error
// wraps ErrStrategy when some node of e has no per-column lane form.
func NewLanePerColumn[T lane.Lanes](e Expr[T]) (*LanePerColumnEvaluator[T], error) {
	nd := nodeOf(e)
	if !nd.costs().perColumnLanes {
		return nil, fmt.Errorf("expr: lane per-column evaluator for %v: %w", e.Shape(), ErrStrategy)
	}
	return &LanePerColumnEvaluator[T]{PerColumnEvaluator[T]{ev: nd.perColumnEval()}}, nil
}

// Pack returns the MaxLanes[T]() elements starting at row i of the current
// column.
func (p *LanePerColumnEvaluator[T]) Pack(i int) lane.Vec[T] { return p.ev.Pack(i) }
