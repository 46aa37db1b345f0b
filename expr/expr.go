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

// Package expr builds element-wise and repeat expressions over matrices and
// evaluates them into dense destinations.
//
// An expression is a tree whose leaves are matrix.Reader values (usually
// *matrix.Dense views or matrix.Const) and whose inner nodes are created by
// Ewise, Ewise2, HorizontalRepeat and VerticalRepeat. Nodes are immutable;
// building one checks operand shapes and fixes the cost of every evaluation
// strategy the node supports.
//
// Evaluation picks a strategy per destination:
//
//	ScalarLinear     one pass over the column-major linear index
//	LaneLinear       the same pass in lane-sized chunks plus a scalar tail
//	ScalarPerColumn  column by column, for strided operands or destinations
//	LanePerColumn    per-column, each column in lane-sized chunks
//	CachedLinear     linear, with a repeat seed materialized once
//
// Every strategy produces the same values as reading the expression with
// At(i, j) in a nested loop.
package expr

import (
	"github.com/ajroetker/go-lightmat/lane"
	"github.com/ajroetker/go-lightmat/matrix"
)

// Expr is anything that can appear in an expression: a shape plus element
// access. All nodes built by this package implement it, so At also serves as
// the naive reference evaluation.
type Expr[T lane.Lanes] interface {
	matrix.Reader[T]
}

// Holder says how an expression holds one of its arguments.
type Holder int

const (
	// ByRef means the argument refers to storage owned by the caller, which
	// must outlive the expression.
	ByRef Holder = iota
	// ByCopy means the expression owns a private, immutable copy.
	ByCopy
)

func (h Holder) String() string {
	if h == ByCopy {
		return "copy"
	}
	return "ref"
}

// HolderOf reports how an expression node would hold e as an argument.
// Dense matrices and foreign readers are referenced; constants and nodes of
// this package are immutable values and are held by copy.
func HolderOf[T lane.Lanes](e Expr[T]) Holder {
	switch e.(type) {
	case matrix.Const[T], node[T]:
		return ByCopy
	default:
		return ByRef
	}
}

// node is the internal side of an expression: its strategy costs and the
// evaluators it can produce. Evaluators are built fresh for every evaluation.
type node[T lane.Lanes] interface {
	Expr[T]
	costs() costs
	linearEval() evaluator[T]
	perColumnEval() evaluator[T]
}

// copier is implemented by nodes that have a direct copy or fill routine
// used by the copy policy.
type copier[T lane.Lanes] interface {
	copyTo(dst *matrix.Dense[T])
}

// nodeOf returns e as a node, wrapping leaves.
func nodeOf[T lane.Lanes](e Expr[T]) node[T] {
	switch x := e.(type) {
	case node[T]:
		return x
	case *matrix.Dense[T]:
		return newDenseLeaf(x)
	case matrix.Const[T]:
		return constLeaf[T]{c: x}
	default:
		return newReaderLeaf(e)
	}
}
