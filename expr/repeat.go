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
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/shape"
)

// HRepeat replicates a column vector across columns: element (i, j) equals
// seed(i, 0).
type HRepeat[T lane.Lanes] struct {
	src  Expr[T]
	seed node[T]
	sh   shape.Shape
	c    costs

	// ctFactor is the static column count, or shape.Dynamic.
	ctFactor int
}

// HorizontalRepeat repeats seed, which must have one column, n times.
// The column count is dynamic.
func HorizontalRepeat[T lane.Lanes](seed Expr[T], n int) (*HRepeat[T], error) {
	return newHRepeat(seed, shape.Dynamic, n)
}

// HorizontalRepeatFixed is HorizontalRepeat with a static column count n,
// which must be positive.
func HorizontalRepeatFixed[T lane.Lanes](seed Expr[T], n int) (*HRepeat[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("expr: horizontal repeat: static factor %d: %w", n, shape.ErrInvalid)
	}
	return newHRepeat(seed, n, n)
}

func newHRepeat[T lane.Lanes](seed Expr[T], ct, n int) (*HRepeat[T], error) {
	ss := seed.Shape()
	if ss.Cols != 1 {
		return nil, fmt.Errorf("expr: horizontal repeat: seed %v is not a column: %w", ss, shape.ErrMismatch)
	}
	if n < 0 {
		return nil, fmt.Errorf("expr: horizontal repeat: factor %d: %w", n, shape.ErrInvalid)
	}
	sh, err := shape.New(ss.CTRows, ct, ss.Rows, n)
	if err != nil {
		return nil, fmt.Errorf("expr: horizontal repeat: %w", err)
	}
	r := &HRepeat[T]{src: seed, seed: nodeOf(seed), sh: sh, ctFactor: ct}
	r.c = repeatCosts(r.seed.costs(), ct, ss.CTRows, shortCost(ss.CTRows), r.seed.costs().perColumnLanes)
	return r, nil
}

// repeatCosts returns the costs of a repeat node whose static factor is ct
// and whose seed has static extent seedCT along the kept axis.
func repeatCosts(seed costs, ct, seedCT, perColumn int, perColumnLanes bool) costs {
	switch {
	case ct == 1:
		return seed
	case seedCT == 1:
		return costs{linearLanes: true, perColumnLanes: true}
	default:
		return costs{
			linear:         CacheCost,
			perColumn:      perColumn,
			perColumnLanes: perColumnLanes,
			cached:         true,
		}
	}
}

func (r *HRepeat[T]) Shape() shape.Shape { return r.sh }
func (r *HRepeat[T]) At(i, _ int) T      { return r.seed.At(i, 0) }

// Seed returns the repeated column.
func (r *HRepeat[T]) Seed() Expr[T] { return r.src }

func (r *HRepeat[T]) costs() costs { return r.c }

func (r *HRepeat[T]) linearEval() evaluator[T] {
	switch {
	case r.ctFactor == 1:
		return r.seed.linearEval()
	case r.seed.Shape().CTRows == 1:
		return scalarEval[T]{v: r.seed.linearEval().Get(0)}
	default:
		m := r.sh.Rows
		cache := make([]T, m)
		ev := r.seed.linearEval()
		for i := range cache {
			cache[i] = ev.Get(i)
		}
		return &repColLinearEval[T]{col: cache}
	}
}

func (r *HRepeat[T]) perColumnEval() evaluator[T] {
	switch {
	case r.ctFactor == 1:
		return r.seed.perColumnEval()
	case r.seed.Shape().CTRows == 1:
		return scalarEval[T]{v: r.seed.linearEval().Get(0)}
	default:
		return &repColEval[T]{seed: r.seed, ev: r.seed.perColumnEval()}
	}
}

// copyTo copies the seed column into every column of dst. A seed that is not
// a dense matrix is first evaluated into the first column of dst.
func (r *HRepeat[T]) copyTo(dst *matrix.Dense[T]) {
	n := dst.Cols()
	switch {
	case n == 1:
		evaluateDefault(r.src, dst)
		return
	case r.sh.Rows == 1:
		dst.Fill(r.seed.linearEval().Get(0))
		return
	}

	start := 0
	src, ok := r.src.(*matrix.Dense[T])
	if !ok {
		src = dst.Column(0)
		evaluateDefault(r.src, src)
		start = 1
	}
	for j := start; j < n; j++ {
		copyColumn(dst, j, src)
	}
}

// copyColumn copies the single column of src into column j of dst.
func copyColumn[T lane.Lanes](dst *matrix.Dense[T], j int, src *matrix.Dense[T]) {
	d, s := dst.Col(j), src.Col(0)
	if d != nil && s != nil {
		lane.Copy(s, d)
		return
	}
	for i := range dst.Rows() {
		dst.Set(i, j, src.At(i, 0))
	}
}

// repColLinearEval reads a cached seed column at i mod m.
type repColLinearEval[T lane.Lanes] struct {
	col []T
}

func (e *repColLinearEval[T]) Get(i int) T            { return e.col[i%len(e.col)] }
func (e *repColLinearEval[T]) Pack(i int) lane.Vec[T] { return lane.Gather(e.Get, i) }
func (e *repColLinearEval[T]) NextColumn()            {}

// repColEval re-evaluates the seed for every column: each column restarts
// the seed's own per-column evaluator at its first column.
type repColEval[T lane.Lanes] struct {
	seed node[T]
	ev   evaluator[T]
}

func (e *repColEval[T]) Get(i int) T            { return e.ev.Get(i) }
func (e *repColEval[T]) Pack(i int) lane.Vec[T] { return e.ev.Pack(i) }
func (e *repColEval[T]) NextColumn()            { e.ev = e.seed.perColumnEval() }

// VRepeat replicates a row vector across rows: element (i, j) equals
// seed(0, j).
type VRepeat[T lane.Lanes] struct {
	src  Expr[T]
	seed node[T]
	sh   shape.Shape
	c    costs

	// ctFactor is the static row count, or shape.Dynamic.
	ctFactor int
}

// VerticalRepeat repeats seed, which must have one row, m times.
// The row count is dynamic.
func VerticalRepeat[T lane.Lanes](seed Expr[T], m int) (*VRepeat[T], error) {
	return newVRepeat(seed, shape.Dynamic, m)
}

// VerticalRepeatFixed is VerticalRepeat with a static row count m, which
// must be positive.
func VerticalRepeatFixed[T lane.Lanes](seed Expr[T], m int) (*VRepeat[T], error) {
	if m <= 0 {
		return nil, fmt.Errorf("expr: vertical repeat: static factor %d: %w", m, shape.ErrInvalid)
	}
	return newVRepeat(seed, m, m)
}

func newVRepeat[T lane.Lanes](seed Expr[T], ct, m int) (*VRepeat[T], error) {
	ss := seed.Shape()
	if ss.Rows != 1 {
		return nil, fmt.Errorf("expr: vertical repeat: seed %v is not a row: %w", ss, shape.ErrMismatch)
	}
	if m < 0 {
		return nil, fmt.Errorf("expr: vertical repeat: factor %d: %w", m, shape.ErrInvalid)
	}
	sh, err := shape.New(ct, ss.CTCols, m, ss.Cols)
	if err != nil {
		return nil, fmt.Errorf("expr: vertical repeat: %w", err)
	}
	r := &VRepeat[T]{src: seed, seed: nodeOf(seed), sh: sh, ctFactor: ct}
	r.c = repeatCosts(r.seed.costs(), ct, ss.CTCols, shortCost(ct), true)
	return r, nil
}

func (r *VRepeat[T]) Shape() shape.Shape { return r.sh }
func (r *VRepeat[T]) At(_, j int) T      { return r.seed.At(0, j) }

// Seed returns the repeated row.
func (r *VRepeat[T]) Seed() Expr[T] { return r.src }

func (r *VRepeat[T]) costs() costs { return r.c }

func (r *VRepeat[T]) linearEval() evaluator[T] {
	switch {
	case r.ctFactor == 1:
		return r.seed.linearEval()
	case r.seed.Shape().CTCols == 1:
		return scalarEval[T]{v: r.seed.linearEval().Get(0)}
	default:
		cache := make([]T, r.sh.Cols)
		ev := r.seed.linearEval()
		for j := range cache {
			cache[j] = ev.Get(j)
		}
		return &repRowLinearEval[T]{row: cache, m: r.sh.Rows}
	}
}

func (r *VRepeat[T]) perColumnEval() evaluator[T] {
	switch {
	case r.ctFactor == 1:
		return r.seed.perColumnEval()
	case r.seed.Shape().CTCols == 1:
		return scalarEval[T]{v: r.seed.linearEval().Get(0)}
	default:
		e := &repRowEval[T]{row: r.seed.linearEval(), n: r.sh.Cols}
		if e.n > 0 {
			e.cur = e.row.Get(0)
		}
		return e
	}
}

// copyTo fills every column of dst with the matching seed element. When the
// seed is not dense it is evaluated once into the first row of dst.
func (r *VRepeat[T]) copyTo(dst *matrix.Dense[T]) {
	switch {
	case dst.Rows() == 1:
		evaluateDefault(r.src, dst)
		return
	case r.sh.Cols == 1:
		dst.Fill(r.seed.linearEval().Get(0))
		return
	}

	row, ok := r.src.(*matrix.Dense[T])
	if !ok {
		row = dst.Row(0)
		evaluateDefault(r.src, row)
	}
	for j := range dst.Cols() {
		fillColumn(dst, j, row.At(0, j))
	}
}

// repRowLinearEval reads a cached seed row at i div m.
type repRowLinearEval[T lane.Lanes] struct {
	row []T
	m   int
}

func (e *repRowLinearEval[T]) Get(i int) T            { return e.row[i/e.m] }
func (e *repRowLinearEval[T]) Pack(i int) lane.Vec[T] { return lane.Gather(e.Get, i) }
func (e *repRowLinearEval[T]) NextColumn()            {}

// repRowEval holds the seed element of the current column. row is the
// seed's linear evaluator, whose index j is column j of a 1×n seed.
type repRowEval[T lane.Lanes] struct {
	row evaluator[T]
	cur T
	j   int
	n   int
}

func (e *repRowEval[T]) Get(int) T            { return e.cur }
func (e *repRowEval[T]) Pack(int) lane.Vec[T] { return lane.Set(e.cur) }

func (e *repRowEval[T]) NextColumn() {
	e.j++
	if e.j < e.n {
		e.cur = e.row.Get(e.j)
	}
}
