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
	"github.com/ajroetker/go-lightmat/lane"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/shape"
)

// evaluator is the access protocol shared by all strategies.
//
// A linear evaluator answers Get(i) for the column-major linear index i and
// ignores NextColumn. A per-column evaluator answers Get(i) for row i of the
// current column; NextColumn moves to the next column and is called once
// before each column after the first.
//
// Pack(i) returns the lanes starting at index i. Callers only ask for full
// vectors, so i+MaxLanes never passes the end of the walk.
type evaluator[T lane.Lanes] interface {
	Get(i int) T
	Pack(i int) lane.Vec[T]
	NextColumn()
}

// denseLeaf reads a *matrix.Dense.
type denseLeaf[T lane.Lanes] struct {
	*matrix.Dense[T]
	c costs
}

func newDenseLeaf[T lane.Lanes](d *matrix.Dense[T]) denseLeaf[T] {
	contiguous := d.IsContiguous()
	c := costs{
		perColumn:      shortCost(d.Shape().CTRows),
		linearLanes:    contiguous,
		perColumnLanes: d.RowStep() == 1 || d.Rows() <= 1,
	}
	if !contiguous {
		c.linear = CacheCost
	}
	return denseLeaf[T]{Dense: d, c: c}
}

func (l denseLeaf[T]) costs() costs { return l.c }

func (l denseLeaf[T]) linearEval() evaluator[T] {
	if data := l.Data(); data != nil {
		return sliceEval[T](data)
	}
	return &stridedLinearEval[T]{d: l.Dense}
}

func (l denseLeaf[T]) perColumnEval() evaluator[T] {
	return newDenseColumnEval(l.Dense)
}

func (l denseLeaf[T]) copyTo(dst *matrix.Dense[T]) {
	copyDense(dst, l.Dense)
}

// sliceEval reads a contiguous run.
type sliceEval[T lane.Lanes] []T

func (s sliceEval[T]) Get(i int) T            { return s[i] }
func (s sliceEval[T]) Pack(i int) lane.Vec[T] { return lane.Load([]T(s[i:])) }
func (s sliceEval[T]) NextColumn()            {}

// stridedLinearEval maps linear indices onto a non-contiguous view.
type stridedLinearEval[T lane.Lanes] struct {
	d *matrix.Dense[T]
}

func (e *stridedLinearEval[T]) Get(i int) T            { return e.d.AtLin(i) }
func (e *stridedLinearEval[T]) Pack(i int) lane.Vec[T] { return lane.Gather(e.Get, i) }
func (e *stridedLinearEval[T]) NextColumn()            {}

// denseColumnEval walks a dense matrix column by column. col is nil when
// rows are not adjacent.
type denseColumnEval[T lane.Lanes] struct {
	d   *matrix.Dense[T]
	j   int
	col []T
}

func newDenseColumnEval[T lane.Lanes](d *matrix.Dense[T]) *denseColumnEval[T] {
	e := &denseColumnEval[T]{d: d}
	if d.Cols() > 0 {
		e.col = d.Col(0)
	}
	return e
}

func (e *denseColumnEval[T]) Get(i int) T {
	if e.col != nil {
		return e.col[i]
	}
	return e.d.At(i, e.j)
}

func (e *denseColumnEval[T]) Pack(i int) lane.Vec[T] {
	if e.col != nil {
		return lane.Load(e.col[i:])
	}
	return lane.Gather(e.Get, i)
}

func (e *denseColumnEval[T]) NextColumn() {
	e.j++
	if e.j < e.d.Cols() {
		e.col = e.d.Col(e.j)
	}
}

// constLeaf reads a matrix.Const.
type constLeaf[T lane.Lanes] struct {
	c matrix.Const[T]
}

func (l constLeaf[T]) Shape() shape.Shape          { return l.c.Shape() }
func (l constLeaf[T]) At(i, j int) T               { return l.c.Value() }
func (l constLeaf[T]) costs() costs                { return costs{linearLanes: true, perColumnLanes: true} }
func (l constLeaf[T]) linearEval() evaluator[T]    { return scalarEval[T]{v: l.c.Value()} }
func (l constLeaf[T]) perColumnEval() evaluator[T] { return scalarEval[T]{v: l.c.Value()} }
func (l constLeaf[T]) copyTo(dst *matrix.Dense[T]) { dst.Fill(l.c.Value()) }

// scalarEval returns one value everywhere. It serves constants and repeats
// of a 1×1 seed, under both routes.
type scalarEval[T lane.Lanes] struct {
	v T
}

func (e scalarEval[T]) Get(int) T            { return e.v }
func (e scalarEval[T]) Pack(int) lane.Vec[T] { return lane.Set(e.v) }
func (e scalarEval[T]) NextColumn()          {}

// readerLeaf reads any other matrix.Reader through At.
type readerLeaf[T lane.Lanes] struct {
	Expr[T]
	c costs
}

func newReaderLeaf[T lane.Lanes](e Expr[T]) readerLeaf[T] {
	return readerLeaf[T]{
		Expr: e,
		c:    costs{linear: CacheCost, perColumn: shortCost(e.Shape().CTRows)},
	}
}

func (l readerLeaf[T]) costs() costs { return l.c }

func (l readerLeaf[T]) linearEval() evaluator[T] {
	return &readerLinearEval[T]{r: l.Expr, m: l.Shape().Rows}
}

func (l readerLeaf[T]) perColumnEval() evaluator[T] {
	return &readerColumnEval[T]{r: l.Expr}
}

func (l readerLeaf[T]) copyTo(dst *matrix.Dense[T]) {
	for j := range dst.Cols() {
		for i := range dst.Rows() {
			dst.Set(i, j, l.At(i, j))
		}
	}
}

type readerLinearEval[T lane.Lanes] struct {
	r Expr[T]
	m int
}

func (e *readerLinearEval[T]) Get(i int) T            { return e.r.At(i%e.m, i/e.m) }
func (e *readerLinearEval[T]) Pack(i int) lane.Vec[T] { return lane.Gather(e.Get, i) }
func (e *readerLinearEval[T]) NextColumn()            {}

type readerColumnEval[T lane.Lanes] struct {
	r Expr[T]
	j int
}

func (e *readerColumnEval[T]) Get(i int) T            { return e.r.At(i, e.j) }
func (e *readerColumnEval[T]) Pack(i int) lane.Vec[T] { return lane.Gather(e.Get, i) }
func (e *readerColumnEval[T]) NextColumn()            { e.j++ }

// copyDense copies src into dst column by column.
func copyDense[T lane.Lanes](dst, src *matrix.Dense[T]) {
	if d, s := dst.Data(), src.Data(); d != nil && s != nil {
		lane.Copy(s, d)
		return
	}
	for j := range dst.Cols() {
		d, s := dst.Col(j), src.Col(j)
		if d != nil && s != nil {
			lane.Copy(s, d)
			continue
		}
		for i := range dst.Rows() {
			dst.Set(i, j, src.At(i, j))
		}
	}
}

// fillColumn assigns v to column j of dst.
func fillColumn[T lane.Lanes](dst *matrix.Dense[T], j int, v T) {
	if col := dst.Col(j); col != nil {
		lane.Fill(col, v)
		return
	}
	for i := range dst.Rows() {
		dst.Set(i, j, v)
	}
}
