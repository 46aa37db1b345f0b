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

// Package matrix provides the storage the evaluation engine reads from and
// writes into: column-major dense matrices and views with an explicit lead
// dimension and row step, and constant-valued matrices.
//
// Any type implementing Reader can take part in an expression. Dense adds
// the raw layout queries (IsContiguous, LeadDim, RowStep, Data, Col) that let
// evaluators address memory directly.
package matrix

import (
	"fmt"

	"github.com/ajroetker/go-lightmat/index"
	"github.com/ajroetker/go-lightmat/lane"
	"github.com/ajroetker/go-lightmat/shape"
)

// Reader is the readable-matrix capability: a shape and element access.
type Reader[T lane.Lanes] interface {
	Shape() shape.Shape
	At(i, j int) T
}

// Dense is a column-major matrix or a strided view into one.
//
// Element (i, j) lives at data[off + i*rowStep + j*lead]. An owned matrix has
// rowStep 1 and lead equal to its row count; views taken with step ranges may
// have any non-zero steps.
type Dense[T lane.Lanes] struct {
	data    []T
	off     int
	sh      shape.Shape
	rowStep int
	lead    int
}

var _ Reader[float64] = (*Dense[float64])(nil)

// New allocates a zeroed rows×cols matrix whose extents are dynamic.
// It panics on negative extents.
func New[T lane.Lanes](rows, cols int) *Dense[T] {
	return newDense[T](shape.Dyn(rows, cols))
}

// NewFixed allocates a zeroed m×n matrix whose extents are static.
// It panics unless m and n are positive.
func NewFixed[T lane.Lanes](m, n int) *Dense[T] {
	return newDense[T](shape.Fixed(m, n))
}

// NewShaped allocates a zeroed matrix with the given shape.
func NewShaped[T lane.Lanes](sh shape.Shape) *Dense[T] {
	return newDense[T](sh)
}

func newDense[T lane.Lanes](sh shape.Shape) *Dense[T] {
	return &Dense[T]{
		data:    make([]T, sh.Len()),
		sh:      sh,
		rowStep: 1,
		lead:    max(sh.Rows, 1),
	}
}

// FromSlice wraps data, laid out column-major, as a rows×cols matrix.
// The matrix borrows data; writes through either are visible to both.
func FromSlice[T lane.Lanes](data []T, rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("matrix.FromSlice(len=%d, %d, %d): %w", len(data), rows, cols, shape.ErrInvalid)
	}
	return &Dense[T]{data: data, sh: shape.Dyn(rows, cols), rowStep: 1, lead: max(rows, 1)}, nil
}

// Ref wraps data as a rows×cols view whose columns start lead elements apart.
// lead must be at least rows.
func Ref[T lane.Lanes](data []T, rows, cols, lead int) (*Dense[T], error) {
	if rows < 0 || cols < 0 || lead < max(rows, 1) {
		return nil, fmt.Errorf("matrix.Ref(%d, %d, lead=%d): %w", rows, cols, lead, shape.ErrInvalid)
	}
	if rows > 0 && cols > 0 && (cols-1)*lead+rows > len(data) {
		return nil, fmt.Errorf("matrix.Ref(%d, %d, lead=%d): data too short (%d): %w", rows, cols, lead, len(data), shape.ErrInvalid)
	}
	return &Dense[T]{data: data, sh: shape.Dyn(rows, cols), rowStep: 1, lead: lead}, nil
}

// WithStatic returns a view of d whose shape reports the given static extents.
// Each static extent must be Dynamic or equal the bound one.
func (d *Dense[T]) WithStatic(ctRows, ctCols int) (*Dense[T], error) {
	sh, err := shape.New(ctRows, ctCols, d.sh.Rows, d.sh.Cols)
	if err != nil {
		return nil, err
	}
	v := *d
	v.sh = sh
	return &v, nil
}

// Shape returns the matrix shape.
func (d *Dense[T]) Shape() shape.Shape { return d.sh }

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.sh.Rows }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.sh.Cols }

// Len returns the number of elements.
func (d *Dense[T]) Len() int { return d.sh.Len() }

// LeadDim returns the distance between the starts of consecutive columns.
func (d *Dense[T]) LeadDim() int { return d.lead }

// RowStep returns the distance between consecutive elements of a column.
func (d *Dense[T]) RowStep() int { return d.rowStep }

// IsContiguous reports whether the elements occupy one gap-free run in
// column-major order.
func (d *Dense[T]) IsContiguous() bool {
	if d.sh.IsEmpty() {
		return true
	}
	if d.rowStep != 1 && d.sh.Rows > 1 {
		return false
	}
	return d.sh.Cols == 1 || d.lead == d.sh.Rows
}

func (d *Dense[T]) offset(i, j int) int {
	return d.off + i*d.rowStep + j*d.lead
}

// At returns element (i, j).
func (d *Dense[T]) At(i, j int) T {
	return d.data[d.offset(i, j)]
}

// Set assigns element (i, j).
func (d *Dense[T]) Set(i, j int, v T) {
	d.data[d.offset(i, j)] = v
}

// AtLin returns the element at column-major linear index i.
func (d *Dense[T]) AtLin(i int) T {
	m := d.sh.Rows
	return d.At(i%m, i/m)
}

// SetLin assigns the element at column-major linear index i.
func (d *Dense[T]) SetLin(i int, v T) {
	m := d.sh.Rows
	d.Set(i%m, i/m, v)
}

// Data returns the elements as one slice in column-major order, or nil when
// the matrix is not contiguous.
func (d *Dense[T]) Data() []T {
	if !d.IsContiguous() {
		return nil
	}
	n := d.sh.Len()
	if n == 0 {
		return d.data[:0:0]
	}
	return d.data[d.off : d.off+n : d.off+n]
}

// Col returns column j as a slice, or nil when elements within a column are
// not adjacent.
func (d *Dense[T]) Col(j int) []T {
	m := d.sh.Rows
	if m == 0 {
		return d.data[:0:0]
	}
	if d.rowStep != 1 && m > 1 {
		return nil
	}
	start := d.off + j*d.lead
	return d.data[start : start+m : start+m]
}

// View returns the sub-matrix selected by the row and column ranges. The view
// shares storage with d. Static extents survive only along Whole ranges.
func (d *Dense[T]) View(rows, cols index.Range) *Dense[T] {
	m := rows.Num(d.sh.Rows)
	n := cols.Num(d.sh.Cols)
	checkRange(rows, d.sh.Rows, m, "row")
	checkRange(cols, d.sh.Cols, n, "column")

	v := &Dense[T]{
		data:    d.data,
		off:     d.off,
		sh:      shape.Dyn(m, n),
		rowStep: d.rowStep * rows.Stride(),
		lead:    d.lead * cols.Stride(),
	}
	if m > 0 && n > 0 {
		v.off = d.offset(rows.Offset(d.sh.Rows, 0), cols.Offset(d.sh.Cols, 0))
	}
	if _, ok := rows.(index.Whole); ok {
		v.sh.CTRows = d.sh.CTRows
	}
	if _, ok := cols.(index.Whole); ok {
		v.sh.CTCols = d.sh.CTCols
	}
	if n <= 1 {
		v.lead = max(v.lead, 1)
	}
	return v
}

func checkRange(r index.Range, dim, n int, what string) {
	if n == 0 {
		return
	}
	first, last := r.Offset(dim, 0), r.Offset(dim, n-1)
	if first < 0 || first >= dim || last < 0 || last >= dim {
		panic(fmt.Sprintf("matrix: %s range [%d..%d] out of bounds for extent %d", what, first, last, dim))
	}
}

// Column returns an m×1 view of column j.
func (d *Dense[T]) Column(j int) *Dense[T] {
	v := d.View(index.Whole{}, index.NewSpan(j, 1))
	v.sh.CTCols = 1
	return v
}

// Row returns a 1×n view of row i.
func (d *Dense[T]) Row(i int) *Dense[T] {
	v := d.View(index.NewSpan(i, 1), index.Whole{})
	v.sh.CTRows = 1
	return v
}

// Fill assigns v to every element.
func (d *Dense[T]) Fill(v T) {
	if data := d.Data(); data != nil {
		lane.Fill(data, v)
		return
	}
	for j := range d.sh.Cols {
		lane.FillStrided(d.data, d.offset(0, j), d.rowStep, d.sh.Rows, v)
	}
}

// Zero assigns zero to every element.
func (d *Dense[T]) Zero() {
	var zero T
	d.Fill(zero)
}

// Clone returns a contiguous copy of d with the same shape.
func (d *Dense[T]) Clone() *Dense[T] {
	c := newDense[T](d.sh)
	if data := d.Data(); data != nil {
		copy(c.data, data)
		return c
	}
	for j := range d.sh.Cols {
		for i := range d.sh.Rows {
			c.data[j*c.lead+i] = d.At(i, j)
		}
	}
	return c
}

// Const is an immutable matrix whose every element equals one value.
// It is a small value type and is held by copy inside expressions.
type Const[T lane.Lanes] struct {
	sh shape.Shape
	v  T
}

var _ Reader[float64] = Const[float64]{}

// NewConst returns a rows×cols constant matrix with dynamic extents.
func NewConst[T lane.Lanes](rows, cols int, v T) Const[T] {
	return Const[T]{sh: shape.Dyn(rows, cols), v: v}
}

// ConstLike returns a constant matrix with the shape (static extents
// included) of sh.
func ConstLike[T lane.Lanes](sh shape.Shape, v T) Const[T] {
	return Const[T]{sh: sh, v: v}
}

func (c Const[T]) Shape() shape.Shape { return c.sh }
func (c Const[T]) At(_, _ int) T      { return c.v }

// Value returns the constant.
func (c Const[T]) Value() T { return c.v }

// Equal reports whether a and b have the same size and elements.
func Equal[T lane.Lanes](a, b Reader[T]) bool {
	sa, sb := a.Shape(), b.Shape()
	if !sa.SameSize(sb) {
		return false
	}
	for j := range sa.Cols {
		for i := range sa.Rows {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}
