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

// Package shape describes the extents of matrix expressions.
//
// A Shape carries two pairs of extents: the static ones, fixed when the
// matrix or expression type is built (Dynamic when unknown), and the bound
// ones, the actual row and column counts. Evaluator selection reads only the
// static extents so that the choice is made once per expression.
package shape

import (
	"errors"
	"fmt"
)

// Dynamic marks a static extent that is determined at run time.
const Dynamic = 0

var (
	// ErrMismatch is returned when two operands disagree in row or column count.
	ErrMismatch = errors.New("shape: size mismatch")

	// ErrInvalid is returned for negative extents or extents that contradict
	// their static counterparts.
	ErrInvalid = errors.New("shape: invalid extents")
)

// Shape is the (rows, columns) descriptor of a matrix or expression.
type Shape struct {
	// CTRows and CTCols are the static extents, or Dynamic.
	CTRows, CTCols int

	// Rows and Cols are the bound extents.
	Rows, Cols int
}

// New returns a shape with explicit static and bound extents. A static extent
// other than Dynamic must equal the bound one.
func New(ctRows, ctCols, rows, cols int) (Shape, error) {
	if rows < 0 || cols < 0 || ctRows < 0 || ctCols < 0 {
		return Shape{}, fmt.Errorf("shape.New(%d,%d,%d,%d): %w", ctRows, ctCols, rows, cols, ErrInvalid)
	}
	if (ctRows != Dynamic && ctRows != rows) || (ctCols != Dynamic && ctCols != cols) {
		return Shape{}, fmt.Errorf("shape.New(%d,%d,%d,%d): %w", ctRows, ctCols, rows, cols, ErrInvalid)
	}
	return Shape{CTRows: ctRows, CTCols: ctCols, Rows: rows, Cols: cols}, nil
}

// Fixed returns a fully static m×n shape. It panics if m or n is not positive,
// since a static extent of zero would read as Dynamic.
func Fixed(m, n int) Shape {
	if m <= 0 || n <= 0 {
		panic(fmt.Sprintf("shape.Fixed(%d,%d): static extents must be positive", m, n))
	}
	return Shape{CTRows: m, CTCols: n, Rows: m, Cols: n}
}

// Dyn returns an m×n shape with both extents determined at run time.
// It panics on negative extents.
func Dyn(m, n int) Shape {
	if m < 0 || n < 0 {
		panic(fmt.Sprintf("shape.Dyn(%d,%d): negative extent", m, n))
	}
	return Shape{Rows: m, Cols: n}
}

// Len returns rows × columns.
func (s Shape) Len() int { return s.Rows * s.Cols }

// IsEmpty reports whether the shape holds no elements.
func (s Shape) IsEmpty() bool { return s.Rows == 0 || s.Cols == 0 }

// IsScalar reports whether the shape is 1×1.
func (s Shape) IsScalar() bool { return s.Rows == 1 && s.Cols == 1 }

// IsRow reports whether the shape has exactly one row.
func (s Shape) IsRow() bool { return s.Rows == 1 }

// IsColumn reports whether the shape has exactly one column.
func (s Shape) IsColumn() bool { return s.Cols == 1 }

// IsVector reports whether the shape is a single row or a single column.
func (s Shape) IsVector() bool { return s.Rows == 1 || s.Cols == 1 }

// IsStatic reports whether both extents are known statically.
func (s Shape) IsStatic() bool { return s.CTRows != Dynamic && s.CTCols != Dynamic }

// StaticRow reports whether the shape is statically known to be a single row.
func (s Shape) StaticRow() bool { return s.CTRows == 1 }

// StaticColumn reports whether the shape is statically known to be a single column.
func (s Shape) StaticColumn() bool { return s.CTCols == 1 }

// StaticScalar reports whether the shape is statically known to be 1×1.
func (s Shape) StaticScalar() bool { return s.CTRows == 1 && s.CTCols == 1 }

// SameSize reports whether s and o have the same bound extents.
func (s Shape) SameSize(o Shape) bool { return s.Rows == o.Rows && s.Cols == o.Cols }

// String formats the shape as "m×n", marking dynamic extents with a '?'.
func (s Shape) String() string {
	return fmt.Sprintf("%s×%s", extent(s.CTRows, s.Rows), extent(s.CTCols, s.Cols))
}

func extent(ct, n int) string {
	if ct == Dynamic {
		return fmt.Sprintf("%d?", n)
	}
	return fmt.Sprintf("%d", n)
}

// Check returns an ErrMismatch naming what when a and b differ in size.
func Check(a, b Shape, what string) error {
	if !a.SameSize(b) {
		return fmt.Errorf("%s: %v vs %v: %w", what, a, b, ErrMismatch)
	}
	return nil
}

// Binary returns the shape of an element-wise combination of a and b, which
// must have the same size. A static extent known on either side is kept.
func Binary(a, b Shape) (Shape, error) {
	if err := Check(a, b, "shape.Binary"); err != nil {
		return Shape{}, err
	}
	if a.CTRows != Dynamic && b.CTRows != Dynamic && a.CTRows != b.CTRows ||
		a.CTCols != Dynamic && b.CTCols != Dynamic && a.CTCols != b.CTCols {
		return Shape{}, fmt.Errorf("shape.Binary: %v vs %v: %w", a, b, ErrMismatch)
	}
	return Shape{
		CTRows: staticOf(a.CTRows, b.CTRows),
		CTCols: staticOf(a.CTCols, b.CTCols),
		Rows:   a.Rows,
		Cols:   a.Cols,
	}, nil
}

func staticOf(a, b int) int {
	if a != Dynamic {
		return a
	}
	return b
}
