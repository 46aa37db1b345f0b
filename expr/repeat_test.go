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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/index"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/shape"
)

var (
	allPolicies   = []Policy{PolicyDefault, PolicyEvaluators, PolicyCopy, PolicyScalars}
	allStrategies = []Strategy{ScalarLinear, ScalarPerColumn, LaneLinear, LanePerColumn, CachedLinear}
)

// checkAllRoutes evaluates e into every destination layout with every policy
// and every applicable strategy, and calls want for each element.
func checkAllRoutes(t *testing.T, name string, e Expr[float64], want func(i, j int) float64) {
	t.Helper()
	sh := e.Shape()
	check := func(route string, dst *matrix.Dense[float64]) {
		t.Helper()
		for j := range sh.Cols {
			for i := range sh.Rows {
				if got, w := dst.At(i, j), want(i, j); got != w {
					t.Fatalf("%s/%s: (%d,%d) = %v, want %v", name, route, i, j, got, w)
				}
			}
		}
	}
	for dstName, dst := range layouts(sh.Rows, sh.Cols, 100) {
		for _, p := range allPolicies {
			dst.Fill(-999)
			require.NoError(t, EvaluateWith(e, dst, p))
			check(fmt.Sprintf("%s/%v", dstName, p), dst)
		}
		for _, s := range allStrategies {
			dst.Fill(-999)
			err := EvaluatePlan(e, dst, s)
			if errors.Is(err, ErrStrategy) {
				continue
			}
			require.NoError(t, err)
			check(fmt.Sprintf("%s/%v", dstName, s), dst)
		}
	}
}

func TestHorizontalRepeat(t *testing.T) {
	const m = 5
	base := fill(matrix.New[float64](m, 1), 0)
	fixed := fill(matrix.NewFixed[float64](m, 1), 0)
	seeds := map[string]Expr[float64]{
		"dense":       base,
		"fixed":       fixed,
		"row-strided": fill(matrix.New[float64](2*m, 1), 0).View(index.ColonStep(1, 2, 2*m), index.Whole{}),
		"ewise":       Ewise(negF[float64](), base),
		"column-view": fill(matrix.New[float64](m, 4), 3).Column(2),
	}
	for name, seed := range seeds {
		for _, n := range []int{1, 2, 3, 4, 5, 7} {
			dyn, err := HorizontalRepeat(seed, n)
			require.NoError(t, err)
			fix, err := HorizontalRepeatFixed(seed, n)
			require.NoError(t, err)
			want := func(i, _ int) float64 { return seed.At(i, 0) }
			checkAllRoutes(t, fmt.Sprintf("%s/n=%d/dynamic", name, n), dyn, want)
			checkAllRoutes(t, fmt.Sprintf("%s/n=%d/fixed", name, n), fix, want)
		}
	}
}

func TestVerticalRepeat(t *testing.T) {
	const n = 6
	base := fill(matrix.New[float64](1, n), 0)
	seeds := map[string]Expr[float64]{
		"dense":    base,
		"fixed":    fill(matrix.NewFixed[float64](1, n), 0),
		"strided":  fill(matrix.New[float64](3, 2*n), 0).View(index.NewSpan(1, 1), index.ColonStep(0, 2, 2*n)),
		"ewise":    Ewise(absF[float64](), base),
		"row-view": fill(matrix.New[float64](4, n), 1).Row(3),
	}
	for name, seed := range seeds {
		for _, m := range []int{1, 2, 3, 4, 6, 9} {
			dyn, err := VerticalRepeat(seed, m)
			require.NoError(t, err)
			fix, err := VerticalRepeatFixed(seed, m)
			require.NoError(t, err)
			want := func(_, j int) float64 { return seed.At(0, j) }
			checkAllRoutes(t, fmt.Sprintf("%s/m=%d/dynamic", name, m), dyn, want)
			checkAllRoutes(t, fmt.Sprintf("%s/m=%d/fixed", name, m), fix, want)
		}
	}
}

func TestRepeatDegenerateMatchesNaive(t *testing.T) {
	fixedScalar := matrix.NewFixed[float64](1, 1)
	fixedScalar.Set(0, 0, 2.5)
	dynScalar := matrix.New[float64](1, 1)
	dynScalar.Set(0, 0, -4)
	col := fill(matrix.New[float64](7, 1), 0)
	row := fill(matrix.New[float64](1, 7), 0)

	build := map[string]func() (Expr[float64], error){
		"h/fixed-scalar": func() (Expr[float64], error) { return HorizontalRepeat[float64](fixedScalar, 6) },
		"h/dyn-scalar":   func() (Expr[float64], error) { return HorizontalRepeat[float64](dynScalar, 6) },
		"h/scalar-once":  func() (Expr[float64], error) { return HorizontalRepeatFixed[float64](fixedScalar, 1) },
		"h/factor-one":   func() (Expr[float64], error) { return HorizontalRepeatFixed[float64](col, 1) },
		"h/dyn-one":      func() (Expr[float64], error) { return HorizontalRepeat[float64](col, 1) },
		"v/fixed-scalar": func() (Expr[float64], error) { return VerticalRepeat[float64](fixedScalar, 5) },
		"v/dyn-scalar":   func() (Expr[float64], error) { return VerticalRepeatFixed[float64](dynScalar, 5) },
		"v/factor-one":   func() (Expr[float64], error) { return VerticalRepeatFixed[float64](row, 1) },
		"v/dyn-one":      func() (Expr[float64], error) { return VerticalRepeat[float64](row, 1) },
		"v/of-h-scalar": func() (Expr[float64], error) {
			h, err := HorizontalRepeatFixed[float64](fixedScalar, 4)
			if err != nil {
				return nil, err
			}
			return VerticalRepeat[float64](h, 3)
		},
	}
	for name, f := range build {
		e, err := f()
		require.NoError(t, err, name)
		ref := naive(e)
		checkAllRoutes(t, name, e, ref.At)
	}
}

func TestRepeatShapes(t *testing.T) {
	h, err := HorizontalRepeatFixed[float64](matrix.NewFixed[float64](5, 1), 3)
	require.NoError(t, err)
	assert.Equal(t, shape.Fixed(5, 3), h.Shape())

	h, err = HorizontalRepeat[float64](matrix.New[float64](5, 1), 3)
	require.NoError(t, err)
	assert.Equal(t, shape.Dyn(5, 3), h.Shape())

	v, err := VerticalRepeatFixed[float64](matrix.New[float64](1, 4), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Shape().CTRows)
	assert.Equal(t, shape.Dynamic, v.Shape().CTCols)

	empty, err := HorizontalRepeat[float64](matrix.New[float64](5, 1), 0)
	require.NoError(t, err)
	assert.True(t, empty.Shape().IsEmpty())
	assert.NoError(t, Evaluate[float64](empty, matrix.New[float64](5, 0)))
}

func TestRepeatErrors(t *testing.T) {
	wide := matrix.New[float64](3, 2)
	col := matrix.New[float64](3, 1)
	row := matrix.New[float64](1, 3)

	_, err := HorizontalRepeat[float64](wide, 4)
	assert.ErrorIs(t, err, shape.ErrMismatch)
	_, err = HorizontalRepeat[float64](col, -1)
	assert.ErrorIs(t, err, shape.ErrInvalid)
	_, err = HorizontalRepeatFixed[float64](col, 0)
	assert.ErrorIs(t, err, shape.ErrInvalid)

	_, err = VerticalRepeat[float64](wide, 4)
	assert.ErrorIs(t, err, shape.ErrMismatch)
	_, err = VerticalRepeat[float64](row, -2)
	assert.ErrorIs(t, err, shape.ErrInvalid)
	_, err = VerticalRepeatFixed[float64](row, 0)
	assert.ErrorIs(t, err, shape.ErrInvalid)

	h, err := HorizontalRepeat[float64](col, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, Evaluate[float64](h, matrix.New[float64](3, 5)), shape.ErrMismatch)
}

func TestRepeatPerColumnProtocol(t *testing.T) {
	col := fill(matrix.New[float64](6, 1), 0)
	seed := Ewise(negF[float64](), col)
	h, err := HorizontalRepeat[float64](seed, 4)
	require.NoError(t, err)

	ev := NewPerColumn[float64](h)
	for j := range 4 {
		if j > 0 {
			ev.NextColumn()
		}
		for i := range 6 {
			assert.Equal(t, -col.At(i, 0), ev.Get(i), "(%d,%d)", i, j)
		}
	}

	row := fill(matrix.New[float64](1, 5), 0)
	v, err := VerticalRepeat[float64](row, 3)
	require.NoError(t, err)
	vev := NewPerColumn[float64](v)
	for j := range 5 {
		if j > 0 {
			vev.NextColumn()
		}
		for i := range 3 {
			assert.Equal(t, row.At(0, j), vev.Get(i))
		}
	}

	lin := NewLinear[float64](v)
	for i := range 15 {
		assert.Equal(t, row.At(0, i/3), lin.Get(i))
	}
}

func TestRepeatInsideEwise(t *testing.T) {
	a := fill(matrix.New[float64](6, 4), 0)
	col := fill(matrix.New[float64](6, 1), 1)
	row := fill(matrix.New[float64](1, 4), 2)
	h, err := HorizontalRepeat[float64](col, 4)
	require.NoError(t, err)
	v, err := VerticalRepeat[float64](row, 6)
	require.NoError(t, err)
	hv, err := Ewise2(mulF[float64](), h, v)
	require.NoError(t, err)
	e, err := Ewise2(addF[float64](), a, hv)
	require.NoError(t, err)

	want := func(i, j int) float64 { return a.At(i, j) + col.At(i, 0)*row.At(0, j) }
	checkAllRoutes(t, "a+h*v", e, want)
}
