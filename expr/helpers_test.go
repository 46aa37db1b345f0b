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
	"math"
	"testing"

	"github.com/ajroetker/go-lightmat/index"
	"github.com/ajroetker/go-lightmat/lane"
	"github.com/ajroetker/go-lightmat/matrix"
)

func addF[T lane.Lanes]() BinaryFunc[T] { return addFunc[T]() }

func mulF[T lane.Lanes]() BinaryFunc[T] {
	return BinaryFunc[T]{Name: "mul", Scalar: func(a, b T) T { return a * b }, Lanes: lane.Mul[T]}
}

func maxF[T lane.Lanes]() BinaryFunc[T] {
	return BinaryFunc[T]{
		Name: "max",
		Scalar: func(a, b T) T {
			if a > b {
				return a
			}
			return b
		},
		Lanes: lane.Max[T],
	}
}

func negF[T lane.Lanes]() UnaryFunc[T] {
	return UnaryFunc[T]{Name: "neg", Scalar: func(x T) T { return -x }, Lanes: lane.Neg[T]}
}

func absF[T lane.Lanes]() UnaryFunc[T] {
	return UnaryFunc[T]{
		Name: "abs",
		Scalar: func(x T) T {
			if x < 0 {
				x = -x
			}
			return x
		},
		Lanes: lane.Abs[T],
	}
}

func sqrtF[T lane.Floats]() UnaryFunc[T] {
	return UnaryFunc[T]{Name: "sqrt", Scalar: func(x T) T { return T(math.Sqrt(float64(x))) }, Lanes: lane.Sqrt[T]}
}

// cubeF has no lane form.
func cubeF[T lane.Lanes]() UnaryFunc[T] {
	return UnaryFunc[T]{Name: "cube", Scalar: func(x T) T { return x * x * x }}
}

// fill assigns a deterministic, sign-mixed pattern to d.
func fill(d *matrix.Dense[float64], salt float64) *matrix.Dense[float64] {
	for j := range d.Cols() {
		for i := range d.Rows() {
			d.Set(i, j, float64((i*31+j*17)%23)*0.5-3+salt)
		}
	}
	return d
}

// layouts returns an m×n matrix in three memory layouts, all holding the
// same values.
func layouts(m, n int, salt float64) map[string]*matrix.Dense[float64] {
	contiguous := fill(matrix.New[float64](m, n), salt)
	padded := matrix.New[float64](m+3, n).View(index.Colon(1, m+1), index.Whole{})
	rowStrided := matrix.New[float64](2*m, n).View(index.ColonStep(0, 2, 2*m), index.Whole{})
	return map[string]*matrix.Dense[float64]{
		"contiguous":  contiguous,
		"padded":      fill(padded, salt),
		"row-strided": fill(rowStrided, salt),
	}
}

// naive evaluates e with At in a nested loop.
func naive[T lane.Lanes](e Expr[T]) *matrix.Dense[T] {
	sh := e.Shape()
	d := matrix.New[T](sh.Rows, sh.Cols)
	for j := range sh.Cols {
		for i := range sh.Rows {
			d.Set(i, j, e.At(i, j))
		}
	}
	return d
}

// contents returns the elements of r in column-major order.
func contents[T lane.Lanes](r matrix.Reader[T]) []T {
	sh := r.Shape()
	out := make([]T, 0, sh.Len())
	for j := range sh.Cols {
		for i := range sh.Rows {
			out = append(out, r.At(i, j))
		}
	}
	return out
}

func bits64(xs []float64) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = math.Float64bits(x)
	}
	return out
}

func bits32(xs []float32) []uint32 {
	out := make([]uint32, len(xs))
	for i, x := range xs {
		out[i] = math.Float32bits(x)
	}
	return out
}

// withWidth runs f with the lane width forced to bytes.
func withWidth(t *testing.T, bytes int, f func(t *testing.T)) {
	t.Helper()
	restore := lane.OverrideWidth(bytes)
	defer restore()
	f(t)
}

// withCosts runs f with the cost constants temporarily replaced.
func withCosts(cache, shortVec, threshold int, f func()) {
	prevCache, prevShort, prevThreshold := CacheCost, ShortVecPerColumnCost, ShortVecThreshold
	defer func() {
		CacheCost, ShortVecPerColumnCost, ShortVecThreshold = prevCache, prevShort, prevThreshold
	}()
	CacheCost, ShortVecPerColumnCost, ShortVecThreshold = cache, shortVec, threshold
	f()
}
