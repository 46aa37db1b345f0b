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

package lane

import "math"

// This file provides the portable lane operations. Each operation applies
// the plain Go scalar expression per lane, in lane order.

// Load creates a vector from the first MaxLanes[T]() elements of src.
// If src is shorter, only len(src) lanes are populated.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Gather creates a vector whose lane k is get(base+k).
// It is used when the source elements are not adjacent in memory.
func Gather[T Lanes](get func(i int) T, base int) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for k := range data {
		data[k] = get(base + k)
	}
	return Vec[T]{data: data}
}

// Store writes a vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Map applies f to every lane.
func Map[T Lanes](v Vec[T], f func(T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = f(x)
	}
	return Vec[T]{data: result}
}

// Map2 applies f lane by lane to a and b.
func Map2[T Lanes](a, b Vec[T], f func(T, T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates every lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Abs computes the absolute value of every lane.
// Negative zero and NaN are passed through unchanged.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			x = -x
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}

// Sqr squares every lane.
func Sqr[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x * x
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum. When a lane of a is not less than b
// (including NaN comparisons), the lane of b is chosen.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum. When a lane of a is not greater than b
// (including NaN comparisons), the lane of b is chosen.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Sqrt computes the square root of every lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Sqrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// Floor rounds every lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Floor(float64(x)))
	}
	return Vec[T]{data: result}
}

// Ceil rounds every lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Ceil(float64(x)))
	}
	return Vec[T]{data: result}
}
