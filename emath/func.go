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

// Package emath provides element functions for expressions: arithmetic,
// comparison, rounding and the elementary functions of package math.
//
// Each function comes in two forms. XxxFunc returns the function object
// (an expr.UnaryFunc or expr.BinaryFunc) for use with expr.Ewise and
// expr.Update. Xxx builds the expression node directly.
//
// Arithmetic, Min, Max, Abs, Neg, Sqr, Sqrt, Floor and Ceil have lane-wise
// forms. The remaining functions are evaluated one element at a time.
package emath

import (
	"math"

	"github.com/ajroetker/go-lightmat/expr"
	"github.com/ajroetker/go-lightmat/lane"
)

// AddFunc returns a + b.
func AddFunc[T lane.Lanes]() expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{Name: "add", Scalar: func(a, b T) T { return a + b }, Lanes: lane.Add[T]}
}

// SubFunc returns a - b.
func SubFunc[T lane.Lanes]() expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{Name: "sub", Scalar: func(a, b T) T { return a - b }, Lanes: lane.Sub[T]}
}

// MulFunc returns a * b.
func MulFunc[T lane.Lanes]() expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{Name: "mul", Scalar: func(a, b T) T { return a * b }, Lanes: lane.Mul[T]}
}

// DivFunc returns a / b.
func DivFunc[T lane.Floats]() expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{Name: "div", Scalar: func(a, b T) T { return a / b }, Lanes: lane.Div[T]}
}

// MaxFunc returns the larger of a and b, or b when they do not compare.
func MaxFunc[T lane.Lanes]() expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{
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

// MinFunc returns the smaller of a and b, or b when they do not compare.
func MinFunc[T lane.Lanes]() expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{
		Name: "min",
		Scalar: func(a, b T) T {
			if a < b {
				return a
			}
			return b
		},
		Lanes: lane.Min[T],
	}
}

// NegFunc returns -x.
func NegFunc[T lane.Lanes]() expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{Name: "neg", Scalar: func(x T) T { return -x }, Lanes: lane.Neg[T]}
}

// AbsFunc returns |x|. Negative zero and NaN pass through.
func AbsFunc[T lane.Lanes]() expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{
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

// SqrFunc returns x * x.
func SqrFunc[T lane.Lanes]() expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{Name: "sqr", Scalar: func(x T) T { return x * x }, Lanes: lane.Sqr[T]}
}

// SqrtFunc returns the square root of x.
func SqrtFunc[T lane.Floats]() expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{Name: "sqrt", Scalar: float1[T](math.Sqrt), Lanes: lane.Sqrt[T]}
}

// FloorFunc rounds x toward negative infinity.
func FloorFunc[T lane.Floats]() expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{Name: "floor", Scalar: float1[T](math.Floor), Lanes: lane.Floor[T]}
}

// CeilFunc rounds x toward positive infinity.
func CeilFunc[T lane.Floats]() expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{Name: "ceil", Scalar: float1[T](math.Ceil), Lanes: lane.Ceil[T]}
}

// float1 lifts a float64 function to T, computing in float64.
func float1[T lane.Floats](f func(float64) float64) func(T) T {
	return func(x T) T { return T(f(float64(x))) }
}

func float2[T lane.Floats](f func(float64, float64) float64) func(T, T) T {
	return func(a, b T) T { return T(f(float64(a), float64(b))) }
}

func scalarOnly[T lane.Floats](name string, f func(float64) float64) expr.UnaryFunc[T] {
	return expr.UnaryFunc[T]{Name: name, Scalar: float1[T](f)}
}

func scalarOnly2[T lane.Floats](name string, f func(float64, float64) float64) expr.BinaryFunc[T] {
	return expr.BinaryFunc[T]{Name: name, Scalar: float2[T](f)}
}

func ExpFunc[T lane.Floats]() expr.UnaryFunc[T]   { return scalarOnly[T]("exp", math.Exp) }
func Exp2Func[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("exp2", math.Exp2) }
func Expm1Func[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("expm1", math.Expm1) }
func LogFunc[T lane.Floats]() expr.UnaryFunc[T]   { return scalarOnly[T]("log", math.Log) }
func Log10Func[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("log10", math.Log10) }
func Log2Func[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("log2", math.Log2) }
func Log1pFunc[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("log1p", math.Log1p) }
func CbrtFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("cbrt", math.Cbrt) }
func RoundFunc[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("round", math.Round) }
func TruncFunc[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("trunc", math.Trunc) }
func SinFunc[T lane.Floats]() expr.UnaryFunc[T]   { return scalarOnly[T]("sin", math.Sin) }
func CosFunc[T lane.Floats]() expr.UnaryFunc[T]   { return scalarOnly[T]("cos", math.Cos) }
func TanFunc[T lane.Floats]() expr.UnaryFunc[T]   { return scalarOnly[T]("tan", math.Tan) }
func AsinFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("asin", math.Asin) }
func AcosFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("acos", math.Acos) }
func AtanFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("atan", math.Atan) }
func SinhFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("sinh", math.Sinh) }
func CoshFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("cosh", math.Cosh) }
func TanhFunc[T lane.Floats]() expr.UnaryFunc[T]  { return scalarOnly[T]("tanh", math.Tanh) }
func AsinhFunc[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("asinh", math.Asinh) }
func AcoshFunc[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("acosh", math.Acosh) }
func AtanhFunc[T lane.Floats]() expr.UnaryFunc[T] { return scalarOnly[T]("atanh", math.Atanh) }

// PowFunc returns a raised to b.
func PowFunc[T lane.Floats]() expr.BinaryFunc[T] { return scalarOnly2[T]("pow", math.Pow) }

// HypotFunc returns sqrt(a*a + b*b) without undue overflow.
func HypotFunc[T lane.Floats]() expr.BinaryFunc[T] { return scalarOnly2[T]("hypot", math.Hypot) }

// Atan2Func returns the arc tangent of a/b, using the signs of both to pick
// the quadrant.
func Atan2Func[T lane.Floats]() expr.BinaryFunc[T] { return scalarOnly2[T]("atan2", math.Atan2) }
