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

package emath

import (
	"github.com/ajroetker/go-lightmat/expr"
	"github.com/ajroetker/go-lightmat/lane"
)

// Add builds a + b. The operands must have the same size.
func Add[T lane.Lanes](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(AddFunc[T](), a, b)
}

// AddScalar builds Add(a, v) with v broadcast.
func AddScalar[T lane.Lanes](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(AddFunc[T](), a, v)
}

// ScalarAdd builds Add(v, b) with v broadcast.
func ScalarAdd[T lane.Lanes](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(AddFunc[T](), v, b)
}

// Sub builds a - b. The operands must have the same size.
func Sub[T lane.Lanes](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(SubFunc[T](), a, b)
}

// SubScalar builds Sub(a, v) with v broadcast.
func SubScalar[T lane.Lanes](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(SubFunc[T](), a, v)
}

// ScalarSub builds Sub(v, b) with v broadcast.
func ScalarSub[T lane.Lanes](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(SubFunc[T](), v, b)
}

// Mul builds a * b. The operands must have the same size.
func Mul[T lane.Lanes](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(MulFunc[T](), a, b)
}

// MulScalar builds Mul(a, v) with v broadcast.
func MulScalar[T lane.Lanes](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(MulFunc[T](), a, v)
}

// ScalarMul builds Mul(v, b) with v broadcast.
func ScalarMul[T lane.Lanes](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(MulFunc[T](), v, b)
}

// Div builds a / b. The operands must have the same size.
func Div[T lane.Floats](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(DivFunc[T](), a, b)
}

// DivScalar builds Div(a, v) with v broadcast.
func DivScalar[T lane.Floats](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(DivFunc[T](), a, v)
}

// ScalarDiv builds Div(v, b) with v broadcast.
func ScalarDiv[T lane.Floats](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(DivFunc[T](), v, b)
}

// Max builds the element-wise maximum of a and b. The operands must have the same size.
func Max[T lane.Lanes](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(MaxFunc[T](), a, b)
}

// MaxScalar builds Max(a, v) with v broadcast.
func MaxScalar[T lane.Lanes](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(MaxFunc[T](), a, v)
}

// ScalarMax builds Max(v, b) with v broadcast.
func ScalarMax[T lane.Lanes](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(MaxFunc[T](), v, b)
}

// Min builds the element-wise minimum of a and b. The operands must have the same size.
func Min[T lane.Lanes](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(MinFunc[T](), a, b)
}

// MinScalar builds Min(a, v) with v broadcast.
func MinScalar[T lane.Lanes](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(MinFunc[T](), a, v)
}

// ScalarMin builds Min(v, b) with v broadcast.
func ScalarMin[T lane.Lanes](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(MinFunc[T](), v, b)
}

// Pow builds a raised to b. The operands must have the same size.
func Pow[T lane.Floats](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(PowFunc[T](), a, b)
}

// PowScalar builds Pow(a, v) with v broadcast.
func PowScalar[T lane.Floats](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(PowFunc[T](), a, v)
}

// ScalarPow builds Pow(v, b) with v broadcast.
func ScalarPow[T lane.Floats](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(PowFunc[T](), v, b)
}

// Hypot builds the element-wise hypotenuse of a and b. The operands must have the same size.
func Hypot[T lane.Floats](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(HypotFunc[T](), a, b)
}

// HypotScalar builds Hypot(a, v) with v broadcast.
func HypotScalar[T lane.Floats](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(HypotFunc[T](), a, v)
}

// ScalarHypot builds Hypot(v, b) with v broadcast.
func ScalarHypot[T lane.Floats](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(HypotFunc[T](), v, b)
}

// Atan2 builds the element-wise arc tangent of a/b. The operands must have the same size.
func Atan2[T lane.Floats](a, b expr.Expr[T]) (*expr.Binary[T], error) {
	return expr.Ewise2(Atan2Func[T](), a, b)
}

// Atan2Scalar builds Atan2(a, v) with v broadcast.
func Atan2Scalar[T lane.Floats](a expr.Expr[T], v T) *expr.Binary[T] {
	return expr.Ewise2ArgScalar(Atan2Func[T](), a, v)
}

// ScalarAtan2 builds Atan2(v, b) with v broadcast.
func ScalarAtan2[T lane.Floats](v T, b expr.Expr[T]) *expr.Binary[T] {
	return expr.Ewise2ScalarArg(Atan2Func[T](), v, b)
}

// Neg builds the element-wise neg of a.
func Neg[T lane.Lanes](a expr.Expr[T]) *expr.Unary[T] {
	return expr.Ewise(NegFunc[T](), a)
}

// Abs builds the element-wise abs of a.
func Abs[T lane.Lanes](a expr.Expr[T]) *expr.Unary[T] {
	return expr.Ewise(AbsFunc[T](), a)
}

// Sqr builds the element-wise sqr of a.
func Sqr[T lane.Lanes](a expr.Expr[T]) *expr.Unary[T] {
	return expr.Ewise(SqrFunc[T](), a)
}

// Sqrt builds the element-wise sqrt of a.
func Sqrt[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] {
	return expr.Ewise(SqrtFunc[T](), a)
}

// Floor builds the element-wise floor of a.
func Floor[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] {
	return expr.Ewise(FloorFunc[T](), a)
}

// Ceil builds the element-wise ceil of a.
func Ceil[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] {
	return expr.Ewise(CeilFunc[T](), a)
}

// Elementary functions of package math, applied element by element.

func Exp[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]   { return expr.Ewise(ExpFunc[T](), a) }
func Exp2[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(Exp2Func[T](), a) }
func Expm1[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(Expm1Func[T](), a) }
func Log[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]   { return expr.Ewise(LogFunc[T](), a) }
func Log10[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(Log10Func[T](), a) }
func Log2[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(Log2Func[T](), a) }
func Log1p[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(Log1pFunc[T](), a) }
func Cbrt[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(CbrtFunc[T](), a) }
func Round[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(RoundFunc[T](), a) }
func Trunc[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(TruncFunc[T](), a) }
func Sin[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]   { return expr.Ewise(SinFunc[T](), a) }
func Cos[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]   { return expr.Ewise(CosFunc[T](), a) }
func Tan[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]   { return expr.Ewise(TanFunc[T](), a) }
func Asin[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(AsinFunc[T](), a) }
func Acos[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(AcosFunc[T](), a) }
func Atan[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(AtanFunc[T](), a) }
func Sinh[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(SinhFunc[T](), a) }
func Cosh[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(CoshFunc[T](), a) }
func Tanh[T lane.Floats](a expr.Expr[T]) *expr.Unary[T]  { return expr.Ewise(TanhFunc[T](), a) }
func Asinh[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(AsinhFunc[T](), a) }
func Acosh[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(AcoshFunc[T](), a) }
func Atanh[T lane.Floats](a expr.Expr[T]) *expr.Unary[T] { return expr.Ewise(AtanhFunc[T](), a) }
