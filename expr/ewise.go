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

// Unary is the element-wise node f(A).
type Unary[T lane.Lanes] struct {
	fn  UnaryFunc[T]
	src Expr[T]
	arg node[T]
	c   costs
}

// Ewise builds the element-wise node fn(a). It panics if fn.Scalar is nil.
func Ewise[T lane.Lanes](fn UnaryFunc[T], a Expr[T]) *Unary[T] {
	if fn.Scalar == nil {
		panic("expr: Ewise: nil scalar function")
	}
	arg := nodeOf(a)
	c := arg.costs()
	c.linearLanes = c.linearLanes && fn.HasLanes()
	c.perColumnLanes = c.perColumnLanes && fn.HasLanes()
	return &Unary[T]{fn: fn, src: a, arg: arg, c: c}
}

func (u *Unary[T]) Shape() shape.Shape { return u.arg.Shape() }
func (u *Unary[T]) At(i, j int) T      { return u.fn.Scalar(u.arg.At(i, j)) }

// Func returns the element function.
func (u *Unary[T]) Func() UnaryFunc[T] { return u.fn }

// Arg returns the argument as it was passed to Ewise.
func (u *Unary[T]) Arg() Expr[T] { return u.src }

// Holder reports how the argument is held.
func (u *Unary[T]) Holder() Holder { return HolderOf(u.src) }

func (u *Unary[T]) costs() costs { return u.c }

func (u *Unary[T]) linearEval() evaluator[T] {
	return &unaryEval[T]{fn: u.fn, a: u.arg.linearEval()}
}

func (u *Unary[T]) perColumnEval() evaluator[T] {
	return &unaryEval[T]{fn: u.fn, a: u.arg.perColumnEval()}
}

type unaryEval[T lane.Lanes] struct {
	fn UnaryFunc[T]
	a  evaluator[T]
}

func (e *unaryEval[T]) Get(i int) T            { return e.fn.Scalar(e.a.Get(i)) }
func (e *unaryEval[T]) Pack(i int) lane.Vec[T] { return e.fn.pack(e.a.Pack(i)) }
func (e *unaryEval[T]) NextColumn()            { e.a.NextColumn() }

// Binary is the element-wise node f(A, B).
type Binary[T lane.Lanes] struct {
	fn   BinaryFunc[T]
	srcA Expr[T]
	srcB Expr[T]
	a, b node[T]
	sh   shape.Shape
	c    costs
}

// Ewise2 builds the element-wise node fn(a, b). The operands must have the
// same number of rows and columns; otherwise the error wraps
// shape.ErrMismatch. It panics if fn.Scalar is nil.
func Ewise2[T lane.Lanes](fn BinaryFunc[T], a, b Expr[T]) (*Binary[T], error) {
	if fn.Scalar == nil {
		panic("expr: Ewise2: nil scalar function")
	}
	sh, err := shape.Binary(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("expr: ewise %s: %w", fn.Name, err)
	}
	na, nb := nodeOf(a), nodeOf(b)
	c := combine(na.costs(), nb.costs())
	c.linearLanes = c.linearLanes && fn.HasLanes()
	c.perColumnLanes = c.perColumnLanes && fn.HasLanes()
	return &Binary[T]{fn: fn, srcA: a, srcB: b, a: na, b: nb, sh: sh, c: c}, nil
}

// Ewise2ArgScalar builds fn(a, v), with v broadcast as a constant matrix of
// a's shape.
func Ewise2ArgScalar[T lane.Lanes](fn BinaryFunc[T], a Expr[T], v T) *Binary[T] {
	return mustEwise2(fn, a, matrix.ConstLike(a.Shape(), v))
}

// Ewise2ScalarArg builds fn(v, b), with v broadcast as a constant matrix of
// b's shape.
func Ewise2ScalarArg[T lane.Lanes](fn BinaryFunc[T], v T, b Expr[T]) *Binary[T] {
	return mustEwise2(fn, matrix.ConstLike(b.Shape(), v), b)
}

func mustEwise2[T lane.Lanes](fn BinaryFunc[T], a, b Expr[T]) *Binary[T] {
	e, err := Ewise2(fn, a, b)
	if err != nil {
		// Unreachable: the constant takes the shape of the other operand.
		panic(err)
	}
	return e
}

func (e *Binary[T]) Shape() shape.Shape { return e.sh }
func (e *Binary[T]) At(i, j int) T      { return e.fn.Scalar(e.a.At(i, j), e.b.At(i, j)) }

// Func returns the element function.
func (e *Binary[T]) Func() BinaryFunc[T] { return e.fn }

// Args returns the operands as they were passed to Ewise2.
func (e *Binary[T]) Args() (Expr[T], Expr[T]) { return e.srcA, e.srcB }

// Holders reports how each operand is held.
func (e *Binary[T]) Holders() (Holder, Holder) { return HolderOf(e.srcA), HolderOf(e.srcB) }

func (e *Binary[T]) costs() costs { return e.c }

func (e *Binary[T]) linearEval() evaluator[T] {
	return &binaryEval[T]{fn: e.fn, a: e.a.linearEval(), b: e.b.linearEval()}
}

func (e *Binary[T]) perColumnEval() evaluator[T] {
	return &binaryEval[T]{fn: e.fn, a: e.a.perColumnEval(), b: e.b.perColumnEval()}
}

type binaryEval[T lane.Lanes] struct {
	fn   BinaryFunc[T]
	a, b evaluator[T]
}

func (e *binaryEval[T]) Get(i int) T { return e.fn.Scalar(e.a.Get(i), e.b.Get(i)) }

func (e *binaryEval[T]) Pack(i int) lane.Vec[T] {
	return e.fn.pack(e.a.Pack(i), e.b.Pack(i))
}

func (e *binaryEval[T]) NextColumn() {
	e.a.NextColumn()
	e.b.NextColumn()
}
