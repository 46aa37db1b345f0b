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

import "github.com/ajroetker/go-lightmat/lane"

// UnaryFunc is a pure element function T -> T.
//
// Scalar is required. Lanes is optional; when set it must compute, lane by
// lane, exactly what Scalar computes, so that lane-wise and scalar
// evaluation agree bit for bit.
type UnaryFunc[T lane.Lanes] struct {
	Name   string
	Scalar func(x T) T
	Lanes  func(v lane.Vec[T]) lane.Vec[T]
}

// BinaryFunc is a pure element function T, T -> T. See UnaryFunc.
type BinaryFunc[T lane.Lanes] struct {
	Name   string
	Scalar func(a, b T) T
	Lanes  func(a, b lane.Vec[T]) lane.Vec[T]
}

// HasLanes reports whether f has a lane-wise form.
func (f UnaryFunc[T]) HasLanes() bool { return f.Lanes != nil }

// HasLanes reports whether f has a lane-wise form.
func (f BinaryFunc[T]) HasLanes() bool { return f.Lanes != nil }

func (f UnaryFunc[T]) pack(v lane.Vec[T]) lane.Vec[T] {
	if f.Lanes != nil {
		return f.Lanes(v)
	}
	return lane.Map(v, f.Scalar)
}

func (f BinaryFunc[T]) pack(a, b lane.Vec[T]) lane.Vec[T] {
	if f.Lanes != nil {
		return f.Lanes(a, b)
	}
	return lane.Map2(a, b, f.Scalar)
}

// addFunc is the combining function of Accumulate.
func addFunc[T lane.Lanes]() BinaryFunc[T] {
	return BinaryFunc[T]{
		Name:   "add",
		Scalar: func(a, b T) T { return a + b },
		Lanes:  lane.Add[T],
	}
}
