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

// Package index provides the index ranges used to address sub-views of a
// matrix: the whole extent, a contiguous span and a strided step range.
//
// Colon builds ranges with half-open bounds:
//
//	Colon(a, b)       // a, a+1, ..., b-1
//	ColonStep(a, s, b) // a, a+s, ..., stopping before b
package index

// Range maps positions 0..Num(dim)-1 of a sub-view to offsets along a
// dimension of extent dim.
type Range interface {
	// Num returns the number of selected indices within a dimension of extent dim.
	Num(dim int) int

	// Offset returns the offset of the i-th selected index.
	Offset(dim, i int) int

	// Stride returns the distance between consecutive selected indices.
	Stride() int
}

// Whole selects an entire dimension.
type Whole struct{}

func (Whole) Num(dim int) int     { return dim }
func (Whole) Offset(_, i int) int { return i }
func (Whole) Stride() int         { return 1 }

// Span selects n consecutive indices starting at begin.
type Span struct {
	begin, n int
}

// NewSpan returns the span [begin, begin+n). A negative n yields an empty span.
func NewSpan(begin, n int) Span {
	return Span{begin: begin, n: max(n, 0)}
}

func (r Span) Begin() int          { return r.begin }
func (r Span) End() int            { return r.begin + r.n }
func (r Span) Len() int            { return r.n }
func (r Span) Num(int) int         { return r.n }
func (r Span) Offset(_, i int) int { return r.begin + i }
func (Span) Stride() int           { return 1 }

// Step selects n indices starting at begin, step apart. The step may be negative.
type Step struct {
	begin, n, step int
}

// NewStep returns the range begin, begin+step, ... with n elements.
// A negative n yields an empty range.
func NewStep(begin, n, step int) Step {
	return Step{begin: begin, n: max(n, 0), step: step}
}

func (r Step) Begin() int          { return r.begin }
func (r Step) End() int            { return r.begin + r.n*r.step }
func (r Step) Len() int            { return r.n }
func (r Step) Step() int           { return r.step }
func (r Step) Num(int) int         { return r.n }
func (r Step) Offset(_, i int) int { return r.begin + i*r.step }
func (r Step) Stride() int         { return r.step }

// Indices returns the offsets selected by r within a dimension of extent dim.
func Indices(r Range, dim int) []int {
	n := r.Num(dim)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Offset(dim, i)
	}
	return out
}

// Colon returns the contiguous range [a, b). When b <= a the range is empty.
func Colon(a, b int) Span {
	return NewSpan(a, b-a)
}

// ColonStep returns the range a, a+s, ... stopping before b.
//
// The count is (b-a)/s rounded toward zero when s and b-a share a sign, and
// zero otherwise; a zero step also yields an empty range.
func ColonStep(a, s, b int) Step {
	var n int
	if a <= b {
		if s > 0 {
			n = (b - a) / s
		}
	} else if s < 0 {
		n = (a - b) / (-s)
	}
	return NewStep(a, n, s)
}
