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

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColon(t *testing.T) {
	r := Colon(0, 5)
	assert.Equal(t, 0, r.Begin())
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, 5, r.End())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Indices(r, 10))

	assert.Equal(t, 0, Colon(4, 2).Len())
	assert.Equal(t, 3, Colon(2, 5).Offset(0, 1))
}

func TestColonStep(t *testing.T) {
	tests := []struct {
		name    string
		a, s, b int
		want    []int
	}{
		{"forward", 0, 2, 10, []int{0, 2, 4, 6, 8}},
		{"backward", 10, -2, 0, []int{10, 8, 6, 4, 2}},
		{"conflicting sign", 0, -1, 5, []int{}},
		{"conflicting sign backward", 5, 1, 0, []int{}},
		{"rounds toward zero", 0, 3, 10, []int{0, 3, 6}},
		{"rounds toward zero backward", 9, -4, 0, []int{9, 5}},
		{"empty span", 3, 1, 3, []int{}},
		{"zero step", 0, 0, 4, []int{}},
		{"step past end", 1, 10, 5, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ColonStep(tt.a, tt.s, tt.b)
			assert.Equal(t, len(tt.want), r.Len())
			assert.Equal(t, tt.want, Indices(r, 0))
			assert.Equal(t, tt.s, r.Step())
		})
	}
}

func TestStepEnd(t *testing.T) {
	r := ColonStep(0, 2, 10)
	assert.Equal(t, 10, r.End())
	assert.Equal(t, 2, r.Stride())
}

func TestWhole(t *testing.T) {
	var w Whole
	assert.Equal(t, 7, w.Num(7))
	assert.Equal(t, 3, w.Offset(7, 3))
	assert.Equal(t, 1, w.Stride())
}
