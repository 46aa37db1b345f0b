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

import "testing"

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		value float32
	}{
		{"empty", 0, 1},
		{"single", 1, 42.0},
		{"small", 3, 3.14},
		{"vector_aligned", 8, 2.71},
		{"unaligned", 15, 1.41},
		{"large", 100, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, tt.size)
			Fill(dst, tt.value)
			for i := range dst {
				if dst[i] != tt.value {
					t.Errorf("Fill[%d]: got %v, want %v", i, dst[i], tt.value)
				}
			}
		})
	}
}

func TestFillStrided(t *testing.T) {
	dst := make([]int32, 10)
	FillStrided(dst, 1, 3, 3, 7)
	want := []int32{0, 7, 0, 0, 7, 0, 0, 7, 0, 0}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("FillStrided[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestCopy(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5}
	dst := make([]float64, 3)
	if n := Copy(src, dst); n != 3 {
		t.Errorf("Copy: got %d, want 3", n)
	}
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("Copy[%d]: got %v, want %v", i, dst[i], src[i])
		}
	}
}
