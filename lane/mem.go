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

// Fill sets all elements in dst to value.
// Uses a doubling pattern that leverages Go's optimized memmove.
func Fill[T Lanes](dst []T, value T) {
	n := len(dst)
	if n == 0 {
		return
	}

	dst[0] = value
	for filled := 1; filled < n; filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// Copy copies elements from src to dst and returns the number copied
// (the minimum of both lengths).
func Copy[T Lanes](src, dst []T) int {
	return copy(dst, src)
}

// FillStrided sets n elements of dst starting at offset, stepping by step.
func FillStrided[T Lanes](dst []T, offset, step, n int, value T) {
	if step == 1 {
		Fill(dst[offset:offset+n], value)
		return
	}
	for i := range n {
		dst[offset+i*step] = value
	}
}
