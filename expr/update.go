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
)

// Update sets every element of dst to fn(dst, src) in place.
func Update[T lane.Lanes](dst *matrix.Dense[T], fn BinaryFunc[T], src Expr[T]) error {
	e, err := Ewise2(fn, dst, src)
	if err != nil {
		return fmt.Errorf("expr: update: %w", err)
	}
	return Evaluate[T](e, dst)
}

// Accumulate adds src to dst in place.
func Accumulate[T lane.Lanes](dst *matrix.Dense[T], src Expr[T]) error {
	return Update(dst, addFunc[T](), src)
}
