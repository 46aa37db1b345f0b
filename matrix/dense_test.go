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

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/index"
	"github.com/ajroetker/go-lightmat/shape"
)

// seq returns an m×n matrix holding 0, 1, 2, ... in column-major order.
func seq(m, n int) *Dense[float64] {
	d := New[float64](m, n)
	for i := range d.Len() {
		d.SetLin(i, float64(i))
	}
	return d
}

func TestNewIsContiguous(t *testing.T) {
	d := New[float64](3, 4)
	assert.True(t, d.IsContiguous())
	assert.Equal(t, 3, d.LeadDim())
	assert.Equal(t, 1, d.RowStep())
	assert.Len(t, d.Data(), 12)
	assert.Equal(t, shape.Dyn(3, 4), d.Shape())

	f := NewFixed[float32](2, 5)
	assert.True(t, f.Shape().IsStatic())
}

func TestAtSetColumnMajor(t *testing.T) {
	d := seq(3, 2)
	assert.Equal(t, 4.0, d.At(1, 1))
	assert.Equal(t, 5.0, d.AtLin(5))
	d.Set(2, 0, 42)
	assert.Equal(t, 42.0, d.Data()[2])
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(6), d.At(1, 2))

	_, err = FromSlice([]int32{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, shape.ErrInvalid)
}

func TestRef(t *testing.T) {
	buf := make([]float64, 20)
	for i := range buf {
		buf[i] = float64(i)
	}
	r, err := Ref(buf, 3, 4, 5)
	require.NoError(t, err)
	assert.False(t, r.IsContiguous())
	assert.Nil(t, r.Data())
	assert.Equal(t, []float64{10, 11, 12}, r.Col(2))
	assert.Equal(t, 16.0, r.At(1, 3))

	_, err = Ref(buf, 3, 4, 2)
	assert.ErrorIs(t, err, shape.ErrInvalid)
	_, err = Ref(buf, 3, 5, 5)
	assert.ErrorIs(t, err, shape.ErrInvalid)
}

func TestViewSpan(t *testing.T) {
	d := seq(6, 5)
	v := d.View(index.Colon(1, 4), index.Colon(2, 5))
	assert.Equal(t, shape.Dyn(3, 3), v.Shape())
	assert.False(t, v.IsContiguous())
	assert.Equal(t, d.At(1, 2), v.At(0, 0))
	assert.Equal(t, d.At(3, 4), v.At(2, 2))
	assert.Equal(t, []float64{d.At(1, 3), d.At(2, 3), d.At(3, 3)}, v.Col(1))

	v.Set(0, 0, -1)
	assert.Equal(t, -1.0, d.At(1, 2))
}

func TestViewStep(t *testing.T) {
	d := seq(8, 6)
	v := d.View(index.ColonStep(0, 2, 8), index.ColonStep(5, -2, -1))
	require.Equal(t, 4, v.Rows())
	require.Equal(t, 3, v.Cols())
	assert.Equal(t, 2, v.RowStep())
	assert.Nil(t, v.Col(0))
	for j := range 3 {
		for i := range 4 {
			assert.Equal(t, d.At(2*i, 5-2*j), v.At(i, j))
		}
	}
}

func TestViewWholeKeepsStatic(t *testing.T) {
	d := NewFixed[float64](4, 3)
	v := d.View(index.Whole{}, index.Colon(0, 2))
	assert.Equal(t, 4, v.Shape().CTRows)
	assert.Equal(t, shape.Dynamic, v.Shape().CTCols)
	assert.True(t, v.IsContiguous())
}

func TestViewOutOfRangePanics(t *testing.T) {
	d := seq(3, 3)
	assert.Panics(t, func() { d.View(index.Colon(1, 4), index.Whole{}) })
	assert.Panics(t, func() { d.View(index.Whole{}, index.ColonStep(2, -1, -2)) })
}

func TestRowAndColumnViews(t *testing.T) {
	d := seq(4, 3)
	r := d.Row(2)
	assert.Equal(t, 1, r.Shape().CTRows)
	assert.False(t, r.IsContiguous())
	assert.Equal(t, []float64{6}, r.Col(1))

	c := d.Column(1)
	assert.Equal(t, 1, c.Shape().CTCols)
	assert.True(t, c.IsContiguous())
	assert.Equal(t, []float64{4, 5, 6, 7}, c.Data())

	grid := d.View(index.ColonStep(0, 2, 4), index.NewSpan(0, 1))
	assert.False(t, grid.IsContiguous())
	assert.Nil(t, grid.Data())
}

func TestFillAndClone(t *testing.T) {
	d := seq(6, 4)
	v := d.View(index.ColonStep(1, 2, 7), index.Colon(1, 3))
	v.Fill(9)
	for j := range 4 {
		for i := range 6 {
			inView := i%2 == 1 && j >= 1 && j < 3
			if inView {
				assert.Equal(t, 9.0, d.At(i, j))
			} else {
				assert.Equal(t, float64(j*6+i), d.At(i, j))
			}
		}
	}

	c := v.Clone()
	assert.True(t, c.IsContiguous())
	assert.True(t, Equal[float64](c, v))
	c.Zero()
	assert.Equal(t, 9.0, v.At(0, 0))
}

func TestConst(t *testing.T) {
	c := NewConst(3, 2, 2.5)
	assert.Equal(t, 2.5, c.At(2, 1))
	assert.Equal(t, shape.Dyn(3, 2), c.Shape())

	d := New[float64](3, 2)
	d.Fill(2.5)
	assert.True(t, Equal[float64](c, d))
	assert.False(t, Equal[float64](c, New[float64](2, 3)))

	s := ConstLike(shape.Fixed(2, 2), int32(7))
	assert.True(t, s.Shape().IsStatic())
	assert.Equal(t, int32(7), s.Value())
}
