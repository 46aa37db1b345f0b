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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/expr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheckScenarios(t *testing.T) {
	for _, kind := range kinds {
		for _, layout := range layouts {
			for _, fixed := range []bool{false, true} {
				s := scenario{kind: kind, rows: 5, cols: 3, fixed: fixed, layout: layout}
				require.NoError(t, s.validate())
				results, err := checkScenario(s)
				require.NoError(t, err, "%v", s)
				require.Len(t, results, len(strategies))
				for _, o := range results {
					assert.True(t, o.skipped || o.ok, "%v/%v", s, o.strategy)
				}
			}
		}
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--sizes", "0,1,4,6", "--kinds", "hrepeat,outer")
	require.NoError(t, err)
	assert.Contains(t, out, "scalar-linear")
	assert.Contains(t, out, "lane-per-column")
	assert.NotContains(t, out, " 1 failed")

	_, err = run(t, "check", "--sizes", "2,-1")
	assert.Error(t, err)
	_, err = run(t, "check", "--kinds", "transpose")
	assert.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	cache, short, threshold := expr.CacheCost, expr.ShortVecPerColumnCost, expr.ShortVecThreshold
	t.Cleanup(func() {
		expr.CacheCost, expr.ShortVecPerColumnCost, expr.ShortVecThreshold = cache, short, threshold
	})

	out, err := run(t, "plan", "--kind", "ewise2", "--rows", "8", "--cols", "4", "--layout", "row-strided")
	require.NoError(t, err)
	assert.Contains(t, out, expr.ScalarPerColumn.String())

	out, err = run(t, "plan", "--kind", "hrepeat", "--rows", "6", "--cols", "3", "--cache-cost", "10", "--short-cost", "500")
	require.NoError(t, err)
	assert.Contains(t, out, expr.CachedLinear.String())
	assert.Contains(t, out, "default policy copy")

	_, err = run(t, "plan", "--layout", "diagonal")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "width:")
	assert.Contains(t, out, "cache=")
}
