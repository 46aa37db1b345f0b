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

import "github.com/ajroetker/go-lightmat/shape"

// Cost constants consulted when a node is built. Lower is cheaper; the
// selector compares the linear and per-column cost of a whole tree.
//
// They are variables so they can be tuned for a target or forced in tests.
// Changing them affects only nodes built afterwards.
var (
	// CacheCost is charged by an evaluator that materializes a seed.
	CacheCost = 1000

	// ShortVecPerColumnCost is charged by a per-column evaluator whose
	// columns are not known to reach ShortVecThreshold rows.
	ShortVecPerColumnCost = 200

	// ShortVecThreshold is the static column length below which a column
	// counts as short. A dynamic length counts as short.
	ShortVecThreshold = 4
)

// costs summarizes the two evaluation routes of a node.
type costs struct {
	linear    int
	perColumn int

	// linearLanes and perColumnLanes report whether the route has a
	// lane-wise form worth using.
	linearLanes    bool
	perColumnLanes bool

	// cached is set when the linear route materializes a seed.
	cached bool
}

// shortCost is the per-column cost of walking columns whose static length
// is ct (shape.Dynamic when unknown).
func shortCost(ct int) int {
	if ct == shape.Dynamic || ct < ShortVecThreshold {
		return ShortVecPerColumnCost
	}
	return 0
}

// combine adds the costs of sibling arguments.
func combine(a, b costs) costs {
	return costs{
		linear:         a.linear + b.linear,
		perColumn:      a.perColumn + b.perColumn,
		linearLanes:    a.linearLanes && b.linearLanes,
		perColumnLanes: a.perColumnLanes && b.perColumnLanes,
		cached:         a.cached || b.cached,
	}
}
