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

import (
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the instruction set the lane width was derived from.
type Level int

const (
	// LevelScalar means no SIMD hardware was assumed; lanes are 16 bytes wide.
	LevelScalar Level = iota

	// LevelSSE2 is the x86-64 baseline (128-bit).
	LevelSSE2

	// LevelAVX2 is 256-bit x86 SIMD.
	LevelAVX2

	// LevelAVX512 is 512-bit x86 SIMD.
	LevelAVX512

	// LevelNEON is 128-bit ARM SIMD.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the detected instruction set level.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the lane vector width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv reports whether LMAT_NO_SIMD is set to a truthy value.
func NoSimdEnv() bool {
	val := os.Getenv("LMAT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// widthEnv returns the width requested through LMAT_LANE_WIDTH, or 0 when
// the variable is unset or not one of 16, 32, 64.
func widthEnv() int {
	w, err := strconv.Atoi(os.Getenv("LMAT_LANE_WIDTH"))
	if err != nil || !validWidth(w) {
		return 0
	}
	return w
}

func validWidth(w int) bool {
	return w == 16 || w == 32 || w == 64
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16
}

// applyEnv runs after CPU detection and lets the environment override it.
func applyEnv() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	if w := widthEnv(); w != 0 {
		currentWidth = w
	}
}

// OverrideWidth forces the lane width to the given number of bytes and
// returns a function restoring the previous width. It is not safe to call
// while evaluations are running on other goroutines.
func OverrideWidth(bytes int) (restore func()) {
	if !validWidth(bytes) {
		panic("lane: width must be 16, 32 or 64 bytes")
	}
	prev := currentWidth
	currentWidth = bytes
	return func() { currentWidth = prev }
}

// MaxLanes returns the number of lanes for type T at the current width.
//
// For example, with AVX2 (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 0
	}
	return currentWidth / size
}
