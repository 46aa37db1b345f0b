// Package lane provides portable fixed-width lane vectors used by the
// lane-wise matrix evaluators.
//
// A Vec holds MaxLanes[T]() elements. The lane width is chosen once at
// startup from the CPU features (see dispatch.go) and can be forced to the
// 16-byte scalar fallback with LMAT_NO_SIMD or overridden with LMAT_LANE_WIDTH.
//
// Every lane operation applies exactly the same scalar arithmetic as the
// corresponding element-wise scalar function, so lane-wise and scalar
// evaluation produce bit-identical results.
//
// Basic usage:
//
//	a := lane.Load(x[i:])
//	b := lane.Load(y[i:])
//	lane.Store(lane.Add(a, b), out[i:])
package lane

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all element types a matrix can hold.
type Lanes interface {
	Floats | Integers
}

// Vec is a lane vector. Use Load, Set or Zero to create one.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes as a slice. Intended for tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
