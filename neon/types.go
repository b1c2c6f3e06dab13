// Package neon is a scalar reference model for ARM NEON fixed-width lane
// instructions, illustrated by the halving-add family (VHADD, VRHADD).
//
// Every operation reproduces, in ordinary scalar arithmetic, the bit-exact
// per-lane behavior of the hardware instruction, so the package can serve as
// an oracle for validating vectorized or compiler-generated code on hosts
// where the real instruction is unavailable.
//
// Basic usage:
//
//	a := neon.Load([]uint8{250, 255, 0, 1, 2, 3, 4, 5})
//	b := neon.Load([]uint8{10, 255, 0, 1, 2, 3, 4, 5})
//
//	r, err := neon.Apply(neon.OpHalvingAdd, a, b)
//
// All operations are pure transforms over value-typed inputs; the package
// holds no state besides the dispatch table built at init, so calls may be
// issued concurrently without synchronization.
package neon

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Vec is a fixed-shape vector value: an ordered sequence of lanes of one
// element type. The shape (element type and lane count) is fixed at
// construction; there is no resizing and no implicit conversion.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Integers] struct {
	data []T
}

// Load creates a vector whose lanes are a copy of src.
// The vector does not alias src; later writes to src do not affect it.
func Load[T Integers](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Integers](value T, lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Integers](lanes int) Vec[T] {
	return Vec[T]{data: make([]T, lanes)}
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Get returns lane i. Indexes outside 0..NumLanes()-1 are a caller contract
// violation and panic.
func (v Vec[T]) Get(i int) T {
	return v.data[i]
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and printing.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a lane-wise comparison.
//
// Mask instances should not be created directly; use Equal.
type Mask[T Integers] struct {
	bits []bool
}

// Equal performs element-wise equality comparison.
func Equal[T Integers](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}
