// Copyright 2025 neon-sim Authors
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

package neon

import (
	"fmt"
	"unsafe"
)

// NEON registers come in two nominal widths: a D register holds 64 bits,
// a Q register 128.
const (
	DBits = 64
	QBits = 128
)

// Desc identifies one concrete vector shape: element width in bits,
// signedness, and lane count. It is the key that selects a kernel
// instantiation in the dispatch table. Desc values are immutable once built.
type Desc struct {
	ElemBits int
	Signed   bool
	Lanes    int
}

// VectorBits returns the total width of the described vector in bits.
func (d Desc) VectorBits() int {
	return d.ElemBits * d.Lanes
}

// Quad reports whether this is a Q-form (128-bit) shape.
func (d Desc) Quad() bool {
	return d.VectorBits() == QBits
}

// Valid reports whether the described shape forms a D or Q vector.
// Lanes*ElemBits must equal 64 or 128; this is the sole structural
// invariant of the model.
func (d Desc) Valid() bool {
	switch d.ElemBits {
	case 8, 16, 32, 64:
	default:
		return false
	}
	bits := d.VectorBits()
	return bits == DBits || bits == QBits
}

// String renders the NEON vector-type name, e.g. "int8x8" or "uint16x8".
func (d Desc) String() string {
	sign := "uint"
	if d.Signed {
		sign = "int"
	}
	return fmt.Sprintf("%s%dx%d", sign, d.ElemBits, d.Lanes)
}

// DescD returns the 64-bit (D-form) descriptor for element type T.
//
// For example: uint8 -> uint8x8, int32 -> int32x2.
func DescD[T Integers]() Desc {
	bits := elemBits[T]()
	return Desc{ElemBits: bits, Signed: isSigned[T](), Lanes: DBits / bits}
}

// DescQ returns the 128-bit (Q-form) descriptor for element type T.
//
// For example: uint8 -> uint8x16, int32 -> int32x4.
func DescQ[T Integers]() Desc {
	bits := elemBits[T]()
	return Desc{ElemBits: bits, Signed: isSigned[T](), Lanes: QBits / bits}
}

// DescOf derives the descriptor for a vector of element type T with the given
// lane count. It fails when the shape forms neither a D nor a Q vector.
func DescOf[T Integers](lanes int) (Desc, error) {
	d := Desc{ElemBits: elemBits[T](), Signed: isSigned[T](), Lanes: lanes}
	if !d.Valid() {
		return Desc{}, fmt.Errorf("neon: %w: %d lanes of %d bits", ErrBadShape, d.Lanes, d.ElemBits)
	}
	return d, nil
}

// elemBits returns the width of element type T in bits.
func elemBits[T Integers]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

// isSigned reports whether element type T is signed.
func isSigned[T Integers]() bool {
	var zero T
	return zero-1 < zero
}
