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

import "math/bits"

// This file provides the halving arithmetic family. Halving operations add
// two lanes and divide the sum by two, truncating toward negative infinity,
// with the intermediate sum held in a representation wider than the lane type
// so that no input pair can overflow.

// HalvingAdd computes floor((a + b) / 2) for each lane pair, the scalar model
// of NEON VHADD. The sum never saturates or wraps.
// For example, uint8: 250 hadd 10 = 130, and 255 hadd 255 = 255 (not 127).
func HalvingAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = halvingAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// RoundedHalvingAdd computes floor((a + b + 1) / 2) for each lane pair, the
// scalar model of NEON VRHADD. It differs from HalvingAdd only in that odd
// sums round up instead of down.
func RoundedHalvingAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = roundedHalvingAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Helper functions for halving arithmetic.
//
// Each width accumulates in the doubled-width type before the single right
// shift: arithmetic for signed lanes (floor for negative sums), logical for
// unsigned. 64-bit lanes have no wider native type, so the unsigned case
// keeps the 65th bit from the bits.Add64 carry and the signed case uses the
// two's-complement identity (a>>1)+(b>>1)+(a&b&1), which equals the floored
// wide-sum shift.

func halvingAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8))
		return T(any(int8(sum >> 1)).(int8))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16))
		return T(any(int16(sum >> 1)).(int16))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32))
		return T(any(int32(sum >> 1)).(int32))
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		return T(any((av >> 1) + (bv >> 1) + (av & bv & 1)).(int64))
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8))
		return T(any(uint8(sum >> 1)).(uint8))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16))
		return T(any(uint16(sum >> 1)).(uint16))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32))
		return T(any(uint32(sum >> 1)).(uint32))
	case uint64:
		av := any(a).(uint64)
		bv := any(b).(uint64)
		sum, carry := bits.Add64(av, bv, 0)
		return T(any(sum>>1 | carry<<63).(uint64))
	default:
		// Named integer types: the identity form holds at any width and
		// signedness because >> floors on two's complement.
		return (a >> 1) + (b >> 1) + (a & b & 1)
	}
}

func roundedHalvingAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8)) + 1
		return T(any(int8(sum >> 1)).(int8))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16)) + 1
		return T(any(int16(sum >> 1)).(int16))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32)) + 1
		return T(any(int32(sum >> 1)).(int32))
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		return T(any((av >> 1) + (bv >> 1) + ((av | bv) & 1)).(int64))
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8)) + 1
		return T(any(uint8(sum >> 1)).(uint8))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16)) + 1
		return T(any(uint16(sum >> 1)).(uint16))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32)) + 1
		return T(any(uint32(sum >> 1)).(uint32))
	case uint64:
		av := any(a).(uint64)
		bv := any(b).(uint64)
		sum, carry := bits.Add64(av, bv, 1)
		return T(any(sum>>1 | carry<<63).(uint64))
	default:
		return (a >> 1) + (b >> 1) + ((a | b) & 1)
	}
}
