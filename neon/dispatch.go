package neon

import (
	"errors"
	"fmt"
)

// Op identifies one modeled instruction family.
type Op uint8

const (
	// OpHalvingAdd is NEON VHADD: floor((a+b)/2) per lane.
	OpHalvingAdd Op = iota

	// OpRoundedHalvingAdd is NEON VRHADD: floor((a+b+1)/2) per lane.
	OpRoundedHalvingAdd
)

// String returns the NEON mnemonic for the operation.
func (op Op) String() string {
	switch op {
	case OpHalvingAdd:
		return "vhadd"
	case OpRoundedHalvingAdd:
		return "vrhadd"
	default:
		return "unknown"
	}
}

// Contract violations reported by Apply before any kernel runs.
var (
	ErrLaneMismatch = errors.New("operand lane counts differ")
	ErrBadShape     = errors.New("shape is neither a D nor a Q vector")
	ErrNoKernel     = errors.New("no kernel registered")
)

// kernelKey pairs an operation with one concrete vector shape.
type kernelKey struct {
	op   Op
	desc Desc
}

// kernels is the static dispatch table. Values are func(Vec[T], Vec[T]) Vec[T]
// for the key's element type; Apply recovers the typed form by assertion.
// The table is populated once at init and read-only afterwards.
var kernels = make(map[kernelKey]any)

// register binds one generic kernel to both the D and Q shapes of element
// type T. D/Q equivalence is structural: the two entries share one function
// value, so the Q form is by construction the D form at doubled lane count.
func register[T Integers](op Op, kernel func(a, b Vec[T]) Vec[T]) {
	kernels[kernelKey{op, DescD[T]()}] = kernel
	kernels[kernelKey{op, DescQ[T]()}] = kernel
}

// registerElem registers every modeled operation for element type T.
func registerElem[T Integers]() {
	register(OpHalvingAdd, HalvingAdd[T])
	register(OpRoundedHalvingAdd, RoundedHalvingAdd[T])
}

func init() {
	// The modeled hardware family exists for 8/16/32-bit elements only;
	// 64-bit lanes are reachable through the generic kernels directly.
	registerElem[int8]()
	registerElem[int16]()
	registerElem[int32]()
	registerElem[uint8]()
	registerElem[uint16]()
	registerElem[uint32]()
}

// Variants returns the descriptors with a registered kernel for op,
// i.e. the modeled hardware variant table.
func Variants(op Op) []Desc {
	var out []Desc
	for k := range kernels {
		if k.op == op {
			out = append(out, k.desc)
		}
	}
	return out
}

// Apply selects the kernel instantiation for op and the operand shape, runs
// it, and returns the result vector. Operands must share one element type
// (enforced by the type system) and one lane count forming a D or Q vector;
// violations are rejected before any kernel executes.
func Apply[T Integers](op Op, lhs, rhs Vec[T]) (Vec[T], error) {
	if lhs.NumLanes() != rhs.NumLanes() {
		return Vec[T]{}, fmt.Errorf("neon: %s: %w: %d vs %d",
			op, ErrLaneMismatch, lhs.NumLanes(), rhs.NumLanes())
	}
	desc, err := DescOf[T](lhs.NumLanes())
	if err != nil {
		return Vec[T]{}, err
	}
	kernel, ok := kernels[kernelKey{op, desc}]
	if !ok {
		return Vec[T]{}, fmt.Errorf("neon: %w for %s %s", ErrNoKernel, op, desc)
	}
	return kernel.(func(Vec[T], Vec[T]) Vec[T])(lhs, rhs), nil
}
