package neon

import (
	"errors"
	"testing"
)

func TestDescForms(t *testing.T) {
	cases := []struct {
		desc Desc
		name string
		bits int
	}{
		{DescD[int8](), "int8x8", 64},
		{DescD[int16](), "int16x4", 64},
		{DescD[int32](), "int32x2", 64},
		{DescD[uint8](), "uint8x8", 64},
		{DescD[uint16](), "uint16x4", 64},
		{DescD[uint32](), "uint32x2", 64},
		{DescQ[int8](), "int8x16", 128},
		{DescQ[int16](), "int16x8", 128},
		{DescQ[int32](), "int32x4", 128},
		{DescQ[uint8](), "uint8x16", 128},
		{DescQ[uint16](), "uint16x8", 128},
		{DescQ[uint32](), "uint32x4", 128},
		{DescD[int64](), "int64x1", 64},
		{DescQ[uint64](), "uint64x2", 128},
	}
	for _, tc := range cases {
		if tc.desc.String() != tc.name {
			t.Errorf("got %q, want %q", tc.desc.String(), tc.name)
		}
		if tc.desc.VectorBits() != tc.bits {
			t.Errorf("%s: got %d vector bits, want %d", tc.name, tc.desc.VectorBits(), tc.bits)
		}
		if !tc.desc.Valid() {
			t.Errorf("%s: expected valid", tc.name)
		}
		if tc.desc.Quad() != (tc.bits == 128) {
			t.Errorf("%s: Quad() = %v", tc.name, tc.desc.Quad())
		}
	}
}

func TestDescValidRejects(t *testing.T) {
	invalid := []Desc{
		{ElemBits: 8, Signed: true, Lanes: 4},    // 32-bit vector
		{ElemBits: 8, Signed: false, Lanes: 32},  // 256-bit vector
		{ElemBits: 12, Signed: true, Lanes: 8},   // no such element width
		{ElemBits: 16, Signed: false, Lanes: 0},  // empty
		{ElemBits: 16, Signed: false, Lanes: 3},  // 48-bit vector
	}
	for _, d := range invalid {
		if d.Valid() {
			t.Errorf("%+v: expected invalid", d)
		}
	}
}

func TestDescOf(t *testing.T) {
	d, err := DescOf[uint16](8)
	if err != nil {
		t.Fatalf("DescOf[uint16](8): %v", err)
	}
	if d != DescQ[uint16]() {
		t.Errorf("got %s, want %s", d, DescQ[uint16]())
	}

	if _, err := DescOf[uint16](3); !errors.Is(err, ErrBadShape) {
		t.Errorf("DescOf[uint16](3): got %v, want ErrBadShape", err)
	}
}

func TestDescSignedness(t *testing.T) {
	if !DescD[int8]().Signed {
		t.Error("int8 descriptor should be signed")
	}
	if DescD[uint8]().Signed {
		t.Error("uint8 descriptor should be unsigned")
	}
	if !DescQ[int64]().Signed {
		t.Error("int64 descriptor should be signed")
	}
}
