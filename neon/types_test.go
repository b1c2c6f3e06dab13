package neon

import "testing"

func TestLoadCopies(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	v := Load(src)
	src[0] = 99

	if v.Get(0) != 1 {
		t.Errorf("Load aliased its source: got %d, want 1", v.Get(0))
	}
	if v.NumLanes() != 4 {
		t.Errorf("got %d lanes, want 4", v.NumLanes())
	}
}

func TestSetAndZero(t *testing.T) {
	v := Set[uint16](7, 8)
	if v.NumLanes() != 8 {
		t.Fatalf("Set: got %d lanes, want 8", v.NumLanes())
	}
	for i := range v.NumLanes() {
		if v.Get(i) != 7 {
			t.Errorf("Set: lane %d: got %d, want 7", i, v.Get(i))
		}
	}

	z := Zero[uint16](4)
	for i := range z.NumLanes() {
		if z.Get(i) != 0 {
			t.Errorf("Zero: lane %d: got %d, want 0", i, z.Get(i))
		}
	}
}

func TestStore(t *testing.T) {
	v := Load([]int8{1, 2, 3, 4, 5, 6, 7, 8})

	dst := make([]int8, 8)
	v.Store(dst)
	for i := range dst {
		if dst[i] != int8(i+1) {
			t.Errorf("Store: index %d: got %d, want %d", i, dst[i], i+1)
		}
	}

	// Short destinations receive a prefix.
	short := make([]int8, 3)
	v.Store(short)
	for i := range short {
		if short[i] != int8(i+1) {
			t.Errorf("Store short: index %d: got %d, want %d", i, short[i], i+1)
		}
	}
}

func TestEqualMask(t *testing.T) {
	a := Load([]uint8{1, 2, 3, 4})
	b := Load([]uint8{1, 9, 3, 9})
	m := Equal(a, b)

	if m.NumLanes() != 4 {
		t.Fatalf("got %d lanes, want 4", m.NumLanes())
	}
	if m.AllTrue() {
		t.Error("AllTrue should be false")
	}
	if !m.AnyTrue() {
		t.Error("AnyTrue should be true")
	}
	if m.CountTrue() != 2 {
		t.Errorf("CountTrue: got %d, want 2", m.CountTrue())
	}

	same := Equal(a, Load([]uint8{1, 2, 3, 4}))
	if !same.AllTrue() {
		t.Error("identical vectors should compare all-true")
	}
}

func TestGetPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range lane index")
		}
	}()
	v := Load([]uint8{1, 2})
	_ = v.Get(2)
}
