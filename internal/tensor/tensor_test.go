package tensor

import (
	"math/rand"
	"testing"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 12, 16}, 1152},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3, 4}).Validate(); err != nil {
		t.Errorf("Valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0, 4}).Validate(); err == nil {
		t.Error("Zero dimension accepted")
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Negative dimension accepted")
	}
}

func TestShape_ComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4, 5}.ComputeStrides()
	want := []int{60, 20, 5, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("Strides = %v, want %v", strides, want)
		}
	}
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{1, 9, 3, 3}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if !raw.Shape().Equal(Shape{1, 9, 3, 3}) {
		t.Errorf("Shape = %v", raw.Shape())
	}
	if raw.ByteSize() != 81*4 {
		t.Errorf("ByteSize = %d, want %d", raw.ByteSize(), 81*4)
	}

	data := raw.AsFloat32()
	if len(data) != 81 {
		t.Fatalf("len(AsFloat32()) = %d, want 81", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Fatalf("Element %d not zero-initialized: %f", i, v)
		}
	}

	if _, err := NewRaw(Shape{1, 0, 3}, Float32); err == nil {
		t.Error("NewRaw accepted invalid shape")
	}
}

func TestRawTensor_DTypePanics(t *testing.T) {
	raw := Zeros(Shape{2, 2}, Float64)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on float64 tensor did not panic")
		}
	}()
	raw.AsFloat32()
}

func TestFull(t *testing.T) {
	t1 := Full[float32](Shape{3, 3}, 1.5)
	for _, v := range t1.AsFloat32() {
		if v != 1.5 {
			t.Fatalf("Full element = %f, want 1.5", v)
		}
	}

	t2 := Full[float64](Shape{2}, -2)
	if t2.DType() != Float64 {
		t.Errorf("DType = %s, want float64", t2.DType())
	}
}

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	data := raw.AsFloat32()
	for i := 0; i < 6; i++ {
		if data[i] != float32(i+1) {
			t.Errorf("Element %d = %f, want %d", i, data[i], i+1)
		}
	}

	if _, err := FromSlice([]float32{1, 2}, Shape{3}); err == nil {
		t.Error("FromSlice accepted mismatched length")
	}
}

func TestClone_Independent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := Randn[float32](Shape{4, 4}, rng)
	b := a.Clone()

	a.AsFloat32()[0] = 99
	if b.AsFloat32()[0] == 99 {
		t.Error("Clone shares memory with original")
	}
	if !b.Shape().Equal(a.Shape()) {
		t.Errorf("Clone shape = %v, want %v", b.Shape(), a.Shape())
	}
}

func TestRandn_Deterministic(t *testing.T) {
	a := Randn[float64](Shape{16}, rand.New(rand.NewSource(7)))
	b := Randn[float64](Shape{16}, rand.New(rand.NewSource(7)))
	da, db := a.AsFloat64(), b.AsFloat64()
	for i := range da {
		if da[i] != db[i] {
			t.Fatalf("Element %d differs across seeded runs: %f vs %f", i, da[i], db[i])
		}
	}
}
