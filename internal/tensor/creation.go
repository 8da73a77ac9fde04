package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a zero-filled tensor.
// Panics on an invalid shape; shape validation should prevent that upstream.
func Zeros(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	return raw
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](tensor.Shape{1, 9, 3, 3}, 1.0)
func Full[T Float](shape Shape, value T) *RawTensor {
	var dummy T
	t := Zeros(shape, inferDataType(dummy))
	switch data := any(value).(type) {
	case float32:
		buf := t.AsFloat32()
		for i := range buf {
			buf[i] = data
		}
	case float64:
		buf := t.AsFloat64()
		for i := range buf {
			buf[i] = data
		}
	}
	return t
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	t := Zeros(shape, inferDataType(dummy))
	switch buf := any(data).(type) {
	case []float32:
		copy(t.AsFloat32(), buf)
	case []float64:
		copy(t.AsFloat64(), buf)
	}
	return t, nil
}

// Randn creates a tensor with values drawn from a standard normal
// distribution using the supplied source, so callers control reproducibility.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.Randn[float32](tensor.Shape{2, 3, 12, 16}, rng)
func Randn[T Float](shape Shape, rng *rand.Rand) *RawTensor {
	var dummy T
	t := Zeros(shape, inferDataType(dummy))
	switch inferDataType(dummy) {
	case Float32:
		buf := t.AsFloat32()
		for i := range buf {
			buf[i] = float32(rng.NormFloat64())
		}
	case Float64:
		buf := t.AsFloat64()
		for i := range buf {
			buf[i] = rng.NormFloat64()
		}
	}
	return t
}
