// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// Type aliases for the public API.

// Float is a constraint for supported element types: float32 and float64.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 12, 16} is a batch of 2 three-channel 12x16 images.
type Shape = tensor.Shape

// RawTensor is a flat row-major buffer with shape and runtime type
// information, the operand type of every evaluator backend.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// Zeros creates a zero-filled tensor; it panics on an invalid shape.
func Zeros(shape Shape, dtype DataType) *RawTensor {
	return tensor.Zeros(shape, dtype)
}

// Full creates a tensor filled with a specific value.
func Full[T Float](shape Shape, value T) *RawTensor {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor by copying a Go slice.
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Randn creates a tensor with standard-normal values drawn from rng.
func Randn[T Float](shape Shape, rng *rand.Rand) *RawTensor {
	return tensor.Randn[T](shape, rng)
}
