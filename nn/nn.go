// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/adaconv-ml/adaconv"
	internalnn "github.com/adaconv-ml/adaconv/internal/nn"
	"github.com/adaconv-ml/adaconv/tensor"
)

// Module is implemented by components carrying trainable parameters.
type Module = internalnn.Module

// Parameter is a trainable tensor with its gradient.
type Parameter = internalnn.Parameter

// AdaptiveConv2D is the layer-style adapter over the evaluator backends: it
// caches geometry across calls, surfaces shape violations as errors before
// any compute, and optionally tracks the per-pixel filter as a trainable
// parameter.
type AdaptiveConv2D = internalnn.AdaptiveConv2D

// NewAdaptiveConv2D creates the layer for one filter representation mode and
// one evaluator backend.
//
// Example:
//
//	layer := nn.NewAdaptiveConv2D(adaconv.Separable, sequential.New())
//	out, err := layer.Forward(image, filter)
func NewAdaptiveConv2D(mode adaconv.Mode, backend adaconv.Backend) *AdaptiveConv2D {
	return internalnn.NewAdaptiveConv2D(mode, backend)
}

// NewParameter creates a trainable parameter around a caller-owned tensor.
func NewParameter(name string, t *tensor.RawTensor) *Parameter {
	return internalnn.NewParameter(name, t)
}
