// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API for the adaconv library.
//
// # Overview
//
// All adaconv operands are flat, row-major 4-axis tensors with axes
// (batch, channel-or-filter-slot, row, col):
//   - Image and output: (N, C, H, W)
//   - Dense per-pixel filter: (N, K*K, H, W)
//   - Separable per-pixel filter: (N, 2K, H, W)
//
// # Basic Usage
//
//	import "github.com/adaconv-ml/adaconv/tensor"
//
//	image := tensor.Full[float32](tensor.Shape{1, 1, 3, 3}, 1)
//	filter := tensor.Full[float32](tensor.Shape{1, 9, 3, 3}, 1)
//
// # Ownership
//
// Buffers are owned by the caller. The evaluator backends treat inputs as
// immutable, write each output element exactly once, and never retain a
// tensor across calls.
package tensor
