// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package adaconv computes locally-adaptive 2D convolution: every output
// pixel carries its own filter, supplied as a second input tensor alongside
// the image.
//
// # Filter representations
//
// Two representations are supported, selected by Mode:
//   - Dense: a full KxK weight grid per pixel, filter shape (N, K*K, H, W).
//   - Separable: two length-K vectors per pixel, filter shape (N, 2K, H, W);
//     the effective filter is their outer product.
//
// # Passes
//
// The forward pass is the weighted local sum under the pixel's filter with
// implicit zero padding (out-of-bounds taps are clipped, never read). The
// backward pass produces the gradient with respect to the filter weights;
// backpropagation into the image is not supported.
//
// # Backends
//
// Two interchangeable evaluator backends implement the Backend contract:
// backend/sequential (single-threaded reference, bit-reproducible) and
// backend/parallel (one independent unit of work per output element). They
// agree within an absolute tolerance of 1e-3 for float32 data.
//
// # Basic Usage
//
//	import (
//	    "github.com/adaconv-ml/adaconv"
//	    "github.com/adaconv-ml/adaconv/backend/sequential"
//	    "github.com/adaconv-ml/adaconv/tensor"
//	)
//
//	image := tensor.Full[float32](tensor.Shape{1, 1, 3, 3}, 1)
//	filter := tensor.Full[float32](tensor.Shape{1, 9, 3, 3}, 1)
//
//	g, err := adaconv.Resolve(image.Shape(), filter.Shape(), adaconv.Dense)
//	if err != nil {
//	    // shape contract violated, fatal configuration error
//	}
//	out := sequential.New().Forward(image, filter, g)
package adaconv
