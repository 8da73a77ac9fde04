// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel provides the data-parallel backend for locally-adaptive
// convolution.
//
// # Overview
//
// The parallel backend re-expresses the sequential reference for
// one-unit-per-output-element scheduling. Each unit reads only the image,
// the filter and (for backward) the upstream gradient, and writes only its
// own output element(s); output locations never alias, so units need no
// synchronization. The separable backward fast path allocates its K-sized
// accumulator per unit of work, never shared or pooled.
//
// # Agreement with the reference
//
// The parallel backend is an independent realization of the same
// mathematical contract as backend/sequential, cross-validated against it:
// results agree within an absolute tolerance of 1e-3 for float32 data in
// typical numeric ranges.
//
// # Basic Usage
//
//	backend := parallel.New()
//	out := backend.Forward(image, filter, g)
//
// Scheduling can be tuned with NewWithConfig for small inputs or restricted
// environments.
package parallel
