// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sequential provides the single-threaded reference backend for
// locally-adaptive convolution.
//
// # Overview
//
// The sequential backend evaluates the forward and backward passes with
// deterministic nested loops:
//   - Dense forward/backward: direct KxK weighted sums per pixel.
//   - Separable forward: factored horizontal-then-vertical accumulation.
//   - Separable backward: bounded-cache fast path for K ≤
//     adaconv.FastKernelLimit, recomputing fallback beyond it.
//
// Out-of-bounds filter taps are skipped by clipping loop bounds, which
// realizes zero padding without materializing a padded image.
//
// # Determinism
//
// Summation order is fixed, so repeated runs over the same inputs are
// bit-reproducible. Use this backend as the reference for validating other
// execution strategies, or in environments without parallel hardware.
package sequential
