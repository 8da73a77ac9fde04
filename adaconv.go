// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package adaconv

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/tensor"
)

// Mode selects the per-pixel filter representation.
type Mode = adaconv.Mode

// Filter representation modes.
const (
	// Dense stores a full KxK weight grid per pixel.
	Dense Mode = adaconv.Dense
	// Separable stores a horizontal and a vertical length-K vector per
	// pixel; their outer product is the effective filter.
	Separable Mode = adaconv.Separable
)

// Geometry holds the scalars derived from one image/filter shape pair:
// batch, channels, spatial size, kernel size and padding.
type Geometry = adaconv.Geometry

// ShapeError reports an image/filter shape pair that violates the geometry
// contract. It is detected before any compute runs and is fatal to the call.
type ShapeError = adaconv.ShapeError

// Backend is the contract both evaluator backends implement.
type Backend = adaconv.Backend

// FastKernelLimit bounds the separable backward fast path's accumulator;
// larger kernels silently take the unbounded path at higher arithmetic cost.
const FastKernelLimit = adaconv.FastKernelLimit

// Resolve validates the image and filter shapes for the given mode and
// derives the kernel geometry. It must be re-run whenever either shape
// changes; the compute passes never re-derive it.
func Resolve(image, filter tensor.Shape, mode Mode) (Geometry, error) {
	return adaconv.Resolve(image, filter, mode)
}
