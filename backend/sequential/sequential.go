// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sequential

import (
	"github.com/adaconv-ml/adaconv"
	internalseq "github.com/adaconv-ml/adaconv/internal/backend/sequential"
)

// Backend is the sequential evaluator implementation.
//
// It runs single-threaded nested loops with a fixed iteration order, making
// repeated runs bit-reproducible; it is the reference the parallel backend is
// validated against.
type Backend = internalseq.Backend

// Compile-time check that Backend implements adaconv.Backend.
var _ adaconv.Backend = (*Backend)(nil)

// New creates a sequential backend.
//
// Example:
//
//	import (
//	    "github.com/adaconv-ml/adaconv"
//	    "github.com/adaconv-ml/adaconv/backend/sequential"
//	)
//
//	backend := sequential.New()
//	out := backend.Forward(image, filter, g)
func New() *Backend {
	return internalseq.New()
}
