// Copyright 2026 AdaConv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package parallel

import (
	"github.com/adaconv-ml/adaconv"
	internalpar "github.com/adaconv-ml/adaconv/internal/backend/parallel"
	sched "github.com/adaconv-ml/adaconv/internal/parallel"
)

// Backend is the data-parallel evaluator implementation.
//
// It schedules one independent unit of work per output element (forward) or
// per output pixel per batch (backward) across worker goroutines. Units
// never write to shared locations, so no synchronization is needed, and each
// unit's summation order is fixed, making repeated runs bit-reproducible.
type Backend = internalpar.Backend

// Config controls worker-goroutine scheduling.
type Config = sched.Config

// Compile-time check that Backend implements adaconv.Backend.
var _ adaconv.Backend = (*Backend)(nil)

// New creates a parallel backend with scheduling defaults derived from the
// CPU count.
func New() *Backend {
	return internalpar.New()
}

// NewWithConfig creates a parallel backend with explicit scheduling.
func NewWithConfig(cfg Config) *Backend {
	return internalpar.NewWithConfig(cfg)
}

// DefaultConfig returns the scheduling defaults.
func DefaultConfig() Config {
	return sched.DefaultConfig()
}
