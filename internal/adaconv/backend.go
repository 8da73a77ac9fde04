package adaconv

import (
	"fmt"

	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// Backend computes the locally-adaptive convolution passes for a resolved
// geometry. The sequential and parallel packages are two independent
// realizations of this contract and are cross-validated against each other.
//
// Implementations must be pure: inputs are treated as immutable, every output
// element is written exactly once, and no state survives a call. Summation
// order within one implementation is fixed, so repeated runs on the same
// inputs are bit-reproducible; the two implementations may differ in rounding
// but agree within an absolute tolerance of 1e-3 for float32 data in typical
// numeric ranges.
type Backend interface {
	// Forward computes the weighted local sum at every output position and
	// returns a tensor with the image's shape. Out-of-bounds filter taps
	// contribute zero via loop-bound clipping; no padded copy of the image
	// is ever materialized.
	Forward(image, filter *tensor.RawTensor, g Geometry) *tensor.RawTensor

	// Backward computes the gradient of a scalar loss with respect to the
	// per-pixel filter weights, given the upstream gradient grad (shaped
	// like the forward output). The result has the filter's shape; entries
	// for clipped taps are zero. A gradient with respect to the image is
	// never produced.
	Backward(grad, image, filter *tensor.RawTensor, g Geometry) *tensor.RawTensor

	// Name identifies the scheduling model.
	Name() string
}

// FastKernelLimit bounds the per-unit accumulator of the separable backward
// fast path. Kernels larger than this silently take the unbounded path, which
// produces identical values at O(K²·C) cost instead of O(K·C).
const FastKernelLimit = 101

// CheckForward panics unless image and filter match the resolved geometry.
// A mismatch here means the caller skipped Resolve after a shape change,
// which is a programmer error rather than a recoverable condition.
func CheckForward(op string, image, filter *tensor.RawTensor, g Geometry) {
	if image.DType() != filter.DType() {
		panic(fmt.Sprintf("adaconv %s: image dtype %s != filter dtype %s", op, image.DType(), filter.DType()))
	}
	if !image.Shape().Equal(g.OutputShape()) {
		panic(fmt.Sprintf("adaconv %s: image shape %v does not match geometry %v", op, image.Shape(), g.OutputShape()))
	}
	if !filter.Shape().Equal(g.FilterShape()) {
		panic(fmt.Sprintf("adaconv %s: filter shape %v does not match geometry %v", op, filter.Shape(), g.FilterShape()))
	}
}

// CheckBackward extends CheckForward with the upstream gradient, which must
// be shaped like the forward output.
func CheckBackward(op string, grad, image, filter *tensor.RawTensor, g Geometry) {
	CheckForward(op, image, filter, g)
	if grad.DType() != image.DType() {
		panic(fmt.Sprintf("adaconv %s: gradient dtype %s != image dtype %s", op, grad.DType(), image.DType()))
	}
	if !grad.Shape().Equal(g.OutputShape()) {
		panic(fmt.Sprintf("adaconv %s: gradient shape %v does not match output %v", op, grad.Shape(), g.OutputShape()))
	}
}
