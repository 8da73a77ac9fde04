// Package sequential implements the reference evaluators for locally-adaptive
// convolution: single-threaded nested loops with a fixed iteration order, so
// repeated runs are bit-reproducible. The parallel package re-expresses the
// same contract for data-parallel scheduling and is cross-validated against
// this one.
package sequential

import (
	"fmt"

	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// Backend is the sequential evaluator. It is stateless; the zero value is
// usable.
type Backend struct{}

// New creates a sequential backend.
func New() *Backend {
	return &Backend{}
}

// Name identifies the scheduling model.
func (b *Backend) Name() string {
	return "sequential"
}

// Compile-time check that Backend satisfies the shared contract.
var _ adaconv.Backend = (*Backend)(nil)

// Forward computes the per-pixel weighted local sum. The result has the
// image's shape; inputs are never mutated.
func (b *Backend) Forward(image, filter *tensor.RawTensor, g adaconv.Geometry) *tensor.RawTensor {
	adaconv.CheckForward("forward", image, filter, g)
	out := tensor.Zeros(g.OutputShape(), image.DType())

	switch image.DType() {
	case tensor.Float32:
		forward(out.AsFloat32(), image.AsFloat32(), filter.AsFloat32(), g)
	case tensor.Float64:
		forward(out.AsFloat64(), image.AsFloat64(), filter.AsFloat64(), g)
	default:
		panic(fmt.Sprintf("adaconv forward: unsupported dtype %s", image.DType()))
	}
	return out
}

// Backward computes the gradient with respect to the per-pixel filter
// weights. The result has the filter's shape; entries for clipped taps stay
// zero. No image gradient is produced.
func (b *Backend) Backward(grad, image, filter *tensor.RawTensor, g adaconv.Geometry) *tensor.RawTensor {
	adaconv.CheckBackward("backward", grad, image, filter, g)
	dfilter := tensor.Zeros(g.FilterShape(), image.DType())

	switch image.DType() {
	case tensor.Float32:
		backward(dfilter.AsFloat32(), grad.AsFloat32(), image.AsFloat32(), filter.AsFloat32(), g)
	case tensor.Float64:
		backward(dfilter.AsFloat64(), grad.AsFloat64(), image.AsFloat64(), filter.AsFloat64(), g)
	default:
		panic(fmt.Sprintf("adaconv backward: unsupported dtype %s", image.DType()))
	}
	return dfilter
}

func forward[T tensor.Float](out, img, flt []T, g adaconv.Geometry) {
	if g.Mode == adaconv.Separable {
		separableForward(out, img, flt, g)
		return
	}
	denseForward(out, img, flt, g)
}

func backward[T tensor.Float](dflt, grad, img, flt []T, g adaconv.Geometry) {
	if g.Mode == adaconv.Separable {
		separableBackward(dflt, grad, img, flt, g)
		return
	}
	denseBackward(dflt, grad, img, g)
}
