// Package parallel implements the data-parallel evaluators for
// locally-adaptive convolution: one independent unit of work per flattened
// output element for the forward passes, and one per output pixel per batch
// for the gradient passes. Units never write to shared locations, so no
// synchronization is needed, and each unit's summation order is fixed, making
// repeated runs bit-reproducible. Results agree with the sequential reference
// within floating-point tolerance; the test suites pin that parity.
package parallel

import (
	"fmt"

	"github.com/adaconv-ml/adaconv/internal/adaconv"
	sched "github.com/adaconv-ml/adaconv/internal/parallel"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// Backend is the data-parallel evaluator.
type Backend struct {
	cfg sched.Config
}

// New creates a parallel backend with default scheduling derived from the
// CPU count.
func New() *Backend {
	return &Backend{cfg: sched.DefaultConfig()}
}

// NewWithConfig creates a parallel backend with explicit scheduling.
func NewWithConfig(cfg sched.Config) *Backend {
	return &Backend{cfg: cfg}
}

// Name identifies the scheduling model.
func (b *Backend) Name() string {
	return "parallel"
}

// Compile-time check that Backend satisfies the shared contract.
var _ adaconv.Backend = (*Backend)(nil)

// Forward computes the per-pixel weighted local sum, scheduling one unit of
// work per output element.
func (b *Backend) Forward(image, filter *tensor.RawTensor, g adaconv.Geometry) *tensor.RawTensor {
	adaconv.CheckForward("forward", image, filter, g)
	out := tensor.Zeros(g.OutputShape(), image.DType())

	switch image.DType() {
	case tensor.Float32:
		forward(out.AsFloat32(), image.AsFloat32(), filter.AsFloat32(), g, b.cfg)
	case tensor.Float64:
		forward(out.AsFloat64(), image.AsFloat64(), filter.AsFloat64(), g, b.cfg)
	default:
		panic(fmt.Sprintf("adaconv forward: unsupported dtype %s", image.DType()))
	}
	return out
}

// Backward computes the filter gradient, scheduling one unit of work per
// output pixel per batch; each unit writes the full gradient column of its
// pixel. No image gradient is produced.
func (b *Backend) Backward(grad, image, filter *tensor.RawTensor, g adaconv.Geometry) *tensor.RawTensor {
	adaconv.CheckBackward("backward", grad, image, filter, g)
	dfilter := tensor.Zeros(g.FilterShape(), image.DType())

	switch image.DType() {
	case tensor.Float32:
		backward(dfilter.AsFloat32(), grad.AsFloat32(), image.AsFloat32(), filter.AsFloat32(), g, b.cfg)
	case tensor.Float64:
		backward(dfilter.AsFloat64(), grad.AsFloat64(), image.AsFloat64(), filter.AsFloat64(), g, b.cfg)
	default:
		panic(fmt.Sprintf("adaconv backward: unsupported dtype %s", image.DType()))
	}
	return dfilter
}

func forward[T tensor.Float](out, img, flt []T, g adaconv.Geometry, cfg sched.Config) {
	if g.Mode == adaconv.Separable {
		separableForward(out, img, flt, g, cfg)
		return
	}
	denseForward(out, img, flt, g, cfg)
}

func backward[T tensor.Float](dflt, grad, img, flt []T, g adaconv.Geometry, cfg sched.Config) {
	if g.Mode == adaconv.Separable {
		separableBackward(dflt, grad, img, flt, g, cfg)
		return
	}
	denseBackward(dflt, grad, img, g, cfg)
}
