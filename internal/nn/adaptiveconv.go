package nn

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// AdaptiveConv2D applies a spatially-varying filter to an image: every output
// pixel is the weighted sum of its neighborhood under that pixel's own
// filter, supplied as a second tensor. The mode picks the filter
// representation (dense KxK grid or separable vector pair per pixel).
//
// The layer caches the resolved geometry and re-resolves only when the input
// shapes change, keeping the reshape step out of the per-call compute path.
// It holds no tensor data of its own unless a filter is bound as a trainable
// parameter.
//
// Example:
//
//	layer := nn.NewAdaptiveConv2D(adaconv.Dense, sequential.New())
//	out, err := layer.Forward(image, filter)
//	...
//	dfilter, err := layer.Backward(upstream, image, filter)
type AdaptiveConv2D struct {
	mode    adaconv.Mode
	backend adaconv.Backend

	geom        adaconv.Geometry
	imageShape  tensor.Shape
	filterShape tensor.Shape
	configured  bool

	filter *Parameter // optional bound filter
}

// NewAdaptiveConv2D creates the layer for one filter representation and one
// evaluator backend.
func NewAdaptiveConv2D(mode adaconv.Mode, backend adaconv.Backend) *AdaptiveConv2D {
	return &AdaptiveConv2D{
		mode:    mode,
		backend: backend,
	}
}

// Mode returns the filter representation mode.
func (l *AdaptiveConv2D) Mode() adaconv.Mode {
	return l.mode
}

// Configure resolves the geometry for an image/filter shape pair. The host
// must treat an error as a fatal configuration defect; nothing was computed.
// Calling Configure again with the same shapes is cheap and idempotent.
func (l *AdaptiveConv2D) Configure(imageShape, filterShape tensor.Shape) (adaconv.Geometry, error) {
	if l.configured && l.imageShape.Equal(imageShape) && l.filterShape.Equal(filterShape) {
		return l.geom, nil
	}

	g, err := adaconv.Resolve(imageShape, filterShape, l.mode)
	if err != nil {
		return adaconv.Geometry{}, err
	}

	l.geom = g
	l.imageShape = imageShape.Clone()
	l.filterShape = filterShape.Clone()
	l.configured = true
	return g, nil
}

// Forward computes the output tensor, shaped exactly like the image. Inputs
// are never mutated and never retained. Shapes are re-resolved automatically
// if they changed since the last call.
func (l *AdaptiveConv2D) Forward(image, filter *tensor.RawTensor) (*tensor.RawTensor, error) {
	if _, err := l.Configure(image.Shape(), filter.Shape()); err != nil {
		return nil, err
	}
	return l.backend.Forward(image, filter, l.geom), nil
}

// Backward computes the gradient with respect to the filter weights from the
// upstream gradient. A gradient with respect to the image is not supported
// and never produced. If a filter parameter is bound, the gradient is also
// deposited there.
func (l *AdaptiveConv2D) Backward(grad, image, filter *tensor.RawTensor) (*tensor.RawTensor, error) {
	if _, err := l.Configure(image.Shape(), filter.Shape()); err != nil {
		return nil, err
	}
	dfilter := l.backend.Backward(grad, image, filter, l.geom)
	if l.filter != nil && l.filter.Tensor() == filter {
		l.filter.SetGrad(dfilter)
	}
	return dfilter, nil
}

// BindFilter registers a filter tensor as this layer's trainable parameter,
// so the host's optimizer can find it through Parameters and Backward can
// deposit its gradient. The layer still accepts any filter tensor in
// Forward/Backward; only calls using the bound tensor update the parameter.
func (l *AdaptiveConv2D) BindFilter(filter *tensor.RawTensor) *Parameter {
	l.filter = NewParameter("adaptiveconv2d.filter", filter)
	return l.filter
}

// Parameters returns the bound filter parameter, or nothing when the host
// owns the filter entirely.
func (l *AdaptiveConv2D) Parameters() []*Parameter {
	if l.filter == nil {
		return nil
	}
	return []*Parameter{l.filter}
}

// ZeroGrad clears the bound parameter's gradient.
func (l *AdaptiveConv2D) ZeroGrad() {
	if l.filter != nil {
		l.filter.ZeroGrad()
	}
}

// Compile-time check that the layer is a Module.
var _ Module = (*AdaptiveConv2D)(nil)
