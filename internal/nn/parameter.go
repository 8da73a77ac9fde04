package nn

import (
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// Parameter represents a trainable tensor with its gradient. For the
// adaptive convolution layer the parameter is the per-pixel filter bank;
// Backward deposits the filter gradient here for the host's optimizer.
type Parameter struct {
	name   string
	tensor *tensor.RawTensor
	grad   *tensor.RawTensor
}

// NewParameter creates a trainable parameter. The gradient stays nil until
// the first backward pass.
func NewParameter(name string, t *tensor.RawTensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.RawTensor {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter) Grad() *tensor.RawTensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.RawTensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
