// Package nn provides the layer-style adapter between a host graph framework
// and the locally-adaptive convolution backends. The host owns all tensor
// buffers, persists weights across steps, and calls Forward before Backward
// with matching shapes; the adapter only resolves geometry, dispatches to a
// backend, and surfaces shape violations as errors before any compute runs.
package nn

// Module is implemented by components that carry trainable parameters the
// host's optimizer can visit.
type Module interface {
	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter

	// ZeroGrad clears the gradients of all parameters, typically before
	// each training iteration.
	ZeroGrad()
}
