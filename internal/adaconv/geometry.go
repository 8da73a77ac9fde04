// Package adaconv defines the shared contract of the locally-adaptive
// convolution backends: the filter representation modes, the geometry derived
// from one image/filter shape pair, and the Backend interface both scheduling
// models implement.
//
// Unlike a standard convolution, every output pixel carries its own filter,
// supplied as a second input tensor. Two representations exist: a dense KxK
// weight grid per pixel, and a separable pair of length-K vectors per pixel
// whose outer product forms the effective filter.
package adaconv

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// Mode selects the per-pixel filter representation.
type Mode int

const (
	// Dense stores a full KxK weight grid per pixel.
	// Filter shape: (N, K*K, H, W), row-major flattening of the grid.
	Dense Mode = iota
	// Separable stores two length-K vectors per pixel.
	// Filter shape: (N, 2K, H, W); slots [0,K) hold the horizontal vector,
	// slots [K,2K) the vertical one. The effective filter at a pixel is
	// effective[i][j] = v[i]*h[j].
	Separable
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Dense:
		return "dense"
	case Separable:
		return "separable"
	default:
		return "unknown"
	}
}

// ShapeError reports an image/filter shape pair that violates the geometry
// contract. It is always detected by Resolve before any compute loop runs and
// is fatal to the call: no partial output is valid.
type ShapeError struct {
	Mode   Mode
	Image  tensor.Shape
	Filter tensor.Shape
	Reason string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("adaconv: %s mode, image %v, filter %v: %s",
		e.Mode, e.Image, e.Filter, e.Reason)
}

// Geometry holds the scalars derived from one image/filter shape pair.
// It must be re-resolved whenever either shape changes; the per-call compute
// step never re-derives it.
type Geometry struct {
	Mode     Mode
	Batch    int // N
	Channels int // C, independent of the kernel size
	Height   int // H
	Width    int // W
	Kernel   int // K, odd
	Padding  int // (K-1)/2, symmetric
}

// OutputShape returns the shape of the forward output, always identical to
// the image shape.
func (g Geometry) OutputShape() tensor.Shape {
	return tensor.Shape{g.Batch, g.Channels, g.Height, g.Width}
}

// FilterChannels returns the expected channel count of the filter tensor:
// K*K for dense mode, 2K for separable mode.
func (g Geometry) FilterChannels() int {
	if g.Mode == Separable {
		return 2 * g.Kernel
	}
	return g.Kernel * g.Kernel
}

// FilterShape returns the expected filter tensor shape. The filter gradient
// produced by Backward has this shape as well.
func (g Geometry) FilterShape() tensor.Shape {
	return tensor.Shape{g.Batch, g.FilterChannels(), g.Height, g.Width}
}

// Resolve validates the image and filter shapes for the given mode and
// derives the kernel geometry. It has no side effects; a failure is a caller
// configuration defect and is never retried.
func Resolve(image, filter tensor.Shape, mode Mode) (Geometry, error) {
	fail := func(reason string) (Geometry, error) {
		return Geometry{}, &ShapeError{Mode: mode, Image: image.Clone(), Filter: filter.Clone(), Reason: reason}
	}

	if len(image) != 4 {
		return fail(fmt.Sprintf("image must have exactly 4 axes, got %d", len(image)))
	}
	if len(filter) != 4 {
		return fail(fmt.Sprintf("filter must have exactly 4 axes, got %d", len(filter)))
	}
	if image[0] != filter[0] {
		return fail(fmt.Sprintf("batch dimensions differ: %d vs %d", image[0], filter[0]))
	}

	kernel, err := kernelSize(filter[1], mode)
	if err != nil {
		return fail(err.Error())
	}

	if image[2] != filter[2] {
		return fail(fmt.Sprintf("heights differ: %d vs %d", image[2], filter[2]))
	}
	if image[3] != filter[3] {
		return fail(fmt.Sprintf("widths differ: %d vs %d", image[3], filter[3]))
	}

	return Geometry{
		Mode:     mode,
		Batch:    image[0],
		Channels: image[1],
		Height:   image[2],
		Width:    image[3],
		Kernel:   kernel,
		Padding:  (kernel - 1) / 2,
	}, nil
}

// kernelSize derives K from the filter's channel count.
func kernelSize(channels int, mode Mode) (int, error) {
	var kernel int
	switch mode {
	case Dense:
		kernel = int(math32.Sqrt(float32(channels)))
		if kernel*kernel != channels {
			return 0, fmt.Errorf("dense filter channel count %d is not a perfect square", channels)
		}
	case Separable:
		if channels%2 != 0 {
			return 0, fmt.Errorf("separable filter channel count %d is not even", channels)
		}
		kernel = channels / 2
	default:
		return 0, fmt.Errorf("unknown mode %d", mode)
	}
	if kernel%2 != 1 {
		return 0, fmt.Errorf("kernel size %d is not odd", kernel)
	}
	return kernel, nil
}
