package adaconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaconv-ml/adaconv/internal/tensor"
)

func TestResolve_Dense(t *testing.T) {
	g, err := Resolve(tensor.Shape{2, 3, 12, 16}, tensor.Shape{2, 9, 12, 16}, Dense)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Batch)
	assert.Equal(t, 3, g.Channels)
	assert.Equal(t, 12, g.Height)
	assert.Equal(t, 16, g.Width)
	assert.Equal(t, 3, g.Kernel)
	assert.Equal(t, 1, g.Padding)
	assert.Equal(t, tensor.Shape{2, 3, 12, 16}, g.OutputShape())
	assert.Equal(t, tensor.Shape{2, 9, 12, 16}, g.FilterShape())
}

func TestResolve_Separable(t *testing.T) {
	g, err := Resolve(tensor.Shape{1, 4, 8, 8}, tensor.Shape{1, 10, 8, 8}, Separable)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Kernel)
	assert.Equal(t, 2, g.Padding)
	assert.Equal(t, 10, g.FilterChannels())
	assert.Equal(t, tensor.Shape{1, 10, 8, 8}, g.FilterShape())
}

func TestResolve_KernelOne(t *testing.T) {
	// K=1 is the smallest supported kernel: a 1x1 filter with zero padding.
	g, err := Resolve(tensor.Shape{1, 1, 4, 4}, tensor.Shape{1, 1, 4, 4}, Dense)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Kernel)
	assert.Equal(t, 0, g.Padding)

	g, err = Resolve(tensor.Shape{1, 1, 4, 4}, tensor.Shape{1, 2, 4, 4}, Separable)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Kernel)
}

func TestResolve_ShapeErrors(t *testing.T) {
	img := tensor.Shape{2, 3, 12, 16}

	tests := []struct {
		name   string
		image  tensor.Shape
		filter tensor.Shape
		mode   Mode
	}{
		{"three axis image", tensor.Shape{3, 12, 16}, tensor.Shape{2, 9, 12, 16}, Dense},
		{"three axis filter", img, tensor.Shape{9, 12, 16}, Dense},
		{"batch mismatch", img, tensor.Shape{4, 9, 12, 16}, Dense},
		{"dense channels not square", img, tensor.Shape{2, 8, 12, 16}, Dense},
		{"dense even kernel", img, tensor.Shape{2, 4, 12, 16}, Dense},
		{"separable odd channels", img, tensor.Shape{2, 7, 12, 16}, Separable},
		{"separable even kernel", img, tensor.Shape{2, 12, 12, 16}, Separable},
		{"height mismatch", img, tensor.Shape{2, 9, 10, 16}, Dense},
		{"width mismatch", img, tensor.Shape{2, 9, 12, 14}, Dense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.image, tt.filter, tt.mode)
			require.Error(t, err)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr), "error is not a ShapeError: %v", err)
			assert.Equal(t, tt.mode, shapeErr.Mode)
		})
	}
}

func TestResolve_NoSideEffects(t *testing.T) {
	// The reported shapes are copies; mutating the inputs afterwards must not
	// change the error contents.
	img := tensor.Shape{3, 12, 16}
	flt := tensor.Shape{2, 9, 12, 16}
	_, err := Resolve(img, flt, Dense)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	img[0] = 99
	assert.Equal(t, 3, shapeErr.Image[0])
}
