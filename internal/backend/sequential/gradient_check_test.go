package sequential

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// checkFilterGradient verifies Backward against central finite differences of
// the forward pass, weight by weight, through the scalar loss
// L = Σ grad ⊙ Forward(image, filter). dL/dfilter is exactly what Backward
// returns, so every entry must match the numerical estimate. Run in float64
// so the finite-difference noise floor stays far below the tolerance.
func checkFilterGradient(t *testing.T, imgShape, fltShape tensor.Shape, mode adaconv.Mode, seed int64) {
	t.Helper()
	const (
		epsilon = 1e-5
		tol     = 1e-6
	)

	rng := rand.New(rand.NewSource(seed))
	backend := New()

	g, err := adaconv.Resolve(imgShape, fltShape, mode)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	image := tensor.Randn[float64](imgShape, rng)
	filter := tensor.Randn[float64](fltShape, rng)
	grad := tensor.Randn[float64](imgShape, rng)

	analytic := backend.Backward(grad, image, filter, g).AsFloat64()

	loss := func() float64 {
		out := backend.Forward(image, filter, g).AsFloat64()
		up := grad.AsFloat64()
		var l float64
		for i := range out {
			l += up[i] * out[i]
		}
		return l
	}

	fltData := filter.AsFloat64()
	for i := range fltData {
		orig := fltData[i]
		fltData[i] = orig + epsilon
		lPlus := loss()
		fltData[i] = orig - epsilon
		lMinus := loss()
		fltData[i] = orig

		numeric := (lPlus - lMinus) / (2 * epsilon)
		if !scalar.EqualWithinAbs(analytic[i], numeric, tol) {
			t.Fatalf("%s filter[%d]: analytic %g, numeric %g", mode, i, analytic[i], numeric)
		}
	}
}

func TestDenseBackward_NumericalGradient(t *testing.T) {
	checkFilterGradient(t, tensor.Shape{1, 2, 4, 5}, tensor.Shape{1, 9, 4, 5}, adaconv.Dense, 101)
}

func TestDenseBackward_NumericalGradient_TinyImage(t *testing.T) {
	// 3x3 image with K=3: every pixel is boundary-adjacent, so the clipped
	// gradient entries get exercised everywhere.
	checkFilterGradient(t, tensor.Shape{1, 1, 3, 3}, tensor.Shape{1, 9, 3, 3}, adaconv.Dense, 103)
}

func TestDenseBackward_NumericalGradient_K5(t *testing.T) {
	checkFilterGradient(t, tensor.Shape{1, 1, 5, 4}, tensor.Shape{1, 25, 5, 4}, adaconv.Dense, 107)
}

func TestSeparableBackward_NumericalGradient(t *testing.T) {
	checkFilterGradient(t, tensor.Shape{1, 2, 4, 5}, tensor.Shape{1, 6, 4, 5}, adaconv.Separable, 109)
}

func TestSeparableBackward_NumericalGradient_TinyImage(t *testing.T) {
	checkFilterGradient(t, tensor.Shape{1, 1, 3, 3}, tensor.Shape{1, 6, 3, 3}, adaconv.Separable, 113)
}

func TestSeparableBackward_NumericalGradient_K5(t *testing.T) {
	checkFilterGradient(t, tensor.Shape{1, 1, 5, 4}, tensor.Shape{1, 10, 5, 4}, adaconv.Separable, 127)
}

func TestSeparableBackward_NumericalGradient_MultiBatch(t *testing.T) {
	checkFilterGradient(t, tensor.Shape{2, 2, 3, 3}, tensor.Shape{2, 6, 3, 3}, adaconv.Separable, 131)
}
