package sequential

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// separableBackward selects the gradient strategy purely on kernel size: the
// bounded-cache fast path while its accumulator fits, the unbounded path
// beyond that. Both produce identical values; only the cost profile changes.
func separableBackward[T tensor.Float](dflt, grad, img, flt []T, g adaconv.Geometry) {
	if g.Kernel <= adaconv.FastKernelLimit {
		acc := make([]T, g.Kernel)
		chanPix := g.Height * g.Width
		for n := 0; n < g.Batch; n++ {
			for pix := 0; pix < chanPix; pix++ {
				separableBackwardFast(dflt, grad, img, flt, g, n, pix, acc)
			}
		}
		return
	}
	separableBackwardWide(dflt, grad, img, flt, g)
}

// separableBackwardFast computes both gradient halves for one pixel in a
// single sweep over the horizontal taps. The chain rule through the outer
// product gives, with t(i,j) = Σ_c grad[n,c,y,x]*img[n,c,y-P+i,x-P+j],
//
//	dh[j] = Σ_i v[i]*t(i,j)    dv[i] = Σ_j h[j]*t(i,j)
//
// While accumulating dh[j], each t(i,j)*h[j] is also folded into acc[i], so
// the vertical half is complete when the sweep ends and t is never
// recomputed. acc is K-sized scratch owned by the calling unit of work; it
// must not be shared between concurrently executing units.
func separableBackwardFast[T tensor.Float](dflt, grad, img, flt []T, g adaconv.Geometry, n, pix int, acc []T) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltOff := n*2*K*chanPix + pix
	y, x := pix/W, pix%W

	for i := range acc {
		acc[i] = 0
	}

	i0 := max(P-y, 0)
	j0 := max(P-x, 0)
	for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
		h := flt[fltOff+j*chanPix]
		var dh T
		for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
			var t T
			for c := 0; c < g.Channels; c++ {
				off := n*imgPix + c*chanPix
				t += grad[off+pix] * img[off+iy*W+jx]
			}
			dh += t * flt[fltOff+(K+i)*chanPix]
			acc[i] += t * h
		}
		dflt[fltOff+j*chanPix] = dh
	}
	for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
		dflt[fltOff+(K+i)*chanPix] = acc[i]
	}
}

// separableBackwardWide is the fallback for kernels past the fast path's
// accumulator bound. Each gradient half gets its own explicit double loop and
// the channel-summed term is recomputed independently for each, trading
// O(K²·C) arithmetic for zero auxiliary storage.
func separableBackwardWide[T tensor.Float](dflt, grad, img, flt []T, g adaconv.Geometry) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := 2 * K * chanPix

	for n := 0; n < g.Batch; n++ {
		for y := 0; y < H; y++ {
			for x := 0; x < W; x++ {
				pix := y*W + x
				fltOff := n*fltPix + pix
				i0 := max(P-y, 0)
				j0 := max(P-x, 0)

				// Horizontal half: dh[j] = sum_i v[i]*t(i,j).
				for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
					var dh T
					for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
						var t T
						for c := 0; c < g.Channels; c++ {
							off := n*imgPix + c*chanPix
							t += grad[off+pix] * img[off+iy*W+jx]
						}
						dh += t * flt[fltOff+(K+i)*chanPix]
					}
					dflt[fltOff+j*chanPix] = dh
				}

				// Vertical half: dv[i] = sum_j h[j]*t(i,j).
				for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
					var dv T
					for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
						var t T
						for c := 0; c < g.Channels; c++ {
							off := n*imgPix + c*chanPix
							t += grad[off+pix] * img[off+iy*W+jx]
						}
						dv += t * flt[fltOff+j*chanPix]
					}
					dflt[fltOff+(K+i)*chanPix] = dv
				}
			}
		}
	}
}
