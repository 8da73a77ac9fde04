package sequential

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// denseForward computes, for every output element,
//
//	out[n,c,y,x] = Σ_{i,j} img[n,c,y-P+i,x-P+j] * flt[n,i*K+j,y,x]
//
// Out-of-bounds taps are skipped by clipping the loop bounds, which realizes
// zero padding without a padded copy of the image: the kernel iterator starts
// at the first in-bounds tap, the image iterator is derived from it, both
// advance together, and the loop stops when either space runs out.
func denseForward[T tensor.Float](out, img, flt []T, g adaconv.Geometry) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := K * K * chanPix

	for n := 0; n < g.Batch; n++ {
		for c := 0; c < g.Channels; c++ {
			imgOff := n*imgPix + c*chanPix
			for y := 0; y < H; y++ {
				for x := 0; x < W; x++ {
					pix := y*W + x
					var v T
					i0 := max(P-y, 0)
					for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
						j0 := max(P-x, 0)
						for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
							v += img[imgOff+iy*W+jx] * flt[n*fltPix+(i*K+j)*chanPix+pix]
						}
					}
					out[imgOff+pix] = v
				}
			}
		}
	}
}

// denseBackward computes, for every in-window tap of every pixel,
//
//	dflt[n,i*K+j,y,x] = Σ_c grad[n,c,y,x] * img[n,c,y-P+i,x-P+j]
//
// Taps outside the clipped window never contributed to the forward sum, so
// their gradient entries stay at the initialized zero. The filter values
// themselves do not appear in this gradient.
func denseBackward[T tensor.Float](dflt, grad, img []T, g adaconv.Geometry) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := K * K * chanPix

	for n := 0; n < g.Batch; n++ {
		for y := 0; y < H; y++ {
			for x := 0; x < W; x++ {
				pix := y*W + x
				i0 := max(P-y, 0)
				for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
					j0 := max(P-x, 0)
					for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
						var v T
						for c := 0; c < g.Channels; c++ {
							off := n*imgPix + c*chanPix
							v += grad[off+pix] * img[off+iy*W+jx]
						}
						dflt[n*fltPix+(i*K+j)*chanPix+pix] = v
					}
				}
			}
		}
	}
}
