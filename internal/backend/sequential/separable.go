package sequential

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// separableForward exploits the outer-product structure to do O(K) work per
// channel tap instead of O(K²): each in-bounds row of the window is first
// reduced with the horizontal weights (filter slots [0,K)), then the row sums
// are combined with the vertical weights (slots [K,2K)).
//
// With flt dense-expanded as v[i]*h[j] this computes exactly what
// denseForward computes; the tests pin that equivalence. Boundary clipping is
// identical to the dense pass.
func separableForward[T tensor.Float](out, img, flt []T, g adaconv.Geometry) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := 2 * K * chanPix

	for n := 0; n < g.Batch; n++ {
		for c := 0; c < g.Channels; c++ {
			imgOff := n*imgPix + c*chanPix
			for y := 0; y < H; y++ {
				for x := 0; x < W; x++ {
					pix := y*W + x
					fltOff := n*fltPix + pix
					var v T
					i0 := max(P-y, 0)
					for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
						var row T
						j0 := max(P-x, 0)
						for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
							row += img[imgOff+iy*W+jx] * flt[fltOff+j*chanPix]
						}
						v += row * flt[fltOff+(K+i)*chanPix]
					}
					out[imgOff+pix] = v
				}
			}
		}
	}
}
