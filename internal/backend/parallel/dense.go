package parallel

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	sched "github.com/adaconv-ml/adaconv/internal/parallel"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// denseForward schedules one unit per flattened (n,c,y,x) output element.
// The flattened index is the element's own offset in the row-major output
// buffer, so each unit writes exactly out[idx]. Boundary handling is the same
// loop-bound clipping as the sequential reference.
func denseForward[T tensor.Float](out, img, flt []T, g adaconv.Geometry, cfg sched.Config) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := K * K * chanPix

	sched.For(len(out), func(idx int) {
		x := idx % W
		y := (idx / W) % H
		n := idx / imgPix
		pix := y*W + x
		imgOff := idx - pix // start of this element's (n,c) plane

		var v T
		i0 := max(P-y, 0)
		for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
			j0 := max(P-x, 0)
			for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
				v += img[imgOff+iy*W+jx] * flt[n*fltPix+(i*K+j)*chanPix+pix]
			}
		}
		out[idx] = v
	}, cfg)
}

// denseBackward schedules one unit per output pixel per batch; the unit
// writes the K*K gradient column of its pixel. Clipped taps stay at zero.
func denseBackward[T tensor.Float](dflt, grad, img []T, g adaconv.Geometry, cfg sched.Config) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := K * K * chanPix

	sched.ForPixels(g.Batch, chanPix, func(n, pix int) {
		y, x := pix/W, pix%W
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
	}, cfg)
}
