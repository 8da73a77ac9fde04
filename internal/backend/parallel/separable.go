package parallel

import (
	"github.com/adaconv-ml/adaconv/internal/adaconv"
	sched "github.com/adaconv-ml/adaconv/internal/parallel"
	"github.com/adaconv-ml/adaconv/internal/tensor"
)

// separableForward schedules one unit per flattened output element; each unit
// runs the factored horizontal-then-vertical reduction for its pixel.
func separableForward[T tensor.Float](out, img, flt []T, g adaconv.Geometry, cfg sched.Config) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := 2 * K * chanPix

	sched.For(len(out), func(idx int) {
		x := idx % W
		y := (idx / W) % H
		n := idx / imgPix
		pix := y*W + x
		imgOff := idx - pix
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
		out[idx] = v
	}, cfg)
}

// separableBackward schedules one unit per output pixel per batch; each unit
// writes the 2K gradient column of its pixel. Strategy selection matches the
// sequential reference: the bounded-cache path while K fits the accumulator
// limit, the recomputing path beyond it.
func separableBackward[T tensor.Float](dflt, grad, img, flt []T, g adaconv.Geometry, cfg sched.Config) {
	K, P, H, W := g.Kernel, g.Padding, g.Height, g.Width
	chanPix := H * W
	imgPix := g.Channels * chanPix
	fltPix := 2 * K * chanPix
	fast := K <= adaconv.FastKernelLimit

	sched.ForPixels(g.Batch, chanPix, func(n, pix int) {
		y, x := pix/W, pix%W
		fltOff := n*fltPix + pix
		i0 := max(P-y, 0)
		j0 := max(P-x, 0)

		if fast {
			// The accumulator belongs to this unit of work alone; it is
			// allocated here rather than pooled so concurrent units can
			// never observe each other's partial sums.
			acc := make([]T, K)
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
			return
		}

		for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
			var dh T
			for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
				dh += channelTerm(grad, img, g, n, pix, iy*W+jx) * flt[fltOff+(K+i)*chanPix]
			}
			dflt[fltOff+j*chanPix] = dh
		}
		for i, iy := i0, y-P+i0; i < K && iy < H; i, iy = i+1, iy+1 {
			var dv T
			for j, jx := j0, x-P+j0; j < K && jx < W; j, jx = j+1, jx+1 {
				dv += channelTerm(grad, img, g, n, pix, iy*W+jx) * flt[fltOff+j*chanPix]
			}
			dflt[fltOff+(K+i)*chanPix] = dv
		}
	}, cfg)
}

// channelTerm is the per-channel-summed product grad·img shared by both
// gradient halves in the recomputing path.
func channelTerm[T tensor.Float](grad, img []T, g adaconv.Geometry, n, pix, tap int) T {
	chanPix := g.Height * g.Width
	imgPix := g.Channels * chanPix
	var t T
	for c := 0; c < g.Channels; c++ {
		off := n*imgPix + c*chanPix
		t += grad[off+pix] * img[off+tap]
	}
	return t
}
