package carve

import (
	"math"

	"github.com/contentaware/carve/internal/numeric"
)

// sobelKernelX and sobelKernelY are the standard 3x3 Sobel kernels, applied
// per channel when Config.EnergyOp is Sobel.
var (
	sobelKernelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelKernelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// energyMap computes the E component (§4.1): a non-negative H×W scalar grid
// derived from the image's per-channel gradient magnitude, with the protect
// and object mask biases applied. The result is row-major, matching Buffer's
// layout but with a single scalar per cell.
func (cfg Config) energyMap(img *Buffer, protect, object *Mask) []float64 {
	e := make([]float64, img.Width*img.Height)

	switch cfg.EnergyOp {
	case Sobel:
		cfg.sobelEnergy(img, e)
	default:
		cfg.gradientAbsEnergy(img, e)
	}

	bias := cfg.bias()
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := y*img.Width + x
			switch {
			case protect != nil && protect.At(x, y):
				// Protect strictly dominates object when both are set on the
				// same pixel (§4.1): only the positive bias is applied.
				e[i] += bias
			case object != nil && object.At(x, y):
				e[i] -= bias
			}
		}
	}
	return e
}

// gradientAbsEnergy sums, over the three channels, the absolute horizontal
// and vertical first-differences, using the nearest in-bounds neighbor at
// the edges (§4.1, "a convolution equivalent to [-1,0,1]").
func (cfg Config) gradientAbsEnergy(img *Buffer, e []float64) {
	w, h := img.Width, img.Height
	for y := 0; y < h; y++ {
		yt, yb := numeric.Clamp(y-1, 0, h-1), numeric.Clamp(y+1, 0, h-1)
		for x := 0; x < w; x++ {
			xl, xr := numeric.Clamp(x-1, 0, w-1), numeric.Clamp(x+1, 0, w-1)

			lr, lg, lb := img.At(xl, y)
			rr, rg, rb := img.At(xr, y)
			tr, tg, tb := img.At(x, yt)
			br, bg, bb := img.At(x, yb)

			sum := math.Abs(rr-lr) + math.Abs(rg-lg) + math.Abs(rb-lb)
			sum += math.Abs(br-tr) + math.Abs(bg-tg) + math.Abs(bb-tb)
			e[y*w+x] = sum
		}
	}
}

// sobelEnergy applies the 3x3 Sobel kernel per channel and sums the
// resulting gradient magnitudes.
func (cfg Config) sobelEnergy(img *Buffer, e []float64) {
	w, h := img.Width, img.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumXr, sumYr, sumXg, sumYg, sumXb, sumYb float64
			for ky := -1; ky <= 1; ky++ {
				sy := numeric.Clamp(y+ky, 0, h-1)
				for kx := -1; kx <= 1; kx++ {
					sx := numeric.Clamp(x+kx, 0, w-1)
					r, g, b := img.At(sx, sy)
					wx := sobelKernelX[ky+1][kx+1]
					wy := sobelKernelY[ky+1][kx+1]
					sumXr += r * wx
					sumYr += r * wy
					sumXg += g * wx
					sumYg += g * wy
					sumXb += b * wx
					sumYb += b * wy
				}
			}
			mag := math.Hypot(sumXr, sumYr) + math.Hypot(sumXg, sumYg) + math.Hypot(sumXb, sumYb)
			e[y*w+x] = mag
		}
	}
}
