// Package imop implements a reduced Porter-Duff source-over compositing
// operation, adapted from the teacher's full twelve-operation imop package
// down to the single formula needed to paint a debug overlay: the chosen
// seam and the live protect/object masks blended over the current frame.
package imop

// Frame is a flat RGB raster, row-major, channel-interleaved. It mirrors the
// shape of carve.Buffer without importing it, keeping this package free of a
// dependency on the engine it instruments.
type Frame struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFrame returns a copy of pix wrapped as a Frame of the given dimensions.
func NewFrame(width, height int, pix []float64) Frame {
	dst := make([]float64, len(pix))
	copy(dst, pix)
	return Frame{Width: width, Height: height, Pix: dst}
}

// SrcOver composites src over the frame at (x, y) using the Porter-Duff
// source-over formula: result = src*alpha + dst*(1-alpha).
func (f Frame) SrcOver(x, y int, src [3]float64, alpha float64) {
	i := (y*f.Width + x) * 3
	for c := 0; c < 3; c++ {
		f.Pix[i+c] = src[c]*alpha + f.Pix[i+c]*(1-alpha)
	}
}

// PaintMask composites color over every cell in mask that is set.
func (f Frame) PaintMask(mask []bool, color [3]float64, alpha float64) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if mask[y*f.Width+x] {
				f.SrcOver(x, y, color, alpha)
			}
		}
	}
}

// PaintSeam composites color over each (seam[row], row) cell.
func (f Frame) PaintSeam(seam []int, color [3]float64, alpha float64) {
	for y, x := range seam {
		if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
			continue
		}
		f.SrcOver(x, y, color, alpha)
	}
}
