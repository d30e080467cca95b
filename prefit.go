package carve

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// prefitAspect pre-scales img toward (targetW, targetH) with a Lanczos
// resample that preserves aspect ratio, narrowing the gap the seam pipeline
// has to close on each axis. Adapted from the teacher's calculateFitness,
// which does this iteratively; one pass is enough since our caller's
// resizeWidth/resizeHeight re-measure the remaining gap to the target after
// the prefit.
func prefitAspect(img *Buffer, targetW, targetH int) *Buffer {
	w, h := float64(img.Width), float64(img.Height)
	nw, nh := float64(targetW), float64(targetH)
	if nw <= 0 || nh <= 0 {
		return img
	}

	scale := math.Min(w/nw, h/nh)
	if scale <= 1 {
		return img
	}

	sw := int(math.Round(w / scale))
	sh := int(math.Round(h / scale))
	if sw < minDimension || sh < minDimension {
		return img
	}

	resized := imaging.Resize(img.ToImage(), sw, sh, imaging.Lanczos)
	return BufferFromImage(resized)
}

// resizeMask scales m to (w, h) using nearest-neighbor resampling, so the
// binary nature of protect/object membership survives the same prefit pass
// applied to the image.
func resizeMask(m *Mask, w, h int) *Mask {
	src := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) {
				src.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	resized := imaging.Resize(src, w, h, imaging.NearestNeighbor)

	dst := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray, _, _, _ := resized.At(x, y).RGBA()
			if gray>>8 > 127 {
				dst.Set(x, y, true)
			}
		}
	}
	return dst
}
