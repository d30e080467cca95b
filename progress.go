package carve

import "github.com/contentaware/carve/internal/imop"

// Observation is handed to a ProgressFunc once per seam selection (§4.7).
type Observation struct {
	// Image is the buffer as it stood immediately before Seam is applied.
	Image *Buffer
	// Seam is the chosen seam, in the orientation currently being processed
	// (i.e. already un-transposed back to image coordinates by the caller
	// only if Horizontal is false; callers that care about image-space
	// coordinates for a horizontal seam should transpose (row, col) pairs).
	Seam Seam
	// Horizontal reports whether this seam runs along rows (the engine is
	// currently operating on a transposed buffer).
	Horizontal bool
	// Inserting reports whether this seam is being inserted (grown) rather
	// than removed.
	Inserting bool
	// Debug holds a composited debug frame highlighting the seam and the
	// live masks, populated only when Config.DebugOverlay is set.
	Debug *Buffer
}

// ProgressFunc observes one seam selection and may request cancellation by
// returning true. It must not mutate state owned by the Session (§4.7, §9:
// "the progress hook is invoked from the hot loop; callers must not call
// back into the same session").
type ProgressFunc func(Observation) (cancel bool)

var (
	debugSeamColor    = [3]float64{255, 0, 0}
	debugProtectColor = [3]float64{0, 0, 255}
	debugObjectColor  = [3]float64{0, 255, 0}
)

// buildDebugOverlay composites the seam and live masks over the current
// image, adapted from the teacher's imop-driven debug rendering (§4 of
// SPEC_FULL.md's supplemented features).
func buildDebugOverlay(img *Buffer, protect, object *Mask, seam Seam) *Buffer {
	frame := imop.NewFrame(img.Width, img.Height, img.Pix)
	if protect != nil {
		frame.PaintMask(protect.Bits, debugProtectColor, 0.35)
	}
	if object != nil {
		frame.PaintMask(object.Bits, debugObjectColor, 0.35)
	}
	frame.PaintSeam(seam, debugSeamColor, 1.0)
	return &Buffer{Width: frame.Width, Height: frame.Height, Pix: frame.Pix}
}

// notify invokes progress (if non-nil) and returns whether the caller
// requested cancellation.
func (s *Session) notify(progress ProgressFunc, img *Buffer, protect, object *Mask, seam Seam, horizontal, inserting bool) bool {
	if progress == nil {
		return false
	}
	obs := Observation{
		Image:      img,
		Seam:       seam,
		Horizontal: horizontal,
		Inserting:  inserting,
	}
	if s.cfg.DebugOverlay {
		obs.Debug = buildDebugOverlay(img, protect, object, seam)
	}
	return progress(obs)
}
