package carve

// EnergyOp selects the gradient operator used to build the energy map (§4.1).
type EnergyOp int

const (
	// GradientAbs sums the absolute horizontal and vertical first-differences
	// per channel. This is the default operator.
	GradientAbs EnergyOp = iota
	// Sobel applies the 3x3 Sobel kernel per channel instead of the simple
	// first-difference.
	Sobel
)

// TieBreak documents the seam search's tie-breaking rule. It is fixed at
// CenterPreferred; the type exists only so Config can expose it for test
// determinism, per spec (§6 "tie_break ... exposed only for test
// determinism").
type TieBreak int

// CenterPreferred is the only supported tie-break rule: among equal
// predecessors, the center column wins, then the left column, then the right.
const CenterPreferred TieBreak = 0

// Config holds the engine-wide options for a Session.
type Config struct {
	// EnergyOp selects the gradient operator. Zero value is GradientAbs.
	EnergyOp EnergyOp

	// BiasMagnitude is the additive/subtractive energy bias ("BIG") applied
	// under the protect and object masks. Zero means "use DefaultBias".
	BiasMagnitude float64

	// EnlargementCap is the maximum multiplicative factor per axis allowed
	// in a single session. Zero means "use DefaultEnlargementCap".
	EnlargementCap float64

	// TieBreak is always CenterPreferred; kept for documentation purposes.
	TieBreak TieBreak

	// PrefitAspect, when true, pre-scales the image with a Lanczos resample
	// (preserving aspect ratio) before carving, the way the teacher's
	// calculateFitness narrows the gap for large simultaneous width+height
	// reductions so fewer seams need to be computed.
	PrefitAspect bool

	// DebugOverlay, when true, has the progress hook receive a composited
	// debug frame highlighting the chosen seam and the live masks, adapted
	// from the teacher's imop-based debug rendering.
	DebugOverlay bool
}

// DefaultBias exceeds the maximum achievable base energy for any image
// representable at 8-bit source precision with either energy operator, per
// spec §4.1 ("BIG must exceed the maximum achievable base energy ... e.g.
// 10^6 for 8-bit-sourced images").
const DefaultBias = 1e6

// DefaultEnlargementCap is the maximum multiplicative factor per axis per
// session, per spec §4.8.
const DefaultEnlargementCap = 2.0

func (c Config) bias() float64 {
	if c.BiasMagnitude == 0 {
		return DefaultBias
	}
	return c.BiasMagnitude
}

func (c Config) enlargementCap() float64 {
	if c.EnlargementCap == 0 {
		return DefaultEnlargementCap
	}
	return c.EnlargementCap
}
