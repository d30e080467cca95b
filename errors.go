package carve

import "github.com/pkg/errors"

// Sentinel errors returned by a Session. Callers should compare against
// these with errors.Is, since the core wraps them with call-site context.
var (
	// ErrEmptyImage is returned when the source image has zero width or height.
	ErrEmptyImage = errors.New("carve: empty image")

	// ErrMaskShapeMismatch is returned when a protect or object mask does not
	// share the image's width and height.
	ErrMaskShapeMismatch = errors.New("carve: mask shape mismatch")

	// ErrDimensionTooSmall is returned when the target dimensions would take
	// the width or height below 2 pixels.
	ErrDimensionTooSmall = errors.New("carve: target dimension too small")

	// ErrEnlargementLimitExceeded is returned when a requested enlargement
	// exceeds Config.EnlargementCap for an axis in a single session.
	ErrEnlargementLimitExceeded = errors.New("carve: enlargement limit exceeded")

	// ErrCancelled is returned when the progress hook requests cancellation.
	// The session's partially carved image is still available on the error's
	// companion result where the API surfaces one (see Session.Run).
	ErrCancelled = errors.New("carve: cancelled")
)

// minDimension is the smallest width or height a buffer may have at rest.
const minDimension = 2
