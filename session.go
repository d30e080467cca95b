package carve

import "github.com/pkg/errors"

// Session owns one image and its coupled protect/object masks exclusively
// from construction to completion (§3 Lifecycle, §5). It is not safe for
// concurrent use.
type Session struct {
	cfg     Config
	img     *Buffer
	protect *Mask
	object  *Mask

	origWidth  int
	origHeight int
}

// NewSession validates and wraps an image plus its optional masks. A nil
// mask means "no protection"/"no forced removal" respectively.
func NewSession(img *Buffer, protect, object *Mask, cfg Config) (*Session, error) {
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, errors.WithStack(ErrEmptyImage)
	}
	if protect != nil && !protect.sameShape(img.Width, img.Height) {
		return nil, errors.Wrap(ErrMaskShapeMismatch, "protect mask")
	}
	if object != nil && !object.sameShape(img.Width, img.Height) {
		return nil, errors.Wrap(ErrMaskShapeMismatch, "object mask")
	}

	return &Session{
		cfg:        cfg,
		img:        img,
		protect:    protect,
		object:     object,
		origWidth:  img.Width,
		origHeight: img.Height,
	}, nil
}

// NewResizeSession is a convenience constructor for sessions that only
// resize with an optional protect mask, matching the permissive two-call
// shape spec.md §9 allows alongside the mandated single-session design.
func NewResizeSession(img *Buffer, protect *Mask, cfg Config) (*Session, error) {
	return NewSession(img, protect, nil, cfg)
}

// NewRemovalSession is a convenience constructor for sessions that only
// eliminate an object mask, with no resize target.
func NewRemovalSession(img *Buffer, object *Mask, cfg Config) (*Session, error) {
	return NewSession(img, nil, object, cfg)
}

// Width and Height report the session's current (live) dimensions.
func (sess *Session) Width() int  { return sess.img.Width }
func (sess *Session) Height() int { return sess.img.Height }

// Run executes the session to completion (§4.5, §4.6, §6). outHeight and
// outWidth are target dimensions; 0 in either field means "keep current
// dimension" once any object-mask elimination has run. When both are 0 and
// an object mask was supplied, the output keeps its naturally-shrunk
// dimensions after object removal (§6, §9's second Open Question).
//
// If progress requests cancellation, Run returns the partially carved image
// alongside ErrCancelled.
func (sess *Session) Run(outHeight, outWidth int, progress ProgressFunc) (*Buffer, int, int, error) {
	if err := sess.validateTargets(outHeight, outWidth); err != nil {
		return nil, 0, 0, err
	}

	if sess.object != nil && sess.object.Weight() > 0 {
		if sess.removeObject(progress) {
			return sess.img, sess.img.Width, sess.img.Height, errors.WithStack(ErrCancelled)
		}
		if outHeight == 0 && outWidth == 0 {
			return sess.img, sess.img.Width, sess.img.Height, nil
		}
	}

	if sess.resizeTo(outWidth, outHeight, progress) {
		return sess.img, sess.img.Width, sess.img.Height, errors.WithStack(ErrCancelled)
	}
	return sess.img, sess.img.Width, sess.img.Height, nil
}

func (sess *Session) validateTargets(outHeight, outWidth int) error {
	if outWidth != 0 {
		if outWidth < minDimension {
			return errors.Wrapf(ErrDimensionTooSmall, "width %d", outWidth)
		}
		if float64(outWidth) > float64(sess.origWidth)*sess.cfg.enlargementCap() {
			return errors.Wrapf(ErrEnlargementLimitExceeded, "width %d", outWidth)
		}
	}
	if outHeight != 0 {
		if outHeight < minDimension {
			return errors.Wrapf(ErrDimensionTooSmall, "height %d", outHeight)
		}
		if float64(outHeight) > float64(sess.origHeight)*sess.cfg.enlargementCap() {
			return errors.Wrapf(ErrEnlargementLimitExceeded, "height %d", outHeight)
		}
	}
	return nil
}
