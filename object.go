package carve

// objectBoundingBox returns the smallest rectangle enclosing every marked
// cell of m, and reports whether any cell is marked.
func objectBoundingBox(m *Mask) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = m.Width, m.Height
	maxX, maxY = -1, -1
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) {
				continue
			}
			ok = true
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return
}

// removeObject drives driver D (§4.6): choose an orientation from the
// object's bounding box, then repeatedly remove the minimum-cost seam
// (object bias dominating) until the mask is empty. It returns whether the
// caller cancelled via the progress hook.
func (sess *Session) removeObject(progress ProgressFunc) bool {
	minX, minY, maxX, maxY, ok := objectBoundingBox(sess.object)
	if !ok {
		return false
	}

	boxW := maxX - minX + 1
	boxH := maxY - minY + 1

	// The object is narrower than it is tall: vertical seams cross it more
	// often per seam, so carve on the vertical axis directly. Otherwise
	// transpose and carve what becomes the vertical axis (§4.6).
	horizontal := boxW >= boxH
	if horizontal {
		sess.transpose()
	}

	for sess.object.Weight() > 0 {
		seam := sess.cfg.findSeam(sess.img, sess.protect, sess.object)
		if sess.notify(progress, sess.img, sess.protect, sess.object, seam, horizontal, false) {
			if horizontal {
				sess.transpose()
			}
			return true
		}
		sess.img = removeVerticalSeamBuffer(sess.img, seam)
		if sess.protect != nil {
			sess.protect = removeVerticalSeamMask(sess.protect, seam)
		}
		sess.object = removeVerticalSeamMask(sess.object, seam)
	}

	if horizontal {
		sess.transpose()
	}
	return false
}
