package carve

// shrinkVertical removes n vertical seams one at a time, firing progress
// between each (§4.5 step 1/3). It returns true if the caller cancelled.
func (sess *Session) shrinkVertical(n int, progress ProgressFunc, horizontal bool) bool {
	for i := 0; i < n; i++ {
		seam := sess.cfg.findSeam(sess.img, sess.protect, sess.object)
		if sess.notify(progress, sess.img, sess.protect, sess.object, seam, horizontal, false) {
			return true
		}
		sess.img = removeVerticalSeamBuffer(sess.img, seam)
		if sess.protect != nil {
			sess.protect = removeVerticalSeamMask(sess.protect, seam)
		}
		if sess.object != nil {
			sess.object = removeVerticalSeamMask(sess.object, seam)
		}
	}
	return false
}

// planInsertionSeams finds the n seams to insert by simulating n removals on
// a working copy, recording each seam in the pre-removal (original) index
// space via a running column-index map (§4.3, §9).
func planInsertionSeams(n int, img *Buffer, protect, object *Mask, cfg Config) []Seam {
	work := img.Clone()
	var wp, wo *Mask
	if protect != nil {
		wp = protect.Clone()
	}
	if object != nil {
		wo = object.Clone()
	}

	// origCol[y][x] is the original (pre-simulation) column index of the
	// pixel currently sitting at column x of row y. A vertical seam visits a
	// different column per row, so this bookkeeping must be per-row: a flat
	// one-dimensional map keyed only by column position cannot represent the
	// identity of a zigzagging seam's path across rows.
	origCol := make([][]int, img.Height)
	for y := range origCol {
		origCol[y] = make([]int, img.Width)
		for x := range origCol[y] {
			origCol[y][x] = x
		}
	}

	recorded := make([]Seam, n)
	for i := 0; i < n; i++ {
		seam := cfg.findSeam(work, wp, wo)

		mapped := make(Seam, len(seam))
		for y, c := range seam {
			mapped[y] = origCol[y][c]
		}
		recorded[i] = mapped

		work = removeVerticalSeamBuffer(work, seam)
		if wp != nil {
			wp = removeVerticalSeamMask(wp, seam)
		}
		if wo != nil {
			wo = removeVerticalSeamMask(wo, seam)
		}
		origCol = removeIntSeamRows(origCol, seam)
	}
	return recorded
}

// removeIntSeamRows removes, from each row, the column the seam visits in
// that row, mirroring removeVerticalSeamBuffer for the per-row bookkeeping
// that tracks original column identity through repeated simulated shrinks.
func removeIntSeamRows(cols [][]int, seam Seam) [][]int {
	dst := make([][]int, len(cols))
	for y, row := range cols {
		cut := seam[y]
		newRow := make([]int, 0, len(row)-1)
		for x, v := range row {
			if x == cut {
				continue
			}
			newRow = append(newRow, v)
		}
		dst[y] = newRow
	}
	return dst
}

// shiftForReplay applies the +1-per-earlier-seam correction (§4.3, §9) to
// map a seam recorded in true original index space onto the real canvas.
// Each earlier replayed insertion only ever shifts existing columns right by
// one (insertVerticalSeamBuffer inserts a single new column per call), so a
// seam whose recorded original column sits at or past an earlier seam's
// original column needs exactly one extra column of correction per earlier
// seam, not two.
func shiftForReplay(seam Seam, earlier []Seam) Seam {
	shifted := make(Seam, len(seam))
	copy(shifted, seam)
	for _, prior := range earlier {
		for y := range shifted {
			if seam[y] >= prior[y] {
				shifted[y]++
			}
		}
	}
	return shifted
}

// enlargeVertical inserts n vertical seams using the multi-insertion
// protocol (§4.3, §4.5 step 2/4): plan on a working copy, then replay against
// the real canvas with shift correction, firing progress on each insertion.
func (sess *Session) enlargeVertical(n int, progress ProgressFunc, horizontal bool) bool {
	planned := planInsertionSeams(n, sess.img, sess.protect, sess.object, sess.cfg)

	applied := make([]Seam, 0, n)
	for _, seam := range planned {
		real := shiftForReplay(seam, applied)
		if sess.notify(progress, sess.img, sess.protect, sess.object, real, horizontal, true) {
			return true
		}
		sess.img = insertVerticalSeamBuffer(sess.img, real)
		if sess.protect != nil {
			sess.protect = insertVerticalSeamMask(sess.protect, real, true)
		}
		if sess.object != nil {
			sess.object = insertVerticalSeamMask(sess.object, real, false)
		}
		applied = append(applied, seam)
	}
	return false
}

// resizeWidth drives vertical (width) seam operations to reach target.
func (sess *Session) resizeWidth(target int, progress ProgressFunc) bool {
	cur := sess.img.Width
	switch {
	case target < cur:
		return sess.shrinkVertical(cur-target, progress, false)
	case target > cur:
		return sess.enlargeVertical(target-cur, progress, false)
	}
	return false
}

// resizeHeight drives horizontal (height) seam operations by transposing,
// running the vertical pipeline, then transposing back (§4.4, §4.5 steps 3/4).
func (sess *Session) resizeHeight(target int, progress ProgressFunc) bool {
	cur := sess.img.Height
	if target == cur {
		return false
	}
	sess.transpose()
	cancelled := sess.resizeWidth(target, progress)
	sess.transpose()
	return cancelled
}

// transpose rotates the session's coupled buffers into/out of the
// orientation the vertical pipeline expects.
func (sess *Session) transpose() {
	sess.img = transposeBuffer(sess.img)
	if sess.protect != nil {
		sess.protect = transposeMask(sess.protect)
	}
	if sess.object != nil {
		sess.object = transposeMask(sess.object)
	}
}

// resizeTo runs the fixed-order resize driver R (§4.5): width before height,
// shrink before enlarge on each axis.
func (sess *Session) resizeTo(outWidth, outHeight int, progress ProgressFunc) bool {
	if outWidth == 0 {
		outWidth = sess.img.Width
	}
	if outHeight == 0 {
		outHeight = sess.img.Height
	}
	if sess.cfg.PrefitAspect && outWidth < sess.img.Width && outHeight < sess.img.Height {
		prefit := prefitAspect(sess.img, outWidth, outHeight)
		if prefit.Width != sess.img.Width || prefit.Height != sess.img.Height {
			if sess.protect != nil {
				sess.protect = resizeMask(sess.protect, prefit.Width, prefit.Height)
			}
			if sess.object != nil {
				sess.object = resizeMask(sess.object, prefit.Width, prefit.Height)
			}
			sess.img = prefit
		}
	}
	if sess.resizeWidth(outWidth, progress) {
		return true
	}
	return sess.resizeHeight(outHeight, progress)
}
