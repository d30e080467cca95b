package carve

// removeVerticalSeamBuffer produces a new Buffer of width W-1 missing the
// given seam column from each row (§4.3, "Remove vertical seam").
func removeVerticalSeamBuffer(img *Buffer, seam Seam) *Buffer {
	dst := NewBuffer(img.Width-1, img.Height)
	for y := 0; y < img.Height; y++ {
		cut := seam[y]
		dx := 0
		for x := 0; x < img.Width; x++ {
			if x == cut {
				continue
			}
			r, g, b := img.At(x, y)
			dst.Set(dx, y, r, g, b)
			dx++
		}
	}
	return dst
}

// removeVerticalSeamMask applies the identical column removal to a mask.
func removeVerticalSeamMask(m *Mask, seam Seam) *Mask {
	dst := NewMask(m.Width-1, m.Height)
	for y := 0; y < m.Height; y++ {
		cut := seam[y]
		dx := 0
		for x := 0; x < m.Width; x++ {
			if x == cut {
				continue
			}
			dst.Set(dx, y, m.At(x, y))
			dx++
		}
	}
	return dst
}

// insertionNeighbors returns the two original columns averaged (or combined)
// into the newly inserted column c, handling the c==0 edge case (§4.3).
func insertionNeighbors(c, width int) (a, b int) {
	if c == 0 {
		if width > 1 {
			return 0, 1
		}
		return 0, 0
	}
	return c - 1, c
}

// insertVerticalSeamBuffer produces a new Buffer of width W+1: a new column
// is inserted immediately before column c of each row, valued as the average
// of the two original neighboring columns, and the original columns from c
// onward shift right by one (§4.3, "Insert vertical seam").
func insertVerticalSeamBuffer(img *Buffer, seam Seam) *Buffer {
	dst := NewBuffer(img.Width+1, img.Height)
	for y := 0; y < img.Height; y++ {
		c := seam[y]
		for x := 0; x < c; x++ {
			r, g, b := img.At(x, y)
			dst.Set(x, y, r, g, b)
		}
		a, b := insertionNeighbors(c, img.Width)
		ar, ag, ab := img.At(a, y)
		br, bg, bb := img.At(b, y)
		dst.Set(c, y, (ar+br)/2, (ag+bg)/2, (ab+bb)/2)
		for x := c; x < img.Width; x++ {
			r, g, bl := img.At(x, y)
			dst.Set(x+1, y, r, g, bl)
		}
	}
	return dst
}

// insertVerticalSeamMask applies the matching insertion to a mask. either
// chooses the combining rule for the new cell: true means "set if either
// neighbor is set" (used for the protect mask, so protection is never
// accidentally dropped by an insertion); false means "set only if both
// neighbors are set" (used for the object mask, per §4.3: "object stays
// absent unless both neighbors are object").
func insertVerticalSeamMask(m *Mask, seam Seam, either bool) *Mask {
	dst := NewMask(m.Width+1, m.Height)
	for y := 0; y < m.Height; y++ {
		c := seam[y]
		for x := 0; x < c; x++ {
			dst.Set(x, y, m.At(x, y))
		}
		a, b := insertionNeighbors(c, m.Width)
		av, bv := m.At(a, y), m.At(b, y)
		var nv bool
		if either {
			nv = av || bv
		} else {
			nv = av && bv
		}
		dst.Set(c, y, nv)
		for x := c; x < m.Width; x++ {
			dst.Set(x+1, y, m.At(x, y))
		}
	}
	return dst
}
