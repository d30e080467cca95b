package carve

// transposeBuffer swaps rows and columns, so the horizontal seam case can
// reuse the vertical pipeline unmodified (§4.4). Transposition is its own
// inverse: transposeBuffer(transposeBuffer(b)) reproduces b.
func transposeBuffer(img *Buffer) *Buffer {
	dst := NewBuffer(img.Height, img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			dst.Set(y, x, r, g, b)
		}
	}
	return dst
}

// transposeMask is the mask counterpart of transposeBuffer.
func transposeMask(m *Mask) *Mask {
	dst := NewMask(m.Height, m.Width)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			dst.Set(y, x, m.At(x, y))
		}
	}
	return dst
}
