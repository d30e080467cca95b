package carve

import "math"

// buildCostTable computes the cumulative-cost table M (§4.2) from the energy
// map E. Row 0 of M equals E; each subsequent row adds E to the minimum of
// the up-to-three predecessors in the row above, treating an out-of-range
// predecessor as +Inf.
func buildCostTable(e []float64, w, h int) []float64 {
	m := make([]float64, w*h)
	copy(m[:w], e[:w])

	for y := 1; y < h; y++ {
		prev := m[(y-1)*w : y*w]
		row := m[y*w : (y+1)*w]
		erow := e[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			left, middle, right := math.Inf(1), prev[x], math.Inf(1)
			if x > 0 {
				left = prev[x-1]
			}
			if x < w-1 {
				right = prev[x+1]
			}
			row[x] = erow[x] + math.Min(middle, math.Min(left, right))
		}
	}
	return m
}

// bestPredecessor applies the center-preferred tie-break rule (§4.2, §9) to
// choose among the up-to-three predecessor columns at row y-1: the middle
// wins ties against the left, and the left wins ties against the right.
// A column outside [0, w) is treated as missing (+Inf) and never chosen.
func bestPredecessor(m []float64, w, x, y int) int {
	row := m[(y-1)*w : (y-1)*w+w]

	middle := row[x]
	left, right := math.Inf(1), math.Inf(1)
	if x > 0 {
		left = row[x-1]
	}
	if x < w-1 {
		right = row[x+1]
	}

	switch {
	case middle <= left && middle <= right:
		return x
	case left <= right:
		return x - 1
	default:
		return x + 1
	}
}

// extractSeam backtracks through M to produce the minimum-cost seam (§4.2,
// the S component): one column index per row, top row first (the slice is
// filled from the bottom row upward).
func extractSeam(m []float64, w, h int) Seam {
	lastRow := m[(h-1)*w : h*w]
	best := 0
	bestVal := lastRow[0]
	for x := 1; x < w; x++ {
		if lastRow[x] < bestVal {
			bestVal = lastRow[x]
			best = x
		}
	}

	seam := make(Seam, h)
	col := best
	seam[h-1] = col
	for y := h - 1; y > 0; y-- {
		col = bestPredecessor(m, w, col, y)
		seam[y-1] = col
	}
	return seam
}

// findSeam runs the full E -> M -> S pipeline for the current image and
// masks, returning the chosen vertical seam.
func (cfg Config) findSeam(img *Buffer, protect, object *Mask) Seam {
	e := cfg.energyMap(img, protect, object)
	m := buildCostTable(e, img.Width, img.Height)
	return extractSeam(m, img.Width, img.Height)
}
