package carve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// uniformBuffer returns a buffer filled with a single gray value, so every
// cell's energy is identical and the tie-break rule alone decides the seam.
func uniformBuffer(w, h int, v float64) *Buffer {
	b := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, v, v, v)
		}
	}
	return b
}

func TestFindSeam_UniformImageYieldsValidInBoundsSeam(t *testing.T) {
	cfg := Config{}
	img := uniformBuffer(4, 6, 128)
	seam := cfg.findSeam(img, nil, nil)

	assert.True(t, seam.Valid(6))
	for _, c := range seam {
		assert.Less(t, c, 4)
		assert.GreaterOrEqual(t, c, 0)
	}
}

func TestFindSeam_FollowsUniquelyFlatColumn(t *testing.T) {
	// The gradient energy at a column is the central difference between its
	// two neighbors, not a function of the column's own value. Column 2 is
	// flanked on both sides by the same value (200), giving it zero energy
	// while every other column sits between unequal neighbors; the minimum
	// seam must run straight down it.
	columns := []float64{0, 200, 300, 200, 400}
	img := NewBuffer(5, 5)
	for y := 0; y < 5; y++ {
		for x, v := range columns {
			img.Set(x, y, v, v, v)
		}
	}

	cfg := Config{}
	seam := cfg.findSeam(img, nil, nil)
	assert.True(t, seam.Valid(5))
	for _, c := range seam {
		assert.Equal(t, 2, c)
	}
}

func TestFindSeam_ProtectMaskIsAvoided(t *testing.T) {
	img := uniformBuffer(3, 3, 128)
	protect := NewMask(3, 3)
	for y := 0; y < 3; y++ {
		protect.Set(1, y, true)
	}

	cfg := Config{}
	seam := cfg.findSeam(img, protect, nil)
	for _, c := range seam {
		assert.NotEqual(t, 1, c)
	}
}

func TestFindSeam_ObjectMaskIsPreferred(t *testing.T) {
	img := uniformBuffer(4, 4, 128)
	object := NewMask(4, 4)
	for y := 0; y < 4; y++ {
		object.Set(2, y, true)
	}

	cfg := Config{}
	seam := cfg.findSeam(img, nil, object)
	for _, c := range seam {
		assert.Equal(t, 2, c)
	}
}

func TestBuildCostTable_FirstRowEqualsEnergy(t *testing.T) {
	e := []float64{1, 2, 3, 4}
	m := buildCostTable(e, 4, 1)
	assert.Equal(t, e, m)
}

func TestBestPredecessor_CenterWinsTies(t *testing.T) {
	// Row 0 (the predecessor row for y=1) has three equal values: center
	// must win.
	m := []float64{5, 5, 5, 0, 0, 0}
	assert.Equal(t, 1, bestPredecessor(m, 3, 1, 1))
}

func TestBestPredecessor_LeftWinsOverRightOnTie(t *testing.T) {
	// Row 0 has a worse middle than its tied left/right: left must win.
	m := []float64{1, 9, 1, 0, 0, 0}
	assert.Equal(t, 0, bestPredecessor(m, 3, 1, 1))
}

func TestBestPredecessor_EdgeColumnHasNoOutOfRangeNeighbor(t *testing.T) {
	m := []float64{5, 5, 0, 0}
	assert.Equal(t, 0, bestPredecessor(m, 2, 0, 1))
}

func TestEnergyMap_GradientAbsIsNonNegative(t *testing.T) {
	cfg := Config{EnergyOp: GradientAbs}
	img := uniformBuffer(4, 4, 100)
	e := cfg.energyMap(img, nil, nil)
	for _, v := range e {
		assert.False(t, math.Signbit(v))
	}
}

func TestEnergyMap_SobelIsNonNegative(t *testing.T) {
	cfg := Config{EnergyOp: Sobel}
	img := uniformBuffer(4, 4, 100)
	e := cfg.energyMap(img, nil, nil)
	for _, v := range e {
		assert.False(t, math.Signbit(v))
	}
}
