package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransposeBuffer_SwapsDimensions(t *testing.T) {
	img := NewBuffer(3, 2)
	img.Set(2, 0, 1, 2, 3)
	out := transposeBuffer(img)

	assert.Equal(t, 2, out.Width)
	assert.Equal(t, 3, out.Height)
	r, g, b := out.At(0, 2)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 2.0, g)
	assert.Equal(t, 3.0, b)
}

func TestTransposeBuffer_IsSelfInverse(t *testing.T) {
	img := NewBuffer(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, float64(x), float64(y), float64(x+y))
		}
	}
	roundTrip := transposeBuffer(transposeBuffer(img))

	assert.Equal(t, img.Width, roundTrip.Width)
	assert.Equal(t, img.Height, roundTrip.Height)
	assert.Equal(t, img.Pix, roundTrip.Pix)
}

func TestTransposeMask_IsSelfInverse(t *testing.T) {
	m := NewMask(3, 2)
	m.Set(2, 0, true)
	roundTrip := transposeMask(transposeMask(m))

	assert.Equal(t, m.Width, roundTrip.Width)
	assert.Equal(t, m.Height, roundTrip.Height)
	assert.Equal(t, m.Bits, roundTrip.Bits)
}
