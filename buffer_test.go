package carve

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_SetAtRoundTrip(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(1, 1, 10, 20, 30)
	r, g, bl := b.At(1, 1)
	assert.Equal(t, 10.0, r)
	assert.Equal(t, 20.0, g)
	assert.Equal(t, 30.0, bl)
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, 0, 1, 2, 3)
	clone := b.Clone()
	clone.Set(0, 0, 9, 9, 9)

	r, g, bl := b.At(0, 0)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 2.0, g)
	assert.Equal(t, 3.0, bl)
}

func TestBuffer_FromImageAndBackPreservesColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	b := BufferFromImage(img)
	out := b.ToImage()

	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, out.NRGBAAt(0, 0))
}

func TestMask_WeightCountsSetCells(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(0, 0, true)
	m.Set(2, 2, true)
	assert.Equal(t, 2, m.Weight())
}

func TestMask_FromImageThresholdsBrightPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	m := MaskFromImage(img)
	assert.True(t, m.At(0, 0))
	assert.False(t, m.At(1, 0))
}

func TestMask_SameShape(t *testing.T) {
	m := NewMask(4, 5)
	assert.True(t, m.sameShape(4, 5))
	assert.False(t, m.sameShape(5, 4))

	var nilMask *Mask
	assert.False(t, nilMask.sameShape(4, 5))
}
