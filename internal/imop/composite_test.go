package imop

import (
	"testing"
)

func TestSrcOver_FullOpacityReplacesPixel(t *testing.T) {
	f := NewFrame(2, 2, make([]float64, 2*2*3))
	f.SrcOver(0, 0, [3]float64{10, 20, 30}, 1.0)

	r, g, b := f.Pix[0], f.Pix[1], f.Pix[2]
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("got (%v,%v,%v), want (10,20,30)", r, g, b)
	}
}

func TestSrcOver_ZeroOpacityLeavesPixelUnchanged(t *testing.T) {
	pix := []float64{5, 5, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	f := NewFrame(2, 2, pix)
	f.SrcOver(0, 0, [3]float64{200, 200, 200}, 0.0)

	if f.Pix[0] != 5 || f.Pix[1] != 5 || f.Pix[2] != 5 {
		t.Fatalf("pixel changed at zero alpha: %v", f.Pix[:3])
	}
}

func TestPaintMask_OnlyTouchesSetCells(t *testing.T) {
	f := NewFrame(2, 1, make([]float64, 2*1*3))
	mask := []bool{true, false}
	f.PaintMask(mask, [3]float64{255, 0, 0}, 1.0)

	if f.Pix[0] != 255 {
		t.Fatalf("masked cell not painted: %v", f.Pix[0])
	}
	if f.Pix[3] != 0 {
		t.Fatalf("unmasked cell painted: %v", f.Pix[3])
	}
}

func TestPaintSeam_SkipsOutOfBoundsColumns(t *testing.T) {
	f := NewFrame(2, 2, make([]float64, 2*2*3))
	seam := []int{-1, 5}
	f.PaintSeam(seam, [3]float64{1, 1, 1}, 1.0)

	for _, v := range f.Pix {
		if v != 0 {
			t.Fatalf("expected no painted pixels, got %v", f.Pix)
		}
	}
}
