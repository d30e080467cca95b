package carve

import (
	"image"
	"image/color"
)

// Buffer is a 3-channel raster held in floating-point precision so that
// repeated seam insertion (which averages neighboring pixels) does not
// truncate intermediate values. Pix is row-major, channel-interleaved:
// Pix[(y*Width+x)*3+ch].
type Buffer struct {
	Width  int
	Height int
	Pix    []float64
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// BufferFromImage converts an arbitrary image.Image into a Buffer, the way
// the caller is expected to hand decoded pixels to a Session.
func BufferFromImage(img image.Image) *Buffer {
	b := img.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			buf.Set(x, y, float64(r>>8), float64(g>>8), float64(bl>>8))
		}
	}
	return buf
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (r, g, bl float64) {
	i := (y*b.Width + x) * 3
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set writes the pixel at (x, y).
func (b *Buffer) Set(x, y int, r, g, bl float64) {
	i := (y*b.Width + x) * 3
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	dst := &Buffer{Width: b.Width, Height: b.Height, Pix: make([]float64, len(b.Pix))}
	copy(dst.Pix, b.Pix)
	return dst
}

// ToImage renders the buffer back to an *image.NRGBA, clamping and rounding
// each channel to the 8-bit range.
func (b *Buffer) ToImage() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.At(x, y)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: clamp8(r),
				G: clamp8(g),
				B: clamp8(bl),
				A: 0xff,
			})
		}
	}
	return dst
}

func clamp8(v float64) uint8 {
	v += 0.5 // round to nearest
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Mask is a dense H×W binary raster used for the protect and object masks.
type Mask struct {
	Width  int
	Height int
	Bits   []bool
}

// NewMask allocates a cleared mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Bits: make([]bool, width*height)}
}

// MaskFromImage thresholds an arbitrary image into a binary mask: a pixel is
// set whenever all three channels exceed the midpoint, the same rule the
// teacher's dithering step uses to turn a painted brush mask into a bitmask.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if r>>8 > 127 && g>>8 > 127 && bl>>8 > 127 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// At reports whether (x, y) is marked.
func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Set marks or clears (x, y).
func (m *Mask) Set(x, y int, v bool) {
	m.Bits[y*m.Width+x] = v
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	dst := &Mask{Width: m.Width, Height: m.Height, Bits: make([]bool, len(m.Bits))}
	copy(dst.Bits, m.Bits)
	return dst
}

// Weight returns the number of marked cells.
func (m *Mask) Weight() int {
	n := 0
	for _, v := range m.Bits {
		if v {
			n++
		}
	}
	return n
}

// sameShape reports whether the mask matches the given dimensions.
func (m *Mask) sameShape(width, height int) bool {
	return m != nil && m.Width == width && m.Height == height
}
