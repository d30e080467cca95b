package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotify_ReturnsFalseWhenProgressIsNil(t *testing.T) {
	sess := &Session{cfg: Config{}}
	cancelled := sess.notify(nil, nil, nil, nil, Seam{0}, false, false)
	assert.False(t, cancelled)
}

func TestNotify_ForwardsCancellationFromProgress(t *testing.T) {
	sess := &Session{cfg: Config{}}
	cancelled := sess.notify(func(Observation) bool { return true }, nil, nil, nil, Seam{0}, false, false)
	assert.True(t, cancelled)
}

func TestNotify_PopulatesDebugOverlayOnlyWhenEnabled(t *testing.T) {
	img := uniformBuffer(3, 3, 100)
	var captured Observation
	sess := &Session{cfg: Config{DebugOverlay: true}}
	sess.notify(func(o Observation) bool {
		captured = o
		return false
	}, img, nil, nil, Seam{0, 1, 2}, false, false)

	assert.NotNil(t, captured.Debug)
	assert.Equal(t, img.Width, captured.Debug.Width)
}

func TestNotify_LeavesDebugNilWhenDisabled(t *testing.T) {
	img := uniformBuffer(3, 3, 100)
	var captured Observation
	sess := &Session{cfg: Config{DebugOverlay: false}}
	sess.notify(func(o Observation) bool {
		captured = o
		return false
	}, img, nil, nil, Seam{0, 1, 2}, false, false)

	assert.Nil(t, captured.Debug)
}

func TestBuildDebugOverlay_PaintsSeamAndMasks(t *testing.T) {
	img := uniformBuffer(3, 3, 100)
	protect := NewMask(3, 3)
	protect.Set(0, 0, true)
	object := NewMask(3, 3)
	object.Set(2, 2, true)

	overlay := buildDebugOverlay(img, protect, object, Seam{1, 1, 1})
	assert.Equal(t, img.Width, overlay.Width)
	assert.Equal(t, img.Height, overlay.Height)

	r, g, b := overlay.At(1, 1)
	assert.NotEqual(t, [3]float64{100, 100, 100}, [3]float64{r, g, b})
}
