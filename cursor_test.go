// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardCursor(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)

	c, err := el.NewStandardCursor(CrosshairCursor)
	require.NoError(t, err)

	w.SetCursor(c)
	w.SetCursor(nil) // back to the default arrow

	c.Destroy()
	c.Destroy() // idempotent
	assert.Panics(t, func() { w.SetCursor(c) })
}

func TestStandardCursorInvalidShape(t *testing.T) {
	el, _ := newTestLoop(t)
	_, err := el.NewStandardCursor(StandardCursor(0x1234))
	require.Error(t, err)
}

func TestCursorFromImage(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)

	// A non-RGBA image exercises the conversion path.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), A: 255})
		}
	}

	c, err := el.NewCursor(img, image.Pt(8, 8))
	require.NoError(t, err)
	w.SetCursor(c)
	c.Destroy()
}

func TestCursorFromEmptyImage(t *testing.T) {
	el, _ := newTestLoop(t)
	_, err := el.NewCursor(image.NewRGBA(image.Rectangle{}), image.Point{})
	require.Error(t, err)
}

func TestCursorCreationOffOwnerThreadPanics(t *testing.T) {
	el, _ := newTestLoop(t)
	recovered := runOnOtherThread(func() {
		el.NewStandardCursor(IBeamCursor)
	})
	assert.NotNil(t, recovered)
}
