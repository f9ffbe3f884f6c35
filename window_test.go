// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gfx/glfw/internal/native"
)

func TestWindowBasics(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow(Title("hello"), Size(800, 600), Position(image.Pt(10, 20)))
	require.NoError(t, err)

	assert.Equal(t, "hello", w.Title())
	assert.Equal(t, image.Pt(800, 600), w.Size())
	assert.Equal(t, image.Pt(10, 20), w.Pos())

	w.SetTitle("renamed")
	assert.Equal(t, "renamed", w.Title())

	w.SetSize(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), w.Size())
	assert.Equal(t, image.Pt(1024, 768), w.FramebufferSize())

	assert.False(t, w.ShouldClose())
	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())
}

func TestWindowCreationFailure(t *testing.T) {
	el, backend := newTestLoop(t)
	backend.FailNextCreateWindow(native.APIUnavailable, "no GL here")

	w, err := el.NewWindow()
	require.Error(t, err)
	assert.Nil(t, w)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, APIUnavailable, gerr.Code)

	// The failure is one-shot and the loop stays usable.
	w, err = el.NewWindow()
	require.NoError(t, err)
	w.Destroy()
}

func TestWindowUseAfterDestroyPanics(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	w.Destroy()
	w.Destroy() // idempotent

	assert.Panics(t, func() { w.Size() })
	assert.Panics(t, func() { w.SetTitle("x") })
	assert.Panics(t, func() { wp.ShouldClose() })
	assert.Panics(t, func() { wp.MakeCurrent() })
	assert.False(t, wp.IsAlive())
}

func TestWindowProxyCrossThread(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	recovered := runOnOtherThread(func() {
		if !wp.IsAlive() {
			panic("window should be alive")
		}
		wp.SetShouldClose(true)
	})
	assert.Nil(t, recovered)
	assert.True(t, w.ShouldClose())
	assert.Equal(t, native.Window(wp.ID()), w.st.handle)
}

func TestWindowHints(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow(
		Resizable(false),
		Visible(false),
		Decorated(false),
		Samples(4),
		ContextVersion(3, 3),
		Profile(CoreProfile),
	)
	require.NoError(t, err)

	for attrib, want := range map[int]int{
		AttribResizable:           native.False,
		AttribVisible:             native.False,
		AttribDecorated:           native.False,
		AttribContextVersionMajor: 3,
		AttribContextVersionMinor: 3,
		AttribOpenGLProfile:       CoreProfile,
	} {
		got, err := w.Attrib(attrib)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Hints must not leak into the next window.
	w2, err := el.NewWindow()
	require.NoError(t, err)
	got, err := w2.Attrib(AttribResizable)
	require.NoError(t, err)
	assert.Equal(t, native.True, got)
}

func TestWindowShowHideFocus(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow(Visible(false))
	require.NoError(t, err)

	got, _ := w.Attrib(AttribVisible)
	assert.Equal(t, native.False, got)
	w.Show()
	got, _ = w.Attrib(AttribVisible)
	assert.Equal(t, native.True, got)
	w.Hide()
	got, _ = w.Attrib(AttribVisible)
	assert.Equal(t, native.False, got)

	w.Focus()
	evs := el.PollEvents()
	require.NotEmpty(t, evs)
	fe, ok := evs[len(evs)-1].Event.(FocusEvent)
	require.True(t, ok)
	assert.True(t, fe.Focused)
}

func TestWindowIconifyMaximizeRestore(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)

	w.Iconify()
	got, _ := w.Attrib(AttribIconified)
	assert.Equal(t, native.True, got)

	w.Restore()
	got, _ = w.Attrib(AttribIconified)
	assert.Equal(t, native.False, got)

	w.Maximize()
	got, _ = w.Attrib(AttribMaximized)
	assert.Equal(t, native.True, got)
}

func TestWindowInputModes(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)

	mode, err := w.InputMode(ModeCursor)
	require.NoError(t, err)
	assert.Equal(t, CursorNormal, mode)

	require.NoError(t, w.SetInputMode(ModeCursor, CursorDisabled))
	mode, err = w.InputMode(ModeCursor)
	require.NoError(t, err)
	assert.Equal(t, CursorDisabled, mode)

	err = w.SetInputMode(0x99999, native.True)
	require.Error(t, err)
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, InvalidEnum, gerr.Code)
}

func TestWindowClipboard(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)

	require.NoError(t, w.SetClipboard("copied"))
	s, err := w.Clipboard()
	require.NoError(t, err)
	assert.Equal(t, "copied", s)
}

func TestWindowFullscreenLifecycle(t *testing.T) {
	el, _ := newTestLoop(t)
	mons := el.Monitors()
	require.NotEmpty(t, mons)
	primary := mons[0]

	w, err := el.NewWindow(Fullscreen(primary))
	require.NoError(t, err)
	got := w.Monitor()
	require.NotNil(t, got)
	assert.Equal(t, primary.Name(), got.Name())

	// Back to windowed mode.
	require.NoError(t, w.SetMonitor(nil, image.Pt(0, 0), image.Pt(640, 480), 0))
	assert.Nil(t, w.Monitor())
}

func TestWindowOnDisconnectedMonitor(t *testing.T) {
	el, backend := newTestLoop(t)
	m := backend.ConnectMonitor("Ghost", native.VidMode{Width: 640, Height: 480, RefreshRate: 60})
	el.PollEvents()

	var ghost *Monitor
	for _, mon := range el.Monitors() {
		if mon.Name() == "Ghost" {
			ghost = mon
		}
	}
	require.NotNil(t, ghost)

	backend.DisconnectMonitor(m)
	el.PollEvents()

	_, err := el.NewWindow(Fullscreen(ghost))
	require.ErrorIs(t, err, ErrMonitorDisconnected)

	w, err := el.NewWindow()
	require.NoError(t, err)
	err = w.SetMonitor(ghost, image.Point{}, image.Pt(640, 480), DontCare)
	require.ErrorIs(t, err, ErrMonitorDisconnected)
}

func TestWindowOpacityAndLimits(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow(Size(500, 500))
	require.NoError(t, err)

	assert.Equal(t, float32(1), w.Opacity())
	require.NoError(t, w.SetOpacity(0.5))
	assert.Equal(t, float32(0.5), w.Opacity())
	require.Error(t, w.SetOpacity(1.5))

	require.NoError(t, w.SetSizeLimits(DontCare, DontCare, 400, 400))
	assert.Equal(t, image.Pt(400, 400), w.Size())
	require.Error(t, w.SetSizeLimits(-5, DontCare, DontCare, DontCare))
}
