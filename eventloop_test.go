// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gfx/glfw/internal/native"
)

// newTestLoop starts an EventLoop on the null platform and arranges
// its teardown. The calling goroutine ends up locked to its OS thread,
// as any EventLoop owner is.
func newTestLoop(t *testing.T) (*EventLoop, *native.Null) {
	t.Helper()
	el, err := NewEventLoop(WithPlatform(PlatformNull))
	require.NoError(t, err)
	t.Cleanup(func() {
		if el.alive.Load() {
			el.Terminate()
		}
	})
	return el, el.backend.(*native.Null)
}

// runOnOtherThread runs f on a different OS thread and returns what it
// panicked with, or nil.
func runOnOtherThread(f func()) (recovered any) {
	done := make(chan any, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() { done <- recover() }()
		f()
	}()
	return <-done
}

func TestSecondEventLoopPanics(t *testing.T) {
	newTestLoop(t)
	assert.Panics(t, func() {
		NewEventLoop(WithPlatform(PlatformNull))
	})
}

func TestEventLoopRestartAfterTerminate(t *testing.T) {
	el, _ := newTestLoop(t)
	el.Terminate()

	el2, err := NewEventLoop(WithPlatform(PlatformNull))
	require.NoError(t, err)
	el2.Terminate()
}

func TestTerminateDestroysOutstandingHandles(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow(Title("doomed"))
	require.NoError(t, err)
	c, err := el.NewStandardCursor(IBeamCursor)
	require.NoError(t, err)
	wp := w.Proxy()

	el.Terminate()

	assert.False(t, wp.IsAlive())
	assert.False(t, c.alive)
	assert.Panics(t, func() { wp.ShouldClose() })
	assert.Panics(t, func() { el.PollEvents() })
}

func TestLifecycleOffOwnerThreadPanics(t *testing.T) {
	el, _ := newTestLoop(t)
	recovered := runOnOtherThread(func() { el.PollEvents() })
	assert.NotNil(t, recovered)

	recovered = runOnOtherThread(func() { el.Terminate() })
	assert.NotNil(t, recovered)

	// The loop survives the rejected calls.
	el.PollEvents()
}

func TestPollEventsDeliversTypedEvents(t *testing.T) {
	el, backend := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	backend.PushEvent(native.Event{
		Kind: native.EventKey, Window: native.Window(wp.ID()),
		Key: int(KeyEscape), Scancode: 9, Action: native.Press,
	})
	backend.PushEvent(native.Event{
		Kind: native.EventScroll, Window: native.Window(wp.ID()), X: 0, Y: -1.5,
	})

	evs := el.PollEvents()
	require.Len(t, evs, 2)

	key, ok := evs[0].Event.(KeyEvent)
	require.True(t, ok)
	assert.Equal(t, wp.ID(), key.Window)
	assert.Equal(t, KeyEscape, key.Key)
	assert.Equal(t, Press, key.Action)

	scroll, ok := evs[1].Event.(ScrollEvent)
	require.True(t, ok)
	assert.Equal(t, -1.5, scroll.Y)

	assert.GreaterOrEqual(t, evs[1].Time, evs[0].Time)
}

func TestWaitEventsWakesOnPostEmptyEvent(t *testing.T) {
	el, _ := newTestLoop(t)
	proxy := el.Proxy()

	go func() {
		time.Sleep(10 * time.Millisecond)
		proxy.PostEmptyEvent()
	}()

	start := time.Now()
	evs := el.WaitEvents()
	assert.Empty(t, evs)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitEventsTimeout(t *testing.T) {
	el, _ := newTestLoop(t)
	evs := el.WaitEventsTimeout(5 * time.Millisecond)
	assert.Empty(t, evs)
}

// terminateHookBackend reports the moment the native teardown runs.
type terminateHookBackend struct {
	*native.Null
	onTerminate func()
}

func (b *terminateHookBackend) Terminate() {
	b.onTerminate()
	b.Null.Terminate()
}

const testHookPlatform = Platform(0x0006f001)

func TestProxiesDeadBeforeNativeTeardown(t *testing.T) {
	hook := &terminateHookBackend{Null: native.NewNull()}
	native.Register(int(testHookPlatform), func() native.Backend { return hook })

	el, err := NewEventLoop(WithPlatform(testHookPlatform))
	require.NoError(t, err)
	proxy := el.Proxy()

	aliveDuringTeardown := true
	hook.onTerminate = func() {
		aliveDuringTeardown = proxy.IsAlive()
	}
	el.Terminate()
	assert.False(t, aliveDuringTeardown)
}

func TestProxyOutlivesTermination(t *testing.T) {
	el, _ := newTestLoop(t)
	proxy := el.Proxy()
	require.True(t, proxy.IsAlive())

	el.Terminate()

	assert.False(t, proxy.IsAlive())
	assert.Panics(t, func() { proxy.PostEmptyEvent() })
	assert.Panics(t, func() { proxy.Time() })
}

func TestTimer(t *testing.T) {
	el, _ := newTestLoop(t)
	proxy := el.Proxy()

	require.NoError(t, proxy.SetTime(100))
	assert.GreaterOrEqual(t, proxy.Time(), 100.0)
	assert.Less(t, proxy.Time(), 101.0)
}

func TestJoystickConnection(t *testing.T) {
	el, backend := newTestLoop(t)

	assert.False(t, el.JoystickPresent(Joystick1))
	assert.Empty(t, el.JoystickName(Joystick1))

	backend.ConnectJoystick(Joystick1, "Test Pad")
	evs := el.PollEvents()
	require.Len(t, evs, 1)
	je, ok := evs[0].Event.(JoystickEvent)
	require.True(t, ok)
	assert.True(t, je.Connected)
	assert.Equal(t, Joystick1, je.Joystick)

	assert.True(t, el.JoystickPresent(Joystick1))
	assert.Equal(t, "Test Pad", el.JoystickName(Joystick1))
	assert.NotEmpty(t, el.JoystickGUID(Joystick1))

	_, ok = el.GamepadState(Joystick1)
	assert.True(t, ok)
	_, ok = el.GamepadState(Joystick2)
	assert.False(t, ok)
}

func TestTeardownArbitraryDestroyOrder(t *testing.T) {
	el, _ := newTestLoop(t)

	var windows []*Window
	for i := 0; i < 4; i++ {
		w, err := el.NewWindow()
		require.NoError(t, err)
		windows = append(windows, w)
	}
	require.NoError(t, windows[1].Proxy().MakeCurrent())

	windows[2].Destroy()
	windows[0].Destroy()
	windows[0].Destroy() // already gone, stays a no-op

	// Terminate picks up the stragglers, detaching the bound context.
	el.Terminate()

	for _, w := range windows {
		assert.False(t, w.st.isAlive())
	}
	contexts.Lock()
	for _, st := range contexts.slots {
		for _, w := range windows {
			assert.NotSame(t, w.st, st)
		}
	}
	contexts.Unlock()
}

func TestPlatform(t *testing.T) {
	el, _ := newTestLoop(t)
	assert.Equal(t, PlatformNull, el.Proxy().Platform())
}
