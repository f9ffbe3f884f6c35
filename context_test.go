// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCurrentAndDetach(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()
	proxy := el.Proxy()

	assert.Nil(t, proxy.CurrentContext())
	assert.False(t, wp.IsCurrent())

	require.NoError(t, wp.MakeCurrent())
	assert.True(t, wp.IsCurrent())
	assert.True(t, wp.IsCurrentHere())
	cur := proxy.CurrentContext()
	require.NotNil(t, cur)
	assert.Equal(t, wp.ID(), cur.ID())

	// The returned proxy is fully wired for dispatch.
	assert.False(t, cur.ShouldClose())
	require.NoError(t, cur.SwapBuffers())
	require.NoError(t, cur.MakeCurrent())

	// Re-binding on the same thread is a no-op.
	require.NoError(t, wp.MakeCurrent())

	wp.DetachCurrent()
	assert.False(t, wp.IsCurrent())
	assert.Nil(t, proxy.CurrentContext())

	// Detaching when not current is a no-op.
	wp.DetachCurrent()
	proxy.DetachCurrentContext()
}

func TestMakeCurrentReplacesCurrent(t *testing.T) {
	el, _ := newTestLoop(t)
	w1, err := el.NewWindow()
	require.NoError(t, err)
	w2, err := el.NewWindow()
	require.NoError(t, err)
	p1, p2 := w1.Proxy(), w2.Proxy()

	require.NoError(t, p1.MakeCurrent())
	require.NoError(t, p2.MakeCurrent())

	assert.False(t, p1.IsCurrent())
	assert.True(t, p2.IsCurrentHere())
}

func TestMakeCurrentContendedPanics(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	require.NoError(t, wp.MakeCurrent())

	recovered := runOnOtherThread(func() { wp.MakeCurrent() })
	assert.NotNil(t, recovered)

	// Still current where it was bound.
	assert.True(t, wp.IsCurrentHere())
}

func TestMakeCurrentOnOtherThread(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	recovered := runOnOtherThread(func() {
		if err := wp.MakeCurrent(); err != nil {
			panic(err)
		}
		if !wp.IsCurrentHere() {
			panic("context should be current on this thread")
		}
		wp.DetachCurrent()
	})
	assert.Nil(t, recovered)
	assert.False(t, wp.IsCurrent())
}

func TestDestroyWhileCurrentElsewherePanics(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	bound := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)
		if err := wp.MakeCurrent(); err != nil {
			close(bound)
			return
		}
		close(bound)
		<-release
		wp.DetachCurrent()
	}()
	<-bound

	assert.Panics(t, func() { w.Destroy() })

	close(release)
	<-done
}

func TestDestroyRacingMakeCurrent(t *testing.T) {
	el, _ := newTestLoop(t)

	// However Destroy and a cross-thread MakeCurrent interleave, a dead
	// window must never remain recorded current anywhere: one of the
	// two faults, or they serialize cleanly.
	for i := 0; i < 200; i++ {
		w, err := el.NewWindow()
		require.NoError(t, err)
		wp := w.Proxy()

		start := make(chan struct{})
		bound := make(chan any, 1)
		go func() {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			defer func() { bound <- recover() }()
			<-start
			if err := wp.MakeCurrent(); err == nil {
				wp.DetachCurrent()
			}
		}()

		destroy := func() (recovered any) {
			defer func() { recovered = recover() }()
			w.Destroy()
			return nil
		}
		close(start)
		// Destroy faults while the context is bound on the other
		// thread; once it is detached there, destruction goes through.
		for destroy() != nil {
			runtime.Gosched()
		}
		<-bound

		require.False(t, w.st.isAlive())
		contexts.Lock()
		for _, st := range contexts.slots {
			require.NotSame(t, w.st, st)
		}
		contexts.Unlock()
	}
}

func TestDestroyDetachesOwnContext(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()
	proxy := el.Proxy()

	require.NoError(t, wp.MakeCurrent())
	w.Destroy()

	assert.Nil(t, proxy.CurrentContext())
	assert.False(t, wp.IsAlive())
}

func TestContextlessWindow(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow(ClientAPI(NoAPI))
	require.NoError(t, err)
	wp := w.Proxy()

	assert.False(t, wp.IsGLWindow())
	err = wp.MakeCurrent()
	require.Error(t, err)

	err = wp.SwapBuffers()
	require.Error(t, err)
}

func TestSwapBuffersAndInterval(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	// Swap interval needs a current context.
	require.Error(t, wp.SwapInterval(1))

	require.NoError(t, wp.MakeCurrent())
	require.NoError(t, wp.SwapInterval(1))
	require.NoError(t, wp.SwapBuffers())
}

func TestTerminateWithContextBoundElsewherePanics(t *testing.T) {
	el, _ := newTestLoop(t)
	w, err := el.NewWindow()
	require.NoError(t, err)
	wp := w.Proxy()

	bound := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)
		if err := wp.MakeCurrent(); err != nil {
			close(bound)
			return
		}
		close(bound)
		<-release
		wp.DetachCurrent()
	}()
	<-bound

	// Terminate force-destroys the window, which would have to rip the
	// context off the other thread.
	assert.Panics(t, func() { el.Terminate() })

	close(release)
	<-done
	el.PollEvents() // the loop survived the rejected terminate
}