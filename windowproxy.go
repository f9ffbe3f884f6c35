// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"fmt"
)

// WindowProxy is the cross-thread handle to a window. It carries the
// operations the native library allows off the main thread, context
// binding and buffer swapping foremost. A proxy shares its window's
// liveness flag: after the window is destroyed every method except
// IsAlive panics.
type WindowProxy struct {
	errChannel
	st *windowState
}

// ID returns a stable identifier for the underlying window, usable as
// a map key and for matching events to windows.
func (p *WindowProxy) ID() WindowID {
	return WindowID(p.st.handle)
}

// IsAlive reports whether the window still exists. It is the only
// proxy method safe to call after destruction.
func (p *WindowProxy) IsAlive() bool {
	return p.st.isAlive()
}

func (p *WindowProxy) mustAlive(op string) {
	if !p.st.isAlive() {
		panic("glfw: " + op + " on a destroyed window")
	}
}

// withAlive runs f under the shared lock, so destruction on another
// thread cannot free the handle mid-dispatch.
func (p *WindowProxy) withAlive(op string, f func()) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.alive {
		panic("glfw: " + op + " on a destroyed window")
	}
	f()
}

// ShouldClose reports whether the window's close flag is set.
func (p *WindowProxy) ShouldClose() bool {
	var v bool
	p.withAlive("ShouldClose", func() {
		v = p.backend.WindowShouldClose(p.st.handle)
	})
	return v
}

// SetShouldClose sets or clears the close flag.
func (p *WindowProxy) SetShouldClose(v bool) {
	p.withAlive("SetShouldClose", func() {
		p.backend.SetWindowShouldClose(p.st.handle, v)
	})
}

// IsGLWindow reports whether the window was created with an OpenGL or
// OpenGL ES context.
func (p *WindowProxy) IsGLWindow() bool {
	p.mustAlive("IsGLWindow")
	return p.st.isGL
}

// MakeCurrent binds the window's context to the calling thread,
// detaching whatever context was current there. The calling goroutine
// must be locked to its OS thread.
//
// MakeCurrent panics if the context is current on a different thread:
// that transition is undefined in the native library, so it is treated
// as a program bug. Detach on the owning thread first.
func (p *WindowProxy) MakeCurrent() error {
	p.mustAlive("MakeCurrent")
	if !p.st.isGL {
		return fmt.Errorf("glfw: make current: %w", &Error{Code: NoWindowContext, Desc: "window has no OpenGL context"})
	}
	makeCurrent(p.st, p.errChannel)
	return nil
}

// DetachCurrent releases the window's context if it is current on the
// calling thread. No-op otherwise.
func (p *WindowProxy) DetachCurrent() {
	p.mustAlive("DetachCurrent")
	tid := currentThreadID()
	if st := contexts.current(tid); st == p.st {
		detachCurrent(p.errChannel)
	}
}

// IsCurrent reports whether the window's context is current on any
// thread.
func (p *WindowProxy) IsCurrent() bool {
	p.mustAlive("IsCurrent")
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	return p.st.currentThread != 0
}

// IsCurrentHere reports whether the window's context is current on the
// calling thread.
func (p *WindowProxy) IsCurrentHere() bool {
	p.mustAlive("IsCurrentHere")
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	return p.st.currentThread == currentThreadID()
}

// SwapBuffers swaps the front and back buffers. The window must have a
// context; it does not need to be current.
func (p *WindowProxy) SwapBuffers() error {
	var err error
	p.withAlive("SwapBuffers", func() {
		err = p.checked(func() {
			p.backend.SwapBuffers(p.st.handle)
		})
	})
	if err != nil {
		return fmt.Errorf("glfw: swap buffers: %w", err)
	}
	return nil
}

// SwapInterval sets the swap interval for the context current on the
// calling thread, which must be this window's.
func (p *WindowProxy) SwapInterval(interval int) error {
	var err error
	p.withAlive("SwapInterval", func() {
		if p.st.currentThread != currentThreadID() {
			err = &Error{Code: NoCurrentContext, Desc: "context is not current on this thread"}
			return
		}
		err = p.checked(func() {
			p.backend.SwapInterval(interval)
		})
	})
	if err != nil {
		return fmt.Errorf("glfw: swap interval: %w", err)
	}
	return nil
}
