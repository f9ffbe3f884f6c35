// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"fmt"
	"image"
	"sync"

	"github.com/go-gfx/glfw/internal/native"
)

// windowState is the part of a window shared between its owning Window
// and any number of WindowProxy values. The liveness flag lives here
// so proxies on other threads observe destruction.
type windowState struct {
	handle native.Window
	isGL   bool

	mu            sync.Mutex
	alive         bool
	currentThread uint64 // OS thread the context is current on, 0 for none
}

func (st *windowState) isAlive() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.alive
}

// Window is the owner-thread handle to a native window. All of its
// methods must run on the EventLoop's thread; the subset of operations
// the native library permits from other threads is available through
// Proxy.
type Window struct {
	errChannel
	st *windowState
	el *EventLoop
}

// NewWindow creates a window and, unless ClientAPI(NoAPI) was given,
// its OpenGL context. The window starts visible unless Visible(false)
// was given.
//
// Fullscreen windows take the monitor's current video mode unless
// size or refresh-rate hints override it. Passing a disconnected
// monitor fails with ErrMonitorDisconnected before touching the
// native library.
func (el *EventLoop) NewWindow(opts ...WindowOption) (*Window, error) {
	el.mustOwnerThread("NewWindow")

	cfg := windowConfig{
		title:  "",
		width:  640,
		height: 480,
		hints:  map[int]int{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var monitor native.Monitor
	if cfg.monitor != nil {
		if !el.monitors.contains(cfg.monitor.handle) {
			return nil, fmt.Errorf("glfw: create window on %q: %w", cfg.monitor.name, ErrMonitorDisconnected)
		}
		monitor = cfg.monitor.handle
	}
	var share native.Window
	if cfg.share != nil {
		if !cfg.share.st.isAlive() {
			panic("glfw: SharedWith window is destroyed")
		}
		share = cfg.share.st.handle
	}

	var h native.Window
	err := el.checked(func() {
		el.backend.DefaultWindowHints()
		for hint, value := range cfg.hints {
			el.backend.WindowHint(hint, value)
		}
		for hint, value := range cfg.strHints {
			el.backend.WindowHintString(hint, value)
		}
		h = el.backend.CreateWindow(cfg.width, cfg.height, cfg.title, monitor, share)
	})
	if err != nil {
		return nil, fmt.Errorf("glfw: create window: %w", err)
	}
	if h == 0 {
		return nil, fmt.Errorf("glfw: create window failed with no error reported")
	}

	isGL := true
	if api, ok := cfg.hints[native.HintClientAPI]; ok && api == native.NoAPI {
		isGL = false
	}
	w := &Window{
		errChannel: el.errChannel,
		st:         &windowState{handle: h, isGL: isGL, alive: true},
		el:         el,
	}
	el.registerWindow(w)
	return w, nil
}

func (w *Window) mustUsable(op string) {
	if !w.el.alive.Load() {
		panic("glfw: " + op + " after EventLoop termination")
	}
	w.el.mustOwnerThread(op)
	if !w.st.isAlive() {
		panic("glfw: " + op + " on a destroyed window")
	}
}

// Proxy returns a handle usable from any thread. Proxies share this
// window's liveness flag and observe its destruction.
func (w *Window) Proxy() *WindowProxy {
	return &WindowProxy{errChannel: w.errChannel, st: w.st}
}

// IsAlive reports whether the window has not been destroyed. Like its
// proxy counterpart it never panics.
func (w *Window) IsAlive() bool {
	return w.st.isAlive()
}

// MakeCurrent binds the window's context to the calling thread. See
// WindowProxy.MakeCurrent.
func (w *Window) MakeCurrent() error {
	return w.Proxy().MakeCurrent()
}

// SwapBuffers swaps the front and back buffers.
func (w *Window) SwapBuffers() error {
	return w.Proxy().SwapBuffers()
}

// Destroy destroys the window and its context. If the context is
// current on the calling thread it is detached first; if it is current
// on another thread Destroy panics, since the native library's
// behavior for that case is undefined. Destroy is idempotent.
func (w *Window) Destroy() {
	if !w.st.isAlive() {
		return
	}
	w.el.mustOwnerThread("Destroy")

	destroyState(w.st, w.errChannel)
	w.el.forgetWindow(w.st.handle)
}

// ShouldClose reports whether the close flag is set, by the user or by
// SetShouldClose.
func (w *Window) ShouldClose() bool {
	w.mustUsable("ShouldClose")
	return w.backend.WindowShouldClose(w.st.handle)
}

// SetShouldClose sets or clears the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.mustUsable("SetShouldClose")
	w.backend.SetWindowShouldClose(w.st.handle, v)
}

// Title returns the window title last set.
func (w *Window) Title() string {
	w.mustUsable("Title")
	return w.backend.GetWindowTitle(w.st.handle)
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.mustUsable("SetTitle")
	w.logged("set title", func() {
		w.backend.SetWindowTitle(w.st.handle, title)
	})
}

// Pos returns the position of the window's client area in screen
// coordinates.
func (w *Window) Pos() image.Point {
	w.mustUsable("Pos")
	var x, y int
	w.logged("window pos", func() {
		x, y = w.backend.GetWindowPos(w.st.handle)
	})
	return image.Pt(x, y)
}

// SetPos moves the window's client area to pos in screen coordinates.
func (w *Window) SetPos(pos image.Point) {
	w.mustUsable("SetPos")
	w.logged("set window pos", func() {
		w.backend.SetWindowPos(w.st.handle, pos.X, pos.Y)
	})
}

// Size returns the size of the client area in screen coordinates. Use
// FramebufferSize for pixel dimensions.
func (w *Window) Size() image.Point {
	w.mustUsable("Size")
	var x, y int
	w.logged("window size", func() {
		x, y = w.backend.GetWindowSize(w.st.handle)
	})
	return image.Pt(x, y)
}

// SetSize resizes the client area. For fullscreen windows this picks
// the closest video mode.
func (w *Window) SetSize(size image.Point) {
	w.mustUsable("SetSize")
	w.logged("set window size", func() {
		w.backend.SetWindowSize(w.st.handle, size.X, size.Y)
	})
}

// SetSizeLimits constrains the client area of a resizable window.
// DontCare disables a bound.
func (w *Window) SetSizeLimits(minW, minH, maxW, maxH int) error {
	w.mustUsable("SetSizeLimits")
	err := w.checked(func() {
		w.backend.SetWindowSizeLimits(w.st.handle, minW, minH, maxW, maxH)
	})
	if err != nil {
		return fmt.Errorf("glfw: set size limits: %w", err)
	}
	return nil
}

// SetAspectRatio forces the client area to keep the given ratio.
// DontCare for both disables it.
func (w *Window) SetAspectRatio(numer, denom int) error {
	w.mustUsable("SetAspectRatio")
	err := w.checked(func() {
		w.backend.SetWindowAspectRatio(w.st.handle, numer, denom)
	})
	if err != nil {
		return fmt.Errorf("glfw: set aspect ratio: %w", err)
	}
	return nil
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() image.Point {
	w.mustUsable("FramebufferSize")
	var x, y int
	w.logged("framebuffer size", func() {
		x, y = w.backend.GetFramebufferSize(w.st.handle)
	})
	return image.Pt(x, y)
}

// ContentScale returns the ratio between the window's current DPI and
// the platform's default DPI.
func (w *Window) ContentScale() (x, y float32) {
	w.mustUsable("ContentScale")
	w.logged("content scale", func() {
		x, y = w.backend.GetWindowContentScale(w.st.handle)
	})
	return x, y
}

// Opacity returns the whole-window opacity in [0, 1].
func (w *Window) Opacity() float32 {
	w.mustUsable("Opacity")
	var o float32
	w.logged("window opacity", func() {
		o = w.backend.GetWindowOpacity(w.st.handle)
	})
	return o
}

// SetOpacity sets the whole-window opacity. o must be in [0, 1].
func (w *Window) SetOpacity(o float32) error {
	w.mustUsable("SetOpacity")
	err := w.checked(func() {
		w.backend.SetWindowOpacity(w.st.handle, o)
	})
	if err != nil {
		return fmt.Errorf("glfw: set opacity: %w", err)
	}
	return nil
}

// Show makes a hidden window visible.
func (w *Window) Show() {
	w.mustUsable("Show")
	w.logged("show window", func() { w.backend.ShowWindow(w.st.handle) })
}

// Hide hides a visible window.
func (w *Window) Hide() {
	w.mustUsable("Hide")
	w.logged("hide window", func() { w.backend.HideWindow(w.st.handle) })
}

// Focus brings the window to front and gives it input focus. Prefer
// RequestAttention for anything the user did not just ask for.
func (w *Window) Focus() {
	w.mustUsable("Focus")
	w.logged("focus window", func() { w.backend.FocusWindow(w.st.handle) })
}

// RequestAttention asks the system to highlight the window or its
// application.
func (w *Window) RequestAttention() {
	w.mustUsable("RequestAttention")
	w.logged("request attention", func() { w.backend.RequestWindowAttention(w.st.handle) })
}

// Iconify minimizes the window. Fullscreen windows release their
// monitor.
func (w *Window) Iconify() {
	w.mustUsable("Iconify")
	w.logged("iconify window", func() { w.backend.IconifyWindow(w.st.handle) })
}

// Maximize maximizes the window if it is resizable.
func (w *Window) Maximize() {
	w.mustUsable("Maximize")
	w.logged("maximize window", func() { w.backend.MaximizeWindow(w.st.handle) })
}

// Restore undoes Iconify or Maximize. Fullscreen windows regain their
// monitor.
func (w *Window) Restore() {
	w.mustUsable("Restore")
	w.logged("restore window", func() { w.backend.RestoreWindow(w.st.handle) })
}

// Attrib returns a window attribute or framebuffer/context property.
func (w *Window) Attrib(attrib int) (int, error) {
	w.mustUsable("Attrib")
	var v int
	err := w.checked(func() {
		v = w.backend.GetWindowAttrib(w.st.handle, attrib)
	})
	if err != nil {
		return 0, fmt.Errorf("glfw: window attrib: %w", err)
	}
	return v, nil
}

// SetAttrib changes one of the attributes that are mutable after
// creation, such as AttribResizable or AttribFloating.
func (w *Window) SetAttrib(attrib, value int) error {
	w.mustUsable("SetAttrib")
	err := w.checked(func() {
		w.backend.SetWindowAttrib(w.st.handle, attrib, value)
	})
	if err != nil {
		return fmt.Errorf("glfw: set window attrib: %w", err)
	}
	return nil
}

// Monitor returns the monitor a fullscreen window occupies, or nil for
// windowed mode.
func (w *Window) Monitor() *Monitor {
	w.mustUsable("Monitor")
	h := w.backend.GetWindowMonitor(w.st.handle)
	if h == 0 {
		return nil
	}
	return w.el.monitorFor(h)
}

// SetMonitor switches the window between fullscreen and windowed mode.
// A nil monitor selects windowed mode at the given position and size;
// otherwise pos is ignored and refreshRate applies (DontCare for the
// highest available).
func (w *Window) SetMonitor(m *Monitor, pos, size image.Point, refreshRate int) error {
	w.mustUsable("SetMonitor")
	var handle native.Monitor
	if m != nil {
		if !w.el.monitors.contains(m.handle) {
			return fmt.Errorf("glfw: set monitor %q: %w", m.name, ErrMonitorDisconnected)
		}
		handle = m.handle
	}
	err := w.checked(func() {
		w.backend.SetWindowMonitor(w.st.handle, handle, pos.X, pos.Y, size.X, size.Y, refreshRate)
	})
	if err != nil {
		return fmt.Errorf("glfw: set monitor: %w", err)
	}
	return nil
}

// InputMode returns the value of one of the input modes, such as
// ModeCursor or ModeRawMouseMotion.
func (w *Window) InputMode(mode int) (int, error) {
	w.mustUsable("InputMode")
	var v int
	err := w.checked(func() {
		v = w.backend.GetInputMode(w.st.handle, mode)
	})
	if err != nil {
		return 0, fmt.Errorf("glfw: input mode: %w", err)
	}
	return v, nil
}

// SetInputMode changes one of the input modes.
func (w *Window) SetInputMode(mode, value int) error {
	w.mustUsable("SetInputMode")
	err := w.checked(func() {
		w.backend.SetInputMode(w.st.handle, mode, value)
	})
	if err != nil {
		return fmt.Errorf("glfw: set input mode: %w", err)
	}
	return nil
}

// Key returns the last reported action for key, Press or Release.
// Repeat is never returned here.
func (w *Window) Key(key Key) Action {
	w.mustUsable("Key")
	var a int
	w.logged("key state", func() {
		a = w.backend.GetKey(w.st.handle, int(key))
	})
	return Action(a)
}

// MouseButton returns the last reported action for button.
func (w *Window) MouseButton(button MouseButton) Action {
	w.mustUsable("MouseButton")
	var a int
	w.logged("mouse button state", func() {
		a = w.backend.GetMouseButton(w.st.handle, int(button))
	})
	return Action(a)
}

// CursorPos returns the cursor position relative to the client area's
// top-left corner.
func (w *Window) CursorPos() (x, y float64) {
	w.mustUsable("CursorPos")
	w.logged("cursor pos", func() {
		x, y = w.backend.GetCursorPos(w.st.handle)
	})
	return x, y
}

// SetCursorPos moves the cursor, if the window has input focus.
func (w *Window) SetCursorPos(x, y float64) error {
	w.mustUsable("SetCursorPos")
	err := w.checked(func() {
		w.backend.SetCursorPos(w.st.handle, x, y)
	})
	if err != nil {
		return fmt.Errorf("glfw: set cursor pos: %w", err)
	}
	return nil
}

// SetCursor sets the cursor image shown while the cursor is over the
// client area. A nil cursor restores the default arrow.
func (w *Window) SetCursor(c *Cursor) {
	w.mustUsable("SetCursor")
	var h native.Cursor
	if c != nil {
		if !c.alive {
			panic("glfw: SetCursor with a destroyed cursor")
		}
		h = c.handle
	}
	w.logged("set cursor", func() {
		w.backend.SetCursor(w.st.handle, h)
	})
}

// SetClipboard places s in the system clipboard.
func (w *Window) SetClipboard(s string) error {
	w.mustUsable("SetClipboard")
	err := w.checked(func() {
		w.backend.SetClipboardString(w.st.handle, s)
	})
	if err != nil {
		return fmt.Errorf("glfw: set clipboard: %w", err)
	}
	return nil
}

// Clipboard returns the system clipboard contents, if they are
// convertible to a string.
func (w *Window) Clipboard() (string, error) {
	w.mustUsable("Clipboard")
	var s string
	err := w.checked(func() {
		s = w.backend.GetClipboardString(w.st.handle)
	})
	if err != nil {
		return "", fmt.Errorf("glfw: clipboard: %w", err)
	}
	return s, nil
}
