// SPDX-License-Identifier: Unlicense OR MIT

package native

import (
	"fmt"
	"image"
	"sync"
	"time"
)

func init() {
	Register(PlatformNull, func() Backend { return NewNull() })
}

// Null is an in-memory backend mirroring the native library's null
// platform: windows and contexts exist, nothing is displayed. It backs
// the tests and headless use. Besides the Backend methods it exposes
// hooks to simulate conditions the real platform produces
// asynchronously, such as monitor hot-unplug.
type Null struct {
	mu          sync.Mutex
	initialized bool
	sink        EventSink

	timeBase   time.Time
	timeOffset float64

	errCode int
	errDesc string

	hints    map[int]int
	strHints map[int]string

	next     uintptr
	windows  map[Window]*nullWindow
	monitors []Monitor
	monInfo  map[Monitor]*nullMonitor
	cursors  map[Cursor]int
	current  Window

	joysticks map[int]string
	mappings  int

	pending    []Event
	wake       chan struct{}
	failCreate *Error
}

// Error doubles as the injectable failure for FailNextCreateWindow.
type Error struct {
	Code int
	Desc string
}

type nullWindow struct {
	title       string
	x, y        int
	width       int
	height      int
	shouldClose bool
	opacity     float32
	attribs     map[int]int
	inputModes  map[int]int
	keys        map[int]int
	buttons     map[int]int
	cursorX     float64
	cursorY     float64
	clipboard   string
	monitor     Monitor
	cursor      Cursor
	interval    int
}

type nullMonitor struct {
	name           string
	x, y           int
	widthMM        int
	heightMM       int
	mode           VidMode
	scaleX, scaleY float32
	gamma          float32
}

// NewNull returns an uninitialized null backend.
func NewNull() *Null {
	return &Null{
		timeBase:  time.Now(),
		windows:   map[Window]*nullWindow{},
		monInfo:   map[Monitor]*nullMonitor{},
		cursors:   map[Cursor]int{},
		joysticks: map[int]string{},
		wake:      make(chan struct{}, 1),
	}
}

func (n *Null) setErr(code int, format string, args ...any) {
	n.errCode = code
	n.errDesc = fmt.Sprintf(format, args...)
}

func (n *Null) handle() uintptr {
	n.next += 16
	return n.next
}

func (n *Null) Init(hints map[int]int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.initialized {
		return true
	}
	n.hints = map[int]int{}
	for k, v := range hints {
		n.hints[k] = v
	}
	n.strHints = map[int]string{}
	n.initialized = true
	// The null platform always has one monitor.
	m := Monitor(n.handle())
	n.monitors = []Monitor{m}
	n.monInfo[m] = &nullMonitor{
		name:     "Null Display 0",
		widthMM:  520,
		heightMM: 320,
		mode:     VidMode{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60},
		scaleX:   1,
		scaleY:   1,
		gamma:    1,
	}
	return true
}

func (n *Null) Terminate() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.initialized = false
	n.windows = map[Window]*nullWindow{}
	n.monitors = nil
	n.monInfo = map[Monitor]*nullMonitor{}
	n.cursors = map[Cursor]int{}
	n.current = 0
	n.pending = nil
}

func (n *Null) GetError() (int, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	code, desc := n.errCode, n.errDesc
	n.errCode, n.errDesc = NoError, ""
	return code, desc
}

func (n *Null) SetEventSink(sink EventSink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sink = sink
}

func (n *Null) takeLocked() []Event {
	evs := n.pending
	n.pending = nil
	return evs
}

func (n *Null) deliver(evs []Event) {
	n.mu.Lock()
	sink := n.sink
	n.mu.Unlock()
	if sink == nil {
		return
	}
	for _, ev := range evs {
		sink(ev)
	}
}

func (n *Null) PollEvents() {
	n.mu.Lock()
	evs := n.takeLocked()
	n.mu.Unlock()
	n.deliver(evs)
}

func (n *Null) WaitEvents() {
	n.mu.Lock()
	if len(n.pending) > 0 {
		evs := n.takeLocked()
		n.mu.Unlock()
		n.deliver(evs)
		return
	}
	n.mu.Unlock()
	// Sleep until an event arrives or an empty event is posted. A
	// wakeup without events still returns, like the real call.
	<-n.wake
	n.PollEvents()
}

func (n *Null) WaitEventsTimeout(timeout float64) {
	select {
	case <-n.wake:
	case <-time.After(time.Duration(timeout * float64(time.Second))):
	}
	n.PollEvents()
}

func (n *Null) wakeup() {
	select {
	case n.wake <- struct{}{}:
	default:
	}
}

func (n *Null) PostEmptyEvent() {
	n.wakeup()
}

func (n *Null) GetTime() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return time.Since(n.timeBase).Seconds() + n.timeOffset
}

func (n *Null) SetTime(t float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.timeBase = time.Now()
	n.timeOffset = t
}

func (n *Null) Platform() int { return PlatformNull }

func (n *Null) DefaultWindowHints() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.strHints = map[int]string{}
	for k := range n.hints {
		if k >= HintFocused && k <= HintScaleToMonitor {
			delete(n.hints, k)
		}
	}
}

func (n *Null) WindowHint(hint, value int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hints[hint] = value
}

func (n *Null) WindowHintString(hint int, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.strHints[hint] = value
}

func (n *Null) hintOr(hint, def int) int {
	if v, ok := n.hints[hint]; ok {
		return v
	}
	return def
}

func (n *Null) CreateWindow(width, height int, title string, monitor Monitor, share Window) Window {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.initialized {
		n.setErr(NotInitialized, "the library is not initialized")
		return 0
	}
	if fail := n.failCreate; fail != nil {
		n.failCreate = nil
		n.setErr(fail.Code, "%s", fail.Desc)
		return 0
	}
	if width <= 0 || height <= 0 {
		n.setErr(InvalidValue, "invalid window size %dx%d", width, height)
		return 0
	}
	w := Window(n.handle())
	attribs := map[int]int{
		HintResizable:              n.hintOr(HintResizable, True),
		HintVisible:                n.hintOr(HintVisible, True),
		HintDecorated:              n.hintOr(HintDecorated, True),
		HintFloating:               n.hintOr(HintFloating, False),
		HintMaximized:              n.hintOr(HintMaximized, False),
		HintAutoIconify:            n.hintOr(HintAutoIconify, True),
		HintFocusOnShow:            n.hintOr(HintFocusOnShow, True),
		HintMousePassthrough:       n.hintOr(HintMousePassthrough, False),
		HintTransparentFramebuffer: n.hintOr(HintTransparentFramebuffer, False),
		HintFocused:                True,
		HintIconified:              False,
		HintHovered:                False,
		HintClientAPI:              n.hintOr(HintClientAPI, OpenGLAPI),
		HintContextCreationAPI:     n.hintOr(HintContextCreationAPI, NativeContextAPI),
		HintContextVersionMajor:    n.hintOr(HintContextVersionMajor, 1),
		HintContextVersionMinor:    n.hintOr(HintContextVersionMinor, 0),
		AttribContextRevision:      0,
		HintOpenGLProfile:          n.hintOr(HintOpenGLProfile, AnyProfile),
		HintOpenGLForwardCompat:    n.hintOr(HintOpenGLForwardCompat, False),
		HintContextDebug:           n.hintOr(HintContextDebug, False),
		HintDoubleBuffer:           n.hintOr(HintDoubleBuffer, True),
		HintSRGBCapable:            n.hintOr(HintSRGBCapable, False),
		HintSamples:                n.hintOr(HintSamples, 0),
	}
	n.windows[w] = &nullWindow{
		title:   title,
		x:       n.hintOr(HintPositionX, 0),
		y:       n.hintOr(HintPositionY, 0),
		width:   width,
		height:  height,
		opacity: 1,
		attribs: attribs,
		inputModes: map[int]int{
			ModeCursor:             CursorNormal,
			ModeStickyKeys:         False,
			ModeStickyMouseButtons: False,
			ModeLockKeyMods:        False,
			ModeRawMouseMotion:     False,
		},
		keys:    map[int]int{},
		buttons: map[int]int{},
		monitor: monitor,
	}
	return w
}

func (n *Null) window(w Window) *nullWindow {
	if nw, ok := n.windows[w]; ok {
		return nw
	}
	n.setErr(PlatformError, "unknown window handle %#x", uintptr(w))
	return nil
}

func (n *Null) DestroyWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.windows, w)
	if n.current == w {
		n.current = 0
	}
}

func (n *Null) WindowShouldClose(w Window) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	nw := n.window(w)
	return nw != nil && nw.shouldClose
}

func (n *Null) SetWindowShouldClose(w Window, v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.shouldClose = v
	}
}

func (n *Null) GetWindowTitle(w Window) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.title
	}
	return ""
}

func (n *Null) SetWindowTitle(w Window, title string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.title = title
	}
}

func (n *Null) GetWindowPos(w Window) (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.x, nw.y
	}
	return 0, 0
}

func (n *Null) SetWindowPos(w Window, x, y int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.x, nw.y = x, y
		n.pending = append(n.pending, Event{Kind: EventWindowPos, Window: w, X: float64(x), Y: float64(y)})
	}
}

func (n *Null) GetWindowSize(w Window) (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.width, nw.height
	}
	return 0, 0
}

func (n *Null) SetWindowSize(w Window, width, height int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.width, nw.height = width, height
		n.pending = append(n.pending,
			Event{Kind: EventWindowSize, Window: w, Width: width, Height: height},
			Event{Kind: EventFramebufferSize, Window: w, Width: width, Height: height})
	}
}

func (n *Null) SetWindowSizeLimits(w Window, minW, minH, maxW, maxH int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if minW != DontCare && minW < 0 || minH != DontCare && minH < 0 {
		n.setErr(InvalidValue, "invalid minimum size %dx%d", minW, minH)
		return
	}
	if nw := n.window(w); nw != nil {
		if maxW != DontCare && nw.width > maxW {
			nw.width = maxW
		}
		if maxH != DontCare && nw.height > maxH {
			nw.height = maxH
		}
		if minW != DontCare && nw.width < minW {
			nw.width = minW
		}
		if minH != DontCare && nw.height < minH {
			nw.height = minH
		}
	}
}

func (n *Null) SetWindowAspectRatio(w Window, numer, denom int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if numer != DontCare && numer <= 0 || denom != DontCare && denom <= 0 {
		n.setErr(InvalidValue, "invalid aspect ratio %d:%d", numer, denom)
		return
	}
	n.window(w)
}

func (n *Null) GetFramebufferSize(w Window) (int, int) {
	return n.GetWindowSize(w)
}

func (n *Null) GetWindowContentScale(w Window) (float32, float32) {
	return 1, 1
}

func (n *Null) GetWindowOpacity(w Window) float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.opacity
	}
	return 0
}

func (n *Null) SetWindowOpacity(w Window, opacity float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if opacity < 0 || opacity > 1 {
		n.setErr(InvalidValue, "invalid opacity %f", opacity)
		return
	}
	if nw := n.window(w); nw != nil {
		nw.opacity = opacity
	}
}

func (n *Null) setAttrib(w Window, attrib, value int) {
	if nw := n.window(w); nw != nil {
		nw.attribs[attrib] = value
	}
}

func (n *Null) ShowWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrib(w, HintVisible, True)
}

func (n *Null) HideWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrib(w, HintVisible, False)
}

func (n *Null) FocusWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for h, nw := range n.windows {
		nw.attribs[HintFocused] = False
		if h != w {
			n.pending = append(n.pending, Event{Kind: EventWindowFocus, Window: h, Focused: false})
		}
	}
	n.setAttrib(w, HintFocused, True)
	n.pending = append(n.pending, Event{Kind: EventWindowFocus, Window: w, Focused: true})
}

func (n *Null) IconifyWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrib(w, HintIconified, True)
	n.pending = append(n.pending, Event{Kind: EventWindowIconify, Window: w, Iconified: true})
}

func (n *Null) MaximizeWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrib(w, HintMaximized, True)
	n.pending = append(n.pending, Event{Kind: EventWindowMaximize, Window: w, Maximized: true})
}

func (n *Null) RestoreWindow(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrib(w, HintIconified, False)
	n.setAttrib(w, HintMaximized, False)
}

func (n *Null) RequestWindowAttention(w Window) {}

func (n *Null) GetWindowAttrib(w Window, attrib int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.attribs[attrib]
	}
	return 0
}

func (n *Null) SetWindowAttrib(w Window, attrib, value int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrib(w, attrib, value)
}

func (n *Null) GetWindowMonitor(w Window) Monitor {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.monitor
	}
	return 0
}

func (n *Null) SetWindowMonitor(w Window, m Monitor, x, y, width, height, refreshRate int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.monitor = m
		nw.x, nw.y = x, y
		nw.width, nw.height = width, height
	}
}

func (n *Null) GetInputMode(w Window, mode int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.inputModes[mode]
	}
	return 0
}

func (n *Null) SetInputMode(w Window, mode, value int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		if _, ok := nw.inputModes[mode]; !ok {
			n.setErr(InvalidEnum, "invalid input mode %#x", mode)
			return
		}
		nw.inputModes[mode] = value
	}
}

func (n *Null) GetKey(w Window, key int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.keys[key]
	}
	return Release
}

func (n *Null) GetMouseButton(w Window, button int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.buttons[button]
	}
	return Release
}

func (n *Null) GetCursorPos(w Window) (float64, float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		return nw.cursorX, nw.cursorY
	}
	return 0, 0
}

func (n *Null) SetCursorPos(w Window, x, y float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.cursorX, nw.cursorY = x, y
	}
}

func (n *Null) SetCursor(w Window, c Cursor) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.cursor = c
	}
}

func (n *Null) GetClipboardString(w Window) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		if nw.clipboard == "" {
			n.setErr(FormatUnavailable, "clipboard is empty")
		}
		return nw.clipboard
	}
	return ""
}

func (n *Null) SetClipboardString(w Window, s string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil {
		nw.clipboard = s
	}
}

func (n *Null) MakeContextCurrent(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if w != 0 {
		if nw := n.window(w); nw == nil {
			return
		} else if nw.attribs[HintClientAPI] == NoAPI {
			n.setErr(NoWindowContext, "window has no OpenGL context")
			return
		}
	}
	n.current = w
}

func (n *Null) GetCurrentContext() Window {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Null) SwapBuffers(w Window) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nw := n.window(w); nw != nil && nw.attribs[HintClientAPI] == NoAPI {
		n.setErr(NoWindowContext, "window has no OpenGL context")
	}
}

func (n *Null) SwapInterval(interval int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == 0 {
		n.setErr(NoCurrentContext, "no context is current")
		return
	}
	if nw := n.window(n.current); nw != nil {
		nw.interval = interval
	}
}

func (n *Null) Monitors() []Monitor {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Monitor, len(n.monitors))
	copy(out, n.monitors)
	return out
}

func (n *Null) PrimaryMonitor() Monitor {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.monitors) == 0 {
		return 0
	}
	return n.monitors[0]
}

func (n *Null) monitor(m Monitor) *nullMonitor {
	if nm, ok := n.monInfo[m]; ok {
		return nm
	}
	n.setErr(PlatformError, "unknown monitor handle %#x", uintptr(m))
	return nil
}

func (n *Null) GetMonitorPos(m Monitor) (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		return nm.x, nm.y
	}
	return 0, 0
}

func (n *Null) GetMonitorWorkarea(m Monitor) (int, int, int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		return nm.x, nm.y, nm.mode.Width, nm.mode.Height
	}
	return 0, 0, 0, 0
}

func (n *Null) GetMonitorPhysicalSize(m Monitor) (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		return nm.widthMM, nm.heightMM
	}
	return 0, 0
}

func (n *Null) GetMonitorContentScale(m Monitor) (float32, float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		return nm.scaleX, nm.scaleY
	}
	return 0, 0
}

func (n *Null) GetMonitorName(m Monitor) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		return nm.name
	}
	return ""
}

func (n *Null) GetVideoMode(m Monitor) (VidMode, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		return nm.mode, true
	}
	return VidMode{}, false
}

func (n *Null) GetVideoModes(m Monitor) []VidMode {
	n.mu.Lock()
	defer n.mu.Unlock()
	nm := n.monitor(m)
	if nm == nil {
		return nil
	}
	modes := []VidMode{
		{Width: 1280, Height: 720, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60},
		nm.mode,
	}
	return modes
}

func (n *Null) SetGamma(m Monitor, gamma float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if nm := n.monitor(m); nm != nil {
		nm.gamma = gamma
	}
}

func (n *Null) CreateStandardCursor(shape int) Cursor {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch shape {
	case ArrowCursor, IBeamCursor, CrosshairCursor, PointingHandCursor,
		ResizeEWCursor, ResizeNSCursor, ResizeNWSECursor, ResizeNESWCursor,
		ResizeAllCursor, NotAllowedCursor:
	default:
		n.setErr(InvalidEnum, "invalid cursor shape %#x", shape)
		return 0
	}
	c := Cursor(n.handle())
	n.cursors[c] = shape
	return c
}

func (n *Null) CreateCursor(img *image.RGBA, xhot, yhot int) Cursor {
	n.mu.Lock()
	defer n.mu.Unlock()
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		n.setErr(InvalidValue, "invalid cursor image %dx%d", b.Dx(), b.Dy())
		return 0
	}
	c := Cursor(n.handle())
	n.cursors[c] = -1
	return c
}

func (n *Null) DestroyCursor(c Cursor) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.cursors, c)
}

func (n *Null) GetKeyName(key, scancode int) string {
	// Printable single-character keys name themselves on the null
	// platform.
	if key >= '0' && key <= '9' || key >= 'A' && key <= 'Z' {
		return string(rune(key + ('a' - 'A')))
	}
	return ""
}

func (n *Null) RawMouseMotionSupported() bool { return true }

func (n *Null) JoystickPresent(jid int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.joysticks[jid]
	return ok
}

func (n *Null) JoystickName(jid int) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.joysticks[jid]
}

func (n *Null) JoystickGUID(jid int) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.joysticks[jid]; !ok {
		return ""
	}
	return fmt.Sprintf("00000000000000000000000000%06x", jid)
}

func (n *Null) GamepadName(jid int) string {
	return n.JoystickName(jid)
}

func (n *Null) GamepadState(jid int) (GamepadState, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.joysticks[jid]; !ok {
		return GamepadState{}, false
	}
	return GamepadState{}, true
}

func (n *Null) UpdateGamepadMappings(mappings string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mappings++
	return true
}

// Test and simulation hooks. These stand in for the asynchronous
// platform behavior the real library reports through its callbacks.

// ConnectMonitor plugs in a new monitor. The connection event is
// delivered on the next event pump.
func (n *Null) ConnectMonitor(name string, mode VidMode) Monitor {
	n.mu.Lock()
	defer n.mu.Unlock()
	m := Monitor(n.handle())
	n.monitors = append(n.monitors, m)
	n.monInfo[m] = &nullMonitor{name: name, mode: mode, scaleX: 1, scaleY: 1, gamma: 1}
	n.pending = append(n.pending, Event{Kind: EventMonitor, Monitor: m, Connected: true})
	n.wakeup()
	return m
}

// DisconnectMonitor unplugs a monitor. The handle stays allocated so a
// stale reference still refers to freed state, as on the real
// platforms.
func (n *Null) DisconnectMonitor(m Monitor) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, have := range n.monitors {
		if have == m {
			n.monitors = append(n.monitors[:i], n.monitors[i+1:]...)
			break
		}
	}
	delete(n.monInfo, m)
	n.pending = append(n.pending, Event{Kind: EventMonitor, Monitor: m, Connected: false})
	n.wakeup()
}

// ConnectJoystick plugs in a joystick.
func (n *Null) ConnectJoystick(jid int, name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.joysticks[jid] = name
	n.pending = append(n.pending, Event{Kind: EventJoystick, Joystick: jid, Connected: true})
	n.wakeup()
}

// FailNextCreateWindow arms a one-shot creation failure with the given
// error code.
func (n *Null) FailNextCreateWindow(code int, desc string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failCreate = &Error{Code: code, Desc: desc}
}

// PushEvent queues a raw event for delivery on the next pump.
func (n *Null) PushEvent(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, ev)
	n.wakeup()
}
