// SPDX-License-Identifier: Unlicense OR MIT

// Package native defines the raw function table of the underlying
// windowing library. The table mirrors the C ABI: opaque handles in,
// handles or status values out, a single global error slot per call
// sequence, and queued events surfaced only while one of the event
// pump calls runs.
//
// The package performs no liveness tracking and no synchronization;
// those guarantees belong to the wrapper on top. Real platform
// backends live in separate binding modules and announce themselves
// through Register. The null backend in this package is always
// available and backs the tests.
package native

import (
	"fmt"
	"image"
	"sync"
)

// Opaque handles. The zero value is the null handle.
type (
	Window  uintptr
	Monitor uintptr
	Cursor  uintptr
)

// Boolean values used by the hint and attribute calls.
const (
	False = 0
	True  = 1
)

// DontCare matches GLFW_DONT_CARE.
const DontCare = -1

// Platform identifiers.
const (
	AnyPlatform     = 0x00060000
	PlatformWin32   = 0x00060001
	PlatformCocoa   = 0x00060002
	PlatformWayland = 0x00060003
	PlatformX11     = 0x00060004
	PlatformNull    = 0x00060005
)

// Init hints.
const (
	HintJoystickHatButtons = 0x00050001
	HintPlatform           = 0x00050003
)

// Window attributes and creation hints.
const (
	HintFocused                = 0x00020001
	HintIconified              = 0x00020002
	HintResizable              = 0x00020003
	HintVisible                = 0x00020004
	HintDecorated              = 0x00020005
	HintAutoIconify            = 0x00020006
	HintFloating               = 0x00020007
	HintMaximized              = 0x00020008
	HintCenterCursor           = 0x00020009
	HintTransparentFramebuffer = 0x0002000A
	HintHovered                = 0x0002000B
	HintFocusOnShow            = 0x0002000C
	HintMousePassthrough       = 0x0002000D
	HintPositionX              = 0x0002000E
	HintPositionY              = 0x0002000F

	HintRedBits      = 0x00021001
	HintGreenBits    = 0x00021002
	HintBlueBits     = 0x00021003
	HintAlphaBits    = 0x00021004
	HintDepthBits    = 0x00021005
	HintStencilBits  = 0x00021006
	HintSamples      = 0x0002100D
	HintSRGBCapable  = 0x0002100E
	HintRefreshRate  = 0x0002100F
	HintDoubleBuffer = 0x00021010
)

// Context hints.
const (
	HintClientAPI           = 0x00022001
	HintContextVersionMajor = 0x00022002
	HintContextVersionMinor = 0x00022003
	AttribContextRevision   = 0x00022004
	HintContextRobustness   = 0x00022005
	HintOpenGLForwardCompat = 0x00022006
	HintContextDebug        = 0x00022007
	HintOpenGLProfile       = 0x00022008
	HintContextCreationAPI  = 0x0002200B
	HintScaleToMonitor      = 0x0002200C
)

// String-valued window hints.
const (
	HintCocoaFrameName  = 0x00023002
	HintX11ClassName    = 0x00024001
	HintX11InstanceName = 0x00024002
	HintWaylandAppID    = 0x00026001
)

// Client API values.
const (
	NoAPI       = 0
	OpenGLAPI   = 0x00030001
	OpenGLESAPI = 0x00030002
)

// Context creation API values.
const (
	NativeContextAPI = 0x00036001
	EGLContextAPI    = 0x00036002
	OSMesaContextAPI = 0x00036003
)

// OpenGL profile values.
const (
	AnyProfile    = 0
	CoreProfile   = 0x00032001
	CompatProfile = 0x00032002
)

// Input modes.
const (
	ModeCursor             = 0x00033001
	ModeStickyKeys         = 0x00033002
	ModeStickyMouseButtons = 0x00033003
	ModeLockKeyMods        = 0x00033004
	ModeRawMouseMotion     = 0x00033005
)

// Cursor mode values.
const (
	CursorNormal   = 0x00034001
	CursorHidden   = 0x00034002
	CursorDisabled = 0x00034003
	CursorCaptured = 0x00034004
)

// Standard cursor shapes.
const (
	ArrowCursor        = 0x00036001
	IBeamCursor        = 0x00036002
	CrosshairCursor    = 0x00036003
	PointingHandCursor = 0x00036004
	ResizeEWCursor     = 0x00036005
	ResizeNSCursor     = 0x00036006
	ResizeNWSECursor   = 0x00036007
	ResizeNESWCursor   = 0x00036008
	ResizeAllCursor    = 0x00036009
	NotAllowedCursor   = 0x0003600A
)

// Key and mouse button actions.
const (
	Release = 0
	Press   = 1
	Repeat  = 2
)

// Device connection events.
const (
	Connected    = 0x00040001
	Disconnected = 0x00040002
)

// Error codes, identical to the C library's.
const (
	NoError              = 0
	NotInitialized       = 0x00010001
	NoCurrentContext     = 0x00010002
	InvalidEnum          = 0x00010003
	InvalidValue         = 0x00010004
	OutOfMemory          = 0x00010005
	APIUnavailable       = 0x00010006
	VersionUnavailable   = 0x00010007
	PlatformError        = 0x00010008
	FormatUnavailable    = 0x00010009
	NoWindowContext      = 0x0001000A
	CursorUnavailable    = 0x0001000B
	FeatureUnavailable   = 0x0001000C
	FeatureUnimplemented = 0x0001000D
	PlatformUnavailable  = 0x0001000E
)

// VidMode describes a monitor video mode.
type VidMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

// GamepadState is the state of a joystick remapped to an Xbox-like
// gamepad.
type GamepadState struct {
	Buttons [15]bool
	Axes    [6]float32
}

// EventKind discriminates the flat Event record below.
type EventKind int

const (
	EventWindowPos EventKind = iota + 1
	EventWindowSize
	EventWindowClose
	EventWindowRefresh
	EventWindowFocus
	EventWindowIconify
	EventWindowMaximize
	EventFramebufferSize
	EventContentScale
	EventKey
	EventChar
	EventMouseButton
	EventCursorPos
	EventCursorEnter
	EventScroll
	EventDrop
	EventMonitor
	EventJoystick
)

// Event is the raw callback record delivered by a backend during the
// event pump. It is a flat union in the manner of the C callbacks;
// which fields are meaningful depends on Kind.
type Event struct {
	Kind    EventKind
	Window  Window
	Monitor Monitor

	X, Y           float64
	Width, Height  int
	ScaleX, ScaleY float32

	Key, Scancode int
	Action, Mods  int
	Rune          rune
	Button        int
	Entered       bool
	Focused       bool
	Iconified     bool
	Maximized     bool
	Paths         []string

	Joystick  int
	Connected bool
}

// EventSink receives raw events. A backend must only call it from
// inside PollEvents, WaitEvents or WaitEventsTimeout, on the calling
// thread.
type EventSink func(Event)

// Backend is the raw function table. Methods map one-to-one onto the
// native calls; none of them validate handles.
type Backend interface {
	// Lifecycle. Init returns false on failure and records the error
	// in the error slot.
	Init(hints map[int]int) bool
	Terminate()

	// GetError returns and clears the error slot for the calling
	// sequence. A zero code means no error.
	GetError() (code int, desc string)

	// Event pump. Queued events are handed to the sink registered
	// with SetEventSink.
	SetEventSink(sink EventSink)
	PollEvents()
	WaitEvents()
	WaitEventsTimeout(timeout float64)
	PostEmptyEvent()

	GetTime() float64
	SetTime(t float64)
	Platform() int

	// Windows.
	DefaultWindowHints()
	WindowHint(hint, value int)
	WindowHintString(hint int, value string)
	CreateWindow(width, height int, title string, monitor Monitor, share Window) Window
	DestroyWindow(w Window)
	WindowShouldClose(w Window) bool
	SetWindowShouldClose(w Window, v bool)
	GetWindowTitle(w Window) string
	SetWindowTitle(w Window, title string)
	GetWindowPos(w Window) (x, y int)
	SetWindowPos(w Window, x, y int)
	GetWindowSize(w Window) (width, height int)
	SetWindowSize(w Window, width, height int)
	SetWindowSizeLimits(w Window, minW, minH, maxW, maxH int)
	SetWindowAspectRatio(w Window, numer, denom int)
	GetFramebufferSize(w Window) (width, height int)
	GetWindowContentScale(w Window) (x, y float32)
	GetWindowOpacity(w Window) float32
	SetWindowOpacity(w Window, opacity float32)
	ShowWindow(w Window)
	HideWindow(w Window)
	FocusWindow(w Window)
	IconifyWindow(w Window)
	MaximizeWindow(w Window)
	RestoreWindow(w Window)
	RequestWindowAttention(w Window)
	GetWindowAttrib(w Window, attrib int) int
	SetWindowAttrib(w Window, attrib, value int)
	GetWindowMonitor(w Window) Monitor
	SetWindowMonitor(w Window, m Monitor, x, y, width, height, refreshRate int)
	GetInputMode(w Window, mode int) int
	SetInputMode(w Window, mode, value int)
	GetKey(w Window, key int) int
	GetMouseButton(w Window, button int) int
	GetCursorPos(w Window) (x, y float64)
	SetCursorPos(w Window, x, y float64)
	SetCursor(w Window, c Cursor)
	GetClipboardString(w Window) string
	SetClipboardString(w Window, s string)

	// Contexts. MakeContextCurrent with the null handle detaches the
	// calling thread's context.
	MakeContextCurrent(w Window)
	GetCurrentContext() Window
	SwapBuffers(w Window)
	SwapInterval(interval int)

	// Monitors.
	Monitors() []Monitor
	PrimaryMonitor() Monitor
	GetMonitorPos(m Monitor) (x, y int)
	GetMonitorWorkarea(m Monitor) (x, y, width, height int)
	GetMonitorPhysicalSize(m Monitor) (widthMM, heightMM int)
	GetMonitorContentScale(m Monitor) (x, y float32)
	GetMonitorName(m Monitor) string
	GetVideoMode(m Monitor) (VidMode, bool)
	GetVideoModes(m Monitor) []VidMode
	SetGamma(m Monitor, gamma float32)

	// Cursors.
	CreateStandardCursor(shape int) Cursor
	CreateCursor(img *image.RGBA, xhot, yhot int) Cursor
	DestroyCursor(c Cursor)

	// Input utilities.
	GetKeyName(key, scancode int) string
	RawMouseMotionSupported() bool

	// Joysticks.
	JoystickPresent(jid int) bool
	JoystickName(jid int) string
	JoystickGUID(jid int) string
	GamepadName(jid int) string
	GamepadState(jid int) (GamepadState, bool)
	UpdateGamepadMappings(mappings string) bool
}

var (
	registryMu sync.Mutex
	registry   = map[int]func() Backend{}
)

// Register installs a backend factory for a platform. Binding modules
// call it from their init functions.
func Register(platform int, factory func() Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[platform] = factory
}

// Open resolves a platform to a backend. AnyPlatform picks any
// registered platform backend, never the null one.
func Open(platform int) (Backend, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if platform == AnyPlatform {
		for p, f := range registry {
			if p != PlatformNull {
				return f(), nil
			}
		}
		return nil, fmt.Errorf("native: no platform backend linked in (code 0x%x)", PlatformUnavailable)
	}
	f, ok := registry[platform]
	if !ok {
		return nil, fmt.Errorf("native: platform 0x%x not available", platform)
	}
	return f(), nil
}
