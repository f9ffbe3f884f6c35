// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"image"

	"github.com/go-gfx/glfw/internal/native"
)

// ClientAPI values for the ClientAPI option.
const (
	NoAPI       = native.NoAPI
	OpenGLAPI   = native.OpenGLAPI
	OpenGLESAPI = native.OpenGLESAPI
)

// Context creation API values for the ContextCreationAPI option.
const (
	NativeContextAPI = native.NativeContextAPI
	EGLContextAPI    = native.EGLContextAPI
	OSMesaContextAPI = native.OSMesaContextAPI
)

// OpenGL profile values for the Profile option.
const (
	AnyProfile    = native.AnyProfile
	CoreProfile   = native.CoreProfile
	CompatProfile = native.CompatProfile
)

// DontCare leaves a numeric hint or limit unconstrained.
const DontCare = native.DontCare

// Input modes and their values, for InputMode and SetInputMode.
const (
	ModeCursor             = native.ModeCursor
	ModeStickyKeys         = native.ModeStickyKeys
	ModeStickyMouseButtons = native.ModeStickyMouseButtons
	ModeLockKeyMods        = native.ModeLockKeyMods
	ModeRawMouseMotion     = native.ModeRawMouseMotion

	CursorNormal   = native.CursorNormal
	CursorHidden   = native.CursorHidden
	CursorDisabled = native.CursorDisabled
	CursorCaptured = native.CursorCaptured
)

// Window attributes for Attrib and SetAttrib. Creation hints that stay
// readable after creation share these values.
const (
	AttribFocused                = native.HintFocused
	AttribIconified              = native.HintIconified
	AttribResizable              = native.HintResizable
	AttribVisible                = native.HintVisible
	AttribDecorated              = native.HintDecorated
	AttribAutoIconify            = native.HintAutoIconify
	AttribFloating               = native.HintFloating
	AttribMaximized              = native.HintMaximized
	AttribTransparentFramebuffer = native.HintTransparentFramebuffer
	AttribHovered                = native.HintHovered
	AttribFocusOnShow            = native.HintFocusOnShow
	AttribMousePassthrough       = native.HintMousePassthrough
	AttribClientAPI              = native.HintClientAPI
	AttribContextVersionMajor    = native.HintContextVersionMajor
	AttribContextVersionMinor    = native.HintContextVersionMinor
	AttribContextRevision        = native.AttribContextRevision
	AttribOpenGLForwardCompat    = native.HintOpenGLForwardCompat
	AttribContextDebug           = native.HintContextDebug
	AttribOpenGLProfile          = native.HintOpenGLProfile
)

type windowConfig struct {
	title    string
	width    int
	height   int
	monitor  *Monitor
	share    *Window
	hints    map[int]int
	strHints map[int]string
}

// WindowOption configures window creation. Options not given fall back
// to the native defaults, a 640x480 visible windowed-mode window with
// a context for whatever OpenGL version is available.
type WindowOption func(*windowConfig)

func hintOption(hint, value int) WindowOption {
	return func(cfg *windowConfig) { cfg.hints[hint] = value }
}

func boolHintOption(hint int, v bool) WindowOption {
	return hintOption(hint, boolToNative(v))
}

// Title sets the initial window title.
func Title(title string) WindowOption {
	return func(cfg *windowConfig) { cfg.title = title }
}

// Size sets the initial client-area size in screen coordinates.
func Size(width, height int) WindowOption {
	return func(cfg *windowConfig) { cfg.width, cfg.height = width, height }
}

// Position sets the initial position of the client area. The default
// lets the platform place the window.
func Position(pos image.Point) WindowOption {
	return func(cfg *windowConfig) {
		cfg.hints[native.HintPositionX] = pos.X
		cfg.hints[native.HintPositionY] = pos.Y
	}
}

// Fullscreen creates the window fullscreen on m, at m's current video
// mode unless Size or RefreshRate override it.
func Fullscreen(m *Monitor) WindowOption {
	return func(cfg *windowConfig) { cfg.monitor = m }
}

// SharedWith makes the new context share objects, textures and buffers
// among them, with other's context.
func SharedWith(other *Window) WindowOption {
	return func(cfg *windowConfig) { cfg.share = other }
}

// Resizable controls whether the user can resize the window.
func Resizable(v bool) WindowOption { return boolHintOption(native.HintResizable, v) }

// Visible controls whether the window starts visible.
func Visible(v bool) WindowOption { return boolHintOption(native.HintVisible, v) }

// Decorated controls window borders and title bar.
func Decorated(v bool) WindowOption { return boolHintOption(native.HintDecorated, v) }

// Floating keeps the window above non-floating windows.
func Floating(v bool) WindowOption { return boolHintOption(native.HintFloating, v) }

// Maximized creates the window maximized.
func Maximized(v bool) WindowOption { return boolHintOption(native.HintMaximized, v) }

// AutoIconify controls whether a fullscreen window iconifies on focus
// loss.
func AutoIconify(v bool) WindowOption { return boolHintOption(native.HintAutoIconify, v) }

// FocusOnShow controls whether Show gives the window input focus.
func FocusOnShow(v bool) WindowOption { return boolHintOption(native.HintFocusOnShow, v) }

// CenterCursor centers the cursor on fullscreen windows at creation.
func CenterCursor(v bool) WindowOption { return boolHintOption(native.HintCenterCursor, v) }

// TransparentFramebuffer requests an alpha-blended framebuffer.
func TransparentFramebuffer(v bool) WindowOption {
	return boolHintOption(native.HintTransparentFramebuffer, v)
}

// MousePassthrough lets mouse input pass through the window.
func MousePassthrough(v bool) WindowOption {
	return boolHintOption(native.HintMousePassthrough, v)
}

// ScaleToMonitor resizes the client area on content-scale changes.
func ScaleToMonitor(v bool) WindowOption { return boolHintOption(native.HintScaleToMonitor, v) }

// Samples sets the number of MSAA samples, 0 to disable.
func Samples(n int) WindowOption { return hintOption(native.HintSamples, n) }

// SRGBCapable requests an sRGB-capable framebuffer.
func SRGBCapable(v bool) WindowOption { return boolHintOption(native.HintSRGBCapable, v) }

// DoubleBuffer controls double buffering. Single-buffered windows
// cannot SwapBuffers.
func DoubleBuffer(v bool) WindowOption { return boolHintOption(native.HintDoubleBuffer, v) }

// RefreshRate sets the refresh rate for fullscreen windows. DontCare
// picks the highest available.
func RefreshRate(rate int) WindowOption { return hintOption(native.HintRefreshRate, rate) }

// FramebufferBits sets the bit depths of the default framebuffer's
// color, depth and stencil channels. DontCare leaves a channel to the
// platform.
func FramebufferBits(red, green, blue, alpha, depth, stencil int) WindowOption {
	return func(cfg *windowConfig) {
		cfg.hints[native.HintRedBits] = red
		cfg.hints[native.HintGreenBits] = green
		cfg.hints[native.HintBlueBits] = blue
		cfg.hints[native.HintAlphaBits] = alpha
		cfg.hints[native.HintDepthBits] = depth
		cfg.hints[native.HintStencilBits] = stencil
	}
}

// ClientAPI selects the client API, or NoAPI for a context-less
// window.
func ClientAPI(api int) WindowOption { return hintOption(native.HintClientAPI, api) }

// ContextVersion requests a minimum OpenGL or OpenGL ES version.
func ContextVersion(major, minor int) WindowOption {
	return func(cfg *windowConfig) {
		cfg.hints[native.HintContextVersionMajor] = major
		cfg.hints[native.HintContextVersionMinor] = minor
	}
}

// Profile selects the OpenGL profile for contexts of version 3.2 and
// up.
func Profile(profile int) WindowOption { return hintOption(native.HintOpenGLProfile, profile) }

// ForwardCompatible requests a forward-compatible OpenGL context.
func ForwardCompatible(v bool) WindowOption {
	return boolHintOption(native.HintOpenGLForwardCompat, v)
}

// DebugContext requests a context with debug features.
func DebugContext(v bool) WindowOption { return boolHintOption(native.HintContextDebug, v) }

// ContextCreationAPI selects how the context is created.
func ContextCreationAPI(api int) WindowOption {
	return hintOption(native.HintContextCreationAPI, api)
}

// X11ClassName sets the window's WM_CLASS class and instance names.
// Ignored off X11.
func X11ClassName(class, instance string) WindowOption {
	return func(cfg *windowConfig) {
		if cfg.strHints == nil {
			cfg.strHints = map[int]string{}
		}
		cfg.strHints[native.HintX11ClassName] = class
		cfg.strHints[native.HintX11InstanceName] = instance
	}
}

// WaylandAppID sets the window's xdg-shell application id. Ignored off
// Wayland.
func WaylandAppID(id string) WindowOption {
	return func(cfg *windowConfig) {
		if cfg.strHints == nil {
			cfg.strHints = map[int]string{}
		}
		cfg.strHints[native.HintWaylandAppID] = id
	}
}
