// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"image"

	"github.com/go-gfx/glfw/internal/native"
)

// WindowID identifies the window an event belongs to. Match it against
// WindowProxy.ID.
type WindowID uintptr

// MonitorID identifies a monitor in MonitorEvent. Disconnected
// monitors have no other representation; their native state is already
// freed when the event is observed.
type MonitorID uintptr

// Event is implemented by all event types delivered by the pump
// methods.
type Event interface {
	ImplementsEvent()
}

// TimedEvent pairs an event with the timer value at which it was
// observed, in seconds.
type TimedEvent struct {
	Time  float64
	Event Event
}

// MoveEvent reports a window position change, in screen coordinates.
type MoveEvent struct {
	Window WindowID
	Pos    image.Point
}

// SizeEvent reports a client-area size change, in screen coordinates.
type SizeEvent struct {
	Window WindowID
	Size   image.Point
}

// FramebufferSizeEvent reports a framebuffer size change, in pixels.
type FramebufferSizeEvent struct {
	Window WindowID
	Size   image.Point
}

// ContentScaleEvent reports a content scale change.
type ContentScaleEvent struct {
	Window WindowID
	X, Y   float32
}

// CloseEvent reports that the user asked the window to close. The
// close flag is already set when the event is delivered.
type CloseEvent struct {
	Window WindowID
}

// RefreshEvent reports that the window contents need redrawing.
type RefreshEvent struct {
	Window WindowID
}

// FocusEvent reports input focus gain or loss.
type FocusEvent struct {
	Window  WindowID
	Focused bool
}

// IconifyEvent reports iconification or restoration.
type IconifyEvent struct {
	Window    WindowID
	Iconified bool
}

// MaximizeEvent reports maximization or restoration.
type MaximizeEvent struct {
	Window    WindowID
	Maximized bool
}

// KeyEvent reports a key press, release or repeat.
type KeyEvent struct {
	Window   WindowID
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// CharEvent reports a Unicode character of generated text input.
type CharEvent struct {
	Window WindowID
	Char   rune
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Window WindowID
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorPosEvent reports cursor movement, in screen coordinates
// relative to the client area's top-left corner.
type CursorPosEvent struct {
	Window WindowID
	X, Y   float64
}

// CursorEnterEvent reports the cursor entering or leaving the client
// area.
type CursorEnterEvent struct {
	Window  WindowID
	Entered bool
}

// ScrollEvent reports scroll wheel or touchpad scroll input.
type ScrollEvent struct {
	Window WindowID
	X, Y   float64
}

// DropEvent reports files dropped onto the window.
type DropEvent struct {
	Window WindowID
	Paths  []string
}

// MonitorEvent reports a monitor connection change. The connected
// monitor list has already been updated when the event is delivered.
type MonitorEvent struct {
	Monitor   MonitorID
	Connected bool
}

// JoystickEvent reports a joystick connection change.
type JoystickEvent struct {
	Joystick  int
	Connected bool
}

func (MoveEvent) ImplementsEvent()            {}
func (SizeEvent) ImplementsEvent()            {}
func (FramebufferSizeEvent) ImplementsEvent() {}
func (ContentScaleEvent) ImplementsEvent()    {}
func (CloseEvent) ImplementsEvent()           {}
func (RefreshEvent) ImplementsEvent()         {}
func (FocusEvent) ImplementsEvent()           {}
func (IconifyEvent) ImplementsEvent()         {}
func (MaximizeEvent) ImplementsEvent()        {}
func (KeyEvent) ImplementsEvent()             {}
func (CharEvent) ImplementsEvent()            {}
func (MouseButtonEvent) ImplementsEvent()     {}
func (CursorPosEvent) ImplementsEvent()       {}
func (CursorEnterEvent) ImplementsEvent()     {}
func (ScrollEvent) ImplementsEvent()          {}
func (DropEvent) ImplementsEvent()            {}
func (MonitorEvent) ImplementsEvent()         {}
func (JoystickEvent) ImplementsEvent()        {}

func translateEvent(raw native.Event) Event {
	wid := WindowID(raw.Window)
	switch raw.Kind {
	case native.EventWindowPos:
		return MoveEvent{Window: wid, Pos: image.Pt(int(raw.X), int(raw.Y))}
	case native.EventWindowSize:
		return SizeEvent{Window: wid, Size: image.Pt(raw.Width, raw.Height)}
	case native.EventFramebufferSize:
		return FramebufferSizeEvent{Window: wid, Size: image.Pt(raw.Width, raw.Height)}
	case native.EventContentScale:
		return ContentScaleEvent{Window: wid, X: raw.ScaleX, Y: raw.ScaleY}
	case native.EventWindowClose:
		return CloseEvent{Window: wid}
	case native.EventWindowRefresh:
		return RefreshEvent{Window: wid}
	case native.EventWindowFocus:
		return FocusEvent{Window: wid, Focused: raw.Focused}
	case native.EventWindowIconify:
		return IconifyEvent{Window: wid, Iconified: raw.Iconified}
	case native.EventWindowMaximize:
		return MaximizeEvent{Window: wid, Maximized: raw.Maximized}
	case native.EventKey:
		return KeyEvent{
			Window:   wid,
			Key:      Key(raw.Key),
			Scancode: raw.Scancode,
			Action:   Action(raw.Action),
			Mods:     ModifierKey(raw.Mods),
		}
	case native.EventChar:
		return CharEvent{Window: wid, Char: raw.Rune}
	case native.EventMouseButton:
		return MouseButtonEvent{
			Window: wid,
			Button: MouseButton(raw.Button),
			Action: Action(raw.Action),
			Mods:   ModifierKey(raw.Mods),
		}
	case native.EventCursorPos:
		return CursorPosEvent{Window: wid, X: raw.X, Y: raw.Y}
	case native.EventCursorEnter:
		return CursorEnterEvent{Window: wid, Entered: raw.Entered}
	case native.EventScroll:
		return ScrollEvent{Window: wid, X: raw.X, Y: raw.Y}
	case native.EventDrop:
		return DropEvent{Window: wid, Paths: raw.Paths}
	case native.EventMonitor:
		return MonitorEvent{Monitor: MonitorID(raw.Monitor), Connected: raw.Connected}
	case native.EventJoystick:
		return JoystickEvent{Joystick: raw.Joystick, Connected: raw.Connected}
	}
	return nil
}
