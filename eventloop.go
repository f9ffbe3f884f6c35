// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/go-gfx/glfw/internal/native"
)

// Platform selects which native platform backend an EventLoop drives.
type Platform int

const (
	// AnyPlatform picks whatever platform backend is linked in.
	AnyPlatform Platform = native.AnyPlatform
	PlatformWin32   Platform = native.PlatformWin32
	PlatformCocoa   Platform = native.PlatformCocoa
	PlatformWayland Platform = native.PlatformWayland
	PlatformX11     Platform = native.PlatformX11
	// PlatformNull is the in-memory platform: windows and contexts
	// exist but nothing is displayed. Used for tests and headless
	// runs.
	PlatformNull Platform = native.PlatformNull
)

// active guards the process-wide single-instance invariant: the native
// library has one global initialization state, so at most one
// EventLoop may be live at a time.
var active struct {
	sync.Mutex
	el *EventLoop
}

type eventLoopConfig struct {
	platform           Platform
	logger             *slog.Logger
	errorCallback      ErrorCallback
	joystickHatButtons *bool
}

// EventLoopOption configures EventLoop initialization.
type EventLoopOption func(*eventLoopConfig)

// WithPlatform forces a specific platform backend.
func WithPlatform(p Platform) EventLoopOption {
	return func(cfg *eventLoopConfig) { cfg.platform = p }
}

// WithLogger routes the wrapper's advisory error logging to l.
func WithLogger(l *slog.Logger) EventLoopOption {
	return func(cfg *eventLoopConfig) { cfg.logger = l }
}

// WithErrorCallback installs cb as the global error callback before
// initialization, so init-time errors already reach it.
func WithErrorCallback(cb ErrorCallback) EventLoopOption {
	return func(cfg *eventLoopConfig) { cfg.errorCallback = cb }
}

// WithJoystickHatButtons controls whether joystick hats are also
// exposed as buttons.
func WithJoystickHatButtons(v bool) EventLoopOption {
	return func(cfg *eventLoopConfig) { cfg.joystickHatButtons = &v }
}

// EventLoop owns the native library's global state. It must be
// created, used and terminated on one thread; NewEventLoop locks the
// calling goroutine to its OS thread for that reason. Cross-thread
// callers go through Proxy and WindowProxy values instead.
type EventLoop struct {
	errChannel
	tid   uint64
	alive *atomic.Bool
	proxy *EventLoopProxy

	// pending is only touched on the owner thread: the backend hands
	// events to the sink exclusively from inside the pump calls.
	pending *queue.Queue

	monitors monitorSet

	mu      sync.Mutex
	windows map[native.Window]*Window
	cursors map[*Cursor]struct{}
}

// NewEventLoop initializes the native library and returns its owner.
//
// It panics if an EventLoop is already active anywhere in the process:
// double initialization cannot be made sound on top of the library's
// single global state, so it is treated as a caller bug rather than a
// recoverable error. Native initialization failure, by contrast, is
// returned as an error.
func NewEventLoop(opts ...EventLoopOption) (*EventLoop, error) {
	cfg := eventLoopConfig{
		platform: AnyPlatform,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	active.Lock()
	defer active.Unlock()
	if active.el != nil {
		panic("glfw: an EventLoop is already active; terminate it before creating another")
	}

	if cfg.errorCallback != nil {
		SetErrorCallback(cfg.errorCallback)
	}

	backend, err := native.Open(int(cfg.platform))
	if err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}

	hints := map[int]int{
		native.HintPlatform: int(cfg.platform),
	}
	if cfg.joystickHatButtons != nil {
		hints[native.HintJoystickHatButtons] = boolToNative(*cfg.joystickHatButtons)
	}

	runtime.LockOSThread()
	ch := errChannel{backend: backend, logger: cfg.logger}
	ch.clear()
	if !backend.Init(hints) {
		runtime.UnlockOSThread()
		if err := ch.fetch(); err != nil {
			return nil, fmt.Errorf("glfw: init: %w", err)
		}
		return nil, fmt.Errorf("glfw: init failed with no error reported")
	}

	aliveFlag := &atomic.Bool{}
	aliveFlag.Store(true)
	el := &EventLoop{
		errChannel: ch,
		tid:        currentThreadID(),
		alive:      aliveFlag,
		pending:    queue.New(),
		windows:    map[native.Window]*Window{},
		cursors:    map[*Cursor]struct{}{},
	}
	el.proxy = &EventLoopProxy{errChannel: ch, alive: aliveFlag}
	el.monitors.replace(backend.Monitors())
	backend.SetEventSink(el.onNativeEvent)
	active.el = el
	return el, nil
}

// mustOwnerThread enforces the thread-of-creation precondition on
// lifecycle operations. Violations are soundness bugs, not errors.
func (el *EventLoop) mustOwnerThread(op string) {
	if !el.alive.Load() {
		panic("glfw: " + op + " on a terminated EventLoop")
	}
	if tid := currentThreadID(); tid != el.tid {
		panic(fmt.Sprintf("glfw: %s called on thread %d; the EventLoop belongs to thread %d", op, tid, el.tid))
	}
}

// Terminate destroys every window and cursor still outstanding, tears
// down the native library and releases the single-instance slot. It
// must be called on the creating thread. After Terminate any use of
// the EventLoop, its proxies, or surviving Window values panics.
func (el *EventLoop) Terminate() {
	el.mustOwnerThread("Terminate")

	el.mu.Lock()
	windows := make([]*Window, 0, len(el.windows))
	for _, w := range el.windows {
		windows = append(windows, w)
	}
	cursors := make([]*Cursor, 0, len(el.cursors))
	for c := range el.cursors {
		cursors = append(cursors, c)
	}
	el.mu.Unlock()

	// Outstanding handles go through the same path as explicit
	// destruction, including clearing any current-context slot.
	for _, w := range windows {
		w.Destroy()
	}
	for _, c := range cursors {
		c.Destroy()
	}

	// Proxies go dead before the native teardown, so a racing proxy
	// call faults instead of reaching a terminated library.
	el.alive.Store(false)
	el.logged("terminate", el.backend.Terminate)

	active.Lock()
	active.el = nil
	active.Unlock()
	runtime.UnlockOSThread()
}

// Proxy returns a cross-thread-safe handle for the operations the
// native library allows from any thread.
func (el *EventLoop) Proxy() *EventLoopProxy {
	return el.proxy
}

func (el *EventLoop) registerWindow(w *Window) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.windows[w.st.handle] = w
}

func (el *EventLoop) forgetWindow(h native.Window) {
	el.mu.Lock()
	defer el.mu.Unlock()
	delete(el.windows, h)
}

func (el *EventLoop) registerCursor(c *Cursor) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.cursors[c] = struct{}{}
}

func (el *EventLoop) forgetCursor(c *Cursor) {
	el.mu.Lock()
	defer el.mu.Unlock()
	delete(el.cursors, c)
}

// onNativeEvent is the backend's event sink. It runs on the owner
// thread, inside one of the pump calls.
func (el *EventLoop) onNativeEvent(raw native.Event) {
	if raw.Kind == native.EventMonitor {
		if raw.Connected {
			el.monitors.add(raw.Monitor)
		} else {
			el.monitors.remove(raw.Monitor)
		}
	}
	ev := translateEvent(raw)
	if ev == nil {
		return
	}
	el.pending.Add(TimedEvent{Time: el.backend.GetTime(), Event: ev})
}

func (el *EventLoop) drainEvents() []TimedEvent {
	if el.pending.Length() == 0 {
		return nil
	}
	out := make([]TimedEvent, 0, el.pending.Length())
	for el.pending.Length() > 0 {
		out = append(out, el.pending.Remove().(TimedEvent))
	}
	return out
}

// PollEvents processes pending native events and returns them. It
// must be called regularly or the OS will consider the application
// unresponsive.
func (el *EventLoop) PollEvents() []TimedEvent {
	el.mustOwnerThread("PollEvents")
	el.backend.PollEvents()
	return el.drainEvents()
}

// WaitEvents sleeps until at least one event is available, then
// behaves like PollEvents. PostEmptyEvent on a proxy wakes it up.
func (el *EventLoop) WaitEvents() []TimedEvent {
	el.mustOwnerThread("WaitEvents")
	el.backend.WaitEvents()
	return el.drainEvents()
}

// WaitEventsTimeout is WaitEvents with an upper bound on the sleep.
func (el *EventLoop) WaitEventsTimeout(timeout time.Duration) []TimedEvent {
	el.mustOwnerThread("WaitEventsTimeout")
	el.backend.WaitEventsTimeout(timeout.Seconds())
	return el.drainEvents()
}

// KeyName returns the layout-dependent name of a printable key, or ""
// for non-printable keys. If key is KeyUnknown the scancode is used.
func (el *EventLoop) KeyName(key Key, scancode int) string {
	el.mustOwnerThread("KeyName")
	var name string
	el.logged("key name", func() {
		name = el.backend.GetKeyName(int(key), scancode)
	})
	return name
}

// RawMouseMotionSupported reports whether raw (unscaled,
// unaccelerated) mouse motion is available. The answer does not change
// after initialization.
func (el *EventLoop) RawMouseMotionSupported() bool {
	el.mustOwnerThread("RawMouseMotionSupported")
	return el.backend.RawMouseMotionSupported()
}

// JoystickPresent reports whether the joystick is connected.
func (el *EventLoop) JoystickPresent(jid int) bool {
	el.mustOwnerThread("JoystickPresent")
	return el.backend.JoystickPresent(jid)
}

// JoystickName returns the joystick's name, or "" when absent.
func (el *EventLoop) JoystickName(jid int) string {
	el.mustOwnerThread("JoystickName")
	return el.backend.JoystickName(jid)
}

// JoystickGUID returns the joystick's SDL-compatible GUID, or "" when
// absent.
func (el *EventLoop) JoystickGUID(jid int) string {
	el.mustOwnerThread("JoystickGUID")
	return el.backend.JoystickGUID(jid)
}

// GamepadName returns the gamepad-mapping name for the joystick, or ""
// when absent or unmapped.
func (el *EventLoop) GamepadName(jid int) string {
	el.mustOwnerThread("GamepadName")
	return el.backend.GamepadName(jid)
}

// GamepadState returns the joystick's state remapped to an Xbox-like
// gamepad. ok is false when the joystick is absent or has no mapping.
func (el *EventLoop) GamepadState(jid int) (state GamepadState, ok bool) {
	el.mustOwnerThread("GamepadState")
	ns, ok := el.backend.GamepadState(jid)
	if !ok {
		return GamepadState{}, false
	}
	return GamepadState(ns), true
}

// UpdateGamepadMappings merges mappings in gamecontrollerdb.txt format
// into the internal list.
func (el *EventLoop) UpdateGamepadMappings(mappings string) error {
	el.mustOwnerThread("UpdateGamepadMappings")
	var ok bool
	err := el.checked(func() {
		ok = el.backend.UpdateGamepadMappings(mappings)
	})
	if err != nil {
		return fmt.Errorf("glfw: update gamepad mappings: %w", err)
	}
	if !ok {
		return fmt.Errorf("glfw: update gamepad mappings rejected")
	}
	return nil
}

// GamepadState is the state of a joystick remapped to an Xbox-like
// gamepad. Unavailable buttons and axes read false and 0.
type GamepadState struct {
	Buttons [15]bool
	Axes    [6]float32
}

func boolToNative(b bool) int {
	if b {
		return native.True
	}
	return native.False
}
