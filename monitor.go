// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"fmt"
	"image"
	"sync"

	"github.com/go-gfx/glfw/internal/native"
)

// monitorSet tracks which native monitor handles are currently
// connected. The native library frees a monitor's state the moment the
// disconnection callback returns, so every monitor query checks
// membership here first and a stale handle is never passed down.
type monitorSet struct {
	mu  sync.Mutex
	set map[native.Monitor]struct{}
}

func (s *monitorSet) replace(handles []native.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = make(map[native.Monitor]struct{}, len(handles))
	for _, h := range handles {
		s.set[h] = struct{}{}
	}
}

func (s *monitorSet) add(h native.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set[h] = struct{}{}
}

func (s *monitorSet) remove(h native.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.set, h)
}

func (s *monitorSet) contains(h native.Monitor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.set[h]
	return ok
}

// Monitor identifies a connected monitor. Monitors can disconnect at
// any time; a query on a disconnected monitor returns
// ErrMonitorDisconnected instead of touching freed native state.
// Monitor values are only valid with the EventLoop that produced them.
type Monitor struct {
	handle native.Monitor
	name   string
	el     *EventLoop
}

func (el *EventLoop) monitorFor(h native.Monitor) *Monitor {
	return &Monitor{handle: h, name: el.backend.GetMonitorName(h), el: el}
}

// Monitors returns the currently connected monitors, the primary
// first. The list is a snapshot; process events to observe connection
// changes.
func (el *EventLoop) Monitors() []*Monitor {
	el.mustOwnerThread("Monitors")
	handles := el.backend.Monitors()
	el.monitors.replace(handles)
	out := make([]*Monitor, 0, len(handles))
	for _, h := range handles {
		out = append(out, el.monitorFor(h))
	}
	return out
}

// PrimaryMonitor returns the monitor with the main desktop, or nil
// when no monitor is connected.
func (el *EventLoop) PrimaryMonitor() *Monitor {
	el.mustOwnerThread("PrimaryMonitor")
	h := el.backend.PrimaryMonitor()
	if h == 0 {
		return nil
	}
	return el.monitorFor(h)
}

// MonitorConnected reports whether m is still connected, as of the
// last event pump.
func (el *EventLoop) MonitorConnected(m *Monitor) bool {
	return el.monitors.contains(m.handle)
}

// Name returns the monitor's human-readable name, cached at
// enumeration time so it survives disconnection.
func (m *Monitor) Name() string { return m.name }

// check guards a query against disconnection.
func (m *Monitor) check(op string) error {
	m.el.mustOwnerThread(op)
	if !m.el.monitors.contains(m.handle) {
		return fmt.Errorf("glfw: %s %q: %w", op, m.name, ErrMonitorDisconnected)
	}
	return nil
}

// Pos returns the monitor's position on the virtual desktop in screen
// coordinates.
func (m *Monitor) Pos() (image.Point, error) {
	if err := m.check("monitor pos"); err != nil {
		return image.Point{}, err
	}
	x, y := m.el.backend.GetMonitorPos(m.handle)
	return image.Pt(x, y), nil
}

// Workarea returns the area of the monitor not occupied by global task
// bars or menu bars.
func (m *Monitor) Workarea() (image.Rectangle, error) {
	if err := m.check("monitor workarea"); err != nil {
		return image.Rectangle{}, err
	}
	x, y, w, h := m.el.backend.GetMonitorWorkarea(m.handle)
	return image.Rect(x, y, x+w, y+h), nil
}

// PhysicalSize returns the monitor's physical size in millimetres, as
// reported by the monitor itself.
func (m *Monitor) PhysicalSize() (widthMM, heightMM int, err error) {
	if err := m.check("monitor physical size"); err != nil {
		return 0, 0, err
	}
	widthMM, heightMM = m.el.backend.GetMonitorPhysicalSize(m.handle)
	return widthMM, heightMM, nil
}

// ContentScale returns the ratio between the monitor's current DPI and
// the platform's default DPI.
func (m *Monitor) ContentScale() (x, y float32, err error) {
	if err := m.check("monitor content scale"); err != nil {
		return 0, 0, err
	}
	x, y = m.el.backend.GetMonitorContentScale(m.handle)
	return x, y, nil
}

// VidMode describes a monitor video mode.
type VidMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

func vidModeFromNative(nm native.VidMode) VidMode {
	return VidMode{
		Width:       nm.Width,
		Height:      nm.Height,
		RedBits:     nm.RedBits,
		GreenBits:   nm.GreenBits,
		BlueBits:    nm.BlueBits,
		RefreshRate: nm.RefreshRate,
	}
}

// VideoMode returns the monitor's current video mode. For a monitor
// occupied by a fullscreen window this is that window's mode.
func (m *Monitor) VideoMode() (VidMode, error) {
	if err := m.check("video mode"); err != nil {
		return VidMode{}, err
	}
	nm, ok := m.el.backend.GetVideoMode(m.handle)
	if !ok {
		return VidMode{}, fmt.Errorf("glfw: video mode %q: %w", m.name, ErrMonitorDisconnected)
	}
	return vidModeFromNative(nm), nil
}

// VideoModes returns the monitor's supported video modes, sorted by
// the native library.
func (m *Monitor) VideoModes() ([]VidMode, error) {
	if err := m.check("video modes"); err != nil {
		return nil, err
	}
	nms := m.el.backend.GetVideoModes(m.handle)
	out := make([]VidMode, len(nms))
	for i, nm := range nms {
		out[i] = vidModeFromNative(nm)
	}
	return out, nil
}

// SetGamma generates a gamma ramp from the exponent and sets it.
func (m *Monitor) SetGamma(gamma float32) error {
	if err := m.check("set gamma"); err != nil {
		return err
	}
	if err := m.el.checked(func() { m.el.backend.SetGamma(m.handle, gamma) }); err != nil {
		return fmt.Errorf("glfw: set gamma: %w", err)
	}
	return nil
}
