// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"sync/atomic"
)

// EventLoopProxy exposes the operations the native library allows from
// any thread. Proxies share the EventLoop's liveness flag: they become
// inert rather than dangling when the loop terminates, and IsAlive is
// the one method that stays callable afterwards.
type EventLoopProxy struct {
	errChannel
	alive *atomic.Bool
}

// IsAlive reports whether the EventLoop is still live. Unlike every
// other proxy method it never panics.
func (p *EventLoopProxy) IsAlive() bool {
	return p.alive.Load()
}

func (p *EventLoopProxy) mustAlive(op string) {
	if !p.alive.Load() {
		panic("glfw: " + op + " on a terminated EventLoop")
	}
}

// PostEmptyEvent wakes up a thread blocked in WaitEvents or
// WaitEventsTimeout without delivering an event.
func (p *EventLoopProxy) PostEmptyEvent() {
	p.mustAlive("PostEmptyEvent")
	p.logged("post empty event", p.backend.PostEmptyEvent)
}

// Time returns the value of the monotonic timer in seconds since
// initialization, or since the last SetTime.
func (p *EventLoopProxy) Time() float64 {
	p.mustAlive("Time")
	return p.backend.GetTime()
}

// SetTime rewinds or advances the timer. t must be a finite,
// non-negative number of seconds.
func (p *EventLoopProxy) SetTime(t float64) error {
	p.mustAlive("SetTime")
	return p.checked(func() { p.backend.SetTime(t) })
}

// Platform returns the platform backend the library selected.
func (p *EventLoopProxy) Platform() Platform {
	p.mustAlive("Platform")
	return Platform(p.backend.Platform())
}

// CurrentContext returns the window whose context is current on the
// calling thread, or nil.
func (p *EventLoopProxy) CurrentContext() *WindowProxy {
	p.mustAlive("CurrentContext")
	st := contexts.current(currentThreadID())
	if st == nil {
		return nil
	}
	return &WindowProxy{errChannel: p.errChannel, st: st}
}

// DetachCurrentContext releases whatever context is current on the
// calling thread. It is a no-op when none is.
func (p *EventLoopProxy) DetachCurrentContext() {
	p.mustAlive("DetachCurrentContext")
	detachCurrent(p.errChannel)
}
