// SPDX-License-Identifier: Unlicense OR MIT

/*
Package glfw wraps a native windowing, input and OpenGL context
library behind an API whose misuse is caught instead of undefined.

The native library is single-initialization, callback-driven and
riddled with thread affinity rules: most calls belong on the thread
that initialized it, contexts are bound per-thread, and handles dangle
the moment the object behind them is destroyed. The wrapper makes those
rules explicit in the type system.

An EventLoop owns the library. NewEventLoop locks the calling goroutine
to its OS thread and every EventLoop and Window method must run there.
The small set of operations the native library permits from other
threads is split off onto EventLoopProxy and WindowProxy values, which
are safe to hand to other goroutines:

	el, err := glfw.NewEventLoop()
	if err != nil {
		log.Fatal(err)
	}
	defer el.Terminate()

	w, err := el.NewWindow(glfw.Title("demo"), glfw.Size(800, 600))
	if err != nil {
		log.Fatal(err)
	}

	wp := w.Proxy()
	go func() {
		runtime.LockOSThread()
		if err := wp.MakeCurrent(); err != nil {
			return
		}
		for wp.IsAlive() && !wp.ShouldClose() {
			// render
			wp.SwapBuffers()
		}
	}()

	for !w.ShouldClose() {
		for range el.WaitEvents() {
		}
	}

Lifetime rules are enforced at the wrapper boundary. Using a Window
after Destroy, or an EventLoop after Terminate, panics; those are
program bugs, not runtime conditions. The one exception is IsAlive,
which proxies may always call to learn whether their object still
exists. Recoverable conditions, such as a monitor disconnecting
between enumeration and use, are ordinary returned errors;
ErrMonitorDisconnected identifies that case.

A context current on one thread cannot be made current on, or
destroyed from, another; the attempt panics rather than racing the
native library. Detach it first with DetachCurrent.

Advisory native errors that have no good return path are routed to the
callback installed with SetErrorCallback, or logged with log/slog when
none is set.
*/
package glfw
