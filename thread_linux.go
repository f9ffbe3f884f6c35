// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

package glfw

import "golang.org/x/sys/unix"

// currentThreadID identifies the calling OS thread. Callers that
// interact with contexts off the main thread are expected to have
// locked their goroutine with runtime.LockOSThread, as required for GL
// anyway.
func currentThreadID() uint64 {
	return uint64(unix.Gettid())
}
