// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !windows

package glfw

import (
	"bytes"
	"runtime"
	"strconv"
)

// currentThreadID identifies the calling thread of execution. Without
// a cheap thread id syscall we fall back to the goroutine id, which is
// equivalent for goroutines locked to their OS thread — the only
// supported way to use contexts off the main thread.
func currentThreadID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// First line is "goroutine N [running]:".
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
