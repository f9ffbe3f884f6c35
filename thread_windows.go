// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import "golang.org/x/sys/windows"

// currentThreadID identifies the calling OS thread.
func currentThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
