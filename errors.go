// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-gfx/glfw/internal/native"
)

// ErrorCode identifies a native error. The values are the library's
// own error codes.
type ErrorCode int

const (
	NotInitialized       ErrorCode = native.NotInitialized
	NoCurrentContext     ErrorCode = native.NoCurrentContext
	InvalidEnum          ErrorCode = native.InvalidEnum
	InvalidValue         ErrorCode = native.InvalidValue
	OutOfMemory          ErrorCode = native.OutOfMemory
	APIUnavailable       ErrorCode = native.APIUnavailable
	VersionUnavailable   ErrorCode = native.VersionUnavailable
	PlatformError        ErrorCode = native.PlatformError
	FormatUnavailable    ErrorCode = native.FormatUnavailable
	NoWindowContext      ErrorCode = native.NoWindowContext
	CursorUnavailable    ErrorCode = native.CursorUnavailable
	FeatureUnavailable   ErrorCode = native.FeatureUnavailable
	FeatureUnimplemented ErrorCode = native.FeatureUnimplemented
	PlatformUnavailable  ErrorCode = native.PlatformUnavailable
)

func (c ErrorCode) String() string {
	switch c {
	case NotInitialized:
		return "NotInitialized"
	case NoCurrentContext:
		return "NoCurrentContext"
	case InvalidEnum:
		return "InvalidEnum"
	case InvalidValue:
		return "InvalidValue"
	case OutOfMemory:
		return "OutOfMemory"
	case APIUnavailable:
		return "APIUnavailable"
	case VersionUnavailable:
		return "VersionUnavailable"
	case PlatformError:
		return "PlatformError"
	case FormatUnavailable:
		return "FormatUnavailable"
	case NoWindowContext:
		return "NoWindowContext"
	case CursorUnavailable:
		return "CursorUnavailable"
	case FeatureUnavailable:
		return "FeatureUnavailable"
	case FeatureUnimplemented:
		return "FeatureUnimplemented"
	case PlatformUnavailable:
		return "PlatformUnavailable"
	default:
		return fmt.Sprintf("ErrorCode(%#x)", int(c))
	}
}

// Error is a recoverable native error drained from the library's error
// slot.
type Error struct {
	Code ErrorCode
	Desc string
}

func (e *Error) Error() string {
	return fmt.Sprintf("glfw: %s: %s", e.Code, e.Desc)
}

// ErrMonitorDisconnected is returned by monitor queries whose monitor
// is no longer connected. Re-enumerate with Monitors and retry.
var ErrMonitorDisconnected = errors.New("glfw: monitor disconnected")

// ErrorCallback receives every native error observed by the wrapper.
// The library has a single global callback slot.
type ErrorCallback func(code ErrorCode, desc string)

var errorCallback struct {
	sync.Mutex
	fn  ErrorCallback
	set bool
}

// SetErrorCallback installs cb as the error callback, replacing and
// returning the previous one. A nil cb restores the default callback,
// which logs errors through slog.
func SetErrorCallback(cb ErrorCallback) ErrorCallback {
	errorCallback.Lock()
	defer errorCallback.Unlock()
	prev := errorCallback.fn
	errorCallback.fn = cb
	errorCallback.set = cb != nil
	return prev
}

// errChannel funnels the native last-error slot and the error callback
// into one logical channel. Most wrapper operations route advisory
// errors through it instead of returning them.
type errChannel struct {
	backend native.Backend
	logger  *slog.Logger
}

// clear discards any stale error left in the slot by earlier calls on
// this sequence.
func (c errChannel) clear() {
	c.backend.GetError()
}

// fetch drains the error slot. A fresh error is handed to the
// registered callback, or logged when none is registered, and
// returned.
func (c errChannel) fetch() *Error {
	code, desc := c.backend.GetError()
	if code == native.NoError {
		return nil
	}
	err := &Error{Code: ErrorCode(code), Desc: desc}
	errorCallback.Lock()
	fn, set := errorCallback.fn, errorCallback.set
	errorCallback.Unlock()
	if set {
		fn(err.Code, err.Desc)
	} else {
		c.logger.Error("glfw error", "code", err.Code.String(), "desc", err.Desc)
	}
	return err
}

// checked clears the slot, runs f and returns any error f produced.
func (c errChannel) checked(f func()) error {
	c.clear()
	f()
	if err := c.fetch(); err != nil {
		return err
	}
	return nil
}

// logged is checked for call sites where the error is advisory: it is
// reported through the callback, or logged with the operation name,
// and dropped.
func (c errChannel) logged(op string, f func()) {
	c.clear()
	f()
	code, desc := c.backend.GetError()
	if code == native.NoError {
		return
	}
	errorCallback.Lock()
	fn, set := errorCallback.fn, errorCallback.set
	errorCallback.Unlock()
	if set {
		fn(ErrorCode(code), desc)
		return
	}
	c.logger.Error("glfw: "+op, "code", ErrorCode(code).String(), "desc", desc)
}
