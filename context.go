// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"fmt"
	"sync"
)

// contexts is the process-wide map from OS thread to the window whose
// OpenGL context is current there. The native library keeps this state
// in thread-local storage where the wrapper cannot see it, so every
// transition is mirrored here, serialized under one lock.
//
// Lock order: contexts.mu before any windowState.mu.
type contextTracker struct {
	// slots and the per-window currentThread fields are only written
	// while holding the tracker lock.
	slots map[uint64]*windowState
}

var contexts = struct {
	sync.Mutex
	contextTracker
}{contextTracker: contextTracker{slots: map[uint64]*windowState{}}}

// current returns the window current on tid, or nil.
func (t *contextTracker) current(tid uint64) *windowState {
	contexts.Lock()
	defer contexts.Unlock()
	return t.slots[tid]
}

// makeCurrent binds st's context to the calling thread.
//
// A context current on one thread cannot be taken over by another: the
// native library's behavior for that transition is undefined, so the
// attempt panics instead of racing. The same window becoming current
// again on its own thread is a no-op.
func makeCurrent(st *windowState, ch errChannel) {
	tid := currentThreadID()
	contexts.Lock()
	defer contexts.Unlock()

	st.mu.Lock()
	if !st.alive {
		st.mu.Unlock()
		panic("glfw: MakeCurrent on a destroyed window")
	}
	if st.currentThread != 0 && st.currentThread != tid {
		owner := st.currentThread
		st.mu.Unlock()
		panic(fmt.Sprintf("glfw: context is current on thread %d; detach it there before using it on thread %d", owner, tid))
	}
	st.mu.Unlock()

	if prev := contexts.slots[tid]; prev != nil && prev != st {
		prev.mu.Lock()
		prev.currentThread = 0
		prev.mu.Unlock()
	}
	ch.logged("make context current", func() {
		ch.backend.MakeContextCurrent(st.handle)
	})
	st.mu.Lock()
	st.currentThread = tid
	st.mu.Unlock()
	contexts.slots[tid] = st
}

// detachCurrent releases whatever context is current on the calling
// thread. No-op when none is.
func detachCurrent(ch errChannel) {
	tid := currentThreadID()
	contexts.Lock()
	defer contexts.Unlock()

	st := contexts.slots[tid]
	if st == nil {
		return
	}
	ch.logged("detach context", func() {
		ch.backend.MakeContextCurrent(0)
	})
	st.mu.Lock()
	st.currentThread = 0
	st.mu.Unlock()
	delete(contexts.slots, tid)
}

// destroyState clears st's context slot, flags st dead and frees the
// native handle, all inside the tracker lock. A concurrent makeCurrent
// holds that lock for its whole transition, so it can never bind the
// context between the slot check and the free.
//
// Destroying a window whose context is current on some other thread is
// unsound and panics; current on the destroying thread it is detached
// first, matching native behavior.
func destroyState(st *windowState, ch errChannel) {
	tid := currentThreadID()
	contexts.Lock()
	defer contexts.Unlock()

	st.mu.Lock()
	owner := st.currentThread
	st.mu.Unlock()
	switch owner {
	case 0:
	case tid:
		ch.logged("detach context", func() {
			ch.backend.MakeContextCurrent(0)
		})
		st.mu.Lock()
		st.currentThread = 0
		st.mu.Unlock()
		delete(contexts.slots, tid)
	default:
		panic(fmt.Sprintf("glfw: destroying a window whose context is current on thread %d", owner))
	}

	// Flagging dead and freeing the handle stay under both locks, so
	// proxy dispatch on another thread either completes before the
	// free or panics on the dead flag.
	st.mu.Lock()
	st.alive = false
	ch.logged("destroy window", func() {
		ch.backend.DestroyWindow(st.handle)
	})
	st.mu.Unlock()
}
