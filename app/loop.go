// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/lyra/events"
	"cogentcore.org/lyra/system"
)

// Loop is the control handle of a running event loop,
// passed to each [Handler] callback.
type Loop struct {
	exiting bool
	err     error
}

// Exit stops the loop after the current callback. No further
// events are dispatched and AboutToWait is not called again.
func (lp *Loop) Exit() {
	lp.exiting = true
}

// Fail stops the loop like [Loop.Exit] and makes [RunLoop] return err.
// Only the first error is kept.
func (lp *Loop) Fail(err error) {
	if lp.err == nil {
		lp.err = err
	}
	lp.exiting = true
}

// Exiting returns true once Exit or Fail has been called.
func (lp *Loop) Exiting() bool {
	return lp.exiting
}

// Err returns the error passed to the first Fail call, or nil.
func (lp *Loop) Err() error {
	return lp.err
}

// Handler receives the callbacks of [RunLoop].
type Handler interface {

	// Resumed is called once when the loop starts, to create windows
	// and any state that depends on them.
	Resumed(lp *Loop)

	// WindowEvent is called for each event, in order of arrival.
	WindowEvent(lp *Loop, ev events.Event)

	// AboutToWait is called after all events of a poll cycle have been
	// dispatched, before waiting for more.
	AboutToWait(lp *Loop)

	// Exiting is called once when the loop stops, before the
	// platform is terminated.
	Exiting(lp *Loop)
}

// RunLoop runs the event loop of the platform on the calling thread
// until the handler calls [Loop.Exit] or [Loop.Fail], then terminates
// the platform. It returns the error passed to Fail, if any.
func RunLoop(platform system.App, h Handler) error {
	lp := &Loop{}
	h.Resumed(lp)
	evq := platform.Events()
	for !lp.exiting {
		platform.PollEvents()
		evq.Drain(func(ev events.Event) bool {
			h.WindowEvent(lp, ev)
			return !lp.exiting
		})
		if lp.exiting {
			break
		}
		h.AboutToWait(lp)
	}
	h.Exiting(lp)
	platform.Terminate()
	return lp.err
}
