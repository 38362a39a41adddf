// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"

	"cogentcore.org/lyra/events"
	"cogentcore.org/lyra/events/key"
	"cogentcore.org/lyra/system"
)

// States are the states of an [App].
type States int32

const (
	// Uninitialized is the state before the window and render state
	// exist, and after they are released.
	Uninitialized States = iota

	// Running is the state while the window and render state exist.
	Running
)

func (st States) String() string {
	if st == Running {
		return "Running"
	}
	return "Uninitialized"
}

// stateHandler handles loop callbacks for one [States].
type stateHandler interface {
	state() States
	windowEvent(a *App, lp *Loop, ev events.Event)
	aboutToWait(a *App, lp *Loop)
}

// uninitialized has no render state: any event reaching it is fatal.
type uninitialized struct{}

func (uninitialized) state() States { return Uninitialized }

func (uninitialized) windowEvent(a *App, lp *Loop, ev events.Event) {
	lp.Fail(fmt.Errorf("%w: %v", ErrNotRunning, ev))
}

func (uninitialized) aboutToWait(a *App, lp *Loop) {
	lp.Fail(fmt.Errorf("%w: redraw requested", ErrNotRunning))
}

// running owns the window and its renderer.
type running struct {
	window   system.Window
	renderer Renderer
}

func (*running) state() States { return Running }

func (rs *running) windowEvent(a *App, lp *Loop, ev events.Event) {
	switch e := ev.(type) {
	case *events.Close:
		lp.Exit()
	case *events.Resize:
		rs.renderer.Resize(e.Size)
	case *events.Paint:
		if err := rs.renderer.Render(); err != nil {
			lp.Fail(err)
		}
	case *events.Key:
		a.keyEvent(lp, e)
	}
}

func (rs *running) aboutToWait(a *App, lp *Loop) {
	rs.window.RequestRedraw()
}

// keyEvent exits on Escape, and logs a diagnostic for Space presses.
// Space repeats are only counted when [config.Config.KeyRepeat] is set.
func (a *App) keyEvent(lp *Loop, e *events.Key) {
	if e.Type() != events.KeyDown {
		return
	}
	switch e.Code {
	case key.CodeEscape:
		lp.Exit()
	case key.CodeSpacebar:
		if e.IsPress() || a.Config.KeyRepeat {
			a.Logger.Info("space key pressed")
		}
	}
}
