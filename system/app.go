// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the operating system interface used by
// the event loop: an [App] that creates windows and pumps their
// events into a queue, and the [Window] those events refer to.
package system

import (
	"image"

	"cogentcore.org/lyra/events"
)

// App represents the platform windowing system. All methods must be
// called on the main thread.
type App interface {

	// NewWindow returns a new Window. A nil opts is valid and
	// means to use the default option values.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// Events returns the queue that platform events are sent to.
	Events() *events.Queue

	// PollEvents processes pending platform events, sending them to
	// [App.Events], followed by at most one [events.Paint] if a redraw
	// has been requested since the last poll. It blocks until at least
	// one event is available when nothing is pending and no redraw has
	// been requested.
	PollEvents()

	// Terminate destroys all windows and releases the platform.
	Terminate()
}

// Window is a top-level, double-buffered platform window.
type Window interface {

	// Title returns the current title of the window.
	Title() string

	// Size returns the current size of the drawable framebuffer
	// in physical pixels.
	Size() image.Point

	// RequestRedraw schedules an [events.Paint] for the next
	// [App.PollEvents]. Repeated requests before then are coalesced.
	RequestRedraw()

	// IsClosed returns true once [Window.Close] has been called.
	IsClosed() bool

	// Close closes the window.
	Close()
}

// NewWindowOptions are optional arguments to [App.NewWindow].
type NewWindowOptions struct {

	// Title specifies the window title.
	Title string

	// Size specifies the initial size of the window in screen
	// coordinates. A zero dimension uses [DefaultWindowSize].
	Size image.Point
}

// DefaultWindowSize is the size used when [NewWindowOptions.Size] is zero.
var DefaultWindowSize = image.Point{800, 600}

// GetTitle returns the title, or "lyra" if it is empty.
func (o *NewWindowOptions) GetTitle() string {
	if o == nil || o.Title == "" {
		return "lyra"
	}
	return o.Title
}

// GetSize returns the size with defaults applied to zero dimensions.
func (o *NewWindowOptions) GetSize() image.Point {
	sz := DefaultWindowSize
	if o == nil {
		return sz
	}
	if o.Size.X > 0 {
		sz.X = o.Size.X
	}
	if o.Size.Y > 0 {
		sz.Y = o.Size.Y
	}
	return sz
}
