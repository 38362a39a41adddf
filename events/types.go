// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of a window event.
// The type includes both the source of the event and
// its action (e.g., KeyDown and KeyUp are separate types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// WindowResize happens when the framebuffer of the window
	// changes size. The size may be zero while minimized.
	WindowResize

	// WindowPaint is a request to render a new frame.
	// At most one is pending at any time.
	WindowPaint

	// WindowClose happens when the user asks to close the window.
	WindowClose

	// KeyDown happens when a key is pressed, and again on each
	// OS-generated repeat while it is held (see [Key.Repeat]).
	KeyDown

	// KeyUp happens when a key is released.
	KeyUp

	typesN
)

var typesNames = [...]string{
	UnknownType:  "UnknownType",
	WindowResize: "WindowResize",
	WindowPaint:  "WindowPaint",
	WindowClose:  "WindowClose",
	KeyDown:      "KeyDown",
	KeyUp:        "KeyUp",
}

// String returns the name of the type.
func (tp Types) String() string {
	if tp >= 0 && tp < typesN {
		return typesNames[tp]
	}
	return "Types(" + strconv.Itoa(int(tp)) + ")"
}
