// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers is a bitflag set of the modifier keys held during an event.
type Modifiers int64

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = 1 << iota

	// Meta is the system meta key (the "Command" key on macOS
	// and the "Windows" key on Windows).
	Meta

	// Alt is the "Alt" ("Option" on macOS) key.
	Alt

	// Shift is the "Shift" key.
	Shift
)

var modifiersNames = []struct {
	flag Modifiers
	name string
}{{Control, "Control"}, {Meta, "Meta"}, {Alt, "Alt"}, {Shift, "Shift"}}

// HasFlag returns whether the given flag is set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets or clears the given flags.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= fl
		} else {
			*m &^= fl
		}
	}
}

// String returns the set flags joined with "|", or "" if none are set.
func (m Modifiers) String() string {
	var nms []string
	for _, mn := range modifiersNames {
		if m.HasFlag(mn.flag) {
			nms = append(nms, mn.name)
		}
	}
	return strings.Join(nms, "|")
}
