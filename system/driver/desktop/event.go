// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"cogentcore.org/lyra/events"
	"cogentcore.org/lyra/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwMods converts glfw modifier bits to [key.Modifiers].
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	m.SetFlag(mod&glfw.ModShift != 0, key.Shift)
	m.SetFlag(mod&glfw.ModControl != 0, key.Control)
	m.SetFlag(mod&glfw.ModAlt != 0, key.Alt)
	m.SetFlag(mod&glfw.ModSuper != 0, key.Meta)
	return m
}

// GlfwAction returns the key event type for a glfw action,
// and whether it is an OS repeat.
func GlfwAction(action glfw.Action) (events.Types, bool) {
	switch action {
	case glfw.Release:
		return events.KeyUp, false
	case glfw.Repeat:
		return events.KeyDown, true
	}
	return events.KeyDown, false
}

// GlfwKeyCode returns the [key.Codes] for a glfw key,
// or [key.CodeUnknown] if it has none.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch {
	case kcode >= glfw.KeyA && kcode <= glfw.KeyZ:
		return key.CodeA + key.Codes(kcode-glfw.KeyA)
	case kcode >= glfw.Key1 && kcode <= glfw.Key9:
		return key.Code1 + key.Codes(kcode-glfw.Key1)
	case kcode >= glfw.KeyF1 && kcode <= glfw.KeyF12:
		return key.CodeF1 + key.Codes(kcode-glfw.KeyF1)
	}
	return glfwKeyCodes[kcode]
}

var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.Key0:            key.Code0,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyDelete:       key.CodeDelete,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}
