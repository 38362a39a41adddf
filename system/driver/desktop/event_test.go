// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"testing"

	"cogentcore.org/lyra/events"
	"cogentcore.org/lyra/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeA, GlfwKeyCode(glfw.KeyA))
	assert.Equal(t, key.CodeQ, GlfwKeyCode(glfw.KeyQ))
	assert.Equal(t, key.Code9, GlfwKeyCode(glfw.Key9))
	assert.Equal(t, key.Code0, GlfwKeyCode(glfw.Key0))
	assert.Equal(t, key.CodeF12, GlfwKeyCode(glfw.KeyF12))
	assert.Equal(t, key.CodeEscape, GlfwKeyCode(glfw.KeyEscape))
	assert.Equal(t, key.CodeSpacebar, GlfwKeyCode(glfw.KeySpace))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyPrintScreen))
}

func TestGlfwAction(t *testing.T) {
	typ, rep := GlfwAction(glfw.Press)
	assert.Equal(t, events.KeyDown, typ)
	assert.False(t, rep)
	typ, rep = GlfwAction(glfw.Repeat)
	assert.Equal(t, events.KeyDown, typ)
	assert.True(t, rep)
	typ, _ = GlfwAction(glfw.Release)
	assert.Equal(t, events.KeyUp, typ)
}

func TestGlfwMods(t *testing.T) {
	m := GlfwMods(glfw.ModShift | glfw.ModSuper)
	assert.True(t, m.HasFlag(key.Shift))
	assert.True(t, m.HasFlag(key.Meta))
	assert.False(t, m.HasFlag(key.Control))
}
