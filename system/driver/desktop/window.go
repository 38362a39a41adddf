// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"image"
	"sync/atomic"

	"cogentcore.org/lyra/events"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the glfw implementation of [system.Window].
type Window struct {
	app    *App
	glw    *glfw.Window
	title  string
	redraw atomic.Bool
	closed bool
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) Size() image.Point {
	if w.closed {
		return image.Point{}
	}
	x, y := w.glw.GetFramebufferSize()
	return image.Point{x, y}
}

func (w *Window) RequestRedraw() {
	w.redraw.Store(true)
}

func (w *Window) IsClosed() bool {
	return w.closed
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.glw.Destroy()
}

// SurfaceDescriptor returns the descriptor for creating a WebGPU
// surface that presents to this window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.glw)
}

func (w *Window) fbSizeEvent(gw *glfw.Window, width, height int) {
	w.app.events.Send(events.NewResize(image.Point{width, height}))
}

func (w *Window) closeEvent(gw *glfw.Window) {
	gw.SetShouldClose(false)
	w.app.events.Send(events.NewClose())
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ, repeat := GlfwAction(action)
	w.app.events.Send(events.NewKey(typ, GlfwKeyCode(ky), GlfwMods(mod), repeat))
}
