// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package desktop implements [system.App] for desktop platforms
// using glfw.
package desktop

import (
	"log/slog"

	"cogentcore.org/lyra/base/errors"
	"cogentcore.org/lyra/events"
	"cogentcore.org/lyra/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App is the [system.App] for desktop platforms.
// IMPORTANT: all methods must be called on the main initial thread!
type App struct {
	events  events.Queue
	windows []*Window
}

// NewApp initializes glfw and returns a new [App].
func NewApp() (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	a := &App{}
	a.events.Init()
	return a, nil
}

// NewWindow creates a new glfw window with no client API,
// for drawing with WebGPU.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	sz := opts.GetSize()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glw, err := glfw.CreateWindow(sz.X, sz.Y, opts.GetTitle(), nil, nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	w := &Window{app: a, glw: glw, title: opts.GetTitle()}
	glw.SetFramebufferSizeCallback(w.fbSizeEvent)
	glw.SetCloseCallback(w.closeEvent)
	glw.SetKeyCallback(w.keyEvent)
	a.windows = append(a.windows, w)
	slog.Debug("desktop: window created", "title", w.title, "size", w.Size())
	return w, nil
}

func (a *App) Events() *events.Queue {
	return &a.events
}

func (a *App) PollEvents() {
	if a.redrawPending() {
		glfw.PollEvents()
	} else {
		glfw.WaitEvents()
	}
	for _, w := range a.windows {
		if w.redraw.CompareAndSwap(true, false) {
			a.events.Send(events.NewPaint())
		}
	}
}

func (a *App) redrawPending() bool {
	for _, w := range a.windows {
		if w.redraw.Load() {
			return true
		}
	}
	return false
}

func (a *App) Terminate() {
	for _, w := range a.windows {
		w.Close()
	}
	a.windows = nil
	glfw.Terminate()
}
