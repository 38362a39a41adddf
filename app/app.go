// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app drives a single-window application: it creates the
// window and its render state when the event loop starts, and
// dispatches window and keyboard events to them until the window
// is closed or Escape is pressed.
package app

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/lyra/base/errors"
	"cogentcore.org/lyra/config"
	"cogentcore.org/lyra/events"
	"cogentcore.org/lyra/system"
)

// ErrNotRunning is returned when a window event or redraw reaches the
// app before its window and render state exist.
var ErrNotRunning = errors.New("app: event dispatched while uninitialized")

// Renderer is the render state of a window.
type Renderer interface {

	// Resize updates the render target for a new framebuffer size.
	Resize(size image.Point)

	// Render draws and presents one frame. Any error is fatal.
	Render() error

	// Release frees all render resources.
	Release()
}

// RendererFunc creates the [Renderer] for a window.
type RendererFunc func(w system.Window, cfg *config.Config) (Renderer, error)

// App is a single-window application.
type App struct {
	// Name is the application name, used as the window
	// title unless [config.Config.Title] is set.
	Name string

	// Config has the window and rendering options.
	Config *config.Config

	// Platform is the windowing system.
	Platform system.App

	// NewRenderer creates the render state of the window.
	NewRenderer RendererFunc

	// Logger receives the diagnostics of the app.
	Logger *slog.Logger

	state stateHandler
}

// New returns a new App with default config, logging to the default logger.
func New(name string, platform system.App, rf RendererFunc) *App {
	return &App{
		Name:        name,
		Config:      config.New(),
		Platform:    platform,
		NewRenderer: rf,
		Logger:      slog.Default(),
		state:       uninitialized{},
	}
}

// State returns the current state of the app.
func (a *App) State() States {
	return a.handler().state()
}

// handler returns the handler of the current state. The zero App
// is Uninitialized.
func (a *App) handler() stateHandler {
	if a.state == nil {
		a.state = uninitialized{}
	}
	return a.state
}

// Title returns the window title.
func (a *App) Title() string {
	if a.Config.Title != "" {
		return a.Config.Title
	}
	return a.Name
}

// Run runs the event loop until the window is closed, returning
// the error that stopped it, if any. It must be called on the
// main thread.
func (a *App) Run() error {
	return RunLoop(a.Platform, a)
}

// Resumed creates the window and its render state, and requests
// the first frame.
func (a *App) Resumed(lp *Loop) {
	if a.State() == Running {
		return
	}
	if a.Platform == nil || a.NewRenderer == nil {
		lp.Fail(fmt.Errorf("%w: no platform or renderer", ErrNotRunning))
		return
	}
	if a.Config == nil {
		a.Config = config.New()
	}
	if a.Logger == nil {
		a.Logger = slog.Default()
	}
	w, err := a.Platform.NewWindow(&system.NewWindowOptions{
		Title: a.Title(),
		Size:  image.Point{a.Config.Width, a.Config.Height},
	})
	if err != nil {
		lp.Fail(err)
		return
	}
	r, err := a.NewRenderer(w, a.Config)
	if err != nil {
		w.Close()
		lp.Fail(err)
		return
	}
	a.state = &running{window: w, renderer: r}
	w.RequestRedraw()
}

func (a *App) WindowEvent(lp *Loop, ev events.Event) {
	a.handler().windowEvent(a, lp, ev)
}

// AboutToWait requests the next frame, so that frames are drawn
// continuously.
func (a *App) AboutToWait(lp *Loop) {
	a.handler().aboutToWait(a, lp)
}

// Exiting releases the render state and closes the window.
func (a *App) Exiting(lp *Loop) {
	rs, ok := a.state.(*running)
	if !ok {
		return
	}
	rs.renderer.Release()
	rs.window.Close()
	a.state = uninitialized{}
}
