// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package driver selects the [system.App] implementation for
// the current platform.
package driver

import (
	"cogentcore.org/lyra/system"
	"cogentcore.org/lyra/system/driver/desktop"
)

// NewApp returns the platform app, initializing the windowing system.
// It must be called on the main thread.
func NewApp() (system.App, error) {
	a, err := desktop.NewApp()
	if err != nil {
		return nil, err
	}
	return a, nil
}
