// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lyra opens a window and draws a colored quad with WebGPU,
// redrawing continuously until the window is closed or Escape is pressed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/lyra/app"
	"cogentcore.org/lyra/base/logx"
	"cogentcore.org/lyra/config"
	"cogentcore.org/lyra/gpu"
	"cogentcore.org/lyra/render"
	"cogentcore.org/lyra/system"
	"cogentcore.org/lyra/system/driver"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	file := flag.String("config", "", "TOML config `file` to load")
	title := flag.String("title", "", "window title")
	debug := flag.Bool("debug", false, "enable GPU debug logging")
	flag.Parse()

	if err := run(*file, *title, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "lyra:", err)
		os.Exit(1)
	}
}

func run(file, title string, debug bool) error {
	cfg := config.New()
	if file != "" {
		if err := config.Open(cfg, file, ".", "~/.config/lyra"); err != nil {
			return err
		}
	}
	if title != "" {
		cfg.Title = title
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logx.SetDefault(cfg.LogLevel); err != nil {
		return err
	}
	if debug {
		gpu.Debug = true
		logx.UserLevel.Set(slog.LevelDebug)
	}

	platform, err := driver.NewApp()
	if err != nil {
		return err
	}
	a := app.New("lyra", platform, func(w system.Window, cfg *config.Config) (app.Renderer, error) {
		r, err := render.New(w, cfg)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
	a.Config = cfg
	return a.Run()
}
