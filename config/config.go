// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for lyra,
// loaded from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"slices"

	"cogentcore.org/lyra/base/errors"
	"cogentcore.org/lyra/base/fsx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Backends are the accepted values of [Config.Backend].
var Backends = []string{"vulkan", "metal", "dx12", "gl", "primary"}

// Config is the main config struct that contains all of the
// configuration options for a lyra window.
type Config struct {

	// Title is the window title. Empty means the App name.
	Title string

	// Width is the initial window width in screen coordinates.
	Width int

	// Height is the initial window height in screen coordinates.
	Height int

	// Backend is the graphics API used to create the GPU instance.
	Backend string

	// VSync synchronizes presentation with the display refresh.
	// When off, the lowest latency supported present mode is used.
	VSync bool

	// ClearColor is the RGBA color the surface is cleared to each frame.
	ClearColor [4]float64

	// ValidateShaders compiles WGSL source with naga before
	// handing it to the device, for earlier error reporting.
	ValidateShaders bool

	// KeyRepeat makes key repeat events count as presses.
	KeyRepeat bool

	// LogLevel is the default logger level (debug, info, warn, error).
	// Empty uses the build default.
	LogLevel string
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets default values for all fields.
func (c *Config) Defaults() {
	c.Width = 800
	c.Height = 600
	c.Backend = "vulkan"
	c.ClearColor = [4]float64{0, 0, 0, 1}
	c.ValidateShaders = true
}

// Open reads the given TOML file into cfg, overwriting only the
// fields it sets. A leading ~ in file or in any of the paths is
// expanded to the home directory, and a relative file is looked up
// on paths (if any) before the current directory. Unknown keys are
// an error.
func Open(cfg *Config, file string, paths ...string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	if len(paths) > 0 {
		dirs := make([]string, 0, len(paths))
		for _, p := range paths {
			d, err := homedir.Expand(p)
			if err != nil {
				return err
			}
			dirs = append(dirs, d)
		}
		if fs := fsx.FindFilesOnPaths(dirs, fn); len(fs) > 0 {
			fn = fs[0]
		}
	}
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: %s: %w", fn, err)
	}
	return nil
}

// Validate returns an error describing every invalid field, or nil.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if !slices.Contains(Backends, c.Backend) {
		errs = append(errs, fmt.Errorf("config: unknown backend %q (want one of %v)", c.Backend, Backends))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("config: ClearColor[%d] = %g out of range [0,1]", i, v))
		}
	}
	return errors.Join(errs...)
}
