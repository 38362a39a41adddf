// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, "vulkan", c.Backend)
	assert.False(t, c.VSync)
	assert.True(t, c.ValidateShaders)
	assert.False(t, c.KeyRepeat)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, c.ClearColor)
	assert.NoError(t, c.Validate())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "lyra.toml", `
Title = "quad"
Width = 1024
VSync = true
ClearColor = [0.1, 0.2, 0.3, 1.0]
`)
	c := New()
	require.NoError(t, Open(c, fn))
	assert.Equal(t, "quad", c.Title)
	assert.Equal(t, 1024, c.Width)
	assert.Equal(t, 600, c.Height, "unset fields keep defaults")
	assert.True(t, c.VSync)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 1}, c.ClearColor)
}

func TestOpenPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lyra.toml", "Backend = \"gl\"\n")
	c := New()
	require.NoError(t, Open(c, "lyra.toml", t.TempDir(), dir))
	assert.Equal(t, "gl", c.Backend)
}

// setHome points the home directory at a new temp dir.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func TestOpenHome(t *testing.T) {
	home := setHome(t)
	writeFile(t, home, "lyra.toml", "Height = 480\n")
	c := New()
	require.NoError(t, Open(c, "~/lyra.toml"))
	assert.Equal(t, 480, c.Height)
}

func TestOpenHomePath(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".config", "lyra")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, dir, "lyra.toml", "Title = \"home\"\n")
	t.Chdir(t.TempDir())
	c := New()
	require.NoError(t, Open(c, "lyra.toml", ".", "~/.config/lyra"))
	assert.Equal(t, "home", c.Title)
}

func TestOpenUnknownKey(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "lyra.toml", "Fullscreen = true\n")
	err := Open(New(), fn)
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	err := Open(New(), filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	c := New()
	c.Width = 0
	c.Backend = "directx"
	c.ClearColor[2] = 1.5
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "unknown backend")
	assert.Contains(t, err.Error(), "ClearColor[2]")
}
