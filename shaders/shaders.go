// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders embeds the WGSL shaders used by lyra.
package shaders

import (
	"embed"

	"cogentcore.org/lyra/base/errors"
	"cogentcore.org/lyra/gpu"
)

// Files has the WGSL shader sources. colored.wgsl reads a position
// at location 0 and a color at location 1 (see mesh.Layout) and
// outputs the interpolated color with alpha 1. vertex.wgsl has the
// structs it shares with other shaders.
//
//go:embed *.wgsl
var Files embed.FS

// Entry points of the colored shader.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// NewColored returns a new [gpu.Shader] with the colored.wgsl
// code, includes expanded.
func NewColored() *gpu.Shader {
	sh := gpu.NewShader("colored")
	errors.Log(sh.OpenFileFS(Files, "colored.wgsl"))
	return sh
}
