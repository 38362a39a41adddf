// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"sort"

	"cogentcore.org/lyra/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline is the base of a [GraphicsPipeline].
// It manages Shader program(s) that accomplish a specific
// type of rendering, and the entry points into them.
type Pipeline struct {
	// unique name of this pipeline
	Name string

	// Shaders contains actual shader code loaded for this pipeline.
	// A single shader can have multiple entry points: see Entries.
	Shaders map[string]*Shader

	// Entries contains the entry points into shader code,
	// which are what is actually called.
	Entries map[string]*ShaderEntry

	layout *wgpu.PipelineLayout
}

// AddShader adds the given Shader to the pipeline, returning
// the existing one if a shader of that name was already added.
func (pl *Pipeline) AddShader(sh *Shader) *Shader {
	if pl.Shaders == nil {
		pl.Shaders = make(map[string]*Shader)
	}
	if ex, has := pl.Shaders[sh.Name]; has {
		slog.Error("gpu.Pipeline AddShader: shader already exists", "shader", sh.Name, "pipeline", pl.Name)
		return ex
	}
	pl.Shaders[sh.Name] = sh
	return sh
}

// AddEntry adds ShaderEntry for given shader, [ShaderTypes], and entry function name.
// The shader is added to the pipeline if it is not already.
func (pl *Pipeline) AddEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	if pl.Entries == nil {
		pl.Entries = make(map[string]*ShaderEntry)
	}
	if _, has := pl.Shaders[sh.Name]; !has {
		pl.AddShader(sh)
	}
	name := sh.Name + ":" + entry
	if se, has := pl.Entries[name]; has {
		slog.Error("gpu.Pipeline AddEntry: entry already exists", "entry", name, "pipeline", pl.Name)
		return se
	}
	se := NewShaderEntry(sh, typ, entry)
	pl.Entries[name] = se
	return se
}

// EntryByType returns ShaderEntry by ShaderType.
// Returns nil if not found.
func (pl *Pipeline) EntryByType(typ ShaderTypes) *ShaderEntry {
	for _, se := range pl.Entries {
		if se.Type == typ {
			return se
		}
	}
	return nil
}

// Validate validates each shader against the entry points
// the pipeline uses from it.
func (pl *Pipeline) Validate() error {
	names := make([]string, 0, len(pl.Shaders))
	for nm := range pl.Shaders {
		names = append(names, nm)
	}
	sort.Strings(names)
	for _, nm := range names {
		sh := pl.Shaders[nm]
		var entries []string
		for _, se := range pl.Entries {
			if se.Shader == sh {
				entries = append(entries, se.Entry)
			}
		}
		sort.Strings(entries)
		if err := sh.Validate(entries...); err != nil {
			return err
		}
	}
	return nil
}

// compileShaders creates the modules of all shaders on dev.
func (pl *Pipeline) compileShaders(dev *Device) error {
	for _, sh := range pl.Shaders {
		if err := sh.Compile(dev); err != nil {
			return err
		}
	}
	return nil
}

// bindLayout makes the pipeline layout, which has no bind groups.
func (pl *Pipeline) bindLayout(dev *Device) error {
	rpl, err := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: pl.Name,
	})
	if errors.Log(err) != nil {
		return setupError("create pipeline layout", err)
	}
	pl.layout = rpl
	return nil
}

// releaseShaders releases the shaders and layout.
func (pl *Pipeline) releaseShaders() {
	for _, sh := range pl.Shaders {
		sh.Release()
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
}
