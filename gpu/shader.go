// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"

	"cogentcore.org/lyra/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
)

// ShaderTypes is a list of GPU shader types
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
	ComputeShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case ComputeShader:
		return "compute"
	}
	return "unknown"
}

// Shader manages a single WGSL shader program, which can have
// multiple entry points. See [ShaderEntry] for entry points
// into Shaders.
type Shader struct {
	// Name is the label of the shader module.
	Name string

	// Code is the WGSL source, with includes resolved.
	Code string

	module *wgpu.ShaderModule
}

// NewShader returns a new Shader with given name.
func NewShader(name string) *Shader {
	return &Shader{Name: name}
}

// OpenCode sets the WGSL code for the shader.
func (sh *Shader) OpenCode(code string) *Shader {
	sh.Code = code
	return sh
}

// OpenFileFS loads the WGSL code from the given filename in the
// given file system, processing #include statements relative to it.
func (sh *Shader) OpenFileFS(fsys fs.FS, fname string) error {
	b, err := fs.ReadFile(fsys, fname)
	if errors.Log(err) != nil {
		return err
	}
	sh.Code = IncludeFS(fsys, path.Dir(fname), string(b))
	return nil
}

// HasEntry returns true if the code defines a function
// with the given entry point name.
func (sh *Shader) HasEntry(entry string) bool {
	re := regexp.MustCompile(`\bfn\s+` + regexp.QuoteMeta(entry) + `\s*\(`)
	return re.MatchString(sh.Code)
}

// Validate checks that the code defines each of the given entry
// points and compiles it with naga, so errors in the source are
// reported with its line numbers before any device work.
func (sh *Shader) Validate(entries ...string) error {
	for _, e := range entries {
		if !sh.HasEntry(e) {
			return setupError("validate shader "+sh.Name, fmt.Errorf("%w: %q", ErrMissingEntry, e))
		}
	}
	if _, err := naga.Compile(sh.Code); err != nil {
		return setupError("validate shader "+sh.Name, err)
	}
	return nil
}

// Compile creates the shader module on the given device.
// Any existing module is released first.
func (sh *Shader) Compile(dev *Device) error {
	sh.Release()
	module, err := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: sh.Code,
		},
	})
	if errors.Log(err) != nil {
		return setupError("compile shader "+sh.Name, err)
	}
	sh.module = module
	return nil
}

// Release frees the shader module.
func (sh *Shader) Release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

// ShaderEntry is an entry point into a [Shader]. There can be multiple
// entry points per shader.
type ShaderEntry struct {

	// Shader has the code
	Shader *Shader

	// Type of shader entry point.
	Type ShaderTypes

	// Entry is the name of the function to call for this Entry.
	// Conventionally, it is some variant on "main"
	Entry string
}

// NewShaderEntry returns a new ShaderEntry with given settings
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}
