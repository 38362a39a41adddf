// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"testing"

	"github.com/gogpu/naga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredCompiles(t *testing.T) {
	code := NewColored().Code
	require.NotEmpty(t, code)
	spirv, err := naga.Compile(code)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(spirv), 4)

	// SPIR-V magic number, little-endian
	magic := uint32(spirv[0]) | uint32(spirv[1])<<8 | uint32(spirv[2])<<16 | uint32(spirv[3])<<24
	assert.Equal(t, uint32(0x07230203), magic)
}

func TestColoredEntries(t *testing.T) {
	sh := NewColored()
	assert.True(t, sh.HasEntry(VertexEntry))
	assert.True(t, sh.HasEntry(FragmentEntry))
	assert.NoError(t, sh.Validate(VertexEntry, FragmentEntry))
}

func TestColoredIncludesVertex(t *testing.T) {
	code := NewColored().Code
	assert.Contains(t, code, `// #include "vertex.wgsl"`)
	assert.NotContains(t, code, "\n#include")
	assert.Contains(t, code, "@location(0) position: vec3<f32>")
	assert.Contains(t, code, "@location(1) color: vec3<f32>")
}
