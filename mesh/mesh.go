// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh defines the colored vertex format and the fixed
// quad geometry drawn by lyra.
package mesh

import (
	"unsafe"

	"cogentcore.org/lyra/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is a position in normalized device coordinates with an
// RGB color. Its memory layout is the vertex buffer layout returned
// by [Layout]: 24 bytes, position at offset 0, color at offset 12.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// Layout returns the vertex buffer layout of [Vertex]:
// position at shader location 0 and color at location 1,
// both three float32, advancing per vertex.
func Layout() wgpu.VertexBufferLayout {
	var v Vertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(v)),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         gpu.Float32Vector3.VertexFormat(),
				Offset:         uint64(unsafe.Offsetof(v.Position)),
				ShaderLocation: 0,
			},
			{
				Format:         gpu.Float32Vector3.VertexFormat(),
				Offset:         uint64(unsafe.Offsetof(v.Color)),
				ShaderLocation: 1,
			},
		},
	}
}

var (
	red   = [3]float32{1, 0, 0}
	green = [3]float32{0, 1, 0}
	blue  = [3]float32{0, 0, 1}
)

// Quad is the fixed vertex list: the corners of a square centered
// on the origin, A top right, B top left, C bottom right and
// D bottom left.
var Quad = []Vertex{
	{Position: [3]float32{0.5, 0.5, 0}, Color: red},
	{Position: [3]float32{-0.5, 0.5, 0}, Color: blue},
	{Position: [3]float32{0.5, -0.5, 0}, Color: red},
	{Position: [3]float32{-0.5, -0.5, 0}, Color: green},
}

// QuadIndices are the two counter-clockwise triangles ABC and DCB
// covering [Quad]. They share the B-C diagonal.
var QuadIndices = []uint16{0, 1, 2, 3, 2, 1}
