// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/lyra/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	ly := Layout()
	assert.EqualValues(t, 24, ly.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, ly.StepMode)
	require.Len(t, ly.Attributes, 2)
	assert.EqualValues(t, 0, ly.Attributes[0].Offset)
	assert.EqualValues(t, 0, ly.Attributes[0].ShaderLocation)
	assert.EqualValues(t, 12, ly.Attributes[1].Offset)
	assert.EqualValues(t, 1, ly.Attributes[1].ShaderLocation)
	for _, at := range ly.Attributes {
		assert.Equal(t, wgpu.VertexFormatFloat32x3, at.Format)
	}
	assert.Len(t, wgpu.ToBytes(Quad), 4*24)
}

func TestQuad(t *testing.T) {
	require.Len(t, Quad, 4)
	require.Len(t, QuadIndices, 6)
	assert.NoError(t, gpu.CheckIndices(QuadIndices, len(Quad)))

	assert.Equal(t, [3]float32{1, 0, 0}, Quad[0].Color)
	assert.Equal(t, [3]float32{0, 0, 1}, Quad[1].Color)
	assert.Equal(t, [3]float32{1, 0, 0}, Quad[2].Color)
	assert.Equal(t, [3]float32{0, 1, 0}, Quad[3].Color)
	for _, v := range Quad {
		assert.Equal(t, float32(0), v.Position[2])
	}
}

func TestQuadtriangles(t *testing.T) {
	tris := triangles(Quad, QuadIndices)
	require.Len(t, tris, 2, "index count / 3 triangles")
	for i, tri := range tris {
		assert.Greater(t, area2(tri), float32(0), "triangle %d is counter-clockwise", i)
	}
	// both triangles use the B-C diagonal
	assert.Equal(t, Quad[1], tris[0][1])
	assert.Equal(t, Quad[2], tris[0][2])
	assert.Equal(t, Quad[2], tris[1][1])
	assert.Equal(t, Quad[1], tris[1][2])
}

func TestTrianglesPartial(t *testing.T) {
	assert.Len(t, triangles(Quad, []uint16{0, 1, 2, 3}), 1)
	assert.Empty(t, triangles(Quad, nil))
}

// triangles returns the vertices of each triangle listed by indices,
// three per triangle. Trailing indices that do not make a full
// triangle are ignored.
func triangles(vertices []Vertex, indices []uint16) [][3]Vertex {
	tris := make([][3]Vertex, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		tris = append(tris, [3]Vertex{vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]})
	}
	return tris
}

// area2 returns twice the signed area of the triangle in the xy plane,
// which is positive for counter-clockwise winding.
func area2(tri [3]Vertex) float32 {
	a, b, c := tri[0].Position, tri[1].Position, tri[2].Position
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
