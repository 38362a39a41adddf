// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/lyra/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Geometry holds an immutable vertex buffer and a uint16 index
// buffer on the device, drawn as one indexed draw call.
type Geometry struct {
	// Name is the label prefix of the buffers.
	Name string

	// NVertices is the number of vertices in the vertex buffer.
	NVertices int

	// NIndices is the number of indices drawn.
	NIndices int

	vertices *wgpu.Buffer
	indices  *wgpu.Buffer
}

// CheckIndices returns [ErrIndexRange] if any index does not
// refer to one of nVertices vertices.
func CheckIndices(indices []uint16, nVertices int) error {
	for i, ix := range indices {
		if int(ix) >= nVertices {
			return fmt.Errorf("%w: index %d = %d, %d vertices", ErrIndexRange, i, ix, nVertices)
		}
	}
	return nil
}

// NewGeometry uploads the given vertices and indices into new
// buffers on the device. V must be a fixed-size struct matching the
// vertex layout of the pipeline it is drawn with.
func NewGeometry[V any](dev *Device, name string, vertices []V, indices []uint16) (*Geometry, error) {
	if err := CheckIndices(indices, len(vertices)); err != nil {
		return nil, setupError("geometry "+name, err)
	}
	g := &Geometry{Name: name, NVertices: len(vertices), NIndices: len(indices)}
	vb, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name + " vertices",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if errors.Log(err) != nil {
		return nil, setupError("geometry "+name, err)
	}
	g.vertices = vb
	ib, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name + " indices",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if errors.Log(err) != nil {
		g.Release()
		return nil, setupError("geometry "+name, err)
	}
	g.indices = ib
	return g, nil
}

// Bind binds the vertex buffer to slot 0 and the index buffer,
// for the next DrawIndexed call.
func (g *Geometry) Bind(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, g.vertices, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(g.indices, Uint16.IndexType(), 0, wgpu.WholeSize)
}

// Draw draws all indices as one instance.
func (g *Geometry) Draw(rp *wgpu.RenderPassEncoder) {
	rp.DrawIndexed(uint32(g.NIndices), 1, 0, 0, 0)
}

// BindDraw binds the buffers and draws.
func (g *Geometry) BindDraw(rp *wgpu.RenderPassEncoder) {
	g.Bind(rp)
	g.Draw(rp)
}

func (g *Geometry) Release() {
	if g.vertices != nil {
		g.vertices.Release()
		g.vertices = nil
	}
	if g.indices != nil {
		g.indices.Release()
		g.indices = nil
	}
}
