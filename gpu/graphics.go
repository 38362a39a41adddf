// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/lyra/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline is a Pipeline for drawing vertex geometry into a
// single color target. There must be a vertex and a fragment entry.
type GraphicsPipeline struct {
	Pipeline

	// Primitive has various settings for graphics primitives,
	// e.g., TriangleList
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	// Blend is the color blending of the target: nil or
	// [wgpu.BlendStateReplace] overwrite the target color.
	Blend *wgpu.BlendState

	// WriteMask selects the color channels written.
	WriteMask wgpu.ColorWriteMask

	// TargetFormat is the format of the color target. If set before
	// [GraphicsPipeline.Config], it must equal the surface format.
	TargetFormat wgpu.TextureFormat

	// VertexBuffers is the layout of each vertex buffer slot.
	VertexBuffers []wgpu.VertexBufferLayout

	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline with
// default settings (see [GraphicsPipeline.SetGraphicsDefaults]).
func NewGraphicsPipeline(name string) *GraphicsPipeline {
	pl := &GraphicsPipeline{}
	pl.Name = name
	pl.SetGraphicsDefaults()
	return pl
}

// VertexEntry returns the [ShaderEntry] for [VertexShader].
// Can be nil if no vertex shader defined.
func (pl *GraphicsPipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for [FragmentShader].
// Can be nil if no fragment shader defined.
func (pl *GraphicsPipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// Descriptor returns the render pipeline descriptor for the current
// settings, using the compiled shader modules (nil if not compiled).
func (pl *GraphicsPipeline) Descriptor() (*wgpu.RenderPipelineDescriptor, error) {
	ve := pl.VertexEntry()
	if ve == nil {
		return nil, setupError("pipeline "+pl.Name, fmt.Errorf("%w: no vertex entry", ErrMissingEntry))
	}
	fe := pl.FragmentEntry()
	if fe == nil {
		return nil, setupError("pipeline "+pl.Name, fmt.Errorf("%w: no fragment entry", ErrMissingEntry))
	}
	blend := pl.Blend
	if blend == nil {
		b := wgpu.BlendStateReplace
		blend = &b
	}
	return &wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     ve.Shader.module,
			EntryPoint: ve.Entry,
			Buffers:    pl.VertexBuffers,
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Fragment: &wgpu.FragmentState{
			Module:     fe.Shader.module,
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.TargetFormat,
				Blend:     blend,
				WriteMask: pl.WriteMask,
			}},
		},
	}, nil
}

// Config builds the render pipeline on the given device, targeting the
// given surface format. It returns [ErrFormatMismatch] without any device
// work if [GraphicsPipeline.TargetFormat] was set to a different format.
// Config is a no-op once the pipeline is built.
func (pl *GraphicsPipeline) Config(dev *Device, surfaceFormat wgpu.TextureFormat) error {
	if pl.renderPipeline != nil {
		return nil
	}
	if err := pl.checkTarget(surfaceFormat); err != nil {
		return err
	}
	if err := pl.compileShaders(dev); err != nil {
		return err
	}
	if err := pl.bindLayout(dev); err != nil {
		return err
	}
	pd, err := pl.Descriptor()
	if err != nil {
		return err
	}
	rp, err := dev.Device.CreateRenderPipeline(pd)
	if err != nil {
		slog.Error(err.Error())
		return setupError("create render pipeline "+pl.Name, err)
	}
	pl.renderPipeline = rp
	return nil
}

func (pl *GraphicsPipeline) checkTarget(surfaceFormat wgpu.TextureFormat) error {
	if pl.TargetFormat == wgpu.TextureFormatUndefined {
		pl.TargetFormat = surfaceFormat
		return nil
	}
	if pl.TargetFormat != surfaceFormat {
		return setupError("pipeline "+pl.Name, fmt.Errorf("%w: target %s, surface %s", ErrFormatMismatch, FormatName(pl.TargetFormat), FormatName(surfaceFormat)))
	}
	return nil
}

// Bind sets this pipeline as the one to use for next commands in
// the given render pass.
func (pl *GraphicsPipeline) Bind(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		return errors.Log(setupError("bind pipeline "+pl.Name, fmt.Errorf("pipeline not configured")))
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

func (pl *GraphicsPipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	pl.releaseShaders()
}

//////////////////////////////////////////////////////////////
// Set graphics options

// SetGraphicsDefaults configures all the default settings for a
// graphics rendering pipeline: triangle lists with counter-clockwise
// front faces, back faces culled, one sample, no blending, and all
// color channels written.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(TriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetAlphaBlend(false)
	pl.SetMultisample(1)
	pl.WriteMask = wgpu.ColorWriteMaskAll
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *GraphicsPipeline) SetTopology(topo Topologies) *GraphicsPipeline {
	pl.Primitive.Topology = topo.Primitive()
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// SetAlphaBlend determines the color blending function:
// either 1-source alpha (alphaBlend) or no blending:
// new color overwrites old.
func (pl *GraphicsPipeline) SetAlphaBlend(alphaBlend bool) *GraphicsPipeline {
	b := wgpu.BlendStateReplace
	if alphaBlend {
		b = wgpu.BlendStatePremultipliedAlphaBlending
	}
	pl.Blend = &b
	return pl
}

// SetVertexBuffers sets the layout of the vertex buffer slots.
func (pl *GraphicsPipeline) SetVertexBuffers(layouts ...wgpu.VertexBufferLayout) *GraphicsPipeline {
	pl.VertexBuffers = layouts
	return pl
}

// Topologies are the different vertex topology
type Topologies int32

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

func (tp Topologies) Primitive() wgpu.PrimitiveTopology {
	return WebGPUTopologies[tp]
}

var WebGPUTopologies = map[Topologies]wgpu.PrimitiveTopology{
	PointList:     wgpu.PrimitiveTopologyPointList,
	LineList:      wgpu.PrimitiveTopologyLineList,
	LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}
