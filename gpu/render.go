// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Render holds the parameters of the render pass that draws
// a frame into a surface texture view.
type Render struct {

	// values for clearing image when starting render pass
	ClearColor wgpu.Color
}

// SetClearColor sets the clear color from RGBA components in [0, 1].
func (rp *Render) SetClearColor(c [4]float64) {
	rp.ClearColor = wgpu.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// ClearRenderPass returns a render pass descriptor that clears the framebuffer
func (rp *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: rp.ClearColor,
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass adds commands to the given command encoder
// to start the render pass on given view.
// Clears the frame first, according to the ClearColor.
func (rp *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rp.ClearRenderPass(view))
}
