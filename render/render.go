// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render holds the long-lived render state of a window:
// the GPU objects created once at startup, and the operations
// the event loop performs on them (resize, render, release).
package render

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/lyra/base/errors"
	"cogentcore.org/lyra/config"
	"cogentcore.org/lyra/gpu"
	"cogentcore.org/lyra/mesh"
	"cogentcore.org/lyra/shaders"
	"cogentcore.org/lyra/system"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceWindow is a window that a WebGPU surface can present to.
type SurfaceWindow interface {
	system.Window

	// SurfaceDescriptor returns the platform descriptor of the window surface.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Renderer owns every GPU object needed to draw the colored quad
// into a window: the surface, device and queue, pipeline, and
// vertex and index buffers.
type Renderer struct {
	GPU      *gpu.GPU
	Device   *gpu.Device
	Surface  *gpu.Surface
	Pipeline *gpu.GraphicsPipeline
	Geometry *gpu.Geometry
	Frame    gpu.FrameRenderer
}

// New creates the render state for the given window. Any failure is a
// [gpu.KindSetup] error, and everything created so far is released.
func New(w system.Window, cfg *config.Config) (*Renderer, error) {
	sw, ok := w.(SurfaceWindow)
	if !ok {
		return nil, &gpu.Error{Kind: gpu.KindSetup, Op: "create surface", Err: fmt.Errorf("window %T cannot present WebGPU surfaces", w)}
	}
	r := &Renderer{}
	if err := r.init(sw, cfg); err != nil {
		r.Release()
		return nil, errors.Log(err)
	}
	return r, nil
}

func (r *Renderer) init(sw SurfaceWindow, cfg *config.Config) error {
	gp, err := gpu.NewGPU(cfg.Backend)
	if err != nil {
		return err
	}
	r.GPU = gp
	sf, err := gp.CreateSurface(sw.SurfaceDescriptor())
	if err != nil {
		return err
	}
	if err := gp.SelectAdapter(sf); err != nil {
		sf.Release()
		return err
	}
	r.Device, err = gp.NewDevice()
	if err != nil {
		sf.Release()
		return err
	}
	r.Surface, err = gpu.NewSurface(gp, r.Device, sf, sw.Size(), cfg.VSync)
	if err != nil {
		sf.Release()
		return err
	}
	slog.Info("surface configured", "size", r.Surface.Format.Size, "format", gpu.FormatName(r.Surface.Format.Format), "present", r.Surface.PresentMode.String())

	r.Pipeline = NewPipeline()
	if cfg.ValidateShaders {
		if err := r.Pipeline.Validate(); err != nil {
			return err
		}
	}
	r.Pipeline.TargetFormat = r.Surface.Format.Format
	if err := r.Pipeline.Config(r.Device, r.Surface.Format.Format); err != nil {
		return err
	}
	r.Geometry, err = gpu.NewGeometry(r.Device, "quad", mesh.Quad, mesh.QuadIndices)
	if err != nil {
		return err
	}

	r.Frame = gpu.FrameRenderer{
		Device:   r.Device,
		Surface:  r.Surface,
		Pipeline: r.Pipeline,
		Geometry: r.Geometry,
	}
	r.Frame.Render.SetClearColor(cfg.ClearColor)
	if gpu.Debug {
		r.Frame.FPSInterval = 10 * time.Second
	}
	return nil
}

// NewPipeline returns the unconfigured pipeline that draws [mesh.Vertex]
// geometry with the colored shader from [shaders.NewColored].
func NewPipeline() *gpu.GraphicsPipeline {
	pl := gpu.NewGraphicsPipeline("colored")
	sh := shaders.NewColored()
	pl.AddEntry(sh, gpu.VertexShader, shaders.VertexEntry)
	pl.AddEntry(sh, gpu.FragmentShader, shaders.FragmentEntry)
	pl.SetVertexBuffers(mesh.Layout())
	return pl
}

// Resize reconfigures the surface for the new framebuffer size.
func (r *Renderer) Resize(size image.Point) {
	if r.Surface.SetSize(size) {
		slog.Debug("surface resized", "size", size, "suspended", r.Surface.Suspended())
	}
}

// Render draws and presents one frame.
func (r *Renderer) Render() error {
	return r.Frame.RenderFrame()
}

// Release waits for the device to finish and releases all
// GPU objects in reverse order of creation.
func (r *Renderer) Release() {
	if r.Device != nil {
		r.Device.WaitDone()
	}
	if r.Geometry != nil {
		r.Geometry.Release()
		r.Geometry = nil
	}
	if r.Pipeline != nil {
		r.Pipeline.Release()
		r.Pipeline = nil
	}
	if r.Surface != nil {
		r.Surface.Release()
		r.Surface = nil
	}
	if r.Device != nil {
		r.Device.Release()
		r.Device = nil
	}
	if r.GPU != nil {
		r.GPU.Release()
		r.GPU = nil
	}
}
