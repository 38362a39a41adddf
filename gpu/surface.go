// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the presentation surface of a window and its
// configuration. The configured size always equals the last positive
// framebuffer size given to [Surface.SetSize]. A zero-area size
// suspends the surface: its configuration is kept but not applied,
// and frames are skipped until a positive size arrives.
type Surface struct {

	// Format has the current size and texture format of the surface.
	Format TextureFormat

	// PresentMode is the negotiated present mode.
	PresentMode wgpu.PresentMode

	// AlphaMode is the negotiated alpha compositing mode.
	AlphaMode wgpu.CompositeAlphaMode

	surface   *wgpu.Surface
	config    wgpu.SurfaceConfiguration
	suspended bool

	// configure applies the configuration to the underlying surface.
	configure func(cfg *wgpu.SurfaceConfiguration)
}

// NewSurface negotiates the configuration of the given surface from
// the adapter capabilities and configures it at the given
// framebuffer size.
func NewSurface(gp *GPU, dev *Device, sf *wgpu.Surface, size image.Point, vsync bool) (*Surface, error) {
	caps := sf.GetCapabilities(gp.Adapter)
	cfg, err := SurfaceConfig(caps, size, vsync)
	if err != nil {
		return nil, setupError("configure surface", err)
	}
	sw := newSurface(cfg, func(c *wgpu.SurfaceConfiguration) {
		sf.Configure(gp.Adapter, dev.Device, c)
	})
	sw.surface = sf
	return sw, nil
}

func newSurface(cfg *wgpu.SurfaceConfiguration, configure func(cfg *wgpu.SurfaceConfiguration)) *Surface {
	sw := &Surface{config: *cfg, configure: configure}
	sw.Format.Defaults()
	sw.Format.Set(int(cfg.Width), int(cfg.Height), cfg.Format)
	sw.PresentMode = cfg.PresentMode
	sw.AlphaMode = cfg.AlphaMode
	if cfg.Width == 0 || cfg.Height == 0 {
		sw.suspended = true
		return sw
	}
	sw.Reconfigure()
	return sw
}

// SetSize sets the framebuffer size of the surface and reconfigures
// it, returning false if the size is unchanged. A zero width or height
// suspends the surface instead, returning true if it was not already
// suspended.
func (sw *Surface) SetSize(sz image.Point) bool {
	if sz.X <= 0 || sz.Y <= 0 {
		if sw.suspended {
			return false
		}
		sw.suspended = true
		if Debug {
			slog.Debug("gpu: surface suspended", "size", sz)
		}
		return true
	}
	if !sw.suspended && sw.Format.Size == sz {
		return false
	}
	sw.Format.Size = sz
	sw.config.Width = uint32(sz.X)
	sw.config.Height = uint32(sz.Y)
	sw.suspended = false
	sw.Reconfigure()
	return true
}

// Reconfigure applies the current configuration to the surface,
// for example after the surface was reported outdated. It does
// nothing while suspended.
func (sw *Surface) Reconfigure() {
	if sw.suspended {
		return
	}
	sw.configure(&sw.config)
	if Debug {
		slog.Debug("gpu: surface configured", "format", sw.Format.String(), "present", sw.PresentMode.String())
	}
}

// Suspended returns true while the surface has a zero-area size.
func (sw *Surface) Suspended() bool {
	return sw.suspended
}

// Config returns a copy of the surface configuration.
func (sw *Surface) Config() wgpu.SurfaceConfiguration {
	return sw.config
}

// AcquireNextTexture returns the next surface texture to render into,
// and a view on it. Failures are returned as [Error] classified by
// whether reconfiguring the surface can recover from them.
func (sw *Surface) AcquireNextTexture() (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := sw.surface.GetCurrentTexture()
	if err != nil {
		return nil, nil, surfaceError("acquire texture", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, &Error{Kind: KindFatal, Op: "create texture view", Err: err}
	}
	return tex, view, nil
}

// Present schedules the acquired texture for display.
func (sw *Surface) Present() {
	sw.surface.Present()
}

func (sw *Surface) Release() {
	if sw.surface != nil {
		sw.surface.Release()
		sw.surface = nil
	}
}
