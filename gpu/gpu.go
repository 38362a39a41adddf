// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu brings up WebGPU for a window surface and draws
// indexed geometry with a single graphics pipeline: instance,
// adapter and device creation, surface configuration, shader
// modules, vertex and index buffers, and the per-frame render pass.
package gpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// Debug turns on verbose logging of surface configuration and
// frame statistics.
var Debug = false

// Backends maps config backend names to the instance backends
// they select.
var Backends = map[string]wgpu.InstanceBackend{
	"vulkan":  wgpu.InstanceBackendVulkan,
	"metal":   wgpu.InstanceBackendMetal,
	"dx12":    wgpu.InstanceBackendDX12,
	"gl":      wgpu.InstanceBackendGL,
	"primary": wgpu.InstanceBackendPrimary,
}

// ParseBackend returns the instance backend for the given name.
func ParseBackend(name string) (wgpu.InstanceBackend, error) {
	bk, ok := Backends[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("gpu: unknown backend %q", name)
	}
	return bk, nil
}

// GPU represents the WebGPU instance and the adapter selected
// for drawing to a surface.
// There should be only one per app.
type GPU struct {
	// Instance is the WebGPU instance.
	Instance *wgpu.Instance

	// Adapter is the physical GPU, set by [GPU.SelectAdapter].
	Adapter *wgpu.Adapter

	// Backend is the graphics API the instance was restricted to.
	Backend wgpu.InstanceBackend
}

// NewGPU returns a new GPU with an instance restricted to the named backend.
func NewGPU(backend string) (*GPU, error) {
	bk, err := ParseBackend(backend)
	if err != nil {
		return nil, setupError("create instance", err)
	}
	gp := &GPU{Backend: bk}
	gp.Instance = wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: bk})
	if gp.Instance == nil {
		return nil, setupError("create instance", fmt.Errorf("no %s instance", backend))
	}
	return gp, nil
}

// CreateSurface creates a presentation surface from the given
// platform window descriptor.
func (gp *GPU) CreateSurface(desc *wgpu.SurfaceDescriptor) (*wgpu.Surface, error) {
	sf := gp.Instance.CreateSurface(desc)
	if sf == nil {
		return nil, setupError("create surface", fmt.Errorf("instance returned no surface"))
	}
	return sf, nil
}

// SelectAdapter requests an adapter that can present to the given
// surface, with default power preference and no forced fallback.
func (gp *GPU) SelectAdapter(compatible *wgpu.Surface) error {
	ad, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    compatible,
		PowerPreference:      wgpu.PowerPreferenceUndefined,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		return setupError("request adapter", fmt.Errorf("%w: %w", ErrNoAdapter, err))
	}
	if ad == nil {
		return setupError("request adapter", ErrNoAdapter)
	}
	gp.Adapter = ad
	slog.Debug("gpu: adapter selected", "backend", gp.Backend)
	return nil
}

// NewDevice returns a new [Device] on the selected adapter.
func (gp *GPU) NewDevice() (*Device, error) {
	return NewDevice(gp)
}

// Release releases the adapter and instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
